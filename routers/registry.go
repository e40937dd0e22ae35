package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/healthcare_api/config"
	"github.com/unicsmcr/healthcare_api/database"
	"github.com/unicsmcr/healthcare_api/environment"
	"github.com/unicsmcr/healthcare_api/routers/api/models"
	"github.com/unicsmcr/healthcare_api/utils"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// APIPrefix is the path every route entry is mounted under
const APIPrefix = "/api"

// ErrRouteLoad is returned when a route entry could not be loaded
var ErrRouteLoad = errors.New("could not load route")

// Dependencies are the collaborators available to route factories
type Dependencies struct {
	Logger       *zap.Logger
	Cfg          *config.AppConfig
	Env          *environment.Env
	Connector    database.Connector
	TimeProvider utils.TimeProvider
	Uploads      utils.UploadsFs
	Public       utils.PublicFs
}

// RouterFactory builds the router of a route entry
type RouterFactory func(deps Dependencies) (models.Router, error)

// RouteEntry is a router mounted under /api/<MountName>
type RouteEntry struct {
	MountName string
	Factory   RouterFactory
}

// Path returns the path the entry is mounted under
func (e RouteEntry) Path() string {
	return APIPrefix + "/" + e.MountName
}

// LoadResult is the outcome of loading a single route entry
type LoadResult struct {
	MountName string
	Path      string
	Err       error
}

// Loaded reports whether the entry was mounted
func (r LoadResult) Loaded() bool {
	return r.Err == nil
}

// StartupReport holds the outcome of loading every route entry, in table order
type StartupReport struct {
	Results []LoadResult
}

// Loaded returns the results of the mounted entries
func (r *StartupReport) Loaded() []LoadResult {
	var loaded []LoadResult
	for _, result := range r.Results {
		if result.Loaded() {
			loaded = append(loaded, result)
		}
	}
	return loaded
}

// Failed returns the results of the entries which could not be mounted
func (r *StartupReport) Failed() []LoadResult {
	var failed []LoadResult
	for _, result := range r.Results {
		if !result.Loaded() {
			failed = append(failed, result)
		}
	}
	return failed
}

// Err combines the errors of all failed entries, nil if every entry was mounted
func (r *StartupReport) Err() error {
	var err error
	for _, result := range r.Failed() {
		err = multierr.Append(err, result.Err)
	}
	return err
}

// loadRoute builds the entry's router and mounts it on routerGroup.
// Routes are registered on a scratch engine first, so the router is mounted
// only if its registration completes. Errors and panics raised while doing so
// are returned in the result
func loadRoute(deps Dependencies, entry RouteEntry, routerGroup *gin.RouterGroup) (result LoadResult) {
	result = LoadResult{
		MountName: entry.MountName,
		Path:      entry.Path(),
	}

	defer func() {
		if rec := recover(); rec != nil {
			result.Err = errors.Wrapf(ErrRouteLoad, "route %s panicked: %v", entry.MountName, rec)
		}
	}()

	if entry.Factory == nil {
		result.Err = errors.Wrapf(ErrRouteLoad, "route %s has no factory", entry.MountName)
		return result
	}

	router, err := entry.Factory(deps)
	if err != nil {
		result.Err = errors.Wrapf(ErrRouteLoad, "route %s: %v", entry.MountName, err)
		return result
	}
	if router == nil {
		result.Err = errors.Wrapf(ErrRouteLoad, "route %s returned no router", entry.MountName)
		return result
	}

	// a router failing halfway through must not leave part of its routes mounted
	scratch := gin.New()
	router.RegisterRoutes(scratch.Group(routerGroup.BasePath()))

	router.RegisterRoutes(routerGroup)
	return result
}
