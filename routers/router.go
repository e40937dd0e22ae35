package routers

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/healthcare_api/routers/api/models"
	"go.uber.org/zap"
)

const indexFile = "index.html"

// MainRouter mounts the health checks and every route entry of the API
type MainRouter interface {
	models.Router
	Heartbeat(*gin.Context)
	Health(*gin.Context)
	// NoRoute handles requests no route matched
	NoRoute(*gin.Context)
	// Report returns the outcome of the last RegisterRoutes call
	Report() *StartupReport
}

type mainRouter struct {
	logger *zap.Logger
	deps   Dependencies
	routes []RouteEntry
	report *StartupReport
}

// NewMainRouter creates a MainRouter mounting routes with deps
func NewMainRouter(deps Dependencies, routes []RouteEntry) MainRouter {
	return &mainRouter{
		logger: deps.Logger,
		deps:   deps,
		routes: routes,
		report: &StartupReport{},
	}
}

func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.Heartbeat)

	apiGroup := routerGroup.Group(APIPrefix)
	apiGroup.GET("/health", r.Health)

	report := &StartupReport{}
	for _, entry := range r.routes {
		result := loadRoute(r.deps, entry, apiGroup.Group("/"+entry.MountName))
		report.Results = append(report.Results, result)

		if result.Err != nil {
			r.logger.Error("failed to load route", zap.String("mount", entry.MountName), zap.Error(result.Err))
			continue
		}
		r.logger.Info("route loaded", zap.String("mount", entry.MountName), zap.String("path", result.Path))
	}
	r.report = report

	r.logger.Info("routes registered",
		zap.Int("loaded", len(report.Loaded())),
		zap.Int("failed", len(report.Failed())))
}

func (r *mainRouter) Report() *StartupReport {
	return r.report
}

func (r *mainRouter) NoRoute(ctx *gin.Context) {
	reqPath := ctx.Request.URL.Path
	if isAPIPath(reqPath) {
		r.logger.Debug("api endpoint not found", zap.String("path", reqPath))
		ctx.AbortWithStatusJSON(http.StatusNotFound, apiNotFoundRes{
			Error:          "API endpoint not found",
			Path:           originalURL(ctx.Request),
			AttemptedRoute: attemptedRoute(reqPath),
		})
		return
	}

	if (ctx.Request.Method == http.MethodGet || ctx.Request.Method == http.MethodHead) && r.servePublicFile(ctx, reqPath) {
		return
	}

	models.SendAPIError(ctx, http.StatusNotFound, "not found")
}

// servePublicFile serves the file at reqPath from the public filesystem, or its index file
// if reqPath is a directory. Returns false if no such file exists
func (r *mainRouter) servePublicFile(ctx *gin.Context, reqPath string) bool {
	if r.deps.Public == nil {
		return false
	}

	name := path.Clean("/" + reqPath)
	info, err := r.deps.Public.Stat(name)
	if err == nil && info.IsDir() {
		name = path.Join(name, indexFile)
		info, err = r.deps.Public.Stat(name)
	}
	if err != nil || info.IsDir() {
		return false
	}

	file, err := r.deps.Public.Open(name)
	if err != nil {
		r.logger.Warn("could not open public file", zap.String("name", name), zap.Error(err))
		return false
	}
	defer file.Close()

	http.ServeContent(ctx.Writer, ctx.Request, info.Name(), info.ModTime(), file)
	ctx.Abort()
	return true
}

func isAPIPath(reqPath string) bool {
	return reqPath == APIPrefix || strings.HasPrefix(reqPath, APIPrefix+"/")
}

func originalURL(req *http.Request) string {
	if req.RequestURI != "" {
		return req.RequestURI
	}
	return req.URL.RequestURI()
}

// attemptedRoute returns the first path segment after the API prefix
func attemptedRoute(reqPath string) string {
	rest := strings.TrimPrefix(strings.TrimPrefix(reqPath, APIPrefix), "/")
	return strings.SplitN(rest, "/", 2)[0]
}
