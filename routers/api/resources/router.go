package resources

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/healthcare_api/database"
	"github.com/unicsmcr/healthcare_api/routers/api/models"
	"github.com/unicsmcr/healthcare_api/routers/middleware"
	"github.com/unicsmcr/healthcare_api/services"
	"go.uber.org/zap"
)

// Router exposes the documents of a single collection
type Router interface {
	models.Router
	GetDocuments(*gin.Context)
	GetDocument(*gin.Context)
	CreateDocument(*gin.Context)
	UpdateDocument(*gin.Context)
	DeleteDocument(*gin.Context)
}

type resourcesRouter struct {
	logger          *zap.Logger
	documentService services.DocumentService
}

// NewRouter creates a Router for the collection behind documentService
func NewRouter(logger *zap.Logger, documentService services.DocumentService) Router {
	return &resourcesRouter{
		logger:          logger,
		documentService: documentService,
	}
}

func (r *resourcesRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("", r.GetDocuments)
	routerGroup.GET("/:id", r.GetDocument)
	routerGroup.POST("", r.CreateDocument)
	routerGroup.PUT("/:id", r.UpdateDocument)
	routerGroup.PATCH("/:id", r.UpdateDocument)
	routerGroup.DELETE("/:id", r.DeleteDocument)
}

// handleServiceError responds to the errors the document service is expected to return.
// Anything else is left to the terminal error handler
func (r *resourcesRouter) handleServiceError(ctx *gin.Context, err error, action string) {
	switch errors.Cause(err) {
	case services.ErrInvalidID:
		r.logger.Debug("invalid id", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "invalid id")
	case services.ErrInvalidFilter:
		r.logger.Debug("invalid filter", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "invalid filter")
	case services.ErrNotFound:
		r.logger.Debug("document not found", zap.Error(err))
		models.SendAPIError(ctx, http.StatusNotFound, "document not found")
	case database.ErrNotConnected:
		r.logger.Warn("database unavailable", zap.String("action", action), zap.Error(err))
		models.SendAPIError(ctx, http.StatusServiceUnavailable, "database is not available, please try again later")
	default:
		r.logger.Error("could not "+action, zap.Error(err))
		_ = ctx.Error(err)
	}
}

func (r *resourcesRouter) handleBindError(ctx *gin.Context, err error) {
	if middleware.IsBodyTooLarge(ctx) {
		r.logger.Debug("request body too large", zap.Error(err))
		return
	}
	r.logger.Debug("could not parse request body", zap.Error(err))
	models.SendAPIError(ctx, http.StatusBadRequest, "failed to parse request")
}
