package models

import (
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination ../../../mocks/routers/api/models/router.go -package mock_models github.com/unicsmcr/healthcare_api/routers/api/models Router

// Router is a group of routes which can be mounted under a path
type Router interface {
	RegisterRoutes(routerGroup *gin.RouterGroup)
}
