package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/healthcare_api/database"
	"go.uber.org/zap"
)

// EnsureConnected (re)connects to the database before the request is handled
// when there is no active connection. A failed attempt does not stop the request,
// handlers report the database as unavailable instead
func EnsureConnected(logger *zap.Logger, connector database.Connector) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if connector.CurrentState() != database.Connected {
			err := connector.EnsureConnected(ctx.Request.Context())
			if err != nil {
				logger.Error("database connection failed in handler", zap.Error(err))
			}
		}
		ctx.Next()
	}
}
