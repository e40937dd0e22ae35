package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/healthcare_api/environment"
)

const (
	heartbeatStatus = "Healthcare Database API"
	healthStatus    = "API is running"
	timestampFormat = "2006-01-02T15:04:05.000Z07:00"
)

// GET: /
// Response: status string, dbStatus string, environment string
func (r *mainRouter) Heartbeat(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, heartbeatRes{
		Status:      heartbeatStatus,
		DBStatus:    r.deps.Connector.CurrentState().Status(),
		Environment: r.deps.Env.Get(environment.Environment),
	})
}

// GET: /api/health
// Response: status string, dbStatus string, timestamp string
func (r *mainRouter) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, healthRes{
		Status:    healthStatus,
		DBStatus:  r.deps.Connector.CurrentState().Status(),
		Timestamp: r.deps.TimeProvider.Now().UTC().Format(timestampFormat),
	})
}
