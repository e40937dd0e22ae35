package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/healthcare_api/environment"
	"github.com/unicsmcr/healthcare_api/routers/api/models"
	"go.uber.org/zap"
)

const (
	internalServerError = "Internal server error"
	redactedMessage     = "Please try again later"
)

// Recover converts panics raised by handlers into a JSON response.
// In production the error message is not sent to the user
func Recover(logger *zap.Logger, env *environment.Env) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(ctx *gin.Context, recovered interface{}) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("%v", recovered)
		}
		logger.Error("recovered from panic in handler", zap.String("path", ctx.Request.URL.Path), zap.Error(err), zap.Stack("stack"))
		sendError(ctx, env, err)
	})
}

// HandleErrors is the terminal error handler. It converts the last error attached
// with ctx.Error into a JSON response, unless a response was already written
func HandleErrors(logger *zap.Logger, env *environment.Env) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if len(ctx.Errors) == 0 || ctx.Writer.Written() {
			return
		}
		err := ctx.Errors.Last().Err
		logger.Error("server error", zap.String("path", ctx.Request.URL.Path), zap.Error(err))
		sendError(ctx, env, err)
	}
}

func sendError(ctx *gin.Context, env *environment.Env, err error) {
	status := models.StatusOf(err)

	errMessage := internalServerError
	if status < http.StatusInternalServerError {
		errMessage = http.StatusText(status)
	}

	message := err.Error()
	if env.IsProduction() {
		message = redactedMessage
	}

	models.SendErrorResponse(ctx, status, errMessage, message)
}
