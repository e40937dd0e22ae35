package middleware

import (
	"net/http"

	size "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/healthcare_api/routers/api/models"
)

// LimitBody rejects requests declaring a body larger than limit bytes before they are routed.
// Bodies without a declared length are cut off once a handler reads past limit,
// the limiter then answers 413 and aborts the request
func LimitBody(limit int64) gin.HandlerFunc {
	limiter := size.RequestSizeLimiter(limit)

	return func(ctx *gin.Context) {
		if ctx.Request.ContentLength > limit {
			models.SendAPIError(ctx, http.StatusRequestEntityTooLarge, "request body is too large")
			return
		}
		if ctx.Request.Body == nil {
			ctx.Next()
			return
		}
		limiter(ctx)
	}
}

// IsBodyTooLarge reports whether the request was already answered because its body went past the limit
func IsBodyTooLarge(ctx *gin.Context) bool {
	return ctx.IsAborted() && ctx.Writer.Status() == http.StatusRequestEntityTooLarge
}
