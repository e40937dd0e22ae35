package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/healthcare_api/config"
)

// NewCORS creates the cross-origin policy of the API.
// Origins outside the policy are rejected with 403 and get no Access-Control-Allow-Origin header
func NewCORS(cfg *config.AppConfig) gin.HandlerFunc {
	allowedOrigins := make(map[string]bool, len(cfg.CORS.AllowedOrigins))
	for _, origin := range cfg.CORS.AllowedOrigins {
		allowedOrigins[origin] = true
	}
	allowAnyOrigin := cfg.CORS.AllowAnyOrigin

	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowAnyOrigin || allowedOrigins[origin]
		},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
