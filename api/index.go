package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin/render"
	"github.com/unicsmcr/healthcare_api/routers/api/models"
	"github.com/unicsmcr/healthcare_api/server"
)

var (
	initOnce sync.Once
	srv      *server.Server
	initErr  error
)

// Handler is the entrypoint of the per-invocation deployment. The server is built on
// the first invocation and reused by the next ones handled by the same instance
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(func() {
		srv, initErr = server.InitializeServer(server.PerInvocation)
	})

	if initErr != nil {
		writeInitError(w)
		return
	}

	srv.ServeHTTP(w, r)
}

func writeInitError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = render.JSON{Data: models.ErrorResponse{
		Response: models.Response{
			Status: http.StatusInternalServerError,
			Err:    "Internal server error",
		},
		Message: "Please try again later",
	}}.Render(w)
}
