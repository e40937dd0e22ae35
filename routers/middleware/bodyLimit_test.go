package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testBodyLimit = 16

func Test_LimitBody(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		hideLength      bool
		wantResCode     int
		wantHandlerRead bool
		wantTooLarge    bool
	}{
		{
			name:            "should pass body within limit",
			body:            `{"name":"ok"}`,
			wantResCode:     http.StatusOK,
			wantHandlerRead: true,
		},
		{
			name:        "should reject declared body over limit before handler",
			body:        `{"name":"way too long for the limit"}`,
			wantResCode: http.StatusRequestEntityTooLarge,
		},
		{
			name:            "should stop handler from reading past limit",
			body:            `{"name":"way too long for the limit"}`,
			hideLength:      true,
			wantResCode:     http.StatusRequestEntityTooLarge,
			wantHandlerRead: true,
			wantTooLarge:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			tooLarge := false
			w := httptest.NewRecorder()
			_, testServer := gin.CreateTestContext(w)
			testServer.Use(LimitBody(testBodyLimit))
			testServer.POST("/api/hospitals", func(ctx *gin.Context) {
				handlerCalled = true
				_, err := io.ReadAll(ctx.Request.Body)
				if err != nil {
					tooLarge = IsBodyTooLarge(ctx)
					return
				}
				ctx.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/hospitals", strings.NewReader(tt.body))
			if tt.hideLength {
				req.ContentLength = -1
			}
			testServer.ServeHTTP(w, req)

			assert.Equal(t, tt.wantResCode, w.Code)
			assert.Equal(t, tt.wantHandlerRead, handlerCalled)
			assert.Equal(t, tt.wantTooLarge, tooLarge)
		})
	}
}

func Test_LimitBody__should_pass_requests_without_body(t *testing.T) {
	w := httptest.NewRecorder()
	testCtx, _ := gin.CreateTestContext(w)
	testCtx.Request = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	testCtx.Request.Body = nil

	LimitBody(testBodyLimit)(testCtx)

	assert.False(t, testCtx.IsAborted())
}

func Test_IsBodyTooLarge__should_return_false_for_other_responses(t *testing.T) {
	w := httptest.NewRecorder()
	testCtx, _ := gin.CreateTestContext(w)
	testCtx.AbortWithStatus(http.StatusBadRequest)

	assert.False(t, IsBodyTooLarge(testCtx))
}
