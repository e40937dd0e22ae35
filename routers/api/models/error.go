package models

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// APIError is a struct to store a standard API error.
// Handlers can attach it to the context with ctx.Error to have
// the terminal error handler respond with its status
type APIError Response

func (e *APIError) Error() string {
	return e.Err
}

// NewAPIError creates an APIError with given status and error message
func NewAPIError(status int, err string) APIError {
	return APIError{
		Status: status,
		Err:    err,
	}
}

// SendAPIError sends an error with given status and error message to the user
func SendAPIError(ctx *gin.Context, status int, err string) {
	ctx.JSON(status, NewAPIError(status, err))
	ctx.Abort()
}

// StatusOf returns the status declared by an APIError in err's chain,
// http.StatusInternalServerError otherwise
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status >= http.StatusBadRequest {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// SendErrorResponse sends an error with a human readable message to the user
func SendErrorResponse(ctx *gin.Context, status int, err, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{
		Response: Response{
			Status: status,
			Err:    err,
		},
		Message: message,
	})
}
