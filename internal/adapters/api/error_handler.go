package api

import (
	"errors"
	"net/http"

	errorspkg "climateapi.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError maps application errors to HTTP responses. Internal details
// are logged, never returned.
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var statusCode int
	var message string

	if !errors.As(err, &appErr) {
		s.logger.ErrorContext(c.Request.Context(), "Unhandled error", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
		s.logger.ErrorContext(c.Request.Context(), "Request failed",
			"error", err,
			"type", appErr.Type.String(),
			"path", c.FullPath())
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}
