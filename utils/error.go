package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIError is a failure the service layer wants mapped to a specific
// HTTP status: not-found, duplicate key, or bad input. Anything else
// reaching a handler is treated as internal.
type APIError struct {
	Code    int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

// NewNotFound reports an absent entity or sub-entity.
func NewNotFound(message string) *APIError {
	return &APIError{Code: http.StatusNotFound, Message: message}
}

// NewConflict reports a duplicate unique key (coach name, booking email, existing date).
func NewConflict(message string) *APIError {
	return &APIError{Code: http.StatusConflict, Message: message}
}

// NewValidation reports missing or malformed input caught before the service layer.
func NewValidation(message string) *APIError {
	return &APIError{Code: http.StatusBadRequest, Message: message}
}

// StatusOf maps an error to its HTTP status, defaulting to 500.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return http.StatusInternalServerError
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
