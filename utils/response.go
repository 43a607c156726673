package utils

import (
	"errors"
	"net/http"

	"coachify/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SendResponse writes the uniform success envelope.
func SendResponse(c *gin.Context, status int, message string, data any) {
	c.JSON(status, models.Response{Success: true, Message: message, Data: data})
}

// SendResponseWithMeta writes the uniform success envelope for paginated lists.
func SendResponseWithMeta(c *gin.Context, status int, message string, data any, meta *models.Meta) {
	c.JSON(status, models.Response{Success: true, Message: message, Data: data, Meta: meta})
}

// SendError maps a service error onto the envelope. Typed errors keep
// their message and status; anything else is logged server-side and
// surfaced as a generic 500.
func SendError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Code, models.Response{Success: false, Message: apiErr.Message})
		return
	}

	GetLogger().Error("internal error", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.Response{
		Success: false,
		Message: "Something went wrong. Please try again later.",
	})
}
