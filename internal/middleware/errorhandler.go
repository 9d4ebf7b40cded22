package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/spendview/internal/domain/dto"
)

// ErrorHandler converts errors attached to the gin context by handlers into
// the standardized JSON error body, unless a response was already written.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	last := c.Errors.Last()
	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	c.JSON(status, dto.NewErrorResponse("request failed", last.Err))
}
