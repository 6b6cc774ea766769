package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"sprintsync.app/retro/internal/http/dto"
)

// Recovery answers panics with the failure envelope instead of gin's bare 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				stack := string(debug.Stack())

				slog.ErrorContext(ctx, "panic recovered",
					"error", err,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", stack,
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					StatusCode: http.StatusInternalServerError,
					Success:    false,
					Message:    "internal server error",
					Errors:     []dto.FieldError{},
				})
			}
		}()
		c.Next()
	}
}
