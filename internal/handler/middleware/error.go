package middleware

import (
	"log/slog"
	"net/http"

	"slotbook/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns context errors that no handler rendered into a JSON
// envelope. Page handlers write HTML themselves and redirects write headers,
// so both pass through untouched; a bare status with no errors (the webhook
// ack shape) is flushed as-is, never rewritten.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		// Newest error wins when several were recorded.
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if ginErr := c.Errors[i]; ginErr.IsType(gin.ErrorTypePublic) {
				if resp, ok := ginErr.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}

		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError,
				httperr.NewResponse(http.StatusInternalServerError, "Internal server error"))
			return
		}

		c.Status(c.Writer.Status())
		c.Writer.WriteHeaderNow()
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error"))
				c.Abort()
			}
		}()
		c.Next()
	}
}
