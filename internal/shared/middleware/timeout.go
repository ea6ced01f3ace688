package middleware

import (
	"context"
	"time"

	"github.com/cokeke26/fenats/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

const (
	DefaultTimeout = 30 * time.Second
	// ImportTimeout covers a spreadsheet import: one lookup and one write per row.
	ImportTimeout = 5 * time.Minute
)

// Timeout bounds the request context. Handlers and repositories observe it
// through ctx; nothing is written here if the deadline passes.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			logger.FromContext(ctx).Warn("request deadline exceeded",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"timeout", timeout.String(),
				"status", c.Writer.Status(),
			)
		}
	}
}
