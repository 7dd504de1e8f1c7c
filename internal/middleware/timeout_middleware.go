package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestTimeout bounds each request's context with the given deadline so an
// operation waiting on a saturated connection pool fails as a storage error
// instead of hanging. Requests that already carry a deadline keep it. A
// non-positive duration disables the bound.
func RequestTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		if _, hasDeadline := c.Request.Context().Deadline(); hasDeadline {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
