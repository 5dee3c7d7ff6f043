// Package timing stamps each request with its start time so response
// envelopes can report server processing time.
package timing

import (
	"time"

	"github.com/gin-gonic/gin"
)

const startKey = "request_start"

// New returns the middleware recording the request start time.
func New() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(startKey, time.Now())
		c.Next()
	}
}

// Elapsed returns the milliseconds since the request started, when the
// middleware is installed.
func Elapsed(c *gin.Context) (int64, bool) {
	if c == nil {
		return 0, false
	}
	if v, exists := c.Get(startKey); exists {
		if start, ok := v.(time.Time); ok {
			return time.Since(start).Milliseconds(), true
		}
	}
	return 0, false
}
