package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/kart-io/complaint-center/pkg/errors"
	"github.com/kart-io/complaint-center/pkg/response"
)

// Recovery returns a middleware that recovers from panics, logs the stack,
// and returns a 500 response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorw("panic recovered",
					"panic", r,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)
				response.Fail(c, errors.ErrInternal)
				c.Abort()
			}
		}()
		c.Next()
	}
}
