package api

import (
	"fmt"
	"time"

	"github.com/Domenick1991/airports/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

// RequestLogger writes one line per request and reports errors attached to
// the context by handlers.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		line := fmt.Sprintf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
		switch {
		case len(c.Errors) > 0:
			log.Error(line, " errors: ", c.Errors.String())
		case c.Writer.Status() >= 500:
			log.Error(line)
		default:
			log.Info(line)
		}
	}
}
