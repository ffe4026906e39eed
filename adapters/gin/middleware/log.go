package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/undeniable-app/undeniable/adapters/log"
	"github.com/undeniable-app/undeniable/utils/types"
)

// GinRequestLogger logs one line per request. Bodies, query strings, headers
// and client addresses are never logged: form content must not reach logs.
func GinRequestLogger(logger *log.Log) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		// Process Request
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		fields := []types.Field{
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("route", route),
			log.Int("status_code", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
			log.Int("size", c.Writer.Size()),
			log.String("request_id", GetRequestID(c)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, log.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.Error("request completed", fields...)
		case status >= 400:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}
