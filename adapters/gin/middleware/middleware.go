package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/undeniable-app/undeniable/adapters/log"
	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/utils/constant"
	"github.com/undeniable-app/undeniable/utils/helpers"
)

// RequestIDMiddleware keeps a well formed inbound X-Request-ID or generates a
// new one, stores it on the context and echoes it on the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constant.RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		c.Set(constant.RequestID, requestID)
		c.Header(constant.RequestIDHeader, requestID)
		c.Next()
	}
}

// **Gin Middleware for Compression**
func CompressionMiddleware() gin.HandlerFunc {
	return gzip.Gzip(gzip.BestSpeed, gzip.WithExcludedPaths([]string{constant.MetricsEndpoint}))
}

// RecoveryMiddleware turns a panic into a 500 blame response and logs the stack.
func RecoveryMiddleware(logger *log.Log) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					logger.Any("panic", r),
					log.String("path", c.Request.URL.Path),
					log.String("request_id", GetRequestID(c)),
					log.String("stack", string(debug.Stack())),
				)
				err := blame.InternalServerError(nil)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					err.FetchErrorResponse(blame.WithTranslation(), blame.WithoutCauses()))
			}
		}()
		c.Next()
	}
}

// GetRequestID returns the request ID set by RequestIDMiddleware, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(constant.RequestID)
}

// AbortWithBlame writes err as JSON with the status of its response type.
func AbortWithBlame(c *gin.Context, err blame.Blame) {
	c.AbortWithStatusJSON(helpers.FetchHTTPStatusCode(err.FetchResponseType()),
		err.FetchErrorResponse(blame.WithTranslation(), blame.WithoutCauses(), blame.WithoutFields()))
}
