package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thefueley/sonic-poc/internal/logger"
)

const (
	RequestIDHeader     = "X-Request-ID"
	contextKeyRequestID = "request_id"
)

// RequestID returns the id assigned to the current request.
func RequestID(c *gin.Context) string {
	return c.GetString(contextKeyRequestID)
}

// Logging assigns each request an id and logs its method, path, status and duration.
// A valid incoming X-Request-ID is kept.
func Logging(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(reqID); err != nil {
			reqID = uuid.NewString()
		}
		c.Set(contextKeyRequestID, reqID)
		c.Header(RequestIDHeader, reqID)

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		switch {
		case len(c.Errors) > 0:
			log.Error("HTTP request failed", append(attrs, "error", c.Errors.String())...)
		case status >= 500:
			log.Error("HTTP request completed", attrs...)
		case status >= 400:
			log.Warn("HTTP request completed", attrs...)
		default:
			log.Info("HTTP request completed", attrs...)
		}
	}
}
