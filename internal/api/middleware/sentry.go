package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Conceptual-Machines/scales-api/internal/logger"
	"github.com/Conceptual-Machines/scales-api/internal/metrics"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	httpStatusBadRequest          = http.StatusBadRequest
	httpStatusInternalServerError = http.StatusInternalServerError
	sentryFlushTimeout            = 2 * time.Second
	requestIDHeader               = "X-Request-ID"
)

// RequestTracking adds request ID and logging to all requests and reports
// each request to the given recorder
func RequestTracking(recorder metrics.Recorder) gin.HandlerFunc {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return func(c *gin.Context) {
		// Reuse an upstream request ID when there is one
		requestID := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		start := time.Now()

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		fields := logger.Fields{
			"request_id":  requestID,
			"duration_ms": duration.Milliseconds(),
			"status_code": statusCode,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"client_ip":   c.ClientIP(),
		}

		// 5xx causes are captured where they happen, by sentrygin for panics
		// and by the handler for errors
		if statusCode >= httpStatusInternalServerError {
			logger.ErrorReported("Request failed with server error", errors.New(http.StatusText(statusCode)), fields)
		} else if statusCode >= httpStatusBadRequest {
			logger.Warn("Request failed with client error", fields)
		} else {
			logger.Info("Request completed", fields)
		}

		// Route template keeps the endpoint dimension bounded
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		recorder.RecordAPIRequest(c.Request.Context(), endpoint, statusCode, duration)
	}
}

// SentryMiddleware returns the Sentry middleware with custom configuration
func SentryMiddleware() gin.HandlerFunc {
	return sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         sentryFlushTimeout,
	})
}

// RecoverWithSentry turns panics into a 500 response. It must wrap
// SentryMiddleware, which captures the panic and repanics, and sit inside
// RequestTracking so panicking requests are still logged and counted.
func RecoverWithSentry() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", rec)
				}

				logger.ErrorReported("Panic recovered", err, logger.Fields{
					"request_id": c.GetString("request_id"),
					"method":     c.Request.Method,
					"path":       c.Request.URL.Path,
				})

				c.AbortWithStatusJSON(httpStatusInternalServerError, gin.H{
					"error":      "internal_error",
					"message":    "Internal server error",
					"request_id": c.GetString("request_id"),
				})
			}
		}()
		c.Next()
	}
}
