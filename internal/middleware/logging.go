package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader   = "X-Request-ID"
	processTimeHeader = "X-Process-Time"
)

// timingWriter stamps the elapsed time header right before the first byte is written.
type timingWriter struct {
	gin.ResponseWriter
	start time.Time
}

func (w *timingWriter) stamp() {
	if !w.ResponseWriter.Written() {
		w.Header().Set(processTimeHeader, formatSeconds(time.Since(w.start)))
	}
}

func (w *timingWriter) WriteHeaderNow() {
	w.stamp()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *timingWriter) Write(data []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(data)
}

func (w *timingWriter) WriteString(s string) (int, error) {
	w.stamp()
	return w.ResponseWriter.WriteString(s)
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}

// StructuredLoggingMiddleware creates a Gin middleware handler that injects
// a request-scoped logger into the request context.
func StructuredLoggingMiddleware(baseLogger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		// Create a logger enriched with request-specific fields
		requestLogger := baseLogger.With(
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		)

		c.Header(requestIDHeader, requestID)
		c.Writer = &timingWriter{ResponseWriter: c.Writer, start: start}
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), requestLogger))

		requestLogger.Debug("Request started", slog.String("query", c.Request.URL.RawQuery))

		c.Next()

		latency := time.Since(start)
		if !c.Writer.Written() {
			c.Header(processTimeHeader, formatSeconds(latency))
		}

		// Handlers may have enriched the logger (e.g. with the user).
		logger := GetLoggerFromContext(c)
		status := c.Writer.Status()
		attrs := []any{
			slog.Int("status", status),
			slog.Duration("latency", latency),
		}
		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("Request completed", attrs...)
		case status >= http.StatusBadRequest:
			logger.Warn("Request completed", attrs...)
		default:
			logger.Info("Request completed", attrs...)
		}
	}
}
