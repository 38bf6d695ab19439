package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/archanap13u/track-back/core"
	"github.com/archanap13u/track-back/core/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger stores a per-request logger in the context and logs each completed request
func RequestLogger(base *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = core.NewID("req")
			}
			w.Header().Set(RequestIDHeader, requestID)

			logger := base.With(
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)
			ctx := log.WithLogger(r.Context(), logger)

			recorder := newStatusRecorder(w)
			next.ServeHTTP(recorder, r.WithContext(ctx))

			logger.Info("🌐 Request completed",
				zap.Int("status", recorder.status),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote_addr", r.RemoteAddr))
		})
	}
}
