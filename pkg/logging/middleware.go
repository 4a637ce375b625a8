package logging

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries a caller-supplied request ID. One is generated
// when it is missing.
const RequestIDHeader = "X-Request-ID"

// RequestLogger logs one record per request and stores a logger tagged with
// the request ID in the request context, where L finds it.
func RequestLogger(logger Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			reqLogger := logger.With(
				String("request_id", reqID),
				String("method", r.Method),
				String("path", r.URL.Path),
			)

			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			rw.Header().Set(RequestIDHeader, reqID)
			next.ServeHTTP(rw, r.WithContext(ContextWithLogger(r.Context(), reqLogger)))

			fields := []Field{
				Int("status", rw.status),
				Int("bytes", rw.bytes),
				Duration("duration", time.Since(start)),
			}
			if rw.status >= http.StatusInternalServerError {
				reqLogger.Warn("request failed", fields...)
				return
			}
			reqLogger.Info("request", fields...)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.status = status
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(p []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(p)
	rw.bytes += n
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController and
// websocket upgrades.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
