package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/brightpane/roundfinder/internal/logging"
	"github.com/brightpane/roundfinder/internal/utils"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// NewRequestLoggingMiddleware creates middleware that logs HTTP requests.
// Lookups carry a customer's postcode in the query string, so only the path
// is logged; a non-empty query is recorded as a flag.
func NewRequestLoggingMiddleware(logger *slog.Logger, trusted utils.TrustedProxies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Add logger to context for downstream handlers
			r = r.WithContext(logging.WithLogger(r.Context(), logger))

			// Default to 200 in case the handler never calls WriteHeader
			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			logging.LogHTTPRequest(logger,
				r.Method,
				r.URL.Path,
				wrapped.statusCode,
				float64(duration.Nanoseconds())/1e6,
				slog.Bool("has_query", r.URL.RawQuery != ""),
				slog.String("client_ip", utils.ClientIP(r, trusted)),
				slog.String("user_agent", r.Header.Get("User-Agent")),
				slog.String("component", "http_server"))
		})
	}
}
