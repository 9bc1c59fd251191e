package middleware

import (
	"context"
	"mmr-matchmaker/internal/constants"
	"mmr-matchmaker/internal/metrics"
	"mmr-matchmaker/internal/rpc"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

const RequestIDHeader = "X-Request-ID"

// OtherRoute labels every path the server does not serve.
const OtherRoute = "other"

var knownRoutes = map[string]bool{
	rpc.FindMatchProcedure:     true,
	rpc.ListPlayersProcedure:   true,
	rpc.CreatePlayerProcedure:  true,
	rpc.UpdatePlayersProcedure: true,
	rpc.DeletePlayersProcedure: true,
	rpc.ListRanksProcedure:     true,
	rpc.CreateRankProcedure:    true,
	rpc.DeleteRanksProcedure:   true,
	constants.MetricsPath:      true,
	constants.HealthPath:       true,
}

// routeLabel keeps the path label bounded so arbitrary request paths cannot
// grow the metric series.
func routeLabel(path string) string {
	if knownRoutes[path] {
		return path
	}
	return OtherRoute
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush keeps streaming responses working behind the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Request tags every request with an id, attaches a request-scoped logger to
// the context and records its latency per path.
func Request(logger zerolog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			w.Header().Set(RequestIDHeader, requestID)

			reqLogger := logger.With().Str("request_id", requestID).Logger()
			ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
			ctx = reqLogger.WithContext(ctx)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(ctx))

			duration := time.Since(start)
			m.ObserveRequest(routeLabel(r.URL.Path), duration.Seconds())

			reqLogger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Str("remote_addr", r.RemoteAddr).
				Dur("duration", duration).
				Msg("request completed")
		})
	}
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
