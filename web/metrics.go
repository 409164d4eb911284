package web

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finman_http_requests_total",
		Help: "API requests served, by endpoint and status code.",
	}, []string{"endpoint", "code"})

	reloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finman_snapshot_reloads_total",
		Help: "Snapshot reloads triggered by on-disk changes.",
	})

	accountsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "finman_accounts",
		Help: "Accounts in the loaded snapshot.",
	})
)

// statusRecorder captures the response code for request metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrumented wraps a handler with a per-endpoint request counter.
func (s *Server) instrumented(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		requestsTotal.WithLabelValues(endpoint, strconv.Itoa(rec.status)).Inc()
	}
}
