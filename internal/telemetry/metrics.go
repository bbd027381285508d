// Package telemetry holds the Prometheus metrics and OpenTelemetry helpers
// shared by the server, the services and the storage layer.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every metric the service exports. A nil *Manager is valid
// and records nothing.
type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterPositionsRepaired   *prometheus.CounterVec
	CounterProgramsCloned      prometheus.Counter
	CounterSetsLogged          *prometheus.CounterVec

	// gauges
	GaugeRequests prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("invictus", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("invictus", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	return &Manager{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request",
			Help:      "The total number of incoming requests",
		}, []string{"method", "status"}),
		CounterHandleRequestPanic: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "handle_request_panic",
			Help:      "The total number of serve request panics",
		}),
		CounterRateLimitedRequests: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "rate_limited_requests",
			Help:      "The total number of rate limited requests",
		}),
		CounterPositionsRepaired: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "positions_repaired",
			Help:      "Number of day or exercise positions rewritten by normalization",
		}, []string{"scope"}),
		CounterProgramsCloned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "programs_cloned",
			Help:      "Number of programs instantiated from a template",
		}),
		CounterSetsLogged: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sets_logged",
			Help:      "Number of workout sets logged",
		}, []string{"mode"}),
		GaugeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "current_requests",
			Help:      "Current number of requests served",
		}),
		HistogramRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Histogram of response time for requests in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"route", "method", "status_code"}),
	}
}

// PositionsRepaired records n rewritten positions in the named scope.
func (m *Manager) PositionsRepaired(scope string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.CounterPositionsRepaired.WithLabelValues(scope).Add(float64(n))
}

// ProgramCloned records one template instantiation.
func (m *Manager) ProgramCloned() {
	if m == nil {
		return
	}
	m.CounterProgramsCloned.Inc()
}

// SetLogged records one logged set of the given mode.
func (m *Manager) SetLogged(mode string) {
	if m == nil {
		return
	}
	m.CounterSetsLogged.WithLabelValues(mode).Inc()
}

// RequestPanicked records a recovered handler panic.
func (m *Manager) RequestPanicked() {
	if m == nil {
		return
	}
	m.CounterHandleRequestPanic.Inc()
}

// RateLimited records a write rejected by the rate limiter.
func (m *Manager) RateLimited() {
	if m == nil {
		return
	}
	m.CounterRateLimitedRequests.Inc()
}
