// Package metrics registers the Prometheus collectors for the runtime
// scheduler and the live-view server. All record methods are nil-safe so
// instrumentation stays optional at every call site.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config configures metric registration.
type Config struct {
	// Namespace is the metrics namespace (default: "loom").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for frame duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures metric registration.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the frame-duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "loom",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

func applyOptions(opts []Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Runtime holds the scheduler and render-executor metrics. A nil *Runtime
// is valid and records nothing, so instrumentation is optional at every
// call site.
type Runtime struct {
	framesTotal    prometheus.Counter
	frameDuration  prometheus.Histogram
	rendersTotal   prometheus.Counter
	renderErrors   prometheus.Counter
	effectsTotal   prometheus.Counter
	pendingUpdates prometheus.Gauge
}

// NewRuntime registers and returns the runtime metrics.
func NewRuntime(opts ...Option) *Runtime {
	cfg := applyOptions(opts)
	factory := func(name, help string) prometheus.CounterOpts {
		return prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "runtime",
			Name:        name,
			Help:        help,
			ConstLabels: cfg.ConstLabels,
		}
	}

	m := &Runtime{
		framesTotal: prometheus.NewCounter(factory("frames_total", "Total frames flushed.")),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "runtime",
			Name:        "frame_duration_seconds",
			Help:        "Duration of frame flushes (read phase to end of write phase).",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}),
		rendersTotal: prometheus.NewCounter(factory("renders_total", "Total component renders.")),
		renderErrors: prometheus.NewCounter(factory("render_errors_total", "Total render function faults.")),
		effectsTotal: prometheus.NewCounter(factory("effects_total", "Total effect callbacks run.")),
		pendingUpdates: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "runtime",
			Name:        "pending_updates",
			Help:        "Instances currently awaiting a forced update.",
			ConstLabels: cfg.ConstLabels,
		}),
	}

	cfg.Registry.MustRegister(
		m.framesTotal, m.frameDuration, m.rendersTotal,
		m.renderErrors, m.effectsTotal, m.pendingUpdates,
	)
	return m
}

// ObserveFrame records one completed frame flush.
func (m *Runtime) ObserveFrame(d time.Duration) {
	if m == nil {
		return
	}
	m.framesTotal.Inc()
	m.frameDuration.Observe(d.Seconds())
}

// IncRender records one component render.
func (m *Runtime) IncRender() {
	if m == nil {
		return
	}
	m.rendersTotal.Inc()
}

// IncRenderError records one render fault.
func (m *Runtime) IncRenderError() {
	if m == nil {
		return
	}
	m.renderErrors.Inc()
}

// IncEffect records one effect callback run.
func (m *Runtime) IncEffect() {
	if m == nil {
		return
	}
	m.effectsTotal.Inc()
}

// SetPending records the pending-update set size.
func (m *Runtime) SetPending(n int) {
	if m == nil {
		return
	}
	m.pendingUpdates.Set(float64(n))
}

// Server holds the live-view server metrics. A nil *Server records
// nothing.
type Server struct {
	activeSessions prometheus.Gauge
	eventsTotal    prometheus.Counter
	framesSent     prometheus.Counter
}

// NewServer registers and returns the server metrics.
func NewServer(opts ...Option) *Server {
	cfg := applyOptions(opts)

	m := &Server{
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "server",
			Name:        "active_sessions",
			Help:        "Currently connected live-view sessions.",
			ConstLabels: cfg.ConstLabels,
		}),
		eventsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "server",
			Name:        "events_total",
			Help:        "Total client events dispatched.",
			ConstLabels: cfg.ConstLabels,
		}),
		framesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "server",
			Name:        "frames_sent_total",
			Help:        "Total render frames pushed to clients.",
			ConstLabels: cfg.ConstLabels,
		}),
	}

	cfg.Registry.MustRegister(m.activeSessions, m.eventsTotal, m.framesSent)
	return m
}

// SessionOpened records a new live-view session.
func (m *Server) SessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

// SessionClosed records a finished live-view session.
func (m *Server) SessionClosed() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}

// IncEvent records one dispatched client event.
func (m *Server) IncEvent() {
	if m == nil {
		return
	}
	m.eventsTotal.Inc()
}

// IncFrameSent records one render frame pushed to a client.
func (m *Server) IncFrameSent() {
	if m == nil {
		return
	}
	m.framesSent.Inc()
}
