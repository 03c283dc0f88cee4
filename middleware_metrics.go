package injectable

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "injectable"

// MetricsMiddleware exports container activity as Prometheus counters:
//
//	injectable_resolutions_total{container,source}
//	injectable_override_mismatches_total{container}
//	injectable_registrations_total{container,op}
//	injectable_resets_total{container}
type MetricsMiddleware struct {
	resolutions   *prometheus.CounterVec
	mismatches    prometheus.Counter
	registrations *prometheus.CounterVec
	resets        prometheus.Counter
}

// NewMetricsMiddleware creates the counters, labelled with the container
// name, and registers them with reg.
func NewMetricsMiddleware(reg prometheus.Registerer, container string) (*MetricsMiddleware, error) {
	labels := prometheus.Labels{"container": container}

	m := &MetricsMiddleware{
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "resolutions_total",
			Help:        "Service resolutions by the source that produced the instance.",
			ConstLabels: labels,
		}, []string{"source"}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "override_mismatches_total",
			Help:        "Overrides ignored because their value did not match the declared type.",
			ConstLabels: labels,
		}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "registrations_total",
			Help:        "Override registrations and removals.",
			ConstLabels: labels,
		}, []string{"op"}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "resets_total",
			Help:        "Container resets.",
			ConstLabels: labels,
		}),
	}

	for _, collector := range []prometheus.Collector{m.resolutions, m.mismatches, m.registrations, m.resets} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// OnRegister implements Middleware.
func (m *MetricsMiddleware) OnRegister(Key) {
	m.registrations.WithLabelValues("register").Inc()
}

// OnUnregister implements Middleware.
func (m *MetricsMiddleware) OnUnregister(Key) {
	m.registrations.WithLabelValues("unregister").Inc()
}

// OnReset implements Middleware.
func (m *MetricsMiddleware) OnReset() {
	m.resets.Inc()
}

// OnResolve implements Middleware.
func (m *MetricsMiddleware) OnResolve(event ResolveEvent) {
	m.resolutions.WithLabelValues(string(event.Source)).Inc()
	if event.Err != nil {
		m.mismatches.Inc()
	}
}
