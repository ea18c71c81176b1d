package hook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts hook outcomes and intercepted calls. A nil *Metrics is a
// no-op.
type Metrics struct {
	hooks *prometheus.CounterVec
	calls *prometheus.CounterVec
}

// NewMetrics registers the hook metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		hooks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "objhook",
			Name:      "hooks_total",
			Help:      "Hook attempts by final state.",
		}, []string{"hook", "state"}),
		calls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "objhook",
			Name:      "intercepted_calls_total",
			Help:      "Calls answered by an installed replacement.",
		}, []string{"hook"}),
	}
}

func (m *Metrics) observeOutcome(hook string, s State) {
	if m == nil {
		return
	}
	m.hooks.WithLabelValues(hook, s.String()).Inc()
}

func (m *Metrics) observeCall(hook string) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(hook).Inc()
}
