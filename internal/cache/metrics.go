package cache

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the shared cache counters. One Metrics instance serves all
// cache scopes, differentiated by label.
type Metrics struct {
	requests *prometheus.CounterVec
}

// NewMetrics creates and registers the cache counters.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_requests_total",
				Help: "Cache lookups by scope and outcome (hit, miss, coalesced).",
			},
			[]string{"scope", "outcome"},
		),
	}
	if err := reg.Register(m.requests); err != nil {
		return nil, err
	}
	return m, nil
}
