package tracker

import "github.com/prometheus/client_golang/prometheus"

// metrics holds the cache's Prometheus counters. A nil *metrics disables
// recording, so call sites never nil-check.
type metrics struct {
	hits     prometheus.Counter
	misses   prometheus.Counter
	failures prometheus.Counter
}

// WithMetrics registers hit/miss/creation-failure counters with reg and
// enables recording on the cache.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Cache) {
		m := &metrics{
			hits: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "platformkit",
				Subsystem: "tracker",
				Name:      "cache_hits_total",
				Help:      "Number of lookups served by an existing tracking handle.",
			}),
			misses: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "platformkit",
				Subsystem: "tracker",
				Name:      "cache_misses_total",
				Help:      "Number of lookups that required creating a tracking handle.",
			}),
			failures: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "platformkit",
				Subsystem: "tracker",
				Name:      "cache_creation_failures_total",
				Help:      "Number of tracking handle creations that failed.",
			}),
		}
		reg.MustRegister(m.hits, m.misses, m.failures)
		c.metrics = m
	}
}

func (m *metrics) hit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *metrics) miss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *metrics) failure() {
	if m != nil {
		m.failures.Inc()
	}
}
