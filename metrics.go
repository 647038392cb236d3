package redpool

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	name               string
	registerer         prometheus.Registerer
	registered         []prometheus.Collector
	borrowDuration     prometheus.Histogram
	commands           *prometheus.CounterVec
	repliesOutstanding prometheus.Gauge
	poolCollectors     []prometheus.Collector
}

const (
	resultSuccess     = "success"
	resultServerError = "server_error"
	resultFailure     = "failure"
)

// Metrics are always collected; they are only exported when a
// registerer is configured via WithMetrics.
func newMetrics(name string, pool Pool) *metrics {
	labels := prometheus.Labels{"client": name}

	m := &metrics{
		name: name,
		borrowDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "redpool_borrow_duration_seconds",
			Help:        "Time spent waiting for a connection from the pool.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "redpool_commands_total",
			Help:        "Commands dispatched, by result.",
			ConstLabels: labels,
		}, []string{"result"}),
		repliesOutstanding: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "redpool_replies_outstanding",
			Help:        "Replies handed to callers which have not been closed.",
			ConstLabels: labels,
		}),
	}

	stat := func(metric, help string, f func(PoolStats) int) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        metric,
			Help:        help,
			ConstLabels: labels,
		}, func() float64 { return float64(f(pool.Stats())) })
	}

	m.poolCollectors = []prometheus.Collector{
		stat("redpool_pool_capacity", "Maximum number of connections in the pool.", func(s PoolStats) int { return s.Capacity }),
		stat("redpool_pool_idle", "Live connections waiting in the pool.", func(s PoolStats) int { return s.Idle }),
		stat("redpool_pool_in_use", "Connections currently checked out.", func(s PoolStats) int { return s.InUse }),
	}

	return m
}

// Collectors are registered for the lifetime of one client and removed
// again by unregister. A live client with the same name on the same
// registerer is reported as an error instead of being shared.
func (m *metrics) register(registerer prometheus.Registerer) error {
	if registerer == nil {
		return nil
	}

	collectors := append([]prometheus.Collector{
		m.borrowDuration,
		m.commands,
		m.repliesOutstanding,
	}, m.poolCollectors...)

	for _, collector := range collectors {
		if err := registerer.Register(collector); err != nil {
			m.unregister()

			are := prometheus.AlreadyRegisteredError{}
			if errors.As(err, &are) {
				return fmt.Errorf("metrics of client %q are already registered by a live client: %w", m.name, err)
			}

			return err
		}

		m.registerer = registerer
		m.registered = append(m.registered, collector)
	}

	return nil
}

func (m *metrics) unregister() {
	for _, collector := range m.registered {
		m.registerer.Unregister(collector)
	}

	m.registered = nil
}

func (m *metrics) observeCommand(result string) {
	m.commands.WithLabelValues(result).Inc()
}
