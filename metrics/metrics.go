package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Execution outcomes
const (
	OutcomeOK     = "ok"
	OutcomeErrors = "errors"
	OutcomeFailed = "failed"
)

// Collector records operation executions. It implements
// prometheus.Collector so it can be registered directly.
type Collector struct {
	executions *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// New creates a collector with metrics under the namespace
func New(namespace string) *Collector {
	return &Collector{
		executions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "graphql",
				Name:      "executions_total",
				Help:      "graphql operations executed",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "graphql",
				Name:      "execution_duration_seconds",
				Help:      "graphql operation execution latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// ObserveExecution records a single execution
func (c *Collector) ObserveExecution(operation, outcome string, d time.Duration) {
	c.executions.WithLabelValues(operation, outcome).Inc()
	c.duration.WithLabelValues(operation).Observe(d.Seconds())
}

// Executions returns the executions counter
func (c *Collector) Executions() *prometheus.CounterVec {
	return c.executions
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.executions.Describe(ch)
	c.duration.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.executions.Collect(ch)
	c.duration.Collect(ch)
}
