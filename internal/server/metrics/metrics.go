// Package metrics collects Prometheus metrics for the server and exposes
// them, together with a health check, over HTTP.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector records RPC traffic, sign-in outcomes and open user streams.
type Collector struct {
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	signIns   *prometheus.CounterVec
	throttled prometheus.Counter
	watchers  prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "railticket_rpc_requests_total",
			Help: "RPCs handled, by method and status code.",
		}, []string{"method", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "railticket_rpc_duration_seconds",
			Help:    "RPC handling time, by method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		signIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "railticket_sign_in_total",
			Help: "Sign-in attempts, by outcome.",
		}, []string{"outcome"}),
		throttled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "railticket_sign_in_throttled_total",
			Help: "Sign-in attempts rejected by the rate limiter.",
		}),
		watchers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "railticket_user_watchers",
			Help: "Open WatchUser streams.",
		}),
	}

	reg.MustRegister(c.requests, c.latency, c.signIns, c.throttled, c.watchers)

	return c
}

func (c *Collector) RecordRequest(method, code string, d time.Duration) {
	c.requests.WithLabelValues(method, code).Inc()
	c.latency.WithLabelValues(method).Observe(d.Seconds())
}

func (c *Collector) RecordSignIn(outcome string) {
	c.signIns.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordThrottled() {
	c.throttled.Inc()
}

func (c *Collector) WatchStarted() { c.watchers.Inc() }
func (c *Collector) WatchEnded()   { c.watchers.Dec() }
