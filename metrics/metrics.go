// Package metrics exports signal activity to Prometheus. A Collector is a
// signal.Hook, so it is attached with signal.WithHook.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const subsystem = "signal"

type Collector struct {
	connects    *prometheus.CounterVec
	disconnects *prometheus.CounterVec
	emits       *prometheus.CounterVec
	panics      *prometheus.CounterVec
	slots       *prometheus.GaugeVec
}

func NewCollector(namespace string) *Collector {
	labels := []string{"signal"}
	return &Collector{
		connects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "connects_total",
			Help:      "Slots connected.",
		}, labels),
		disconnects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "disconnects_total",
			Help:      "Slots disconnected, cleared or dropped after their receiver was collected.",
		}, labels),
		emits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "emits_total",
			Help:      "Emit and TryEmit calls.",
		}, labels),
		panics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "slot_panics_total",
			Help:      "Slots that panicked during an emit.",
		}, labels),
		slots: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "slots",
			Help:      "Currently connected slots.",
		}, labels),
	}
}

func (c *Collector) OnConnect(signal, _ string) {
	c.connects.WithLabelValues(signal).Inc()
	c.slots.WithLabelValues(signal).Inc()
}

func (c *Collector) OnDisconnect(signal, _ string) {
	c.disconnects.WithLabelValues(signal).Inc()
	c.slots.WithLabelValues(signal).Dec()
}

func (c *Collector) OnEmit(signal string, _ int) {
	c.emits.WithLabelValues(signal).Inc()
}

func (c *Collector) OnSlotPanic(signal, _ string, _ any) {
	c.panics.WithLabelValues(signal).Inc()
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.connects.Describe(ch)
	c.disconnects.Describe(ch)
	c.emits.Describe(ch)
	c.panics.Describe(ch)
	c.slots.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.connects.Collect(ch)
	c.disconnects.Collect(ch)
	c.emits.Collect(ch)
	c.panics.Collect(ch)
	c.slots.Collect(ch)
}

// HandlerFor returns an HTTP handler serving the metrics of registry.
func HandlerFor(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
