package local

import (
	stderrors "errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	publishes      *prometheus.CounterVec
	copies         *prometheus.CounterVec
	advertisements prometheus.Gauge
	subscriptions  prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		publishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orb",
			Name:      "publish_total",
			Help:      "Samples published, including the sample carried by an advertisement.",
		}, []string{"topic"}),
		copies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orb",
			Name:      "copy_total",
			Help:      "Samples copied out by subscribers.",
		}, []string{"topic"}),
		advertisements: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "orb",
			Name:      "advertisements",
			Help:      "Live publication handles.",
		}),
		subscriptions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "orb",
			Name:      "subscriptions",
			Help:      "Live subscription handles.",
		}),
	}
	if reg == nil {
		return m
	}

	m.publishes = register(reg, m.publishes)
	m.copies = register(reg, m.copies)
	m.advertisements = register(reg, m.advertisements)
	m.subscriptions = register(reg, m.subscriptions)
	return m
}

// register registers c, or returns the collector already registered under
// the same descriptor so several buses can share one registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if stderrors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}
