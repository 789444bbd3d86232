package routes

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts rendered cards. A nil *Metrics records nothing.
type Metrics struct {
	cardsRendered  *prometheus.CounterVec
	renderFailures *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cardsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gamecard",
			Name:      "cards_rendered_total",
			Help:      "Game cards rendered, by sport and view variant.",
		}, []string{"sport", "variant"}),
		renderFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gamecard",
			Name:      "card_failures_total",
			Help:      "Card requests that failed, by response code.",
		}, []string{"code"}),
		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gamecard",
			Name:      "card_build_seconds",
			Help:      "Time to build a card from an already loaded game.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"sport"}),
	}

	reg.MustRegister(m.cardsRendered, m.renderFailures, m.renderDuration)

	return m
}

func (m *Metrics) ObserveCard(sport, variant string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.cardsRendered.WithLabelValues(sport, variant).Inc()
	m.renderDuration.WithLabelValues(sport).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveFailure(code string) {
	if m == nil {
		return
	}

	m.renderFailures.WithLabelValues(code).Inc()
}
