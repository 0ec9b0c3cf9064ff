package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "roulette"

// Metrics Счетчики игровой сессии
type Metrics struct {
	Spins       *prometheus.CounterVec
	BetsSkipped *prometheus.CounterVec
	Balance     prometheus.Gauge
	Undo        prometheus.Counter
	Resets      prometheus.Counter
	Archived    prometheus.Counter
}

// New регистрирует коллекторы в reg. В тестах передается отдельный prometheus.NewRegistry()
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Spins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spins_total",
			Help:      "Recorded spins by outcome (win, loss, even).",
		}, []string{"outcome"}),
		BetsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bets_skipped_total",
			Help:      "Sector bets left out because the stake exceeded the table limit.",
		}, []string{"sector"}),
		Balance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "balance",
			Help:      "Current session balance.",
		}),
		Undo: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "undo_total",
			Help:      "Spins removed by undo.",
		}),
		Resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Session resets.",
		}),
		Archived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_archived_total",
			Help:      "Sessions written to the archive.",
		}),
	}

	reg.MustRegister(m.Spins, m.BetsSkipped, m.Balance, m.Undo, m.Resets, m.Archived)
	return m
}

// Handler отдает /metrics для заданного реестра
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
