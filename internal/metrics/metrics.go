// Package metrics exposes Prometheus counters for tournament activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "truco"

type Metrics struct {
	registry *prometheus.Registry

	draws          *prometheus.CounterVec
	scoreUpdates   *prometheus.CounterVec
	restores       prometheus.Counter
	matchesCreated prometheus.Counter
	openSessions   prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draws_total",
			Help:      "Team draws performed, by mode.",
		}, []string{"mode"}),
		scoreUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_updates_total",
			Help:      "Score changes persisted, by kind.",
		}, []string{"kind"}),
		restores: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_restores_total",
			Help:      "Scores restored from history.",
		}),
		matchesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_created_total",
			Help:      "Matches created.",
		}),
		openSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scoring_sessions",
			Help:      "Scoring sessions currently tracking a match.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.draws,
		m.scoreUpdates,
		m.restores,
		m.matchesCreated,
		m.openSessions,
	)
	return m
}

// Nil receivers are allowed so components can run without metrics.

func (m *Metrics) Draw(mode string) {
	if m == nil {
		return
	}
	m.draws.WithLabelValues(mode).Inc()
}

func (m *Metrics) ScoreUpdate(kind string) {
	if m == nil {
		return
	}
	m.scoreUpdates.WithLabelValues(kind).Inc()
}

func (m *Metrics) Restore() {
	if m == nil {
		return
	}
	m.restores.Inc()
}

func (m *Metrics) MatchCreated() {
	if m == nil {
		return
	}
	m.matchesCreated.Inc()
}

func (m *Metrics) SessionsOpen(n int) {
	if m == nil {
		return
	}
	m.openSessions.Set(float64(n))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
