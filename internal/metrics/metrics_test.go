package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New()
	m.Draw("form_teams")
	m.Draw("form_teams")
	m.Draw("exclude_subset")
	m.ScoreUpdate("points")
	m.Restore()
	m.MatchCreated()
	m.SessionsOpen(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.draws.WithLabelValues("form_teams")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.draws.WithLabelValues("exclude_subset")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.scoreUpdates.WithLabelValues("points")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.restores))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.matchesCreated))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.openSessions))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Draw("form_teams")
		m.ScoreUpdate("points")
		m.Restore()
		m.MatchCreated()
		m.SessionsOpen(1)
	})
}
