package consent

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	metrics "github.com/undeniable-app/undeniable/adapters/prometheus"
)

func TestParseStatus(t *testing.T) {
	assert.Equal(t, Accepted, ParseStatus("accepted"))
	assert.Equal(t, Rejected, ParseStatus(" Rejected "))
	assert.Equal(t, Unset, ParseStatus(""))
	assert.Equal(t, Unset, ParseStatus("maybe"))
	assert.Equal(t, "accepted", Accepted.String())
	assert.False(t, Unset.Decided())
}

func TestGateAllowed(t *testing.T) {
	prod := Gate{Production: true, Enabled: true, MeasurementID: "G-TEST"}

	tests := []struct {
		name   string
		gate   Gate
		status Status
		dnt    string
		want   bool
	}{
		{"accepted in prod", prod, Accepted, "", true},
		{"dnt zero", prod, Accepted, "0", true},
		{"do not track", prod, Accepted, "1", false},
		{"rejected", prod, Rejected, "", false},
		{"unset", prod, Unset, "", false},
		{"not production", Gate{Enabled: true, MeasurementID: "G-TEST"}, Accepted, "", false},
		{"no measurement id", Gate{Production: true, Enabled: true}, Accepted, "", false},
		{"disabled", Gate{Production: true, MeasurementID: "G-TEST"}, Accepted, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.gate.Allowed(tt.status, tt.dnt))
		})
	}
}

func TestTrackerCounts(t *testing.T) {
	mc := metrics.NewMetricsCollector()
	tracker := NewTracker(Gate{Production: true, Enabled: true, MeasurementID: "G-TEST"}, mc, nil)

	assert.True(t, tracker.Track(Accepted, "", EventCopyContent, "body"))
	assert.True(t, tracker.Track(Accepted, "", EventCopyContent, "body"))
	assert.False(t, tracker.Track(Rejected, "", EventCopyContent, "body"))

	assert.Equal(t, 2.0, testutil.ToFloat64(tracker.events.WithLabelValues("copy_content", "body")))
	assert.Equal(t, 1.0, testutil.ToFloat64(tracker.skipped.WithLabelValues("copy_content")))
}
