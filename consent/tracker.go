package consent

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/undeniable-app/undeniable/adapters/log"
	metrics "github.com/undeniable-app/undeniable/adapters/prometheus"
	"github.com/undeniable-app/undeniable/utils/constant"
)

// Event is an anonymous analytics event name.
type Event string

const (
	EventPageView        Event = "page_view"
	EventCopyContent     Event = "copy_content"
	EventOpenEmailClient Event = "open_email_client"
	EventDownloadDraft   Event = "download_draft"
)

// Tracker counts anonymous events. Only the event name and a fixed label are
// recorded; form content never is.
type Tracker struct {
	gate    Gate
	log     *log.Log
	events  *prometheus.CounterVec
	skipped *prometheus.CounterVec
}

// NewTracker registers the analytics counters on mc.
func NewTracker(gate Gate, mc *metrics.MetricsCollector, logger *log.Log) *Tracker {
	if logger == nil {
		logger = log.NewBasicLogger(false)
	}
	return &Tracker{
		gate:    gate,
		log:     logger,
		events:  mc.GetCounterVec("analytics_events_total", "Anonymous analytics events recorded with consent", []string{"event", "label"}),
		skipped: mc.GetCounterVec("analytics_events_skipped_total", "Analytics events dropped by the consent gate", []string{"event"}),
	}
}

// Gate returns the environment gate.
func (t *Tracker) Gate() Gate {
	return t.gate
}

// Track records event when the gate allows it and reports whether it did.
// label must come from a fixed set such as "to", "subject" or "body".
func (t *Tracker) Track(status Status, doNotTrack string, event Event, label string) bool {
	if !t.gate.Allowed(status, doNotTrack) {
		t.skipped.WithLabelValues(string(event)).Inc()
		return false
	}
	t.events.WithLabelValues(string(event), label).Inc()
	t.log.Debug(constant.AnalyticsRecorded, log.String("event", string(event)), log.String("label", label))
	return true
}
