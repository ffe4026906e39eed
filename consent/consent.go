// Package consent models the analytics consent flag and the gate that
// decides whether an anonymous analytics event may be recorded.
package consent

import "strings"

// Status is the tri-state consent value stored in the consent cookie.
type Status int

const (
	Unset Status = iota
	Accepted
	Rejected
)

func (s Status) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "unset"
	}
}

// ParseStatus reads a cookie value. Anything unrecognised is Unset.
func ParseStatus(value string) Status {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "accepted":
		return Accepted
	case "rejected":
		return Rejected
	default:
		return Unset
	}
}

// Decided reports whether the user has answered the banner.
func (s Status) Decided() bool {
	return s != Unset
}

// Gate holds the environment side of the analytics decision. It is passed
// explicitly to whatever needs it.
type Gate struct {
	Production    bool
	Enabled       bool
	MeasurementID string
}

// Configured reports whether analytics could ever run in this environment.
func (g Gate) Configured() bool {
	return g.Enabled && g.Production && strings.TrimSpace(g.MeasurementID) != ""
}

// Allowed reports whether an event may be recorded for a visitor with the
// given consent and Do-Not-Track header value.
func (g Gate) Allowed(status Status, doNotTrack string) bool {
	if !g.Configured() || status != Accepted {
		return false
	}
	return strings.TrimSpace(doNotTrack) != "1"
}
