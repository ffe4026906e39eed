package constant

import (
	"github.com/undeniable-app/undeniable/utils/types"
)

// These are headers constant for the application
const (
	RequestIDHeader = "X-Request-ID"
	DoNotTrack      = "DNT"
	ConsentCookie   = "cookie-consent-status"
)

// These are middlewares or plugin constant for the application
const (
	APIGroup        = "/api"
	MetricsEndpoint = "/metrics"
	HealthEndpoint  = "/healthz"
)

// These are protocol constants
const (
	TCP types.Protocol = "tcp"
	UDP types.Protocol = "udp"
)

// ContentType constants
const (
	ContentTypeJSON           types.ContentType = "application/json"
	ContentTypeFormURLEncoded types.ContentType = "application/x-www-form-urlencoded"
	ContentTypeTextPlain      types.ContentType = "text/plain"
	ContentTypeCSV            types.ContentType = "text/csv"
	ContentTypeRFC822         types.ContentType = "message/rfc822"
)
