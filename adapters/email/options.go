package email

import (
	"time"

	"github.com/undeniable-app/undeniable/adapters/log"
)

// BuilderOptions holds the configuration for the draft builder
type BuilderOptions struct {
	log    *log.Log
	now    func() time.Time
	unsent bool
}

type Option func(*BuilderOptions)

// WithLog sets the log for the draft builder
func WithLog(log *log.Log) Option {
	return func(o *BuilderOptions) {
		o.log = log
	}
}

// WithClock sets the clock used for the Date header
func WithClock(now func() time.Time) Option {
	return func(o *BuilderOptions) {
		o.now = now
	}
}

// WithUnsentHeader controls the X-Unsent header, which makes Outlook and
// several other clients open the file as an editable draft.
func WithUnsentHeader(on bool) Option {
	return func(o *BuilderOptions) {
		o.unsent = on
	}
}
