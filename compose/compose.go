// Package compose assembles the generated appeal email from form values and
// the company directory.
package compose

import (
	"github.com/undeniable-app/undeniable/adapters/log"
	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/directory"
	"github.com/undeniable-app/undeniable/form"
	"github.com/undeniable-app/undeniable/letter"
	"github.com/undeniable-app/undeniable/resolver"
	"github.com/undeniable-app/undeniable/utils/cache/lruCache"
	"github.com/undeniable-app/undeniable/utils/types"
)

// GeneratedEmail is the {to, subject, body} triple plus an optional notice
// when the address could not be resolved.
type GeneratedEmail struct {
	To        string          `json:"to" yaml:"to"`
	Subject   string          `json:"subject" yaml:"subject"`
	Body      string          `json:"body" yaml:"body"`
	Error     string          `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorCode types.ErrorCode `json:"error_code,omitempty" yaml:"error_code,omitempty"`
	Err       blame.Blame     `json:"-" yaml:"-"`
}

// DisplayTo is the address as shown to the user, a placeholder when empty.
func (e GeneratedEmail) DisplayTo() string {
	if e.To == "" {
		return letter.PlaceholderEmailAddress
	}
	return e.To
}

// Field returns the copyable text of f.
func (e GeneratedEmail) Field(f CopyField) string {
	switch f {
	case CopyTo:
		return e.DisplayTo()
	case CopySubject:
		return e.Subject
	case CopyBody:
		return e.Body
	}
	return ""
}

// ComputeEmail derives the generated email. It is pure: the same values and
// directory always give the same result. Values are sanitized again here;
// sanitizing is idempotent.
func ComputeEmail(values form.Values, dir *directory.Directory) GeneratedEmail {
	values = values.Sanitized()
	resolution := resolver.Resolve(values.InsuranceCompany, dir)

	email := GeneratedEmail{
		To:      resolution.Address,
		Subject: letter.RenderSubject(values.ClaimNumber),
		Body:    letter.RenderBody(values.Letter()),
	}
	if resolution.Err != nil {
		email.Err = resolution.Err
		email.Error = resolution.Message()
		email.ErrorCode = resolution.Err.FetchErrCode()
	}
	return email
}

type memoKey struct {
	values form.Values
	dir    *directory.Directory
}

// Composer memoizes ComputeEmail on (values, directory identity).
type Composer struct {
	cache *lruCache.LRUCache[memoKey, GeneratedEmail]
	log   *log.Log
}

// NewComposer returns a Composer holding up to size results.
func NewComposer(size int, logger *log.Log) (*Composer, error) {
	if logger == nil {
		logger = log.NewBasicLogger(false)
	}
	if size <= 0 {
		size = 256
	}
	cache, err := lruCache.NewLRUCache[memoKey, GeneratedEmail](size)
	if err != nil {
		return nil, err
	}
	return &Composer{cache: cache, log: logger}, nil
}

// Compute returns the generated email and whether it came from the cache.
func (c *Composer) Compute(values form.Values, dir *directory.Directory) (GeneratedEmail, bool) {
	key := memoKey{values: values.Sanitized(), dir: dir}
	email, cached := c.cache.GetOrLoad(key, func() GeneratedEmail {
		return ComputeEmail(key.values, dir)
	})
	c.log.Debug("email computed", log.Bool("cached", cached), log.Bool("resolved", email.To != ""))
	return email, cached
}

// Purge drops every memoized result.
func (c *Composer) Purge() {
	c.cache.Purge()
}

func (c *Composer) Len() int {
	return c.cache.Len()
}
