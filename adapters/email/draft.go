// Package email renders RFC 5322 drafts. It never dials a mail server.
package email

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/undeniable-app/undeniable/adapters/log"
	gomail "gopkg.in/mail.v2"
)

// DraftBuilder writes a message that a mail client can open and send.
type DraftBuilder interface {
	WriteDraft(w io.Writer, data *DraftData) (int64, error)
	Build(data *DraftData) ([]byte, error)
}

type GomailDraftBuilder struct {
	opts BuilderOptions
}

// NewGomailDraftBuilder creates a draft builder backed by gopkg.in/mail.v2
// @param opts: The options for the builder
// @return: The draft builder
func NewGomailDraftBuilder(opts ...Option) DraftBuilder {
	o := &BuilderOptions{
		now:    time.Now,
		unsent: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = log.NewBasicLogger(false)
	}
	return &GomailDraftBuilder{opts: *o}
}

func (b *GomailDraftBuilder) message(data *DraftData) *gomail.Message {
	m := gomail.NewMessage()
	if data.From != "" {
		m.SetHeader("From", data.From)
	}
	if to := data.recipients(); len(to) > 0 {
		m.SetHeader("To", to...)
	}
	m.SetHeader("Subject", data.Subject)
	m.SetDateHeader("Date", b.opts.now())
	if b.opts.unsent {
		m.SetHeader("X-Unsent", "1")
	}
	for k, v := range data.Headers {
		m.SetHeader(k, v)
	}
	m.SetBody("text/plain", data.TextBody)
	return m
}

// WriteDraft writes the encoded message to w
func (b *GomailDraftBuilder) WriteDraft(w io.Writer, data *DraftData) (int64, error) {
	if data == nil {
		return 0, fmt.Errorf("draft data is required")
	}
	n, err := b.message(data).WriteTo(w)
	if err != nil {
		b.opts.log.Error("failed to write draft", log.Err(err))
		return n, fmt.Errorf("failed to write draft: %w", err)
	}
	b.opts.log.Debug("draft written", log.Int64("bytes", n), log.Int("recipients", len(data.recipients())))
	return n, nil
}

// Build returns the encoded message
func (b *GomailDraftBuilder) Build(data *DraftData) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := b.WriteDraft(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
