package http

import (
	"time"

	"github.com/undeniable-app/undeniable/adapters/log"
)

// Option defines a functional option for configuring the HTTP client
type Option func(*Client)

// WithLogger sets the logger
func WithLogger(l *log.Log) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithHeader sets a custom header
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithTimeout sets a timeout
func WithTimeout(duration time.Duration) Option {
	return func(c *Client) {
		if duration > 0 {
			c.timeout = duration
		}
	}
}

// WithMaxBodyBytes caps the accepted response size
func WithMaxBodyBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

// WithFastHTTP switches the transport to fasthttp
func WithFastHTTP(enabled bool) Option {
	return func(c *Client) {
		c.useFastHTTP = enabled
	}
}
