package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/undeniable-app/undeniable/adapters/log"
	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/result"
	"github.com/undeniable-app/undeniable/utils/helpers"
	"github.com/valyala/fasthttp"
)

// HTTPClient defines the interface for HTTP client implementations.
// It abstracts the HTTP client to support both standard and FastHTTP clients.
type HTTPClient interface {
	Get(ctx context.Context, config *Client, url string) ([]byte, int, error)
}

// stdHTTPClient implements HTTPClient using the standard net/http package.
type stdHTTPClient struct {
	client *http.Client
}

// Get executes a GET request using the standard net/http client.
func (c *stdHTTPClient) Get(ctx context.Context, config *Client, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	for key, value := range config.headers {
		req.Header.Set(key, value)
	}

	//#nosec G107
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, config.maxBodyBytes+1))
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

// fastHTTPClient implements HTTPClient using the valyala/fasthttp package.
type fastHTTPClient struct {
	client *fasthttp.Client
}

// Get executes a GET request using the FastHTTP client. fasthttp has no
// context support, so the context deadline becomes the request timeout.
func (c *fastHTTPClient) Get(ctx context.Context, config *Client, url string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	for key, value := range config.headers {
		req.Header.Set(key, value)
	}

	timeout := config.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout || timeout <= 0 {
			timeout = remaining
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	var err error
	if timeout > 0 {
		err = c.client.DoTimeout(req, resp, timeout)
	} else {
		err = c.client.Do(req, resp)
	}
	if err != nil {
		return nil, 0, err
	}

	// resp is released on return, so the body is copied out
	body := append([]byte(nil), resp.Body()...)
	return body, resp.StatusCode(), nil
}

// Client fetches remote resources with either the standard or the fasthttp transport.
type Client struct {
	log          *log.Log
	timeout      time.Duration
	headers      map[string]string
	maxBodyBytes int64
	useFastHTTP  bool
	impl         HTTPClient
}

// NewClient creates a Client configured by opts.
func NewClient(opts ...Option) *Client {
	c := &Client{
		timeout:      10 * time.Second,
		headers:      map[string]string{},
		maxBodyBytes: 5 << 20,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = log.NewBasicLogger(helpers.IsProdEnvironment())
	}
	if c.useFastHTTP {
		c.impl = &fastHTTPClient{client: &fasthttp.Client{
			ReadTimeout:         c.timeout,
			WriteTimeout:        c.timeout,
			MaxResponseBodySize: int(c.maxBodyBytes),
		}}
	} else {
		c.impl = &stdHTTPClient{client: &http.Client{Timeout: c.timeout}}
	}
	return c
}

// Transport names the transport in use, for logging.
func (c *Client) Transport() string {
	if c.useFastHTTP {
		return "fasthttp"
	}
	return "net/http"
}

// Get fetches url and returns its body. Any non 2xx status is a failure.
func (c *Client) Get(ctx context.Context, url string) result.Result[[]byte] {
	if err := helpers.ValidateURL(url); err != nil || !helpers.IsURL(url) {
		if err == nil {
			err = fmt.Errorf("unsupported scheme")
		}
		c.log.Error("invalid fetch url", log.String("url", url), log.Err(err))
		return result.NewFailure[[]byte](blame.URLValidationFailed(url, err))
	}

	start := time.Now()
	body, status, err := c.impl.Get(ctx, c, url)
	if err != nil {
		c.log.Error("fetch failed",
			log.String("url", url),
			log.String("transport", c.Transport()),
			log.Err(err),
		)
		return result.NewFailure[[]byte](blame.CreateHTTPRequestFailed(err))
	}
	if status < 200 || status > 299 {
		c.log.Error("fetch returned unexpected status", log.String("url", url), log.Int("status", status))
		return result.NewFailure[[]byte](blame.UnexpectedResponseStatus(status))
	}
	if int64(len(body)) > c.maxBodyBytes {
		return result.NewFailure[[]byte](blame.CreateHTTPRequestFailed(fmt.Errorf("response exceeds %d bytes", c.maxBodyBytes)))
	}

	c.log.Debug("fetch completed",
		log.String("url", url),
		log.String("transport", c.Transport()),
		log.Int("bytes", len(body)),
		log.Duration("elapsed", time.Since(start)),
	)
	return result.NewSuccess(&body)
}
