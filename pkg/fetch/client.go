package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordstack/pkg/buildinfo"
	"github.com/matzehuels/wordstack/pkg/errors"
	"github.com/matzehuels/wordstack/pkg/histogram"
	"github.com/matzehuels/wordstack/pkg/httputil"
	"github.com/matzehuels/wordstack/pkg/observability"
)

// Defaults for [Client].
const (
	DefaultEndpoint = "http://localhost:8080/path/words"
	DefaultTimeout  = 30 * time.Second

	// MaxResponseBytes bounds the size of a response body.
	MaxResponseBytes = 64 << 20
)

// Client fetches word frequencies from an HTTP word-count service.
// A Client is safe for concurrent use once constructed.
type Client struct {
	endpoint string
	http     *http.Client
	timeout  time.Duration
	headers  map[string]string
	logger   *log.Logger
	attempts int
	delay    time.Duration
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request attempt. Zero or negative disables the
// per-attempt deadline; the caller's context still applies.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHeaders adds headers to every request.
func WithHeaders(h map[string]string) Option {
	return func(c *Client) { maps.Copy(c.headers, h) }
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRetry sets the number of attempts and the initial backoff delay.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.attempts = max(attempts, 1)
		c.delay = delay
	}
}

// NewClient creates a Client posting to endpoint. An empty endpoint selects
// [DefaultEndpoint]. The endpoint must be an absolute http or https URL.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if err := errors.ValidateURL(endpoint); err != nil {
		return nil, err
	}

	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{},
		timeout:  DefaultTimeout,
		headers:  map[string]string{},
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
		attempts: httputil.DefaultAttempts,
		delay:    httputil.DefaultDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string { return c.endpoint }

// String describes the client for log output.
func (c *Client) String() string { return fmt.Sprintf("http(%s)", c.endpoint) }

var _ Fetcher = (*Client)(nil)

// Fetch posts path to the service and returns the counts it reports, in
// the order the service wrote them.
func (c *Client) Fetch(ctx context.Context, path string) (histogram.Frequencies, error) {
	if err := errors.ValidateRequestPath(path); err != nil {
		return nil, err
	}
	body, err := json.Marshal(NewRequest(path))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode request")
	}

	var words histogram.Frequencies
	err = httputil.Retry(ctx, c.attempts, c.delay, func() error {
		data, err := c.post(ctx, body)
		if err != nil {
			if httputil.IsRetryable(err) {
				c.logger.Warn("request failed, retrying", "endpoint", c.endpoint, "error", err)
			}
			return err
		}
		var resp Response
		if err := json.Unmarshal(data, &resp); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed response from %s", c.endpoint)
		}
		words, err = resp.Words()
		if err != nil {
			if errors.GetCode(err) == errors.ErrCodeInvalidInput {
				return err
			}
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed response from %s", c.endpoint)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched word counts", "path", path, "words", len(words))
	return words, nil
}

func (c *Client) post(ctx context.Context, body []byte) ([]byte, error) {
	reqCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", buildinfo.UserAgent())
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	host, urlPath := hostAndPath(req.URL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, urlPath)
	c.logger.Debug("posting path", "endpoint", c.endpoint)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, urlPath, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if reqCtx.Err() == context.DeadlineExceeded {
			return nil, httputil.Retryable(errors.Wrap(errors.ErrCodeTimeout, err, "no response from %s within %s", c.endpoint, c.timeout))
		}
		return nil, httputil.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "request to %s failed", c.endpoint))
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, urlPath, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode, c.endpoint); err != nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return nil, httputil.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "read response from %s", c.endpoint))
	}
	if len(data) > MaxResponseBytes {
		return nil, errors.New(errors.ErrCodeInvalidInput, "response from %s exceeds %d bytes", c.endpoint, MaxResponseBytes)
	}
	return data, nil
}

func checkStatus(code int, endpoint string) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "%s: status %d", endpoint, code)
	case httputil.RetryableStatus(code):
		return httputil.Retryable(errors.New(errors.ErrCodeNetwork, "%s: status %d", endpoint, code))
	default:
		return errors.New(errors.ErrCodeNetwork, "%s: status %d", endpoint, code)
	}
}

func hostAndPath(u *url.URL) (string, string) {
	if u == nil {
		return "", ""
	}
	return u.Host, u.EscapedPath()
}
