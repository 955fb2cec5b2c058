// Package transport performs the single HTTP fetch behind each taxonomy
// lookup. It never retries; failures are returned as *errors.FetchError so
// callers can continue with the next record.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/agentstation/gbcatalog/pkg/constants"
	"github.com/agentstation/gbcatalog/pkg/errors"
	"github.com/agentstation/gbcatalog/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client fetches documents over HTTP.
type Client struct {
	http      *http.Client
	source    string
	userAgent string
	maxBytes  int64
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithSource names the remote service in errors and logs.
func WithSource(source string) Option {
	return func(c *Client) {
		if source != "" {
			c.source = source
		}
	}
}

// WithMaxBytes caps how many response bytes are read.
func WithMaxBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// New creates a new transport client.
func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: DefaultHTTPTimeout},
		source:    constants.TaxonomySourceName,
		userAgent: constants.DefaultUserAgent,
		maxBytes:  constants.MaxDocumentSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request with the client's headers applied.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapFetch(c.source, url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapFetch(c.source, url, err)
	}
	return resp, nil
}

// Fetch retrieves url and returns the response body. Anything other than
// 200 OK is a fetch failure.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	resp, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewFetchError(c.source, url, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, errors.WrapFetch(c.source, url, err)
	}
	if int64(len(body)) > c.maxBytes {
		return nil, errors.NewFetchError(c.source, url, resp.StatusCode,
			fmt.Sprintf("response exceeds %d bytes", c.maxBytes))
	}

	logger.Debug().
		Str("url", url).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("Fetched document")
	return body, nil
}

// Close releases idle keep-alive connections.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}
