package taxonomy

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/agentstation/gbcatalog/pkg/constants"
	"github.com/agentstation/gbcatalog/pkg/errors"
	"github.com/agentstation/gbcatalog/pkg/logging"
)

// Fetcher retrieves the raw lookup document for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Lookuper resolves an organism name to taxonomy candidates.
type Lookuper interface {
	Lookup(ctx context.Context, name string) (Result, error)
}

// Client looks organism names up against a taxonomy endpoint.
type Client struct {
	endpoint string
	fetcher  Fetcher
	resolver *Resolver
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithResolver replaces the default Resolver.
func WithResolver(r *Resolver) ClientOption {
	return func(c *Client) {
		if r != nil {
			c.resolver = r
		}
	}
}

// NewClient creates a Client for endpoint, a URL template whose single %s
// receives the encoded name query (name=...).
func NewClient(endpoint string, fetcher Fetcher, opts ...ClientOption) (*Client, error) {
	if err := ValidateEndpoint(endpoint); err != nil {
		return nil, err
	}
	if fetcher == nil {
		return nil, errors.NewConfigError("taxonomy", "fetcher is required", nil)
	}

	c := &Client{
		endpoint: endpoint,
		fetcher:  fetcher,
		resolver: NewResolver(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ValidateEndpoint checks that endpoint has exactly one %s placeholder.
// Any other % must begin a percent-encoded byte such as %20.
func ValidateEndpoint(endpoint string) error {
	if endpoint == "" {
		return errors.NewConfigError("taxonomy", "endpoint template is empty", nil)
	}
	placeholders := 0
	for i := 0; i < len(endpoint); i++ {
		if endpoint[i] != '%' {
			continue
		}
		switch {
		case i+1 < len(endpoint) && endpoint[i+1] == 's':
			placeholders++
			i++
		case i+2 < len(endpoint) && isHex(endpoint[i+1]) && isHex(endpoint[i+2]):
			i += 2
		default:
			return errors.NewConfigError("taxonomy",
				fmt.Sprintf("endpoint template %q has a stray %% at offset %d", endpoint, i), nil)
		}
	}
	if placeholders != 1 {
		return errors.NewConfigError("taxonomy",
			fmt.Sprintf("endpoint template %q must contain exactly one %%s", endpoint), nil)
	}
	return nil
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// URL builds the lookup URL for name.
func (c *Client) URL(name string) string {
	query := url.Values{"name": {name}}.Encode()
	return strings.Replace(c.endpoint, "%s", query, 1)
}

// Lookup fetches the document for name once and resolves it. Fetch failures
// and parse failures are returned as distinct error types.
func (c *Client) Lookup(ctx context.Context, name string) (Result, error) {
	lookupURL := c.URL(name)

	body, err := c.fetcher.Fetch(ctx, lookupURL)
	if err != nil {
		if !errors.IsFetchFailure(err) {
			err = errors.WrapFetch(constants.TaxonomySourceName, lookupURL, err)
		}
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.NewParseError("html", lookupURL, "empty response", nil)
	}

	result, err := c.resolver.ResolveReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("organism", name).
		Strs("taxids", result.Strings()).
		Msg("Resolved taxonomy lookup")
	return result, nil
}
