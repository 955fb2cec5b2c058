package taxonomy

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gbcatalog/internal/transport"
	"github.com/agentstation/gbcatalog/pkg/constants"
	"github.com/agentstation/gbcatalog/pkg/errors"
)

type fetchFunc func(ctx context.Context, url string) ([]byte, error)

func (f fetchFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

func TestValidateEndpoint(t *testing.T) {
	assert.NoError(t, ValidateEndpoint(constants.DefaultTaxonomyEndpoint))
	assert.NoError(t, ValidateEndpoint("http://localhost/lookup?%s"))
	assert.NoError(t, ValidateEndpoint("http://x/?term=a%20b&%s"))
	assert.NoError(t, ValidateEndpoint("http://x/?a=%2F%2f&%s"))

	for _, endpoint := range []string{"", "http://localhost/lookup", "http://x/?%s&%s", "http://x/?%d", "http://x/?a=%2&%s", "http://x/?%%s", "http://x/?%s%"} {
		err := ValidateEndpoint(endpoint)
		assert.Error(t, err, endpoint)
		assert.True(t, errors.IsValidationError(err), endpoint)
	}
}

func TestClientURL(t *testing.T) {
	c, err := NewClient("http://example.org/wwwtax.cgi?mode=Undef&%s", fetchFunc(nil))
	require.NoError(t, err)

	assert.Equal(t, "http://example.org/wwwtax.cgi?mode=Undef&name=Halobacterium+sp.+NRC-1", c.URL("Halobacterium sp. NRC-1"))
	assert.Equal(t, "http://example.org/wwwtax.cgi?mode=Undef&name=a%26b%3Dc", c.URL("a&b=c"))
}

func TestClientURLKeepsEncodedParameters(t *testing.T) {
	c, err := NewClient("http://example.org/esearch?term=a%20b&%s", fetchFunc(nil))
	require.NoError(t, err)

	assert.Equal(t, "http://example.org/esearch?term=a%20b&name=Homo+sapiens", c.URL("Homo sapiens"))
}

func TestNewClientRequiresFetcher(t *testing.T) {
	_, err := NewClient("http://x/?%s", nil)
	assert.Error(t, err)
}

func TestClientLookup(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch r.URL.Query().Get("name") {
		case "Homo sapiens":
			fmt.Fprint(w, `<html><body><em>Taxonomy ID: </em>9606</body></html>`)
		case "Nothing":
			fmt.Fprint(w, `<p>No result found in the Taxonomy database for complete name</p>`)
		case "Broken":
			w.WriteHeader(http.StatusBadGateway)
		default:
			fmt.Fprint(w, "   ")
		}
	}))
	defer server.Close()

	c, err := NewClient(server.URL+"/wwwtax.cgi?%s", transport.New())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		result, err := c.Lookup(ctx, "Homo sapiens")
		require.NoError(t, err)
		assert.Equal(t, []string{"9606"}, result.Strings())
	})

	t.Run("confirmed negative", func(t *testing.T) {
		result, err := c.Lookup(ctx, "Nothing")
		require.NoError(t, err)
		assert.False(t, result.Found())
	})

	t.Run("fetch failure", func(t *testing.T) {
		before := calls.Load()
		_, err := c.Lookup(ctx, "Broken")
		require.Error(t, err)
		assert.True(t, errors.IsFetchFailure(err))
		assert.False(t, errors.IsParseFailure(err))
		assert.Equal(t, before+1, calls.Load())
	})

	t.Run("parse failure", func(t *testing.T) {
		_, err := c.Lookup(ctx, "Blank")
		require.Error(t, err)
		assert.True(t, errors.IsParseFailure(err))
		assert.False(t, errors.IsFetchFailure(err))
	})
}

func TestClientLookupWrapsPlainFetchErrors(t *testing.T) {
	fetcher := fetchFunc(func(context.Context, string) ([]byte, error) {
		return nil, fmt.Errorf("dial tcp: connection refused")
	})
	c, err := NewClient("http://x/?%s", fetcher)
	require.NoError(t, err)

	_, err = c.Lookup(context.Background(), "Mus musculus")
	require.Error(t, err)
	assert.True(t, errors.IsFetchFailure(err))
	assert.True(t, strings.Contains(err.Error(), "connection refused"))
}

func TestClientWithResolver(t *testing.T) {
	fetcher := fetchFunc(func(context.Context, string) ([]byte, error) {
		return []byte(`<b>TaxID</b><em>TaxID</em>77`), nil
	})
	c, err := NewClient("http://x/?%s", fetcher, WithResolver(NewResolver(WithLabel("TaxID"))))
	require.NoError(t, err)

	result, err := c.Lookup(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "77", result.Join(","))
}
