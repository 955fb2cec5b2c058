package taxonomy

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gbcatalog/internal/appcontext"
	"github.com/agentstation/gbcatalog/pkg/errors"
	"github.com/agentstation/gbcatalog/pkg/taxonomy"
)

type lookupFunc func(ctx context.Context, name string) (taxonomy.Result, error)

func (f lookupFunc) Lookup(ctx context.Context, name string) (taxonomy.Result, error) {
	return f(ctx, name)
}

func newApp(format string, lookup taxonomy.Lookuper) *appcontext.Mock {
	return &appcontext.Mock{
		OutputFormatFunc: func() string { return format },
		TaxonomyFunc:     func() (taxonomy.Lookuper, error) { return lookup, nil },
	}
}

func run(t *testing.T, app appcontext.Interface, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	doc := `<em>Taxonomy ID: </em>64091<ul><li><a href="?mode=Info&id=478009">x</a></li></ul>`

	out, err := run(t, newApp("tsv", nil), doc, "resolve")
	require.NoError(t, err)
	assert.Equal(t, "64091,478009\n", out)

	out, err = run(t, newApp("json", nil), doc, "resolve")
	require.NoError(t, err)
	assert.Contains(t, out, `"ambiguous": true`)
}

func TestResolveCommandNoResult(t *testing.T) {
	doc := `<p>No result found in the Taxonomy database for complete name</p><em>Taxonomy ID: </em>1`

	out, err := run(t, newApp("tsv", nil), doc, "resolve")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestResolveCommandBlankDocument(t *testing.T) {
	_, err := run(t, newApp("tsv", nil), "  \n", "resolve")
	require.Error(t, err)
	assert.True(t, errors.IsParseFailure(err))
}

func lookupTable() taxonomy.Lookuper {
	return lookupFunc(func(_ context.Context, name string) (taxonomy.Result, error) {
		switch name {
		case "Homo sapiens":
			return taxonomy.Result{"9606"}, nil
		case "Offline":
			return nil, errors.NewFetchError("ncbi-taxonomy", "", 503, "Service Unavailable")
		default:
			return taxonomy.Result{}, nil
		}
	})
}

func TestAnnotateCommand(t *testing.T) {
	input := "hg19\tHomo sapiens\thuman\nx1\tOffline\tx\nz1\tUnknown\tz\n"

	out, err := run(t, newApp("tsv", lookupTable()), input, "annotate")
	require.NoError(t, err)
	assert.Equal(t, "hg19\tHomo sapiens\thuman\t9606\nz1\tUnknown\tz\t\n", out)
}

func TestAnnotateCommandFailOnError(t *testing.T) {
	input := "x1\tOffline\tx\n"

	_, err := run(t, newApp("tsv", lookupTable()), input, "annotate", "--fail-on-error")
	require.Error(t, err)
	assert.True(t, errors.IsFetchFailure(err))
}

func TestAnnotateCommandYAML(t *testing.T) {
	out, err := run(t, newApp("yaml", lookupTable()), "hg19\tHomo sapiens\thuman\n", "annotate")
	require.NoError(t, err)
	assert.Contains(t, out, "display_name: Homo sapiens")
	assert.Contains(t, out, "9606")
}
