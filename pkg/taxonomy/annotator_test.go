package taxonomy

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gbcatalog/pkg/errors"
	"github.com/agentstation/gbcatalog/pkg/logging"
)

type stubLookup map[string]struct {
	result Result
	err    error
}

func (s stubLookup) Lookup(_ context.Context, name string) (Result, error) {
	entry, ok := s[name]
	if !ok {
		return Result{}, nil
	}
	return entry.result, entry.err
}

func newStubLookup() stubLookup {
	return stubLookup{
		"Halobacterium sp": {result: Result{"64091"}},
		"Sulfolobus":       {result: Result{"2284", "2287"}},
		"Offline":          {err: errors.NewFetchError("ncbi-taxonomy", "http://x", 503, "Service Unavailable")},
		"Garbled":          {err: errors.NewParseError("html", "", "blank document", nil)},
	}
}

func TestAnnotate(t *testing.T) {
	logger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), logger.Logger)

	lines := []string{
		"halSal1\tHalobacterium sp\tNRC-1",
		"sulSol1\tSulfolobus\tP2",
		"unknown1\tMystery\tx",
		"short\tline",
		"off1\tOffline\ty",
		"bad1\tGarbled\tz",
	}

	out, report, err := NewAnnotator(newStubLookup()).Annotate(ctx, lines)
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.Equal(t, "halSal1\tHalobacterium sp\tNRC-1\t64091", out[0].Line())
	assert.Equal(t, "sulSol1\tSulfolobus\tP2\t2284,2287", out[1].Line())
	assert.Equal(t, "unknown1\tMystery\tx\t", out[2].Line())

	assert.Equal(t, 6, report.Lines)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Resolved)
	assert.Equal(t, 1, report.Ambiguous)
	assert.Equal(t, 1, report.NotFound)
	assert.Equal(t, 1, report.FetchFailed)
	assert.Equal(t, 1, report.ParseFailed)
	require.Len(t, report.Failures, 2)
	assert.Equal(t, 5, report.Failures[0].Line)
	assert.Equal(t, "Garbled", report.Failures[1].Name)

	logger.AssertContains(t, "Ambiguous taxonomy lookup")
	logger.AssertContains(t, "Could not fetch lookup page")
	logger.AssertContains(t, "Could not parse lookup page")
}

func TestAnnotateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewAnnotator(newStubLookup()).Annotate(ctx, []string{"a\tb\tc"})
	assert.True(t, errors.IsCanceled(err))
}

func TestAnnotateReader(t *testing.T) {
	logging.DisableLoggingForTest(t)

	input := strings.Join([]string{
		"halSal1\tHalobacterium sp\tNRC-1",
		"",
		"off1\tOffline\ty",
		"sulSol1\tSulfolobus\tP2",
	}, "\n")

	var buf bytes.Buffer
	report, err := NewAnnotator(newStubLookup()).AnnotateReader(context.Background(), strings.NewReader(input), &buf)
	require.NoError(t, err)

	assert.Equal(t, "halSal1\tHalobacterium sp\tNRC-1\t64091\nsulSol1\tSulfolobus\tP2\t2284,2287\n", buf.String())
	assert.Equal(t, 4, report.Lines)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.FetchFailed)
}

func TestAnnotationFields(t *testing.T) {
	a := Annotation{Name: "hg19", DisplayName: "Homo sapiens", Extra: "human", TaxIDs: []string{"9606"}}
	assert.Equal(t, []string{"hg19", "Homo sapiens", "human", "9606"}, a.Fields())
}
