package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/gbcatalog/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "organism",
			ID:       "human",
		}
		assert.Equal(t, "organism with ID human not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("file", "genomes.tsv")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "line",
			Message: "expected at least 5 fields",
		}
		assert.Equal(t, "validation failed for field line: expected at least 5 fields", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "empty input"}
		assert.Equal(t, "validation failed: empty input", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file and line", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "tsv",
			File:    "hg.tsv",
			Line:    10,
			Message: "missing clade",
		}
		assert.Contains(t, err.Error(), "hg.tsv:10")
		assert.True(t, pkgerrors.IsParseFailure(err))
	})

	t.Run("format only", func(t *testing.T) {
		err := pkgerrors.NewParseError("html", "", "blank document", nil)
		assert.Equal(t, "html parse error: blank document", err.Error())
		assert.True(t, pkgerrors.IsParseFailure(err))
		assert.False(t, pkgerrors.IsFetchFailure(err))
	})

	t.Run("wrap", func(t *testing.T) {
		baseErr := errors.New("unexpected EOF")
		wrapped := pkgerrors.WrapParse("html", "lookup.html", baseErr)
		parseErr, ok := wrapped.(*pkgerrors.ParseError)
		require.True(t, ok)
		assert.Equal(t, "html", parseErr.Format)
		assert.Equal(t, baseErr, parseErr.Unwrap())
		assert.Nil(t, pkgerrors.WrapParse("html", "", nil))
	})
}

func TestFetchError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := pkgerrors.NewFetchError("ncbi-taxonomy", "https://example.org", 503, "Service Unavailable")
		assert.Contains(t, err.Error(), "ncbi-taxonomy")
		assert.Contains(t, err.Error(), "503")
		assert.True(t, pkgerrors.IsFetchFailure(err))
		assert.False(t, pkgerrors.IsParseFailure(err))
	})

	t.Run("wrap", func(t *testing.T) {
		baseErr := errors.New("connection refused")
		err := pkgerrors.WrapFetch("ncbi-taxonomy", "https://example.org", baseErr)
		assert.Contains(t, err.Error(), "connection refused")
		assert.True(t, errors.Is(err, baseErr))
		assert.True(t, pkgerrors.IsFetchFailure(err))
		assert.Nil(t, pkgerrors.WrapFetch("x", "y", nil))
	})
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("taxonomy", "endpoint must contain one %s", nil)
	assert.Contains(t, err.Error(), "taxonomy")
	assert.Contains(t, err.Error(), "endpoint")
	assert.True(t, pkgerrors.IsValidationError(err))
}

func TestIOError(t *testing.T) {
	t.Run("unwrap", func(t *testing.T) {
		baseErr := errors.New("disk full")
		err := pkgerrors.NewIOError("write", "/data/out.tsv", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())
		assert.Contains(t, err.Error(), "/data/out.tsv")
	})

	t.Run("wrap helper", func(t *testing.T) {
		err := pkgerrors.WrapIO("open", "halo.gc.txt", errors.New("no such file"))
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "open", ioErr.Operation)
		assert.Equal(t, "halo.gc.txt", ioErr.Path)
		assert.Nil(t, pkgerrors.WrapIO("read", "file", nil))
	})
}

func TestWrapValidation(t *testing.T) {
	err := pkgerrors.WrapValidation("offset", errors.New("negative"))
	assert.Contains(t, err.Error(), "offset")
	assert.True(t, pkgerrors.IsValidationError(err))
	assert.Nil(t, pkgerrors.WrapValidation("offset", nil))
}

func TestSentinelHelpers(t *testing.T) {
	assert.True(t, pkgerrors.IsTimeout(pkgerrors.ErrTimeout))
	assert.True(t, pkgerrors.IsCanceled(pkgerrors.ErrCanceled))
	assert.False(t, pkgerrors.IsNotFound(errors.New("not found")))
}
