package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/gbcatalog/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("FromContext falls back to default", func(t *testing.T) {
		assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
		//nolint:staticcheck // nil context is handled explicitly
		assert.Equal(t, logging.Default(), logging.FromContext(nil))
	})

	t.Run("WithLogger nil uses default", func(t *testing.T) {
		ctx := logging.WithLogger(context.Background(), nil)
		assert.Equal(t, logging.Default(), logging.Ctx(ctx))
	})

	t.Run("WithFields adds every field", func(t *testing.T) {
		testLogger := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), testLogger.Logger)
		ctx = logging.WithFields(ctx, map[string]any{
			"kept":    3,
			"dropped": uint64(2),
			"taxids":  []string{"111", "222"},
		})
		ctx = logging.WithOperation(ctx, "reconcile")

		logging.FromContext(ctx).Info().Msg("done")

		testLogger.AssertContains(t, `"kept":3`)
		testLogger.AssertContains(t, `"dropped":2`)
		testLogger.AssertContains(t, `"taxids":["111","222"]`)
		testLogger.AssertContains(t, `"operation":"reconcile"`)
	})

	t.Run("WithError", func(t *testing.T) {
		testLogger := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), testLogger.Logger)

		assert.Equal(t, ctx, logging.WithError(ctx, nil))

		ctx = logging.WithError(ctx, errors.New("connection refused"))
		logging.FromContext(ctx).Error().Msg("lookup failed")
		testLogger.AssertContains(t, `"error":"connection refused"`)
	})
}
