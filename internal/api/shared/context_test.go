package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		ctx := SetTraceID(context.Background())
		traceID := GetTraceID(ctx)

		require.NotEmpty(t, traceID)
		_, err := uuid.Parse(traceID)
		assert.NoError(t, err, "trace ID should be a valid UUID")
	})

	t.Run("each context gets its own ID", func(t *testing.T) {
		first := GetTraceID(SetTraceID(context.Background()))
		second := GetTraceID(SetTraceID(context.Background()))
		assert.NotEqual(t, first, second)
	})

	t.Run("absent trace ID is empty", func(t *testing.T) {
		assert.Empty(t, GetTraceID(context.Background()))
	})
}
