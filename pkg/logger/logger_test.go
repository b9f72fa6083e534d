package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGet(t *testing.T) {
	logger1 := Get()
	require.NotNil(t, logger1)

	logger2 := Get()
	assert.Same(t, logger1, logger2)
}

func TestFromCtx(t *testing.T) {
	ctx := WithCtx(context.Background(), Get())

	assert.Same(t, Get(), FromCtx(ctx))

	customLogger := Get().With("custom", "value")
	ctxWithCustomLogger := WithCtx(ctx, customLogger)

	assert.Same(t, customLogger, FromCtx(ctxWithCustomLogger))
}

func TestFromCtxWithoutLogger(t *testing.T) {
	assert.Same(t, Get(), FromCtx(context.Background()))
}

func TestWithSameLogger(t *testing.T) {
	ctx := context.Background()
	logger := Get()

	newCtx := WithCtx(ctx, logger)

	assert.Equal(t, newCtx, WithCtx(newCtx, logger))
}

func TestNew(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(zapcore.AddSync(&buf), zapcore.InfoLevel, true)

		l.Infow("extracted", "path", "The.Matrix.1999.BluRay-GROUP.mkv")
		require.NoError(t, l.Sync())

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "extracted", entry["msg"])
		assert.Equal(t, "The.Matrix.1999.BluRay-GROUP.mkv", entry["path"])
		assert.Contains(t, entry, "timestamp")
	})

	t.Run("level filters debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(zapcore.AddSync(&buf), zapcore.InfoLevel, false)

		l.Debug("hidden")
		require.NoError(t, l.Sync())
		assert.Empty(t, buf.String())
	})
}
