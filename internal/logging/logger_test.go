package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New("development", "loud")
	require.Error(t, err)

	l, err := New("production", "warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestLogger_StampsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := zap.New(core)

	ctx := WithRequestID(context.Background(), "rid-42")
	NewLogger(ctx, base).LogError("projects.create", errors.New("boom"))
	NewLogger(context.Background(), base).LogInfof("projects.list", "fetched %d", 3)

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "rid-42", first["request_id"])
	assert.Equal(t, "projects.create", first["operation"])
	assert.Equal(t, "boom", first["error"])

	second := entries[1]
	assert.Equal(t, "fetched 3", second.Message)
	assert.Equal(t, "unknown", second.ContextMap()["request_id"])
}
