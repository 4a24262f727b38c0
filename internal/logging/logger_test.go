package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	prev := globalLogger
	t.Cleanup(func() { globalLogger = prev })

	core, logs := observer.New(level)
	SetLogger(zap.New(core))
	return logs
}

func TestInit_RejectsUnknownLevel(t *testing.T) {
	prev := globalLogger
	t.Cleanup(func() { globalLogger = prev })

	err := Init(Options{Env: "production", Level: "chatty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chatty")
}

func TestInit_Presets(t *testing.T) {
	prev := globalLogger
	t.Cleanup(func() { globalLogger = prev })

	require.NoError(t, Init(Options{Env: "production"}))
	assert.False(t, GetLogger().Desugar().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init(Options{Env: "development"}))
	assert.True(t, GetLogger().Desugar().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init(Options{Env: "development", Level: "warn"}))
	assert.False(t, GetLogger().Desugar().Core().Enabled(zapcore.InfoLevel))
}

func TestHelpers_WriteKeyValueFields(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	Debug("dropped")
	Warn("Flight feed request failed", "code", "RATE_LIMITED")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Flight feed request failed", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "RATE_LIMITED", entries[0].ContextMap()["code"])
}

func TestWithRequest(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	WithRequest("req-1", "/flights").Infow("served", "count", 3)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "/flights", fields["endpoint"])
	assert.Equal(t, int64(3), fields["count"])
}

func TestGetLogger_NopBeforeInit(t *testing.T) {
	prev := globalLogger
	t.Cleanup(func() { globalLogger = prev })
	globalLogger = nil

	assert.NotPanics(t, func() { Info("ignored") })
	assert.NoError(t, Close())
}
