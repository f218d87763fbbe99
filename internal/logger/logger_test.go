package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedactMasksCredentials(t *testing.T) {
	out := redact([]interface{}{"db_password", "hunter2", "host", "localhost", "dsn", "user:pw@tcp"})
	assert.Equal(t, []interface{}{"db_password", "[REDACTED]", "host", "localhost", "dsn", "[REDACTED]"}, out)
}

func TestLoggerWritesStructuredFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "trends").Warn("skipped logs", "count", 2)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "skipped logs", entry.Message)
	assert.Equal(t, "trends", entry.ContextMap()["component"])
	assert.EqualValues(t, 2, entry.ContextMap()["count"])
}

func TestNew(t *testing.T) {
	l, err := New("production")
	require.NoError(t, err)
	require.NotNil(t, l.SugaredLogger)
	l.Sync()

	cli, err := New("cli")
	require.NoError(t, err)
	assert.False(t, cli.SugaredLogger.Desugar().Core().Enabled(zap.InfoLevel))
	assert.True(t, cli.SugaredLogger.Desugar().Core().Enabled(zap.WarnLevel))
}
