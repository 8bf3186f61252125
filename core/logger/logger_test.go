package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("Debug", func(t *testing.T) {
		l, err := New(&Config{Level: "debug", Format: "console"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("Warn", func(t *testing.T) {
		l, err := New(&Config{Level: "warn", Format: "json"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("UnknownLevel", func(t *testing.T) {
		l, err := New(&Config{Level: "loud"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	})
}

func TestWithUser(t *testing.T) {
	base := zap.NewNop()
	assert.Same(t, base, WithUser(base, ""))
	assert.NotNil(t, WithUser(base, "alice"))
}
