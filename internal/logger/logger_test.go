package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogUsableBeforeInit(t *testing.T) {
	require.NotNil(t, Log)
	Log.Info("no-op", zap.String("k", "v"))
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { level.SetLevel(zap.InfoLevel) })

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, zap.DebugLevel, level.Level())

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zap.DebugLevel, level.Level(), "empty level keeps the current one")

	assert.Error(t, SetLevel("loud"))
}
