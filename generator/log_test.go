package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLog(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, SetupLog(LogConfig{})) })

	require.NoError(t, SetupLog(LogConfig{Level: "debug"}))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	require.NoError(t, SetupLog(LogConfig{}))
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())

	assert.Error(t, SetupLog(LogConfig{Level: "loud"}))
}

func TestSetupLogFile(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, SetupLog(LogConfig{})) })

	file := filepath.Join(t.TempDir(), "logs", "gen.log")
	require.NoError(t, SetupLog(LogConfig{Level: "warn", File: file}))
	Log.Warn("generated with warnings")
	Log.Info("dropped")

	bts, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(bts), "generated with warnings")
	assert.NotContains(t, string(bts), "dropped")
}
