package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"GQLBUILDER_PKG", "GQLBUILDER_SCALARS", "GQLBUILDER_RUNTIME",
	"GQLBUILDER_LOG_LEVEL", "GQLBUILDER_LOG_FILE",
}

// unsetConfigEnv clears the GQLBUILDER_* variables and restores them afterwards.
func unsetConfigEnv(t *testing.T) {
	for _, k := range configEnv {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetConfigEnv(t)
	conf, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		PkgName:    "client",
		RuntimePkg: DefaultRuntimePkg,
		LogLevel:   "info",
	}, conf)
}

func TestLoadConfigEnv(t *testing.T) {
	unsetConfigEnv(t)
	t.Setenv("GQLBUILDER_PKG", "api")
	t.Setenv("GQLBUILDER_RUNTIME", "example.com/rt/builder")
	t.Setenv("GQLBUILDER_LOG_LEVEL", "debug")
	conf, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "api", conf.PkgName)
	assert.Equal(t, "example.com/rt/builder", conf.RuntimePkg)
	assert.Equal(t, "debug", conf.LogLevel)
}

func TestLoadConfigEnvFile(t *testing.T) {
	unsetConfigEnv(t)
	path := filepath.Join(t.TempDir(), "gen.env")
	require.NoError(t, os.WriteFile(path, []byte("GQLBUILDER_PKG=sdk\nGQLBUILDER_SCALARS=scalars.json\n"), 0644))
	// the process environment wins over the file
	t.Setenv("GQLBUILDER_SCALARS", "custom.json")

	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sdk", conf.PkgName)
	assert.Equal(t, "custom.json", conf.ScalarsPath)
}
