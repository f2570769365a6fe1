package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/advent/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "advent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "version: 1\ninput_dir: /data/aoc\nlog_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "/data/aoc", cfg.InputDir)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "version: 1\nlog_level: warn\n"))
	require.NoError(t, err)
	assert.Equal(t, "inputs", cfg.InputDir)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"BadVersion": "version: 2\n",
		"BadYAML":    "version: [1\n",
		"BadLevel":   "version: 1\nlog_level: loud\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
