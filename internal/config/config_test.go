package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ThemeAuto, cfg.Theme)
}

func TestLoadReadsFields(t *testing.T) {
	path := writeFile(t, "language: hi\ndataset: /tmp/farm.yaml\nlog_file: /tmp/herd.log\ntheme: dark\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hi", cfg.Language)
	assert.Equal(t, "/tmp/farm.yaml", cfg.Dataset)
	assert.Equal(t, "/tmp/herd.log", cfg.LogFile)
	assert.Equal(t, ThemeDark, cfg.Theme)
}

func TestLoadRejectsUnknownTheme(t *testing.T) {
	path := writeFile(t, "theme: sepia\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
