package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/sprout/internal/config"
)

// isolate points the config directory at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SPROUT_CONFIG_HOME", dir)
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, config.VariantDefault, cfg.Layout.Variant)
	assert.Empty(t, cfg.Layout.Packages())
	assert.Equal(t, config.IgnoreStatic, cfg.Ignore.Mode)
	assert.Equal(t, "Copyright (c) 2021 James Calam Briggs", cfg.License.Copyright)
	assert.True(t, cfg.Readme.Badge)
	assert.Equal(t, "0.1", cfg.Metadata.Version)
	assert.Equal(t, []string{"mysql.connector", "snoop", "isort", "click"}, cfg.Metadata.Dependencies)
	assert.Equal(t, 180, cfg.Metadata.MaxLineLength)
	assert.Equal(t, []string{"_call_*.py"}, cfg.Templates.Patterns)
	assert.False(t, cfg.Register.Enabled)
	assert.Equal(t, "PYTHONPATH", cfg.Register.Variable)
	assert.Equal(t, "master", cfg.Git.Branch)
	assert.Equal(t, "First Commit", cfg.Git.Message)
	assert.Equal(t, 2*time.Second, cfg.Git.Delay)
	assert.Equal(t, config.RemoteNone, cfg.Remote.Mode)
}

func TestDefault_MatchesLoad(t *testing.T) {
	isolate(t)

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
layout:
  variant: partials
git:
  delay: 0s
metadata:
  dependencies:
    - requests
remote:
  mode: url
`)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"configs", "partials"}, cfg.Layout.Packages())
	assert.Equal(t, time.Duration(0), cfg.Git.Delay)
	assert.Equal(t, []string{"requests"}, cfg.Metadata.Dependencies)
	assert.Equal(t, config.RemoteURL, cfg.Remote.Mode)
	assert.Equal(t, "master", cfg.Git.Branch, "unset keys keep defaults")
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)
	other := t.TempDir()
	path := writeConfig(t, other, "readme:\n  badge: false\n")

	cfg, err := config.Load(config.WithFile(path))
	require.NoError(t, err)
	assert.False(t, cfg.Readme.Badge)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := config.Load(config.WithFile(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "remote:\n  mode: url\n")
	t.Setenv("SPROUT_REMOTE_MODE", "github")
	t.Setenv("SPROUT_REGISTER_SHELL_FILE", "/tmp/.bashrc")
	t.Setenv("SPROUT_GIT_DELAY", "250ms")
	t.Setenv("SPROUT_METADATA_DEPENDENCIES", "click, rich")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.RemoteGitHub, cfg.Remote.Mode, "env wins over file")
	assert.Equal(t, "/tmp/.bashrc", cfg.Register.ShellFile)
	assert.Equal(t, 250*time.Millisecond, cfg.Git.Delay)
	assert.Equal(t, []string{"click", "rich"}, cfg.Metadata.Dependencies)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "env"),
		[]byte("# local overrides\nexport SPROUT_GIT_BRANCH=main\n"), 0o600))
	t.Setenv("SPROUT_GIT_BRANCH", "")
	require.NoError(t, os.Unsetenv("SPROUT_GIT_BRANCH"))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "main", cfg.Git.Branch)
}

func TestLoad_InvalidConfig(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "metadata:\n  version: not-a-version\nremote:\n  mode: ftp\n")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata.version")
	assert.Contains(t, err.Error(), "remote.mode")
}
