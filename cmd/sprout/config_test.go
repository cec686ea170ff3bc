package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/sprout/internal/output"
)

func TestConfigShow_YAML(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "config", "show")
	require.NoError(t, err, "output: %s", out)
	for _, want := range []string{"branch: master", "message: First Commit", "mode: none", "copyright: Copyright (c) 2021 James Calam Briggs"} {
		assert.Contains(t, out, want)
	}
}

func TestConfigShow_FileAndEnv(t *testing.T) {
	configDir := isolateEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("git:\n  branch: main\n"), 0o600))
	t.Setenv("SPROUT_REMOTE_MODE", "url")

	out, err := execute(t, "config", "show", "--json")
	require.NoError(t, err, "output: %s", out)

	var cfg struct {
		Git    struct{ Branch string }
		Remote struct{ Mode string }
	}
	require.NoError(t, json.Unmarshal([]byte(out), &cfg), "failed to parse JSON output: %s", out)
	assert.Equal(t, "main", cfg.Git.Branch)
	assert.Equal(t, "url", cfg.Remote.Mode)
}

func TestConfigShow_MissingExplicitFile(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "config", "show", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err, "expected error for missing --config file")
	assert.Equal(t, output.ExitUserError, output.GetExitCode(err))
}

func TestConfigPath(t *testing.T) {
	configDir := isolateEnv(t)

	out, err := execute(t, "config", "path", "--json")
	require.NoError(t, err, "output: %s", out)

	var result configPathResult
	require.NoError(t, json.Unmarshal([]byte(out), &result), "failed to parse JSON output: %s", out)
	assert.Equal(t, configDir, result.Dir)
	assert.Equal(t, filepath.Join(configDir, "config.yaml"), result.File)
	assert.False(t, result.Exists, "fresh config dir should have no file")
	assert.Equal(t, filepath.Join(configDir, "env"), result.EnvFile)
}
