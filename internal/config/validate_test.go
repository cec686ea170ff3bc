package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/sprout/internal/config"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{
			name:    "bad log level",
			mutate:  func(c *config.Config) { c.Log.Level = "loud" },
			wantErr: "log.level",
		},
		{
			name:    "bad variant",
			mutate:  func(c *config.Config) { c.Layout.Variant = "flat" },
			wantErr: "layout.variant",
		},
		{
			name: "generator without command",
			mutate: func(c *config.Config) {
				c.Ignore.Mode = config.IgnoreGenerator
				c.Ignore.Generator = "  "
			},
			wantErr: "ignore.generator",
		},
		{
			name:   "loose semver accepted",
			mutate: func(c *config.Config) { c.Metadata.Version = "1.2" },
		},
		{
			name:    "bad version",
			mutate:  func(c *config.Config) { c.Metadata.Version = "one" },
			wantErr: "metadata.version",
		},
		{
			name:    "bad register target",
			mutate:  func(c *config.Config) { c.Register.Target = "parent" },
			wantErr: "register.target",
		},
		{
			name:    "negative delay",
			mutate:  func(c *config.Config) { c.Git.Delay = -1 },
			wantErr: "git.delay",
		},
		{
			name: "url remote without pattern",
			mutate: func(c *config.Config) {
				c.Remote.Mode = config.RemoteURL
				c.Remote.URLPattern = ""
			},
			wantErr: "remote.url_pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIgnoreConfig_GeneratorArgs(t *testing.T) {
	name, args := config.IgnoreConfig{Generator: "git-ignore -u python"}.GeneratorArgs()
	assert.Equal(t, "git-ignore", name)
	assert.Equal(t, []string{"-u", "python"}, args)
}

func TestRegisterConfig_ResolvedShell(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")
	assert.Equal(t, "/bin/bash", config.RegisterConfig{Shell: "/bin/bash"}.ResolvedShell())
	assert.Equal(t, "/bin/zsh", config.RegisterConfig{}.ResolvedShell())

	t.Setenv("SHELL", "")
	assert.Equal(t, "sh", config.RegisterConfig{}.ResolvedShell())
}
