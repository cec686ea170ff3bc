package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/output"
)

// newConfigCmd creates the config command and its subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect sprout configuration",
		Long: `Inspect sprout configuration.

Settings are layered, highest precedence last:
  1. Built-in defaults
  2. The YAML config file (see 'sprout config path')
  3. SPROUT_* environment variables, e.g. SPROUT_REMOTE_MODE=github
     (unset variables are also read from the env file in the config dir)`,
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			cfg, err := loadConfig(cmd)
			if err != nil {
				printer.Error(err)
				return err
			}

			if printer.IsJSON() {
				return printer.WriteJSON(cfg)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				err = output.NewSystemErrorWithCause("encoding config", err)
				printer.Error(err)
				return err
			}
			printer.WriteRaw(data)
			return nil
		},
	}
}

// configPathResult describes where configuration is read from.
type configPathResult struct {
	Dir     string `json:"dir"`
	File    string `json:"file"`
	Exists  bool   `json:"exists"`
	EnvFile string `json:"env_file"`
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			result := resolveConfigPaths(cmd)

			if printer.IsJSON() {
				return printer.WriteJSON(result)
			}

			printer.KeyValue("dir", result.Dir)
			file := result.File
			if !result.Exists {
				file += " (not found, using defaults)"
			}
			printer.KeyValue("file", file)
			printer.KeyValue("env", result.EnvFile)
			return nil
		},
	}
}

func resolveConfigPaths(cmd *cobra.Command) configPathResult {
	dir := config.Dir()
	result := configPathResult{Dir: dir, File: config.DefaultFile()}
	if explicit := persistentFlag(cmd, "config"); explicit != "" {
		result.File = explicit
	}
	if dir != "" {
		result.EnvFile = filepath.Join(dir, "env")
	}
	if result.File != "" {
		_, err := os.Stat(result.File)
		result.Exists = err == nil
	}
	return result
}
