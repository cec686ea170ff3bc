// Package main provides the entry point for the sprout CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/logging"
	"github.com/gorewood/sprout/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return persistentFlag(cmd, "json") == "true"
}

// useColor resolves the --color flag against TTY detection on the command's
// output writer.
func useColor(cmd *cobra.Command) bool {
	return output.ResolveColorMode(persistentFlag(cmd, "color"), output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter returns a printer for the command's output honoring --json and
// --color.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())
}

func persistentFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// loadConfig reads the layered configuration, honoring --config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(config.WithFile(persistentFlag(cmd, "config")))
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}
	return cfg, nil
}

// newLogger builds the stderr logger. --log-level overrides log.level.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	level := cfg.Log.Level
	if flagLevel := persistentFlag(cmd, "log-level"); flagLevel != "" {
		level = flagLevel
	}
	return logging.New(level, cfg.Log.Format, cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	err := fang.Execute(ctx, cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the sprout CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprout",
		Short: "Scaffold ready-to-publish Python projects",
		Long: `Sprout - scaffold a ready-to-publish Python project in one step.

Given a project name, sprout:
  - Creates the project and package directories
  - Writes MANIFEST.in, .gitignore, LICENSE, pyproject.toml, README.md
    and setup.cfg
  - Marks the package (and any subpackages) with __init__.py
  - Optionally copies template assets and registers the package on
    the shell search path
  - Initializes a git repository with a first commit and, optionally,
    publishes it to a remote

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'sprout --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return validateGlobalFlags(cmd)
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")
	cmd.PersistentFlags().String("config", "", "Config file (default "+config.DefaultFile()+")")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default from config)")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// validateGlobalFlags rejects unknown --color and --log-level values before
// any command runs.
func validateGlobalFlags(cmd *cobra.Command) error {
	switch mode := persistentFlag(cmd, "color"); mode {
	case "auto", "always", "never":
	default:
		return output.NewUserError(fmt.Sprintf("invalid --color %q (want auto, always or never)", mode))
	}
	if level := persistentFlag(cmd, "log-level"); level != "" && !logging.ValidLevel(level) {
		return output.NewUserError(fmt.Sprintf("invalid --log-level %q (want debug, info, warn or error)", level))
	}
	return nil
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newNewCmd(), "core")

	addGroupedCommand(cmd, newConfigCmd(), "admin")
	addGroupedCommand(cmd, newDoctorCmd(), "admin")
	addGroupedCommand(cmd, newServeCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
