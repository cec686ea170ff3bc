package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/output"
	"github.com/gorewood/sprout/internal/scaffold"
)

// newFlags holds the command-line flags for the new command.
type newFlags struct {
	dryRun    bool
	remote    string
	register  bool
	variant   string
	templates string
}

// newResult is the JSON shape of a new run.
type newResult struct {
	Status  string                `json:"status"` // "ok", "partial", "dry_run"
	Project scaffold.Project      `json:"project"`
	Steps   []scaffold.StepResult `json:"steps"`
}

// newNewCmd creates the new command.
func newNewCmd() *cobra.Command {
	flags := &newFlags{}

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a new Python project in the current directory",
		Long: `Create a new Python project in the current directory.

The name is used for both the project directory and the package inside it.
Without a name sprout prompts for one when run in a terminal.

Steps run in order and each reports ok, skipped or failed. Only creating
the project directory is fatal: if it already exists nothing is written.
Every later step runs even when an earlier one failed.

Examples:
  sprout new demo                   # Scaffold ./demo with the defaults
  sprout new demo --dry-run         # Show what would happen
  sprout new demo --remote github   # Also create and push a GitHub repo
  sprout new demo --variant partials --templates ~/templates/python
  sprout new demo --register        # Add the package to PYTHONPATH
  sprout new demo --json            # Output results as JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, flags, args)
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be done without doing it")
	cmd.Flags().StringVar(&flags.remote, "remote", "", "Remote to publish to: none, github, url (default from config)")
	cmd.Flags().BoolVar(&flags.register, "register", false, "Register the package on the shell search path")
	cmd.Flags().StringVar(&flags.variant, "variant", "", "Layout variant: default, partials (default from config)")
	cmd.Flags().StringVar(&flags.templates, "templates", "", "Directory holding template assets to copy")

	return cmd
}

// runNew executes the new command.
func runNew(cmd *cobra.Command, flags *newFlags, args []string) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	if err := applyNewFlags(cmd, cfg, flags); err != nil {
		printer.Error(err)
		return err
	}

	name, err := resolveProjectName(cmd, args)
	if err != nil {
		printer.Error(err)
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		err = output.NewSystemErrorWithCause("resolving working directory", err)
		printer.Error(err)
		return err
	}

	scaffolder := scaffold.New(cfg,
		scaffold.WithLogger(newLogger(cmd, cfg)),
		scaffold.WithBaseDir(cwd),
	)
	styles := newStyles(printer.IsTTY())

	if flags.dryRun {
		return handleNewDryRun(printer, styles, scaffolder, scaffold.NewProject(cwd, name, cfg.Layout.Packages()))
	}

	result, err := scaffolder.Scaffold(cmd.Context(), name)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		status := "ok"
		if len(result.Failed()) > 0 {
			status = "partial"
		}
		return printer.WriteJSON(newResult{Status: status, Project: result.Project, Steps: result.Steps})
	}

	return outputNewHuman(printer, styles, result)
}

// handleNewDryRun reports the planned steps without touching anything.
func handleNewDryRun(printer *output.Printer, styles styleSet, scaffolder *scaffold.Scaffolder, project scaffold.Project) error {
	steps, err := scaffolder.Plan(project.Name)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(newResult{Status: scaffold.StatusDryRun, Project: project, Steps: steps})
	}

	outputDryRunHuman(printer, styles, project, steps)
	return nil
}

// applyNewFlags layers explicitly set flags over the loaded config and
// revalidates the result.
func applyNewFlags(cmd *cobra.Command, cfg *config.Config, flags *newFlags) error {
	changed := cmd.Flags().Changed
	if changed("remote") {
		cfg.Remote.Mode = flags.remote
	}
	if changed("register") {
		cfg.Register.Enabled = flags.register
	}
	if changed("variant") {
		cfg.Layout.Variant = flags.variant
	}
	if changed("templates") {
		cfg.Templates.Dir = flags.templates
	}
	if err := cfg.Validate(); err != nil {
		return output.NewUserError(err.Error())
	}
	return nil
}

// resolveProjectName takes the name from the arguments, or prompts for it
// when attached to a terminal.
func resolveProjectName(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if isJSONMode(cmd) || !output.IsInteractive(cmd.InOrStdin(), cmd.OutOrStdout()) {
		return "", output.NewUserError("project name is required (sprout new <name>)")
	}
	return promptProjectName(cmd.Context())
}

// promptProjectName asks for the project name on the terminal.
func promptProjectName(ctx context.Context) (string, error) {
	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Used for the project directory and the package inside it.").
				Value(&name).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("a project name is required")
					}
					return nil
				}),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", output.NewUserError("aborted")
		}
		return "", output.NewSystemErrorWithCause("prompting for project name", err)
	}
	return name, nil
}
