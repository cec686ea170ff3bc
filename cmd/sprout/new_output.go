package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gorewood/sprout/internal/output"
	"github.com/gorewood/sprout/internal/scaffold"
)

// styleSet holds lipgloss styles for step output.
type styleSet struct {
	heading lipgloss.Style
	pass    lipgloss.Style
	skip    lipgloss.Style
	fail    lipgloss.Style
	dim     lipgloss.Style
	accent  lipgloss.Style
}

// newStyles returns a TTY-aware style set.
func newStyles(isTTY bool) styleSet {
	if !isTTY {
		return styleSet{}
	}
	return styleSet{
		heading: lipgloss.NewStyle().Bold(true),
		pass:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "10", Dark: "10"}),
		skip:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		fail:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "12", Dark: "12"}),
	}
}

// outputNewHuman prints the step results of a run, then either a warning
// with the failure count or the next steps.
func outputNewHuman(printer *output.Printer, styles styleSet, result *scaffold.Result) error {
	printer.Println()
	printer.Print("%s %s\n", styles.heading.Render("Creating "+result.Project.Name+" in"), styles.dim.Render(result.Project.RootPath))
	printer.Println()

	for _, step := range result.Steps {
		printStepResult(printer, styles, step)
	}

	if failed := result.Failed(); len(failed) > 0 {
		printer.Warn("%d of %d steps failed", len(failed), len(result.Steps))
		printer.Println()
		printer.Print("%s\n", styles.dim.Render("Run 'sprout doctor' to check the tools sprout depends on."))
		return nil
	}

	return printNextSteps(printer, styles, result.Project)
}

// outputDryRunHuman prints dry-run output in human format.
func outputDryRunHuman(printer *output.Printer, styles styleSet, project scaffold.Project, steps []scaffold.StepResult) {
	printer.Println()
	printer.Print("%s %s\n", styles.heading.Render("Dry run: sprout new in"), styles.dim.Render(project.RootPath))
	printer.Println()

	for _, step := range steps {
		icon := styledDryRunIcon(styles, step.Status)
		printer.Print("  %s %s: %s\n", icon, formatStepName(step.Name), step.Message)
	}
}

// styledDryRunIcon returns a styled icon for a dry-run step status.
func styledDryRunIcon(styles styleSet, status string) string {
	switch status {
	case scaffold.StatusSkipped:
		return styles.dim.Render("--")
	case scaffold.StatusDryRun:
		return styles.accent.Render(">")
	case scaffold.StatusFailed:
		return styles.fail.Render("XX")
	default:
		return "?"
	}
}

// printNextSteps outputs the next steps message.
func printNextSteps(printer *output.Printer, styles styleSet, project scaffold.Project) error {
	printer.Println()
	if err := printer.Success(map[string]any{"message": project.Name + " is ready!"}); err != nil {
		return err
	}
	printer.Println()
	printer.Print("Next steps:\n")
	printer.Print("  1. %s\n", styles.dim.Render("Enter the project:"))
	printer.Print("     %s\n", styles.accent.Render("cd "+project.Name))
	printer.Println()
	printer.Print("  2. %s\n", styles.dim.Render("Fill in name, description and url in setup.cfg, then install it:"))
	printer.Print("     %s\n", styles.accent.Render("pip install -e ."))
	return nil
}

// printStepResult prints a single step result in human format.
func printStepResult(printer *output.Printer, styles styleSet, step scaffold.StepResult) {
	icon := styledStepIcon(styles, step.Status)
	printer.Print("  %s %s", icon, formatStepName(step.Name))
	if step.Message != "" {
		printer.Print(" %s", styles.dim.Render("("+step.Message+")"))
	}
	printer.Println()
}

// styledStepIcon returns a styled icon for a step status.
func styledStepIcon(styles styleSet, status string) string {
	switch status {
	case scaffold.StatusOK:
		return styles.pass.Render("ok")
	case scaffold.StatusSkipped:
		return styles.skip.Render("--")
	case scaffold.StatusFailed:
		return styles.fail.Render("XX")
	default:
		return "??"
	}
}

// formatStepName converts step names to display names.
func formatStepName(name string) string {
	switch name {
	case scaffold.StepDirectories:
		return "Directories"
	case scaffold.StepManifest:
		return "MANIFEST.in"
	case scaffold.StepIgnore:
		return ".gitignore"
	case scaffold.StepLicense:
		return "LICENSE"
	case scaffold.StepBuildConfig:
		return "pyproject.toml"
	case scaffold.StepReadme:
		return "README.md"
	case scaffold.StepMetadata:
		return "setup.cfg"
	case scaffold.StepPackageMarkers:
		return "Package markers"
	case scaffold.StepTemplateAssets:
		return "Template assets"
	case scaffold.StepRegisterPath:
		return "Search path"
	case scaffold.StepRepository:
		return "Git repository"
	default:
		return name
	}
}
