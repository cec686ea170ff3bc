package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/sprout/internal/output"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results organized by category.
type doctorResult struct {
	Version string         `json:"version"`
	Config  []checkResult  `json:"config"`
	Tools   []checkResult  `json:"tools"`
	Setup   []checkResult  `json:"setup"`
	Summary *doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// doctorFlags holds the command-line flags for the doctor command.
type doctorFlags struct {
	quiet bool
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	flags := &doctorFlags{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the tools and files sprout uses are available",
		Long: `Check that the tools and files sprout uses are available.

Runs a series of health checks across three categories:
  CONFIG - The configuration loads and validates
  TOOLS  - git, plus gh and the ignore generator when configured
  SETUP  - Token file, template directory and shell startup file

Checks only run for features the configuration enables.

Each check reports:
  Pass    - Check passed successfully
  Warning - Non-critical issue found
  Fail    - The step depending on it will fail

Examples:
  sprout doctor              # Run all health checks
  sprout doctor --quiet      # Only show failures and warnings
  sprout doctor --json       # Output results as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.quiet, "quiet", false, "Only show failures and warnings")

	return cmd
}

// runDoctor executes the doctor command. Failing checks are reported, not
// returned as an error.
func runDoctor(cmd *cobra.Command, flags *doctorFlags) error {
	printer := newPrinter(cmd)

	result := gatherDoctorChecks(newDoctorEnv(cmd))

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	outputDoctorHuman(printer, result, flags.quiet)
	return nil
}

// gatherDoctorChecks runs all health checks and returns results.
func gatherDoctorChecks(env *doctorEnv) *doctorResult {
	result := &doctorResult{
		Version: version,
		Config:  runConfigChecks(env),
		Tools:   runToolChecks(env),
		Setup:   runSetupChecks(env),
		Summary: &doctorSummary{},
	}

	allChecks := append(append(append([]checkResult{}, result.Config...), result.Tools...), result.Setup...)
	for _, check := range allChecks {
		switch check.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}

	return result
}

// outputDoctorHuman outputs the doctor result in human-readable format.
func outputDoctorHuman(printer *output.Printer, result *doctorResult, quiet bool) {
	printer.Println()
	printer.Print("sprout doctor v%s\n", result.Version)

	printCheckSection(printer, "CONFIG", result.Config, quiet)
	printCheckSection(printer, "TOOLS", result.Tools, quiet)
	printCheckSection(printer, "SETUP", result.Setup, quiet)

	printer.Println()
	printer.Print("%s %d passed  %s %d warnings  %s %d failed\n",
		statusIcon(printer, checkPass), result.Summary.Passed,
		statusIcon(printer, checkWarn), result.Summary.Warnings,
		statusIcon(printer, checkFail), result.Summary.Failed,
	)
}

// printCheckSection prints a section of checks.
func printCheckSection(printer *output.Printer, title string, checks []checkResult, quiet bool) {
	if len(checks) == 0 {
		return
	}
	// In quiet mode, skip sections with only passing checks
	if quiet {
		hasNonPass := false
		for _, check := range checks {
			if check.Status != checkPass {
				hasNonPass = true
				break
			}
		}
		if !hasNonPass {
			return
		}
	}

	printer.Section(title)

	for _, check := range checks {
		if quiet && check.Status == checkPass {
			continue
		}

		printer.Print("  %s  %s %s\n", statusIcon(printer, check.Status), check.Name, check.Message)
		if check.Hint != "" {
			printer.Print("     %s %s\n", hintPrefix(), check.Hint)
		}
	}
}

// statusIcon returns the styled icon for a check status.
func statusIcon(printer *output.Printer, status checkStatus) string {
	styles := printer.Styles()
	switch status {
	case checkPass:
		return styles.Success.Render("ok")
	case checkWarn:
		return styles.Warning.Render("!!")
	case checkFail:
		return styles.Error.Render("XX")
	default:
		return "??"
	}
}

// hintPrefix returns the prefix for hint lines.
func hintPrefix() string {
	return "->"
}
