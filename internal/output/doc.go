// Package output provides structured output and exit-code handling for the
// sprout CLI.
//
// Every command writes through a Printer, which switches between styled
// human output and JSON based on the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
//	printer.Success(map[string]any{"message": "Project created"})
//	printer.Error(err)
//
// Errors that should map to a specific process exit code are *ExitError
// values built with the constructors below:
//
//	output.NewUserError("project name is required")      // 1
//	output.NewSystemError("git not found")                // 2
//	output.NewConflictError("directory already exists")   // 3
//
// GetExitCode turns whatever error a command returned into the exit code.
package output
