// Package scaffold creates new Python projects.
//
// A Scaffolder runs a fixed sequence of steps against one project:
//
//	directories, manifest, ignore, license, build_config, readme,
//	metadata, package_markers, template_assets, register_path, repository
//
// The first step creates <base>/<name>/<name>/ and is the only fatal one.
// The rest are best effort: each reports a StepResult and the pipeline
// always runs to the end, leaving whatever was written on disk. Optional
// steps that are turned off in the configuration report "skipped", so a
// Result always lists every step.
//
// External programs (git, gh, the ignore generator and the registration
// script) run through a command.Runner; tests substitute a recorder.
package scaffold
