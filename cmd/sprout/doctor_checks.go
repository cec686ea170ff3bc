package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/git"
	"github.com/gorewood/sprout/internal/shellenv"
)

// doctorEnv is what the checks inspect. A config that fails to load is
// reported once and the remaining checks run against the defaults.
type doctorEnv struct {
	cfg      *config.Config
	cfgErr   error
	cfgFile  string
	lookPath func(string) (string, error)
}

func newDoctorEnv(cmd *cobra.Command) *doctorEnv {
	env := &doctorEnv{
		cfgFile:  resolveConfigPaths(cmd).File,
		lookPath: exec.LookPath,
	}
	cfg, err := config.Load(config.WithFile(persistentFlag(cmd, "config")))
	if err != nil {
		env.cfgErr = err
		cfg = config.Default()
	}
	env.cfg = cfg
	return env
}

// runConfigChecks verifies the configuration itself.
func runConfigChecks(env *doctorEnv) []checkResult {
	return []checkResult{checkConfigLoads(env)}
}

func checkConfigLoads(env *doctorEnv) checkResult {
	if env.cfgErr != nil {
		return checkResult{
			Name:    "Config",
			Status:  checkFail,
			Message: strings.ReplaceAll(env.cfgErr.Error(), "\n", "; "),
			Hint:    "Fix " + env.cfgFile + " or the SPROUT_* variables; remaining checks use defaults",
		}
	}
	return checkResult{
		Name:    "Config",
		Status:  checkPass,
		Message: "loaded and valid",
	}
}

// runToolChecks verifies the external programs the pipeline runs.
func runToolChecks(env *doctorEnv) []checkResult {
	checks := make([]checkResult, 0, 3)
	checks = append(checks, checkGitInstalled(env))
	if env.cfg.Remote.Mode == config.RemoteGitHub {
		checks = append(checks, checkProgramOnPath(env, "GitHub CLI", "gh",
			"Install gh from https://cli.github.com or set remote.mode to none or url"))
	}
	if env.cfg.Ignore.Mode == config.IgnoreGenerator {
		program, _ := env.cfg.Ignore.GeneratorArgs()
		checks = append(checks, checkProgramOnPath(env, "Ignore Generator", program,
			"Install "+program+" or set ignore.mode to static"))
	}
	return checks
}

// checkGitInstalled checks that git is on PATH and reports its version.
func checkGitInstalled(env *doctorEnv) checkResult {
	if _, err := env.lookPath("git"); err != nil {
		return checkResult{
			Name:    "Git",
			Status:  checkFail,
			Message: "git not found in PATH",
			Hint:    "Install git; the repository step cannot run without it",
		}
	}
	ver, err := git.Version()
	if err != nil {
		return checkResult{
			Name:    "Git",
			Status:  checkWarn,
			Message: "git found but 'git --version' failed: " + err.Error(),
		}
	}
	return checkResult{
		Name:    "Git",
		Status:  checkPass,
		Message: ver,
	}
}

func checkProgramOnPath(env *doctorEnv, name, program, hint string) checkResult {
	path, err := env.lookPath(program)
	if err != nil {
		return checkResult{
			Name:    name,
			Status:  checkFail,
			Message: program + " not found in PATH",
			Hint:    hint,
		}
	}
	return checkResult{
		Name:    name,
		Status:  checkPass,
		Message: path,
	}
}

// runSetupChecks verifies the files optional steps read or write.
func runSetupChecks(env *doctorEnv) []checkResult {
	checks := make([]checkResult, 0, 3)
	if env.cfg.Remote.Mode == config.RemoteGitHub {
		checks = append(checks, checkTokenFile(env.cfg.Remote))
	}
	if env.cfg.Templates.Dir != "" {
		checks = append(checks, checkTemplatesDir(env.cfg.Templates))
	}
	if env.cfg.Register.Enabled {
		checks = append(checks, checkShellFile(env.cfg.Register))
	}
	return checks
}

// checkTokenFile checks that the GitHub token file exists and is not empty.
func checkTokenFile(remote config.RemoteConfig) checkResult {
	path := config.ExpandHome(remote.TokenFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return checkResult{
			Name:    "Token File",
			Status:  checkFail,
			Message: describeFileError(path, err),
			Hint:    "Save a GitHub personal access token there or set remote.token_file",
		}
	}
	if strings.TrimSpace(string(data)) == "" {
		return checkResult{
			Name:    "Token File",
			Status:  checkWarn,
			Message: path + " is empty",
			Hint:    "gh auth login will fail without a token",
		}
	}
	return checkResult{
		Name:    "Token File",
		Status:  checkPass,
		Message: path,
	}
}

// checkTemplatesDir checks that the configured template directory exists.
func checkTemplatesDir(templates config.TemplatesConfig) checkResult {
	path := config.ExpandHome(templates.Dir)
	info, err := os.Stat(path)
	if err != nil {
		return checkResult{
			Name:    "Templates",
			Status:  checkFail,
			Message: describeFileError(path, err),
			Hint:    "Create the directory or unset templates.dir",
		}
	}
	if !info.IsDir() {
		return checkResult{
			Name:    "Templates",
			Status:  checkFail,
			Message: path + " is not a directory",
			Hint:    "Point templates.dir at a directory",
		}
	}
	return checkResult{
		Name:    "Templates",
		Status:  checkPass,
		Message: fmt.Sprintf("%s (patterns: %s)", path, strings.Join(templates.Patterns, ", ")),
	}
}

// checkShellFile checks the shell startup file the search path is added to.
// A missing file is only a warning because registration creates it.
func checkShellFile(register config.RegisterConfig) checkResult {
	path := config.ExpandHome(register.ShellFile)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return checkResult{
				Name:    "Shell File",
				Status:  checkWarn,
				Message: path + " does not exist yet",
				Hint:    "It will be created on the first registration",
			}
		}
		return checkResult{
			Name:    "Shell File",
			Status:  checkFail,
			Message: describeFileError(path, err),
		}
	}
	if _, _, err := shellenv.Lookup(path, register.Variable); err != nil {
		return checkResult{
			Name:    "Shell File",
			Status:  checkFail,
			Message: describeFileError(path, err),
		}
	}
	return checkResult{
		Name:    "Shell File",
		Status:  checkPass,
		Message: path,
	}
}

func describeFileError(path string, err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return path + " not found"
	case errors.Is(err, fs.ErrPermission):
		return path + " is not readable"
	default:
		return err.Error()
	}
}
