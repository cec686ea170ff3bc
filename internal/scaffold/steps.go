package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorewood/sprout/internal/command"
	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/git"
	"github.com/gorewood/sprout/internal/hosting"
	"github.com/gorewood/sprout/internal/output"
	"github.com/gorewood/sprout/internal/shellenv"
)

const registerScript = "python_path.sh"

// createDirectories makes the root, package and subpackage directories. The
// root must not already exist.
func (s *Scaffolder) createDirectories(p Project) (StepResult, error) {
	if err := os.Mkdir(p.RootPath, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return failedStep(StepDirectories, err),
				output.NewConflictErrorWithCause(p.RootPath+" already exists", err)
		}
		return failedStep(StepDirectories, err),
			output.NewSystemErrorWithCause("creating "+p.RootPath, err)
	}
	for _, dir := range p.PackageDirs() {
		if err := os.Mkdir(dir, 0o755); err != nil {
			return failedStep(StepDirectories, err),
				output.NewSystemErrorWithCause("creating "+dir, err)
		}
	}
	return okStep(StepDirectories, fmt.Sprintf("created %d directories", 1+len(p.PackageDirs()))), nil
}

func (s *Scaffolder) writeManifest(_ context.Context, p Project) StepResult {
	return writeStep(StepManifest, filepath.Join(p.RootPath, "MANIFEST.in"), Manifest(p.Name))
}

func (s *Scaffolder) writeIgnoreRules(ctx context.Context, p Project) StepResult {
	path := filepath.Join(p.RootPath, ".gitignore")
	if s.cfg.Ignore.Mode != config.IgnoreGenerator {
		return writeStep(StepIgnore, path, IgnoreRules())
	}

	name, args := s.cfg.Ignore.GeneratorArgs()
	res, err := s.runner.Run(ctx, command.Cmd{Name: name, Args: args, Dir: p.RootPath})
	if err != nil {
		return failedStep(StepIgnore, err)
	}
	if err := writeFile(path, res.Stdout+"\n"); err != nil {
		return failedStep(StepIgnore, err)
	}
	return okStep(StepIgnore, "generated by "+name)
}

func (s *Scaffolder) writeLicense(_ context.Context, p Project) StepResult {
	text, err := License(s.cfg.License.Copyright)
	if err != nil {
		return failedStep(StepLicense, err)
	}
	return writeStep(StepLicense, filepath.Join(p.RootPath, "LICENSE"), text)
}

func (s *Scaffolder) writeBuildConfig(_ context.Context, p Project) StepResult {
	return writeStep(StepBuildConfig, filepath.Join(p.RootPath, "pyproject.toml"), BuildConfig())
}

func (s *Scaffolder) writeReadme(_ context.Context, p Project) StepResult {
	return writeStep(StepReadme, filepath.Join(p.RootPath, "README.md"), Readme(s.cfg.Readme.Badge))
}

func (s *Scaffolder) writeMetadata(_ context.Context, p Project) StepResult {
	text, err := Metadata(s.cfg.Metadata)
	if err != nil {
		return failedStep(StepMetadata, err)
	}
	return writeStep(StepMetadata, filepath.Join(p.RootPath, "setup.cfg"), text)
}

func (s *Scaffolder) writePackageMarkers(_ context.Context, p Project) StepResult {
	var errs []error
	written := 0
	for _, dir := range p.PackageDirs() {
		if err := writeFile(filepath.Join(dir, "__init__.py"), ""); err != nil {
			errs = append(errs, err)
			continue
		}
		written++
	}
	if err := joinErrors(errs); err != nil {
		return failedStep(StepPackageMarkers, err)
	}
	return okStep(StepPackageMarkers, fmt.Sprintf("wrote %d __init__.py", written))
}

func (s *Scaffolder) copyTemplateAssets(_ context.Context, p Project) StepResult {
	if s.templates == nil {
		return skippedStep(StepTemplateAssets, "no template source configured")
	}
	copied, err := copyAssets(s.templates, s.cfg.Templates.Patterns, p)
	if err != nil {
		return failedStep(StepTemplateAssets, err)
	}
	if len(copied) == 0 {
		return skippedStep(StepTemplateAssets, "no matching templates")
	}
	return okStep(StepTemplateAssets, fmt.Sprintf("copied %d files", len(copied)))
}

// registerPath appends the project to the configured search-path variable
// in the shell startup file by way of a one-shot script, then reloads the
// startup file.
func (s *Scaffolder) registerPath(ctx context.Context, p Project) StepResult {
	reg := s.cfg.Register
	if !reg.Enabled {
		return skippedStep(StepRegisterPath, "disabled")
	}

	shellFile := config.ExpandHome(reg.ShellFile)
	entry := registerEntry(reg, p)
	if strings.ContainsAny(entry, "\r\n") {
		return failedStep(StepRegisterPath, fmt.Errorf("cannot register %q: path contains a line break", entry))
	}

	found, err := shellenv.Contains(shellFile, reg.Variable, entry)
	if err != nil {
		return failedStep(StepRegisterPath, err)
	}
	if found {
		return skippedStep(StepRegisterPath, "already registered")
	}

	script := filepath.Join(p.PackagePath, registerScript)
	if err := os.WriteFile(script, []byte(shellenv.Script(shellFile, reg.Variable, entry)), 0o755); err != nil { //nolint:gosec // script must be executable
		return failedStep(StepRegisterPath, fmt.Errorf("writing %s: %w", registerScript, err))
	}
	if err := os.Chmod(script, 0o755); err != nil { //nolint:gosec // script must be executable
		return failedStep(StepRegisterPath, err)
	}

	var errs []error
	if _, err := s.runner.Run(ctx, command.Cmd{Name: script, Dir: p.PackagePath}); err != nil {
		errs = append(errs, err)
	} else {
		reload := command.Cmd{Name: reg.ResolvedShell(), Args: []string{"-c", ". " + shellenv.Quote(shellFile)}}
		if _, err := s.runner.Run(ctx, reload); err != nil {
			errs = append(errs, fmt.Errorf("reloading %s: %w", shellFile, err))
		}
	}

	if !reg.KeepScript {
		if err := os.Remove(script); err != nil {
			errs = append(errs, err)
		}
	}

	if err := joinErrors(errs); err != nil {
		return failedStep(StepRegisterPath, err)
	}
	return okStep(StepRegisterPath, fmt.Sprintf("added %s to %s in %s", entry, reg.Variable, shellFile))
}

func registerEntry(reg config.RegisterConfig, p Project) string {
	if reg.Target == config.TargetRoot {
		return p.RootPath
	}
	return p.PackagePath
}

// initRepository makes the first commit and, depending on the remote mode,
// publishes it. Every command runs even after an earlier one fails; only
// cancellation stops the sequence.
func (s *Scaffolder) initRepository(ctx context.Context, p Project) StepResult {
	gitCfg, remote := s.cfg.Git, s.cfg.Remote
	repo := git.NewRepo(p.RootPath, s.runner)

	var errs []error
	seq := []func() error{
		func() error { return repo.Init(ctx, gitCfg.Branch) },
		func() error { return repo.AddAll(ctx) },
		func() error { return repo.Commit(ctx, gitCfg.Message) },
	}

	msg := "committed on " + gitCfg.Branch
	switch remote.Mode {
	case config.RemoteGitHub:
		gh := hosting.NewGitHub(p.RootPath, s.runner)
		seq = append(seq,
			func() error { return gh.Login(ctx, config.ExpandHome(remote.TokenFile)) },
			func() error { return gh.CreateRepo(ctx, hosting.DefaultCreateOptions(p.Name, remote.Name)) },
		)
		msg = "published to GitHub as " + p.Name
	case config.RemoteURL:
		url := hosting.RemoteURL(remote.URLPattern, p.Name)
		seq = append(seq,
			func() error { return repo.AddRemote(ctx, "origin", url) },
			func() error { return repo.Push(ctx, "origin", gitCfg.Branch) },
		)
		msg = "pushed to " + url
	}

	for i, run := range seq {
		if i > 0 {
			if err := command.Wait(ctx, gitCfg.Delay); err != nil {
				errs = append(errs, err)
				break
			}
		}
		if err := run(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := joinErrors(errs); err != nil {
		return failedStep(StepRepository, err)
	}
	return okStep(StepRepository, msg)
}

func writeStep(name, path, content string) StepResult {
	if err := writeFile(path, content); err != nil {
		return failedStep(name, err)
	}
	return okStep(name, "wrote "+filepath.Base(path))
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // project files are world-readable
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// joinErrors combines errs into one error whose message fits on a single
// line, so it can be used as a step message.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return stepError(errs)
}

type stepError []error

func (e stepError) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e stepError) Unwrap() []error {
	return e
}
