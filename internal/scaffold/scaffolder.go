package scaffold

import (
	"context"
	"log/slog"
	"os"

	"github.com/gorewood/sprout/internal/command"
	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/logging"
	"github.com/gorewood/sprout/internal/output"
)

// Scaffolder runs the provisioning pipeline for new projects.
type Scaffolder struct {
	cfg       *config.Config
	runner    command.Runner
	logger    *slog.Logger
	templates TemplateSource
	baseDir   string
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithLogger sets the logger step outcomes are written to.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scaffolder) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRunner sets the runner used for git, gh and the other external tools.
func WithRunner(runner command.Runner) Option {
	return func(s *Scaffolder) {
		if runner != nil {
			s.runner = runner
		}
	}
}

// WithTemplates sets the source of template assets, overriding templates.dir.
func WithTemplates(src TemplateSource) Option {
	return func(s *Scaffolder) {
		s.templates = src
	}
}

// WithBaseDir sets the directory new projects are created in. The default is
// the working directory at the time of the run.
func WithBaseDir(dir string) Option {
	return func(s *Scaffolder) {
		s.baseDir = dir
	}
}

// New creates a Scaffolder. A nil cfg means config.Default().
func New(cfg *config.Config, opts ...Option) *Scaffolder {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Scaffolder{
		cfg:    cfg,
		runner: command.ExecRunner{},
		logger: logging.Discard(),
	}
	if cfg.Templates.Dir != "" {
		s.templates = os.DirFS(config.ExpandHome(cfg.Templates.Dir))
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scaffold creates the project named name and provisions it.
//
// Only directory creation is fatal: an existing project directory is a
// conflict error and any other failure a system error, and nothing else runs.
// Every later step runs regardless of earlier failures and reports its own
// outcome in the Result.
func (s *Scaffolder) Scaffold(ctx context.Context, name string) (*Result, error) {
	p, err := s.project(name)
	if err != nil {
		return nil, err
	}

	log := s.logger.With(slog.String("project", p.Name))
	log.Debug("scaffolding project", slog.String("path", p.RootPath))

	first, err := s.createDirectories(p)
	if err != nil {
		log.Error("step failed", slog.String("step", StepDirectories), slog.Any("error", err))
		return nil, err
	}
	log.Info("step finished", slog.String("step", first.Name), slog.String("status", first.Status))

	result := &Result{Project: p, Steps: make([]StepResult, 0, len(StepNames))}
	result.Steps = append(result.Steps, first)

	for _, st := range s.pipeline() {
		log.Debug("step starting", slog.String("step", st.name))
		res := st.run(ctx, p)
		if res.Status == StatusFailed {
			log.Error("step failed", slog.String("step", res.Name), slog.String("error", res.Message))
		} else {
			log.Info("step finished", slog.String("step", res.Name), slog.String("status", res.Status))
		}
		result.Steps = append(result.Steps, res)
	}

	return result, nil
}

// Plan reports what Scaffold would do for name without touching anything.
func (s *Scaffolder) Plan(name string) ([]StepResult, error) {
	p, err := s.project(name)
	if err != nil {
		return nil, err
	}

	steps := make([]StepResult, 0, len(StepNames))
	steps = append(steps, s.planDirectories(p))
	for _, st := range s.pipeline() {
		steps = append(steps, st.plan(p))
	}
	return steps, nil
}

func (s *Scaffolder) project(name string) (Project, error) {
	if name == "" {
		return Project{}, output.NewUserError("project name is required")
	}
	base := s.baseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Project{}, output.NewSystemErrorWithCause("resolving working directory", err)
		}
		base = wd
	}
	return NewProject(base, name, s.cfg.Layout.Packages()), nil
}

// step is one best-effort stage after directory creation.
type step struct {
	name string
	run  func(context.Context, Project) StepResult
	plan func(Project) StepResult
}

func (s *Scaffolder) pipeline() []step {
	return []step{
		{StepManifest, s.writeManifest, s.planManifest},
		{StepIgnore, s.writeIgnoreRules, s.planIgnoreRules},
		{StepLicense, s.writeLicense, s.planLicense},
		{StepBuildConfig, s.writeBuildConfig, s.planBuildConfig},
		{StepReadme, s.writeReadme, s.planReadme},
		{StepMetadata, s.writeMetadata, s.planMetadata},
		{StepPackageMarkers, s.writePackageMarkers, s.planPackageMarkers},
		{StepTemplateAssets, s.copyTemplateAssets, s.planTemplateAssets},
		{StepRegisterPath, s.registerPath, s.planRegisterPath},
		{StepRepository, s.initRepository, s.planRepository},
	}
}
