package scaffold

import (
	"fmt"
	"os"
	"strings"

	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/hosting"
	"github.com/gorewood/sprout/internal/shellenv"
)

func (s *Scaffolder) planDirectories(p Project) StepResult {
	if _, err := os.Stat(p.RootPath); err == nil {
		return StepResult{Name: StepDirectories, Status: StatusFailed, Message: p.RootPath + " already exists"}
	}
	dirs := []string{p.Name + "/", p.Name + "/" + p.Name + "/"}
	for _, sub := range p.Subpackages {
		dirs = append(dirs, p.Name+"/"+p.Name+"/"+sub+"/")
	}
	return dryRunStep(StepDirectories, "would create "+strings.Join(dirs, ", "))
}

func (s *Scaffolder) planManifest(Project) StepResult {
	return dryRunStep(StepManifest, "would write MANIFEST.in")
}

func (s *Scaffolder) planIgnoreRules(Project) StepResult {
	if s.cfg.Ignore.Mode == config.IgnoreGenerator {
		return dryRunStep(StepIgnore, "would write .gitignore from "+s.cfg.Ignore.Generator)
	}
	return dryRunStep(StepIgnore, "would write .gitignore")
}

func (s *Scaffolder) planLicense(Project) StepResult {
	return dryRunStep(StepLicense, "would write LICENSE (MIT)")
}

func (s *Scaffolder) planBuildConfig(Project) StepResult {
	return dryRunStep(StepBuildConfig, "would write pyproject.toml")
}

func (s *Scaffolder) planReadme(Project) StepResult {
	return dryRunStep(StepReadme, "would write README.md")
}

func (s *Scaffolder) planMetadata(Project) StepResult {
	return dryRunStep(StepMetadata, "would write setup.cfg (version "+s.cfg.Metadata.Version+")")
}

func (s *Scaffolder) planPackageMarkers(p Project) StepResult {
	return dryRunStep(StepPackageMarkers, fmt.Sprintf("would write %d __init__.py", len(p.PackageDirs())))
}

func (s *Scaffolder) planTemplateAssets(Project) StepResult {
	if s.templates == nil {
		return skippedStep(StepTemplateAssets, "no template source configured")
	}
	return dryRunStep(StepTemplateAssets, "would copy "+strings.Join(s.cfg.Templates.Patterns, ", "))
}

func (s *Scaffolder) planRegisterPath(p Project) StepResult {
	reg := s.cfg.Register
	if !reg.Enabled {
		return skippedStep(StepRegisterPath, "disabled")
	}
	shellFile := config.ExpandHome(reg.ShellFile)
	entry := registerEntry(reg, p)
	if found, err := shellenv.Contains(shellFile, reg.Variable, entry); err == nil && found {
		return skippedStep(StepRegisterPath, "already registered")
	}
	return dryRunStep(StepRegisterPath, fmt.Sprintf("would add %s to %s in %s", entry, reg.Variable, shellFile))
}

func (s *Scaffolder) planRepository(p Project) StepResult {
	msg := "would run git init -b " + s.cfg.Git.Branch + ", add, and commit"
	switch s.cfg.Remote.Mode {
	case config.RemoteGitHub:
		msg += ", then create GitHub repository " + p.Name
	case config.RemoteURL:
		msg += ", then push to " + hosting.RemoteURL(s.cfg.Remote.URLPattern, p.Name)
	}
	return dryRunStep(StepRepository, msg)
}
