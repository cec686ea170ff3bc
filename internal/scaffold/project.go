package scaffold

import "path/filepath"

// Step statuses.
const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
	StatusDryRun  = "dry_run"
)

// Step names, stable across releases.
const (
	StepDirectories    = "directories"
	StepManifest       = "manifest"
	StepIgnore         = "ignore"
	StepLicense        = "license"
	StepBuildConfig    = "build_config"
	StepReadme         = "readme"
	StepMetadata       = "metadata"
	StepPackageMarkers = "package_markers"
	StepTemplateAssets = "template_assets"
	StepRegisterPath   = "register_path"
	StepRepository     = "repository"
)

// StepNames lists every step in pipeline order.
var StepNames = []string{
	StepDirectories,
	StepManifest,
	StepIgnore,
	StepLicense,
	StepBuildConfig,
	StepReadme,
	StepMetadata,
	StepPackageMarkers,
	StepTemplateAssets,
	StepRegisterPath,
	StepRepository,
}

// Project is the layout of one scaffolded project. The name is used verbatim
// for both the root directory and the package directory inside it.
type Project struct {
	Name        string   `json:"name"`
	RootPath    string   `json:"root_path"`
	PackagePath string   `json:"package_path"`
	Subpackages []string `json:"subpackages,omitempty"`
}

// NewProject lays out a project named name under baseDir.
func NewProject(baseDir, name string, subpackages []string) Project {
	root := filepath.Join(baseDir, name)
	return Project{
		Name:        name,
		RootPath:    root,
		PackagePath: filepath.Join(root, name),
		Subpackages: subpackages,
	}
}

// SubpackagePath returns the directory of a subpackage.
func (p Project) SubpackagePath(sub string) string {
	return filepath.Join(p.PackagePath, sub)
}

// PackageDirs returns the package directory followed by every subpackage
// directory.
func (p Project) PackageDirs() []string {
	dirs := make([]string, 0, 1+len(p.Subpackages))
	dirs = append(dirs, p.PackagePath)
	for _, sub := range p.Subpackages {
		dirs = append(dirs, p.SubpackagePath(sub))
	}
	return dirs
}

// StepResult is the outcome of one pipeline step.
type StepResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func okStep(name, message string) StepResult {
	return StepResult{Name: name, Status: StatusOK, Message: message}
}

func skippedStep(name, message string) StepResult {
	return StepResult{Name: name, Status: StatusSkipped, Message: message}
}

func failedStep(name string, err error) StepResult {
	return StepResult{Name: name, Status: StatusFailed, Message: err.Error()}
}

func dryRunStep(name, message string) StepResult {
	return StepResult{Name: name, Status: StatusDryRun, Message: message}
}

// Result is the outcome of a full pipeline run.
type Result struct {
	Project Project      `json:"project"`
	Steps   []StepResult `json:"steps"`
}

// Failed returns the steps that failed, in pipeline order.
func (r *Result) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if s.Status == StatusFailed {
			failed = append(failed, s)
		}
	}
	return failed
}

// Succeeded reports whether the named step completed with status ok.
func (r *Result) Succeeded(name string) bool {
	for _, s := range r.Steps {
		if s.Name == name && s.Status == StatusOK {
			return true
		}
	}
	return false
}
