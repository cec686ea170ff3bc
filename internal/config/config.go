package config

import (
	"os"
	"strings"
	"time"
)

// Config holds every setting the scaffolding pipeline and CLI read.
type Config struct {
	Log       LogConfig       `koanf:"log" yaml:"log" json:"log"`
	Layout    LayoutConfig    `koanf:"layout" yaml:"layout" json:"layout"`
	Ignore    IgnoreConfig    `koanf:"ignore" yaml:"ignore" json:"ignore"`
	License   LicenseConfig   `koanf:"license" yaml:"license" json:"license"`
	Readme    ReadmeConfig    `koanf:"readme" yaml:"readme" json:"readme"`
	Metadata  MetadataConfig  `koanf:"metadata" yaml:"metadata" json:"metadata"`
	Templates TemplatesConfig `koanf:"templates" yaml:"templates" json:"templates"`
	Register  RegisterConfig  `koanf:"register" yaml:"register" json:"register"`
	Git       GitConfig       `koanf:"git" yaml:"git" json:"git"`
	Remote    RemoteConfig    `koanf:"remote" yaml:"remote" json:"remote"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level" json:"level"`
	Format string `koanf:"format" yaml:"format" json:"format"`
}

// Layout variants.
const (
	VariantDefault  = "default"
	VariantPartials = "partials"
)

// LayoutConfig selects the directory layout inside the package.
type LayoutConfig struct {
	Variant     string   `koanf:"variant" yaml:"variant" json:"variant"`
	Subpackages []string `koanf:"subpackages" yaml:"subpackages" json:"subpackages"`
}

// Packages returns the subpackage directories to create under the package.
// An explicit list wins; otherwise the partials variant implies configs and
// partials.
func (l LayoutConfig) Packages() []string {
	if len(l.Subpackages) > 0 {
		return l.Subpackages
	}
	if l.Variant == VariantPartials {
		return []string{"configs", "partials"}
	}
	return nil
}

// Ignore modes.
const (
	IgnoreStatic    = "static"
	IgnoreGenerator = "generator"
)

// IgnoreConfig controls how .gitignore is produced.
type IgnoreConfig struct {
	Mode      string `koanf:"mode" yaml:"mode" json:"mode"`
	Generator string `koanf:"generator" yaml:"generator" json:"generator"`
}

// GeneratorArgs splits the generator command line into program and args.
func (i IgnoreConfig) GeneratorArgs() (string, []string) {
	fields := strings.Fields(i.Generator)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// LicenseConfig holds the copyright line placed in LICENSE.
type LicenseConfig struct {
	Copyright string `koanf:"copyright" yaml:"copyright" json:"copyright"`
}

// ReadmeConfig controls README.md content.
type ReadmeConfig struct {
	Badge bool `koanf:"badge" yaml:"badge" json:"badge"`
}

// MetadataConfig holds the values rendered into setup.cfg.
type MetadataConfig struct {
	Version       string   `koanf:"version" yaml:"version" json:"version"`
	Author        string   `koanf:"author" yaml:"author" json:"author"`
	AuthorEmail   string   `koanf:"author_email" yaml:"author_email" json:"author_email"`
	Classifiers   []string `koanf:"classifiers" yaml:"classifiers" json:"classifiers"`
	Dependencies  []string `koanf:"dependencies" yaml:"dependencies" json:"dependencies"`
	Flake8Ignore  string   `koanf:"flake8_ignore" yaml:"flake8_ignore" json:"flake8_ignore"`
	MaxLineLength int      `koanf:"max_line_length" yaml:"max_line_length" json:"max_line_length"`
}

// TemplatesConfig locates the optional template assets copied into the package.
type TemplatesConfig struct {
	Dir      string   `koanf:"dir" yaml:"dir" json:"dir"`
	Patterns []string `koanf:"patterns" yaml:"patterns" json:"patterns"`
}

// Registration targets.
const (
	TargetPackage = "package"
	TargetRoot    = "root"
)

// RegisterConfig controls adding the project to the shell search path.
type RegisterConfig struct {
	Enabled    bool   `koanf:"enabled" yaml:"enabled" json:"enabled"`
	ShellFile  string `koanf:"shell_file" yaml:"shell_file" json:"shell_file"`
	Variable   string `koanf:"variable" yaml:"variable" json:"variable"`
	Target     string `koanf:"target" yaml:"target" json:"target"`
	Shell      string `koanf:"shell" yaml:"shell" json:"shell"`
	KeepScript bool   `koanf:"keep_script" yaml:"keep_script" json:"keep_script"`
}

// ResolvedShell returns the shell used to reload the startup file: the
// configured one, then $SHELL, then sh.
func (r RegisterConfig) ResolvedShell() string {
	if r.Shell != "" {
		return r.Shell
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "sh"
}

// GitConfig controls the initial commit.
type GitConfig struct {
	Branch  string        `koanf:"branch" yaml:"branch" json:"branch"`
	Message string        `koanf:"message" yaml:"message" json:"message"`
	Delay   time.Duration `koanf:"delay" yaml:"delay" json:"delay"`
}

// Remote modes.
const (
	RemoteNone   = "none"
	RemoteGitHub = "github"
	RemoteURL    = "url"
)

// RemoteConfig controls publishing the new repository.
type RemoteConfig struct {
	Mode       string `koanf:"mode" yaml:"mode" json:"mode"`
	TokenFile  string `koanf:"token_file" yaml:"token_file" json:"token_file"`
	Name       string `koanf:"name" yaml:"name" json:"name"`
	URLPattern string `koanf:"url_pattern" yaml:"url_pattern" json:"url_pattern"`
}
