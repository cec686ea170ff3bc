package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/gorewood/sprout/internal/logging"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Layout.validate(),
		c.Ignore.validate(),
		c.Metadata.validate(),
		c.Register.validate(),
		c.Git.validate(),
		c.Remote.validate(),
	)
}

func (l *LogConfig) validate() error {
	var errs []error
	if !logging.ValidLevel(l.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}
	switch l.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}
	return errors.Join(errs...)
}

func (l *LayoutConfig) validate() error {
	switch l.Variant {
	case VariantDefault, VariantPartials:
		return nil
	}
	return fmt.Errorf("layout.variant must be one of: default, partials; got %q", l.Variant)
}

func (i *IgnoreConfig) validate() error {
	switch i.Mode {
	case IgnoreStatic:
		return nil
	case IgnoreGenerator:
		if name, _ := i.GeneratorArgs(); name == "" {
			return errors.New("ignore.generator must not be empty when ignore.mode is generator")
		}
		return nil
	}
	return fmt.Errorf("ignore.mode must be one of: static, generator; got %q", i.Mode)
}

func (m *MetadataConfig) validate() error {
	var errs []error
	if _, err := semver.NewVersion(m.Version); err != nil {
		errs = append(errs, fmt.Errorf("metadata.version %q is not a valid version: %w", m.Version, err))
	}
	if m.MaxLineLength < 1 {
		errs = append(errs, fmt.Errorf("metadata.max_line_length must be positive, got %d", m.MaxLineLength))
	}
	return errors.Join(errs...)
}

func (r *RegisterConfig) validate() error {
	var errs []error
	switch r.Target {
	case TargetPackage, TargetRoot:
	default:
		errs = append(errs, fmt.Errorf("register.target must be one of: package, root; got %q", r.Target))
	}
	if r.Enabled {
		if r.ShellFile == "" {
			errs = append(errs, errors.New("register.shell_file must not be empty when registration is enabled"))
		}
		if r.Variable == "" {
			errs = append(errs, errors.New("register.variable must not be empty when registration is enabled"))
		}
	}
	return errors.Join(errs...)
}

func (g *GitConfig) validate() error {
	var errs []error
	if g.Branch == "" {
		errs = append(errs, errors.New("git.branch must not be empty"))
	}
	if g.Message == "" {
		errs = append(errs, errors.New("git.message must not be empty"))
	}
	if g.Delay < 0 {
		errs = append(errs, fmt.Errorf("git.delay must not be negative, got %s", g.Delay))
	}
	return errors.Join(errs...)
}

func (r *RemoteConfig) validate() error {
	switch r.Mode {
	case RemoteNone:
		return nil
	case RemoteGitHub:
		if r.TokenFile == "" {
			return errors.New("remote.token_file must not be empty when remote.mode is github")
		}
		return nil
	case RemoteURL:
		if r.URLPattern == "" {
			return errors.New("remote.url_pattern must not be empty when remote.mode is url")
		}
		return nil
	}
	return fmt.Errorf("remote.mode must be one of: none, github, url; got %q", r.Mode)
}
