package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/gorewood/sprout/internal/shellenv"
)

const envPrefix = "SPROUT_"

// listKeys are split on commas when they arrive through the environment.
var listKeys = map[string]bool{
	"layout.subpackages":    true,
	"metadata.classifiers":  true,
	"metadata.dependencies": true,
	"templates.patterns":    true,
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	file     string
	explicit bool
	envFile  string
}

// WithFile reads the config from path instead of DefaultFile. Unlike the
// default file, an explicit file must exist.
func WithFile(path string) Option {
	return func(o *loadOptions) {
		if path != "" {
			o.file = path
			o.explicit = true
		}
	}
}

// WithEnvFile overrides the env-style overrides file (default <Dir>/env).
// An empty path disables it.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) {
		o.envFile = path
	}
}

// Default returns the built-in configuration without reading any file or
// environment variable.
func Default() *Config {
	k := koanf.New(".")
	loadDefaults(k)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return &cfg
}

// Load reads configuration in layers (highest precedence last):
//
//  1. Built-in defaults
//  2. YAML config file (DefaultFile or WithFile)
//  3. Environment variables with the SPROUT_ prefix, after applying any
//     unset variables from the <Dir>/env overrides file
//
// Environment variable names map onto config keys by matching against the
// known keys, so underscores inside a key survive:
//
//	SPROUT_REMOTE_MODE        -> remote.mode
//	SPROUT_REGISTER_SHELL_FILE -> register.shell_file
//	SPROUT_GIT_DELAY          -> git.delay
func Load(opts ...Option) (*Config, error) {
	o := &loadOptions{file: DefaultFile()}
	if dir := Dir(); dir != "" {
		o.envFile = filepath.Join(dir, "env")
	}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	loadDefaults(k)

	if err := loadFile(k, o); err != nil {
		return nil, err
	}

	if o.envFile != "" {
		if err := shellenv.Load(o.envFile); err != nil {
			return nil, fmt.Errorf("loading env overrides: %w", err)
		}
	}

	envLookup := buildEnvLookup(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

			koanfKey, ok := envLookup[key]
			if !ok {
				koanfKey = strings.ReplaceAll(key, "_", ".")
			}
			if listKeys[koanfKey] {
				return koanfKey, splitList(value)
			}
			return koanfKey, value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) {
	for key, value := range defaults() {
		_ = k.Set(key, value)
	}
}

func loadFile(k *koanf.Koanf, o *loadOptions) error {
	if o.file == "" {
		return nil
	}
	if _, err := os.Stat(o.file); err != nil {
		if errors.Is(err, os.ErrNotExist) && !o.explicit {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", o.file, err)
	}
	if err := k.Load(file.Provider(o.file), yaml.Parser()); err != nil {
		return fmt.Errorf("loading config %s: %w", o.file, err)
	}
	return nil
}

// buildEnvLookup maps env-style keys ("register_shell_file") to koanf keys
// ("register.shell_file").
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
