// Package config resolves where sprout keeps its configuration and loads the
// layered settings that drive the scaffolding pipeline.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Dir returns the sprout configuration directory.
//
// Resolution:
//   - $SPROUT_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/sprout if set (respects XDG on any platform)
//   - %AppData%/sprout on Windows
//   - ~/.config/sprout on macOS and Linux
func Dir() string {
	if dir := os.Getenv("SPROUT_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sprout")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "sprout")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sprout")
}

// DefaultFile returns the config file read when --config is not given.
func DefaultFile() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// ExpandHome replaces a leading "~" with the user's home directory.
// Paths without the prefix, or when the home directory is unknown, are
// returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
