package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// TemplateSource provides the reusable files copied into new packages.
// Any fs.FS works; the CLI uses os.DirFS on the configured template
// directory.
type TemplateSource interface {
	fs.FS
}

// copyAssets copies every file in src matching one of patterns into the
// package directory, then copies each top-level directory of src named like
// one of the project's subpackages into that subpackage. Relative layout is
// preserved. It returns the copied paths relative to the package directory.
func copyAssets(src TemplateSource, patterns []string, p Project) ([]string, error) {
	var copied []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(src, pattern)
		if err != nil {
			return copied, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := fs.Stat(src, match)
			if err != nil {
				return copied, fmt.Errorf("reading template %s: %w", match, err)
			}
			if info.IsDir() {
				continue
			}
			if err := copyAsset(src, match, filepath.Join(p.PackagePath, filepath.FromSlash(match))); err != nil {
				return copied, err
			}
			seen[match] = true
			copied = append(copied, match)
		}
	}

	for _, sub := range p.Subpackages {
		info, err := fs.Stat(src, sub)
		if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
			continue
		}
		if err != nil {
			return copied, fmt.Errorf("reading template %s: %w", sub, err)
		}

		err = fs.WalkDir(src, sub, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			dst := filepath.Join(p.PackagePath, filepath.FromSlash(path))
			if d.IsDir() {
				return os.MkdirAll(dst, 0o755)
			}
			if seen[path] {
				return nil
			}
			if err := copyAsset(src, path, dst); err != nil {
				return err
			}
			seen[path] = true
			copied = append(copied, path)
			return nil
		})
		if err != nil {
			return copied, fmt.Errorf("copying %s: %w", sub, err)
		}
	}

	return copied, nil
}

func copyAsset(src fs.FS, name, dst string) error {
	data, err := fs.ReadFile(src, name)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", name, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil { //nolint:gosec // project files are world-readable
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
