package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/gorewood/sprout/internal/config"
)

//go:embed templates/*
var templateFS embed.FS

var (
	licenseTmpl  = template.Must(template.ParseFS(templateFS, "templates/LICENSE.tmpl"))
	metadataTmpl = template.Must(template.ParseFS(templateFS, "templates/setup.cfg.tmpl"))
)

const readmeBadge = "\n\n[![Code style: black](https://img.shields.io/badge/code%20style-black-000000.svg)](https://github.com/psf/black)"

// Manifest returns MANIFEST.in content for the named project.
func Manifest(name string) string {
	return "include " + name + "/README.md"
}

// IgnoreRules returns the static .gitignore rule set.
func IgnoreRules() string {
	return mustReadTemplate("templates/gitignore")
}

// BuildConfig returns pyproject.toml content. It does not depend on the
// project.
func BuildConfig() string {
	return mustReadTemplate("templates/pyproject.toml")
}

// License returns the MIT license text with the given copyright line.
func License(copyright string) (string, error) {
	var buf bytes.Buffer
	if err := licenseTmpl.Execute(&buf, struct{ Copyright string }{copyright}); err != nil {
		return "", fmt.Errorf("rendering license: %w", err)
	}
	return buf.String(), nil
}

// Readme returns README.md content: the black code-style badge, or a single
// space when the badge is off.
func Readme(badge bool) string {
	if badge {
		return readmeBadge
	}
	return " "
}

// Metadata returns setup.cfg content. The name, description and url fields
// are left blank to be filled in by hand.
func Metadata(m config.MetadataConfig) (string, error) {
	var buf bytes.Buffer
	if err := metadataTmpl.Execute(&buf, m); err != nil {
		return "", fmt.Errorf("rendering setup.cfg: %w", err)
	}
	return buf.String(), nil
}

func mustReadTemplate(name string) string {
	data, err := templateFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("scaffold: missing embedded template %s: %v", name, err))
	}
	return string(data)
}
