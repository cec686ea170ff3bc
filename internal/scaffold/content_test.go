package scaffold

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/sprout/internal/config"
)

const wantSetupCfg = `[metadata]
name =
version = 0.1
author = mclds
author_email = mclds@protonmail.com
description =
long_description = file: README.md
url =
classifiers =
    Programming Language :: Python :: 3.10
    Development Status :: 4 - Beta
    Environment :: Console
    Framework :: Celery
    License :: OSI Approved :: MIT License
    Operating System :: POSIX :: Linux

[options]
packages = find:
python_requires = >=3.7
include_package_data = True
verbose = 2
install_requires=
    mysql.connector
    snoop
    isort
    click
show_source = True

[flake8]
extend-ignore = F401 F841 W605 E704, E722, E1, W1, E2, W2, E3, W3, E4, W4, E5, W5, E731
max-line-length = 180
verbose = 2
show-source = True

[options.entry_points]
    console_scripts =
`

const wantPyproject = `[build-system]
requires = [
    "setuptools>=56",
    "wheel"
]
build-backend = "setuptools.build_meta"

[tool.isort]
profile = "black"`

const wantGitignore = `# Compiled python modules.
*.pyc

# Setuptools distribution folder.
/dist/

# Python egg metadata, regenerated from source files by setuptools.
/*.egg-info`

func TestManifest(t *testing.T) {
	assert.Equal(t, "include demo/README.md", Manifest("demo"))
}

func TestIgnoreRules(t *testing.T) {
	assert.Equal(t, wantGitignore, IgnoreRules())
}

func TestBuildConfig(t *testing.T) {
	assert.Equal(t, wantPyproject, BuildConfig())
}

func TestLicense(t *testing.T) {
	got, err := License("Copyright (c) 2021 James Calam Briggs")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "MIT License\n\nCopyright (c) 2021 James Calam Briggs\n\nPermission is hereby granted"),
		"License() header = %q", got[:80])
	assert.True(t, strings.HasSuffix(got, "DEALINGS IN THE\nSOFTWARE."),
		"License() should end without a trailing newline, got %q", got[len(got)-20:])
	for _, line := range strings.Split(got, "\n") {
		assert.False(t, strings.HasPrefix(line, " "), "License() line is indented: %q", line)
	}
}

func TestReadme(t *testing.T) {
	badge := Readme(true)
	assert.True(t, strings.HasPrefix(badge, "\n\n[![Code style: black]"), "Readme(true) = %q", badge)
	assert.Contains(t, badge, "https://github.com/psf/black")
	assert.Equal(t, " ", Readme(false))
}

func TestMetadata_Defaults(t *testing.T) {
	got, err := Metadata(config.Default().Metadata)
	require.NoError(t, err)
	assert.Equal(t, wantSetupCfg, got)
}

func TestMetadata_Custom(t *testing.T) {
	m := config.Default().Metadata
	m.Version = "1.2.0"
	m.Author = "someone"
	m.Dependencies = []string{"requests"}
	m.Classifiers = nil
	m.MaxLineLength = 100

	got, err := Metadata(m)
	require.NoError(t, err)
	for _, want := range []string{
		"version = 1.2.0\n",
		"author = someone\n",
		"classifiers =\n\n[options]",
		"install_requires=\n    requests\nshow_source = True",
		"max-line-length = 100\n",
	} {
		assert.Contains(t, got, want)
	}
}
