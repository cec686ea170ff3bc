package config

const (
	defaultMaxLineLength = 180
	defaultFlake8Ignore  = "F401 F841 W605 E704, E722, E1, W1, E2, W2, E3, W3, E4, W4, E5, W5, E731"
)

// defaults returns the default configuration values. They reproduce the
// files the scaffolder has always written and are overridden by the config
// file and SPROUT_ environment variables.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "warn",
		"log.format": "text",

		"layout.variant":     VariantDefault,
		"layout.subpackages": []string{},

		"ignore.mode":      IgnoreStatic,
		"ignore.generator": "git-ignore -u python",

		"license.copyright": "Copyright (c) 2021 James Calam Briggs",

		"readme.badge": true,

		"metadata.version":      "0.1",
		"metadata.author":       "mclds",
		"metadata.author_email": "mclds@protonmail.com",
		"metadata.classifiers": []string{
			"Programming Language :: Python :: 3.10",
			"Development Status :: 4 - Beta",
			"Environment :: Console",
			"Framework :: Celery",
			"License :: OSI Approved :: MIT License",
			"Operating System :: POSIX :: Linux",
		},
		"metadata.dependencies":    []string{"mysql.connector", "snoop", "isort", "click"},
		"metadata.flake8_ignore":   defaultFlake8Ignore,
		"metadata.max_line_length": defaultMaxLineLength,

		"templates.dir":      "",
		"templates.patterns": []string{"_call_*.py"},

		"register.enabled":     false,
		"register.shell_file":  "~/.zshenv",
		"register.variable":    "PYTHONPATH",
		"register.target":      TargetPackage,
		"register.shell":       "",
		"register.keep_script": false,

		"git.branch":  "master",
		"git.message": "First Commit",
		"git.delay":   "2s",

		"remote.mode":        RemoteNone,
		"remote.token_file":  "~/documentation/github_personal_access_token",
		"remote.name":        "origin_github",
		"remote.url_pattern": "git@notabug.org:micaldas/{name}.git",
	}
}
