// Package hosting wraps the remote-hosting side of repository setup: the
// GitHub CLI for authenticated repository creation, and plain remote URL
// patterns for hosts without a CLI.
package hosting

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gorewood/sprout/internal/command"
)

// CreateOptions controls "gh repo create".
type CreateOptions struct {
	Name         string
	Remote       string
	Public       bool
	DisableIssue bool
	DisableWiki  bool
	Push         bool
}

// DefaultCreateOptions returns the flags the original workflow always used:
// public, issues and wiki disabled, source pushed immediately.
func DefaultCreateOptions(name, remote string) CreateOptions {
	return CreateOptions{
		Name:         name,
		Remote:       remote,
		Public:       true,
		DisableIssue: true,
		DisableWiki:  true,
		Push:         true,
	}
}

// Args returns the gh arguments for these options.
func (o CreateOptions) Args() []string {
	args := []string{"repo", "create", o.Name}
	if o.DisableIssue {
		args = append(args, "--disable-issues")
	}
	if o.DisableWiki {
		args = append(args, "--disable-wiki")
	}
	if o.Public {
		args = append(args, "--public")
	} else {
		args = append(args, "--private")
	}
	if o.Remote != "" {
		args = append(args, "--remote="+o.Remote)
	}
	args = append(args, "--source=.")
	if o.Push {
		args = append(args, "--push")
	}
	return args
}

// GitHub drives the gh CLI inside a repository directory.
type GitHub struct {
	Dir    string
	Runner command.Runner
}

// NewGitHub creates a GitHub client rooted at dir.
func NewGitHub(dir string, runner command.Runner) *GitHub {
	return &GitHub{Dir: dir, Runner: runner}
}

// Login authenticates gh with the token stored in tokenFile.
// The token is piped on stdin and never appears on the command line.
func (g *GitHub) Login(ctx context.Context, tokenFile string) error {
	f, err := os.Open(tokenFile)
	if err != nil {
		return fmt.Errorf("opening token file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only

	_, err = g.Runner.Run(ctx, command.Cmd{
		Name:  "gh",
		Args:  []string{"auth", "login", "--with-token"},
		Dir:   g.Dir,
		Stdin: f,
	})
	return err
}

// CreateRepo creates the remote repository from the working directory.
func (g *GitHub) CreateRepo(ctx context.Context, opts CreateOptions) error {
	_, err := g.Runner.Run(ctx, command.Cmd{Name: "gh", Args: opts.Args(), Dir: g.Dir})
	return err
}

// RemoteURL expands a remote URL pattern, replacing every "{name}" with the
// project name, e.g. "git@notabug.org:micaldas/{name}.git".
func RemoteURL(pattern, name string) string {
	return strings.ReplaceAll(pattern, "{name}", name)
}
