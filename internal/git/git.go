package git

import (
	"context"

	"github.com/gorewood/sprout/internal/command"
)

// Run executes a git command in the current directory and returns its
// trimmed stdout.
func Run(args ...string) (string, error) {
	return RunContext(context.Background(), args...)
}

// RunContext executes a git command with the given context.
func RunContext(ctx context.Context, args ...string) (string, error) {
	res, err := command.ExecRunner{}.Run(ctx, command.Cmd{Name: "git", Args: args})
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// Version returns the output of "git --version".
func Version() (string, error) {
	return Run("--version")
}

// Repo runs git inside one repository directory.
type Repo struct {
	Dir    string
	Runner command.Runner
}

// NewRepo creates a Repo rooted at dir.
func NewRepo(dir string, runner command.Runner) *Repo {
	return &Repo{Dir: dir, Runner: runner}
}

// Init creates the repository with the given initial branch name.
func (r *Repo) Init(ctx context.Context, branch string) error {
	return r.run(ctx, "init", "-b", branch)
}

// AddAll stages every file in the working tree.
func (r *Repo) AddAll(ctx context.Context) error {
	return r.run(ctx, "add", ".")
}

// Commit records the staged files with the given message.
func (r *Repo) Commit(ctx context.Context, message string) error {
	return r.run(ctx, "commit", "-m", message)
}

// AddRemote registers a remote URL under name.
func (r *Repo) AddRemote(ctx context.Context, name, url string) error {
	return r.run(ctx, "remote", "add", name, url)
}

// Push pushes branch to remote and sets it as upstream.
func (r *Repo) Push(ctx context.Context, remote, branch string) error {
	return r.run(ctx, "push", "-u", remote, branch)
}

func (r *Repo) run(ctx context.Context, args ...string) error {
	_, err := r.Runner.Run(ctx, r.cmd(args...))
	return err
}

func (r *Repo) cmd(args ...string) command.Cmd {
	return command.Cmd{Name: "git", Args: args, Dir: r.Dir}
}
