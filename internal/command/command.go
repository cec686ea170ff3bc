// Package command runs external programs synchronously and reports their
// exit status and captured output.
//
// The scaffolding pipeline never builds shell strings. Every external tool
// (git, gh, the ignore generator, the registration script) is described by
// a Cmd and executed through a Runner, which makes the pipeline testable
// with a recording fake:
//
//	res, err := runner.Run(ctx, command.Cmd{Name: "git", Args: []string{"init"}, Dir: root})
//
// Fixed delays between dependent commands are modelled with Wait.
package command

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/gorewood/sprout/internal/output"
)

// Cmd describes one external program invocation.
type Cmd struct {
	Name  string
	Args  []string
	Dir   string
	Stdin io.Reader
}

// String renders the command line for logs and step messages.
func (c Cmd) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result holds the exit status and captured output of a finished command.
// Stdout and Stderr are trimmed of surrounding whitespace.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes commands.
type Runner interface {
	Run(ctx context.Context, cmd Cmd) (Result, error)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct{}

// Run executes cmd and blocks until it exits.
// A missing executable or a non-zero exit is returned as an
// *output.ExitError (system error) whose message includes stderr; the
// Result is still populated for non-zero exits.
func (ExecRunner) Run(ctx context.Context, cmd Cmd) (Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = cmd.Stdin

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}
	if err == nil {
		return res, nil
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) {
		res.ExitCode = -1
		return res, output.NewSystemErrorWithCause(cmd.Name+" not found: ensure it is installed and in PATH", err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
	} else {
		res.ExitCode = -1
	}

	msg := res.Stderr
	if msg == "" {
		msg = err.Error()
	}
	return res, output.NewSystemErrorWithCause(cmd.Name+" failed: "+msg, err)
}

// Wait blocks for d, returning early only when ctx is cancelled.
// A non-positive d returns immediately.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
