// Package commandtest provides a recording command.Runner for tests.
package commandtest

import (
	"context"
	"io"
	"sync"

	"github.com/gorewood/sprout/internal/command"
)

// Recorder is a command.Runner that records every command instead of
// executing it. Responses are looked up by the full command line first
// ("git commit -m First Commit") and then by program name ("git"); commands
// with no canned response succeed with an empty Result.
type Recorder struct {
	mu        sync.Mutex
	Calls     []command.Cmd
	Stdins    []string
	Responses map[string]Response
}

// Response is the canned outcome for a command name.
type Response struct {
	Result command.Result
	Err    error
}

// Run records cmd and returns its canned response.
func (r *Recorder) Run(_ context.Context, cmd command.Cmd) (command.Result, error) {
	stdin := ""
	if cmd.Stdin != nil {
		data, err := io.ReadAll(cmd.Stdin)
		if err == nil {
			stdin = string(data)
		}
		cmd.Stdin = nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, cmd)
	r.Stdins = append(r.Stdins, stdin)

	if resp, ok := r.Responses[cmd.String()]; ok {
		return resp.Result, resp.Err
	}
	if resp, ok := r.Responses[cmd.Name]; ok {
		return resp.Result, resp.Err
	}
	return command.Result{}, nil
}

// Lines returns the recorded commands rendered with Cmd.String.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		lines = append(lines, c.String())
	}
	return lines
}
