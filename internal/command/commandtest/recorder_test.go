package commandtest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/sprout/internal/command"
)

func TestRecorder(t *testing.T) {
	boom := errors.New("boom")
	rec := &Recorder{Responses: map[string]Response{
		"git commit -m msg": {Result: command.Result{ExitCode: 1}, Err: boom},
		"gh":                {Result: command.Result{Stdout: "logged in"}},
	}}
	ctx := context.Background()

	_, err := rec.Run(ctx, command.Cmd{Name: "git", Args: []string{"init"}})
	require.NoError(t, err)

	_, err = rec.Run(ctx, command.Cmd{Name: "git", Args: []string{"commit", "-m", "msg"}})
	require.ErrorIs(t, err, boom)

	res, err := rec.Run(ctx, command.Cmd{Name: "gh", Args: []string{"auth"}, Stdin: strings.NewReader("tok")})
	require.NoError(t, err)
	assert.Equal(t, "logged in", res.Stdout)

	assert.Equal(t, []string{"git init", "git commit -m msg", "gh auth"}, rec.Lines())
	assert.Equal(t, "tok", rec.Stdins[2])
}
