package hosting

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/sprout/internal/command/commandtest"
)

func TestCreateOptions_Args(t *testing.T) {
	tests := []struct {
		name string
		opts CreateOptions
		want string
	}{
		{
			name: "defaults",
			opts: DefaultCreateOptions("demo", "origin_github"),
			want: "repo create demo --disable-issues --disable-wiki --public --remote=origin_github --source=. --push",
		},
		{
			name: "private without remote name",
			opts: CreateOptions{Name: "demo"},
			want: "repo create demo --private --source=.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strings.Join(tt.opts.Args(), " "))
		})
	}
}

func TestGitHub_LoginPipesToken(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(tokenFile, []byte("ghp_example\n"), 0o600))

	rec := &commandtest.Recorder{}
	gh := NewGitHub("/work/demo", rec)
	require.NoError(t, gh.Login(context.Background(), tokenFile))

	require.Len(t, rec.Calls, 1)
	assert.Equal(t, "gh auth login --with-token", rec.Calls[0].String())
	assert.NotContains(t, rec.Calls[0].String(), "ghp_example", "token leaked into argv")
	assert.Equal(t, "ghp_example\n", rec.Stdins[0])
	assert.Equal(t, "/work/demo", rec.Calls[0].Dir)
}

func TestGitHub_LoginMissingTokenFile(t *testing.T) {
	rec := &commandtest.Recorder{}
	err := NewGitHub(t.TempDir(), rec).Login(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Empty(t, rec.Calls, "gh should not run without a token")
}

func TestRemoteURL(t *testing.T) {
	assert.Equal(t, "git@notabug.org:micaldas/demo.git", RemoteURL("git@notabug.org:micaldas/{name}.git", "demo"))
}
