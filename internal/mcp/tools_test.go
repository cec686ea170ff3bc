package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/sprout/internal/command/commandtest"
	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/scaffold"
)

// testFactory builds Scaffolders that record commands instead of running them.
func testFactory(t *testing.T) (Factory, *commandtest.Recorder) {
	t.Helper()
	rec := &commandtest.Recorder{}
	cfg := config.Default()
	cfg.Git.Delay = 0
	return func(dir string) *scaffold.Scaffolder {
		return scaffold.New(cfg, scaffold.WithRunner(rec), scaffold.WithBaseDir(dir))
	}, rec
}

func TestHandleScaffold(t *testing.T) {
	factory, rec := testFactory(t)
	dir := t.TempDir()

	_, out, err := handleScaffold(factory)(context.Background(), &mcp.CallToolRequest{}, ScaffoldInput{Name: "demo", Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, filepath.Join(dir, "demo"), out.Project.RootPath)
	assert.Len(t, out.Steps, len(scaffold.StepNames))
	assert.FileExists(t, filepath.Join(dir, "demo", "demo", "__init__.py"))
	assert.NotEmpty(t, rec.Calls, "expected git commands to be recorded")
}

func TestHandleScaffold_PartialFailure(t *testing.T) {
	factory, rec := testFactory(t)
	rec.Responses = map[string]commandtest.Response{
		"git": {Err: os.ErrPermission},
	}

	_, out, err := handleScaffold(factory)(context.Background(), &mcp.CallToolRequest{}, ScaffoldInput{Name: "demo", Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "partial", out.Status)
}

func TestHandleScaffold_Existing(t *testing.T) {
	factory, _ := testFactory(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "demo"), 0o755))

	_, _, err := handleScaffold(factory)(context.Background(), &mcp.CallToolRequest{}, ScaffoldInput{Name: "demo", Dir: dir})
	assert.Error(t, err, "expected error for existing directory")
}

func TestHandleScaffold_DryRun(t *testing.T) {
	factory, rec := testFactory(t)
	dir := t.TempDir()

	_, out, err := handleScaffold(factory)(context.Background(), &mcp.CallToolRequest{}, ScaffoldInput{Name: "demo", Dir: dir, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, "dry_run", out.Status)
	assert.NoDirExists(t, filepath.Join(dir, "demo"), "dry run created the project directory")
	assert.Empty(t, rec.Calls, "dry run ran commands")
}

func TestHandlePlan(t *testing.T) {
	factory, _ := testFactory(t)

	_, out, err := handlePlan(factory)(context.Background(), &mcp.CallToolRequest{}, PlanInput{Name: "demo", Dir: t.TempDir()})
	require.NoError(t, err)
	require.Len(t, out.Steps, len(scaffold.StepNames))
	assert.Equal(t, scaffold.StepDirectories, out.Steps[0].Name)
	assert.Equal(t, scaffold.StatusDryRun, out.Steps[0].Status)
}

func TestHandlePlan_EmptyName(t *testing.T) {
	factory, _ := testFactory(t)

	_, _, err := handlePlan(factory)(context.Background(), &mcp.CallToolRequest{}, PlanInput{})
	assert.Error(t, err, "expected error for empty name")
}

func TestNewServer(t *testing.T) {
	factory, _ := testFactory(t)
	assert.NotNil(t, NewServer("test", factory))
}
