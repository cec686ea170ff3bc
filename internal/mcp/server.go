// Package mcp provides a Model Context Protocol server for sprout.
// It exposes project scaffolding as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/sprout/internal/scaffold"
)

// Factory builds a Scaffolder that creates projects under dir. An empty dir
// means the server's working directory.
type Factory func(dir string) *scaffold.Scaffolder

// NewServer creates an MCP server with all sprout tools registered.
func NewServer(version string, factory Factory) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "sprout",
		Version: version,
	}, nil)
	registerTools(server, factory)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// scaffoldAnnotations describes the scaffold tool: additive on the local
// filesystem, but it may push to a remote host.
func scaffoldAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds all sprout tools to the server.
func registerTools(server *mcp.Server, factory Factory) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "scaffold_project",
		Description: "Create a new Python project <dir>/<name>/<name>/ with license, packaging metadata, " +
			"readme, ignore rules and an initial git commit. Fails if the directory already exists. " +
			"Individual step failures are reported per step and do not stop the run.",
		Annotations: scaffoldAnnotations(),
	}, handleScaffold(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "plan_project",
		Description: "Show the steps scaffold_project would run for a project name without creating anything.",
		Annotations: readOnlyAnnotations(),
	}, handlePlan(factory))
}
