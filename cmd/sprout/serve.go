package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	sproutmcp "github.com/gorewood/sprout/internal/mcp"
	"github.com/gorewood/sprout/internal/scaffold"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run sprout as a Model Context Protocol (MCP) server over stdio.

This exposes project scaffolding as MCP tools for any MCP-capable agent
environment. Configuration is loaded once at startup.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "sprout": {
        "command": "sprout",
        "args": ["serve"]
      }
    }
  }

Available tools: scaffold_project, plan_project`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			factory := func(dir string) *scaffold.Scaffolder {
				return scaffold.New(cfg, scaffold.WithLogger(logger), scaffold.WithBaseDir(dir))
			}
			server := sproutmcp.NewServer(buildVersion(), factory)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
