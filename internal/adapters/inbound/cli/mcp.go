package cli

import (
	mcpadapter "github.com/rtighilt/MARS/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the MARS MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start MARS MCP server (stdio)",
		Long:  "Start the MARS MCP server using stdio transport. This allows AI assistants to run antipattern detection and browse the rule catalog.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				projectPath = "."
			}
			log, err := newLogger(cmd, projectPath)
			if err != nil {
				return err
			}
			s := mcpadapter.NewMARSMCPServer(projectPath, newDetectService(log))
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")

	return cmd
}
