// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/lift/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to log sessions and read your training
history through a standardized protocol. The server communicates via
stdin/stdout; logs go to stderr or --log-file.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "lift": {
        "command": "lift",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_profiles       List profiles and the active one
  set_active_profile  Switch the active profile
  list_exercises      List the exercise library
  add_exercise        Add an exercise
  delete_exercise     Remove an exercise (history is kept)
  log_session         Log a session with sets per exercise
  list_sessions       Recent sessions
  delete_session      Delete a session
  personal_records    Best e1RM per exercise
  trend               e1RM per session for one exercise
  window_volume       Volume between two dates
  export_range        Export a date range as JSON, YAML, or CSV

AVAILABLE RESOURCES:

  lift://dashboard        Last 7 days and top records
  lift://sessions/recent  Last 10 sessions
  lift://exercises        Active exercises and day templates`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(liftStore, version)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
