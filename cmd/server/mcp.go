// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/leseb/legalease/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server communicates over stdio using JSON-RPC and offers the tools
glossary_lookup, legal_chat, simplify_text and court_updates. Logs are
written to stderr.

Example client configuration:
  {
    "mcpServers": {
      "legalease": {
        "command": "/path/to/legalease",
        "args": ["mcp"]
      }
    }
  }`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(a.knowledge, a.simplifier, a.logger, Version)
	if err != nil {
		return err
	}

	a.logger.Info("MCP server starting on stdio")
	return server.Run(cmd.Context())
}
