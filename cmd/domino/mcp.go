package main

import (
	"context"

	"github.com/aretw0/domino/internal/cli"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes one tile as an MCP server over Standard Input/Output.

Tools: rotate_left, rotate_right, randomize, snapshot, pip_table.
Resource: domino://tile`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return cli.RunMCP(context.Background(), cli.Options{Config: cfg})
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
