package main

import (
	"context"

	"github.com/aretw0/domino/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tile in the browser",
	Long: `Starts an HTTP server with the tile page on /, a websocket on /ws,
the pip table on /api/pips and Prometheus metrics on /metrics.
Every browser connection gets its own tile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		return cli.RunServe(sigCtx, cli.Options{Config: cfg})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on (default 127.0.0.1:8080)")
}
