package main

import (
	"context"

	"github.com/aretw0/domino/internal/cli"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with the tile in the terminal",
	Long: `Draws the tile and reads one command per line:
  l  rotate left     r  rotate right     x  randomize
  h  help            q  quit

With --json every snapshot is written as one JSON line and commands may be
sent as {"intent":"rotate_left"}.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		jsonMode, _ := cmd.Flags().GetBool("json")

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		return cli.RunPlay(sigCtx, cli.PlayOptions{
			Options: cli.Options{Config: cfg},
			JSON:    jsonMode,
		})
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Bool("json", false, "Emit JSON lines instead of drawings")
}
