package main

import (
	"fmt"
	"os"

	"github.com/aretw0/domino/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "domino",
	Short: "Domino is an interactive two-square domino tile",
	Long: `Domino renders a single domino tile and lets you rotate it left or right
and draw new random faces, in the terminal, in the browser or through MCP.`,
	SilenceUsage: true,
	RunE:         playCmd.RunE,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: text or json")
	flags.String("color", "", "Color mode: auto, always, never")
	flags.Uint64("seed", 0, "Seed for reproducible face draws")

	rootCmd.Flags().Bool("json", false, "Emit JSON lines instead of drawings")
}

// loadConfig resolves defaults, the config file and DOMINO_* variables, then
// applies the flags the user actually set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetUint64("seed")
		cfg.SetSeed(seed)
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
	return cfg, cfg.Validate()
}
