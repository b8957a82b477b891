package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/domino"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of domino",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("domino version %s\n", strings.TrimSpace(domino.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
