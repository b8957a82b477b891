package main

import (
	"os"

	"github.com/aretw0/domino/internal/cli"
	"github.com/aretw0/domino/pkg/domain"
	"github.com/spf13/cobra"
)

var pipsCmd = &cobra.Command{
	Use:   "pips [vertical|horizontal]",
	Short: "Print which pips are visible for every face value",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o := domain.Vertical
		if len(args) == 1 {
			var err error
			if o, err = domain.ParseOrientation(args[0]); err != nil {
				return err
			}
		}
		jsonMode, _ := cmd.Flags().GetBool("json")
		return cli.PrintPips(os.Stdout, o, jsonMode)
	},
}

func init() {
	rootCmd.AddCommand(pipsCmd)
	pipsCmd.Flags().Bool("json", false, "Print the table as JSON")
}
