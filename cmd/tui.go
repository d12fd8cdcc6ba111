package cmd

import (
	"devsync/internal/tui"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactively search the scanned tree for symbols",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(tui.Config{
			Root: flagRoot,
			Scan: runScan,
		})
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
