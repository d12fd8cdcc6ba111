package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Render the generated report in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(flagOut)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("report not found at %s\nRun 'devsync' first to generate it", flagOut)
			}
			return fmt.Errorf("read report: %w", err)
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("create renderer: %w", err)
		}

		out, err := r.Render(string(data))
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}

		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
