package cmd

import (
	"fmt"
	"os"

	"devsync/internal/report"
	"devsync/internal/scan"
	"devsync/internal/search"
	"devsync/internal/summarize"
	"devsync/internal/walker"

	"github.com/spf13/cobra"
)

var (
	flagRoot    string
	flagOut     string
	flagExts    []string
	flagService string
	flagModel   string
	flagLenient bool
)

var rootCmd = &cobra.Command{
	Use:   "devsync [symbol]",
	Short: "AI-powered codebase summaries and symbol search",
	Long: `devsync scans a directory tree of source files, extracts class and
function names, and attaches a model-generated summary per file.

With no argument it writes a Markdown report. With a symbol argument it
prints every scanned file declaring that exact class or function name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := runScan()
		if err != nil {
			return err
		}

		// One positional argument switches to search mode.
		if len(args) == 1 {
			term := args[0]
			results := search.Search(records, term)
			if len(results) == 0 {
				fmt.Printf("❌ `%s` not found in the codebase.\n", term)
				return nil
			}
			fmt.Printf("🔍 Found `%s` in:\n", term)
			for _, path := range results {
				fmt.Printf("- %s\n", path)
			}
			return nil
		}

		if err := report.Write(records, flagOut); err != nil {
			return err
		}
		fmt.Printf("✅ AI-powered code summary generated in %s!\n", flagOut)
		return nil
	},
}

// runScan wires the scanner with the configured summarization backend and
// runs it over the configured root.
func runScan() ([]scan.FileRecord, error) {
	backend := summarize.NewHFClient(flagService, flagModel)
	scanner := scan.New(scan.Config{
		Summarizer: summarize.New(backend),
		Lenient:    flagLenient,
	})
	return scanner.Scan(flagRoot, flagExts)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", ".", "directory to scan")
	rootCmd.PersistentFlags().StringVar(&flagOut, "out", report.DefaultOutputPath, "report output path")
	rootCmd.PersistentFlags().StringSliceVar(&flagExts, "ext", walker.DefaultExtensions, "file extensions to include")
	rootCmd.PersistentFlags().StringVar(&flagService, "service", "http://localhost:8080", "summarization service base URL")
	rootCmd.PersistentFlags().StringVar(&flagModel, "summary-model", summarize.DefaultModel, "summarization model")
	rootCmd.PersistentFlags().BoolVar(&flagLenient, "lenient", false, "record per-file failures instead of aborting the run")
}
