package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"devsync/internal/scan"
)

// DefaultOutputPath is where the report lands unless overridden.
const DefaultOutputPath = "DevSync.md"

// Title heads every generated report.
const Title = "# CodeMap Summary (AI-Powered) 🤖"

// Render serializes the records into a single Markdown document: one section
// per record, in input order. Empty class or function lists are omitted
// entirely rather than rendered as empty headings.
func Render(records []scan.FileRecord) string {
	var b strings.Builder
	b.WriteString(Title + "\n\n")

	for _, rec := range records {
		fmt.Fprintf(&b, "## %s\n", filepath.Base(rec.Path))
		fmt.Fprintf(&b, "📂 **Path:** `%s`\n\n", rec.Path)

		if len(rec.Classes) > 0 {
			b.WriteString("### Classes\n")
			for _, cls := range rec.Classes {
				fmt.Fprintf(&b, "- `%s`\n", cls)
			}
		}

		if len(rec.Functions) > 0 {
			b.WriteString("\n### Functions\n")
			for _, fn := range rec.Functions {
				fmt.Fprintf(&b, "- `%s`\n", fn)
			}
		}

		b.WriteString("\n### AI-Powered Summary 📜\n")
		fmt.Fprintf(&b, "📝 %s\n\n", rec.Summary)
		b.WriteString("\n---\n")
	}

	return b.String()
}

// Write renders the records and overwrites path unconditionally. There is no
// merging with a previous run's output.
func Write(records []scan.FileRecord, path string) error {
	if err := os.WriteFile(path, []byte(Render(records)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
