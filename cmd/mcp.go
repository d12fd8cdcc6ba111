package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"devsync/internal/report"
	"devsync/internal/scan"
	"devsync/internal/search"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP server exposing symbol search over the scanned tree",
	RunE:  runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	// Scan once at startup; the tools serve the in-memory records.
	records, err := runScan()
	if err != nil {
		return err
	}

	s := mcpserver.NewMCPServer("devsync", "1.0.0", mcpserver.WithToolCapabilities(false))

	s.AddTool(searchSymbolTool(), makeSearchSymbolHandler(records))
	s.AddTool(getFileRecordTool(), makeFileRecordHandler(records))
	s.AddTool(listScannedFilesTool(), makeListFilesHandler(records))
	s.AddTool(getReportTool(), makeReportHandler(records))

	return mcpserver.ServeStdio(s)
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

// --- Tool schema builders ---

var readOnlyAnnotation = mcp.ToolAnnotation{
	ReadOnlyHint:    mcp.ToBoolPtr(true),
	DestructiveHint: mcp.ToBoolPtr(false),
	IdempotentHint:  mcp.ToBoolPtr(true),
	OpenWorldHint:   mcp.ToBoolPtr(false),
}

func searchSymbolTool() mcp.Tool {
	return mcp.NewTool("search_symbol",
		mcp.WithDescription("Find every scanned file declaring a class or function with the exact given name. Matching is case-sensitive exact equality, not substring search."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
		mcp.WithString("term",
			mcp.Required(),
			mcp.Description("Exact class or function name to look up"),
		),
	)
}

func getFileRecordTool() mcp.Tool {
	return mcp.NewTool("get_file_record",
		mcp.WithDescription("Get the extracted classes, functions, and generated summary for one scanned file."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("File path as reported by the scan"),
		),
	)
}

func listScannedFilesTool() mcp.Tool {
	return mcp.NewTool("list_scanned_files",
		mcp.WithDescription("List all scanned files with their symbol counts and a summary snippet."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
		mcp.WithString("ext",
			mcp.Description("Optional extension filter (e.g. '.py'). Case-sensitive."),
		),
	)
}

func getReportTool() mcp.Tool {
	return mcp.NewTool("get_report",
		mcp.WithDescription("Get the full Markdown report for the scanned tree."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
	)
}

// --- Handler factories ---

func makeSearchSymbolHandler(records []scan.FileRecord) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		term := req.GetString("term", "")
		if term == "" {
			return mcp.NewToolResultError("term is required"), nil
		}

		matches := search.Matching(records, term)
		if len(matches) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("`%s` not found in the codebase.", term)), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "## Files declaring `%s` (%d)\n\n", term, len(matches))
		for _, rec := range matches {
			fmt.Fprintf(&sb, "- **%s** — %d classes, %d functions\n",
				rec.Path, len(rec.Classes), len(rec.Functions))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func makeFileRecordHandler(records []scan.FileRecord) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return mcp.NewToolResultError("path is required"), nil
		}

		for _, rec := range records {
			if rec.Path == path {
				return mcp.NewToolResultText(formatRecord(rec)), nil
			}
		}

		return mcp.NewToolResultError(fmt.Sprintf("file %q not in the scan — call list_scanned_files to see available paths", path)), nil
	}
}

func makeListFilesHandler(records []scan.FileRecord) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		extFilter := req.GetString("ext", "")

		var filtered []scan.FileRecord
		for _, rec := range records {
			if extFilter == "" || strings.HasSuffix(rec.Path, extFilter) {
				filtered = append(filtered, rec)
			}
		}

		var sb strings.Builder
		if extFilter != "" {
			fmt.Fprintf(&sb, "## Scanned files (%d, ext: %s)\n\n", len(filtered), extFilter)
		} else {
			fmt.Fprintf(&sb, "## Scanned files (%d)\n\n", len(filtered))
		}

		for _, rec := range filtered {
			snippet := rec.Summary
			if idx := strings.Index(snippet, "\n"); idx >= 0 {
				snippet = snippet[:idx]
			}
			if len(snippet) > 120 {
				snippet = snippet[:120] + "..."
			}
			fmt.Fprintf(&sb, "- **%s** (%d classes, %d functions) — %s\n",
				rec.Path, len(rec.Classes), len(rec.Functions), snippet)
		}

		return mcp.NewToolResultText(sb.String()), nil
	}
}

func makeReportHandler(records []scan.FileRecord) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(report.Render(records)), nil
	}
}

// --- Formatting helpers ---

func formatRecord(rec scan.FileRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n**Path:** `%s`\n\n", filepath.Base(rec.Path), rec.Path)

	if len(rec.Classes) > 0 {
		sb.WriteString("**Classes:** " + backtickList(rec.Classes) + "\n\n")
	}
	if len(rec.Functions) > 0 {
		sb.WriteString("**Functions:** " + backtickList(rec.Functions) + "\n\n")
	}

	sb.WriteString(rec.Summary)
	return sb.String()
}

func backtickList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}
	return strings.Join(quoted, ", ")
}
