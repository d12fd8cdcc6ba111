package search

import (
	"slices"

	"devsync/internal/scan"
)

// Search returns the paths of all records whose class or function list
// contains term, preserving record order. Matching is exact string equality:
// no substring, fuzzy, or case-insensitive matching. An empty result is a
// normal outcome, not an error.
func Search(records []scan.FileRecord, term string) []string {
	var paths []string
	for _, rec := range records {
		if slices.Contains(rec.Classes, term) || slices.Contains(rec.Functions, term) {
			paths = append(paths, rec.Path)
		}
	}
	return paths
}

// Matching returns the full records matched by term, preserving record
// order. The TUI and MCP surfaces use this to show symbol context alongside
// the path.
func Matching(records []scan.FileRecord, term string) []scan.FileRecord {
	var out []scan.FileRecord
	for _, rec := range records {
		if slices.Contains(rec.Classes, term) || slices.Contains(rec.Functions, term) {
			out = append(out, rec)
		}
	}
	return out
}
