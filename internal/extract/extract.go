package extract

import "fmt"

// Symbols holds the declared names pulled from a single source file.
// Both slices preserve order of first occurrence and may contain
// duplicates when produced by the pattern extractor.
type Symbols struct {
	Classes   []string
	Functions []string
}

// Extractor pulls class and function names from raw source text.
// Exactly one extractor runs per file, selected by extension.
type Extractor interface {
	Extract(path string, src []byte) (Symbols, error)
}

// ParseError reports source text the grammar-based extractor could not parse.
type ParseError struct {
	Path string
	Line int // 1-based line of the first error node
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s: syntax error at line %d", e.Path, e.Line)
	}
	return fmt.Sprintf("parse %s: syntax error", e.Path)
}
