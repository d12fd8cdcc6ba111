package extract

import "regexp"

// Class pattern: the literal keyword "class" followed by an identifier.
// Declaration styles that don't use the keyword yield no matches.
var classPattern = regexp.MustCompile(`\bclass\s+(\w+)`)

// Function pattern: either the keyword "function" followed by an identifier,
// or a bare identifier immediately followed by an opening parenthesis. The
// second alternative cannot tell a declaration from a call site, so call
// expressions are collected too. That over-matching is the accepted behavior
// of the heuristic.
var functionPattern = regexp.MustCompile(`\bfunction\s+(\w+)|\b([A-Za-z_]\w*)\s*\(`)

// PatternExtractor approximates structural extraction with regular
// expressions over raw text. It is the fallback for every language without
// a registered grammar.
type PatternExtractor struct{}

// NewPatternExtractor returns the regex-based fallback extractor.
func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{}
}

// Extract scans src with both patterns independently. Matches are collected
// in order of occurrence with no deduplication. It never fails.
func (p *PatternExtractor) Extract(path string, src []byte) (Symbols, error) {
	var syms Symbols

	for _, m := range classPattern.FindAllSubmatch(src, -1) {
		syms.Classes = append(syms.Classes, string(m[1]))
	}

	for _, m := range functionPattern.FindAllSubmatch(src, -1) {
		if len(m[1]) > 0 {
			syms.Functions = append(syms.Functions, string(m[1]))
		} else {
			syms.Functions = append(syms.Functions, string(m[2]))
		}
	}

	return syms, nil
}
