package scan

import (
	"fmt"
	"os"

	"devsync/internal/extract"
	"devsync/internal/summarize"
	"devsync/internal/walker"
)

// Scanner runs the extraction phase: discover files, pull symbols with the
// strategy selected by extension, and attach a generated summary. All
// collaborators are injected so the summarization backend can be mocked.
type Scanner struct {
	registry   *extract.Registry
	fallback   extract.Extractor
	summarizer summarize.Summarizer
	lenient    bool
}

// Config holds the scanner's collaborators and mode.
type Config struct {
	// Registry maps extensions to grammar-backed extractors. When nil, a
	// default registry with the Python grammar is used.
	Registry *extract.Registry
	// Summarizer generates per-file summaries. Required.
	Summarizer summarize.Summarizer
	// Lenient isolates per-file failures: the failing file's record gets a
	// placeholder summary and the scan continues. The default (strict)
	// aborts the whole run on the first failure.
	Lenient bool
}

// New creates a Scanner. Files whose extension has no registered grammar
// fall back to pattern-based extraction.
func New(cfg Config) *Scanner {
	reg := cfg.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Scanner{
		registry:   reg,
		fallback:   extract.NewPatternExtractor(),
		summarizer: cfg.Summarizer,
		lenient:    cfg.Lenient,
	}
}

// DefaultRegistry returns a registry with the grammar-based extractors the
// tool ships with: tree-sitter Python. Every other extension is handled by
// the pattern fallback.
func DefaultRegistry() *extract.Registry {
	reg := extract.NewRegistry()
	reg.Register(extract.NewPythonExtractor(), ".py")
	return reg
}

// Scan discovers files under root matching the extension allow-list and
// builds one FileRecord per file, strictly sequentially and in discovery
// order. Each file is fully read and released before the next one is
// touched.
func (s *Scanner) Scan(root string, extensions []string) ([]FileRecord, error) {
	paths, err := walker.Discover(root, extensions)
	if err != nil {
		return nil, err
	}

	records := make([]FileRecord, 0, len(paths))
	for _, path := range paths {
		rec, err := s.scanFile(path)
		if err != nil {
			if !s.lenient {
				return nil, err
			}
			// Keep whatever was extracted before the failure and mark
			// the record instead of aborting the run.
			rec.Summary = fmt.Sprintf("(extraction failed: %v)", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (s *Scanner) scanFile(path string) (FileRecord, error) {
	rec := FileRecord{Path: path}

	src, err := os.ReadFile(path)
	if err != nil {
		return rec, fmt.Errorf("read %s: %w", path, err)
	}

	extractor := s.registry.Lookup(path)
	if extractor == nil {
		extractor = s.fallback
	}

	syms, err := extractor.Extract(path, src)
	if err != nil {
		return rec, err
	}
	rec.Classes = syms.Classes
	rec.Functions = syms.Functions

	summary, err := s.summarizer.Summarize(string(src))
	if err != nil {
		return rec, fmt.Errorf("summarize %s: %w", path, err)
	}
	rec.Summary = summary

	return rec, nil
}
