package scan

// FileRecord is the extraction result for one scanned source file. Records
// are immutable once produced; a run yields one per discovered file, in
// discovery order, with no deduplication across paths.
type FileRecord struct {
	Path      string
	Classes   []string
	Functions []string
	Summary   string
}
