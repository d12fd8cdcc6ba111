package extract

import (
	"path/filepath"
	"sync"
)

// Registry maps file extensions to grammar-backed extractors. Extensions
// with no registered grammar fall through to the caller's pattern-based
// fallback (Lookup returns nil).
type Registry struct {
	mu         sync.RWMutex
	extractors map[string]Extractor // extension (with dot) → extractor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{extractors: make(map[string]Extractor)}
}

// Register adds an extractor for the given extensions.
func (r *Registry) Register(e Extractor, extensions ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range extensions {
		r.extractors[ext] = e
	}
}

// Lookup returns the extractor registered for a file path's extension,
// or nil when the file should use the fallback strategy.
func (r *Registry) Lookup(path string) Extractor {
	ext := filepath.Ext(path)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.extractors[ext]
}
