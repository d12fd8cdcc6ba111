package summarize

import (
	"fmt"
	"strings"
)

// Sentinel is returned for inputs too short to summarize meaningfully.
// No backend call is made in that case.
const Sentinel = "Code is too short for meaningful summarization."

const (
	// minTokens is the whitespace-token count below which input is
	// considered too short.
	minTokens = 50
	// maxInputChars is the hard input cutoff, counted in characters, not
	// bytes. Content beyond it is never seen by the backend — a
	// deliberate, lossy simplification.
	maxInputChars = 1024
)

// Summarizer produces a short natural-language synopsis of source text.
type Summarizer interface {
	Summarize(text string) (string, error)
}

// SummarizerFunc adapts a plain function to the Summarizer interface.
type SummarizerFunc func(text string) (string, error)

func (f SummarizerFunc) Summarize(text string) (string, error) { return f(text) }

// Service applies the short-input and truncation policy before delegating
// to a backend. The backend owns the summarization algorithm; Service only
// decides what it gets to see.
type Service struct {
	backend Summarizer
}

// New wraps a backend with the input policy.
func New(backend Summarizer) *Service {
	return &Service{backend: backend}
}

// Summarize returns Sentinel for inputs under minTokens whitespace tokens,
// otherwise truncates the text to its first maxInputChars characters and
// delegates. The backend's response is returned verbatim; its failures
// propagate to the caller.
func (s *Service) Summarize(text string) (string, error) {
	if len(strings.Fields(text)) < minTokens {
		return Sentinel, nil
	}

	// Truncate on rune boundaries so multi-byte sources keep a full 1024
	// characters and the backend never receives a split rune.
	if runes := []rune(text); len(runes) > maxInputChars {
		text = string(runes[:maxInputChars])
	}

	summary, err := s.backend.Summarize(text)
	if err != nil {
		return "", fmt.Errorf("summarization service: %w", err)
	}
	return summary, nil
}
