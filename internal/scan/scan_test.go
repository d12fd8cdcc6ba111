package scan

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"devsync/internal/extract"
	"devsync/internal/summarize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const backendSummary = "A small module defining Foo and bar."

// fixedBackend stands in for the summarization service.
func fixedBackend() summarize.Summarizer {
	return summarize.SummarizerFunc(func(text string) (string, error) {
		return backendSummary, nil
	})
}

// longPython is valid Python with one class and one method, padded past the
// 50-token short-input threshold.
func longPython() string {
	return "class Foo:\n    \"\"\"" + strings.Repeat("padding ", 60) + "\"\"\"\n\n    def bar(self):\n        return 1\n"
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScanner_OneRecordPerFileInDiscoveryOrder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.py"), longPython())
	writeFile(t, filepath.Join(root, "b.js"), "function greet(){}")

	scanner := New(Config{Summarizer: summarize.New(fixedBackend())})
	records, err := scanner.Scan(root, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// a.py goes through the grammar-based extractor and is long enough
	// to summarize.
	assert.Equal(t, filepath.Join(root, "a.py"), records[0].Path)
	assert.Equal(t, []string{"Foo"}, records[0].Classes)
	assert.Equal(t, []string{"bar"}, records[0].Functions)
	assert.Equal(t, backendSummary, records[0].Summary)

	// b.js goes through the pattern extractor and is under the token
	// threshold, so it gets the sentinel without a service call.
	assert.Equal(t, filepath.Join(root, "b.js"), records[1].Path)
	assert.Empty(t, records[1].Classes)
	assert.Equal(t, []string{"greet"}, records[1].Functions)
	assert.Equal(t, summarize.Sentinel, records[1].Summary)
}

func TestScanner_StrictAbortsOnSummarizeFailure(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.py"), longPython())

	backend := summarize.SummarizerFunc(func(text string) (string, error) {
		return "", errors.New("service unreachable")
	})
	scanner := New(Config{Summarizer: summarize.New(backend)})

	records, err := scanner.Scan(root, nil)
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "service unreachable")
}

func TestScanner_StrictAbortsOnParseError(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "broken.py"), "def broken(:\n    pass\n")

	scanner := New(Config{Summarizer: summarize.New(fixedBackend())})
	_, err := scanner.Scan(root, nil)
	require.Error(t, err)

	var parseErr *extract.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestScanner_LenientRecordsPlaceholderAndContinues(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.js"), "function greet(){}")
	writeFile(t, filepath.Join(root, "broken.py"), "def broken(:\n    pass\n")

	scanner := New(Config{
		Summarizer: summarize.New(fixedBackend()),
		Lenient:    true,
	})
	records, err := scanner.Scan(root, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	byPath := make(map[string]FileRecord, len(records))
	for _, rec := range records {
		byPath[filepath.Base(rec.Path)] = rec
	}

	assert.Contains(t, byPath["broken.py"].Summary, "extraction failed")
	assert.Equal(t, []string{"greet"}, byPath["b.js"].Functions)
	assert.Equal(t, summarize.Sentinel, byPath["b.js"].Summary)
}

func TestScanner_PatternFallbackForUnregisteredExtension(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "widget.rb"), "class Widget\nend\n")

	scanner := New(Config{Summarizer: summarize.New(fixedBackend())})
	records, err := scanner.Scan(root, []string{".rb"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"Widget"}, records[0].Classes)
}
