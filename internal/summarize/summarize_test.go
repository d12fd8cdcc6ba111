package summarize

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingBackend records every text it is asked to summarize.
type countingBackend struct {
	inputs []string
	result string
	err    error
}

func (b *countingBackend) Summarize(text string) (string, error) {
	b.inputs = append(b.inputs, text)
	return b.result, b.err
}

func TestService_ShortInputReturnsSentinel(t *testing.T) {
	t.Parallel()

	backend := &countingBackend{result: "should not be used"}
	svc := New(backend)

	got, err := svc.Summarize("function greet(){}")
	require.NoError(t, err)
	assert.Equal(t, Sentinel, got)
	assert.Empty(t, backend.inputs, "backend must not be called for short input")
}

func TestService_FortyNineTokensIsStillShort(t *testing.T) {
	t.Parallel()

	backend := &countingBackend{}
	svc := New(backend)

	text := strings.TrimSpace(strings.Repeat("token ", 49))
	got, err := svc.Summarize(text)
	require.NoError(t, err)
	assert.Equal(t, Sentinel, got)
	assert.Empty(t, backend.inputs)
}

func TestService_DelegatesLongEnoughInput(t *testing.T) {
	t.Parallel()

	// The backend's response comes back verbatim, surrounding whitespace
	// included.
	backend := &countingBackend{result: " A concise synopsis.\n"}
	svc := New(backend)

	text := strings.TrimSpace(strings.Repeat("token ", 50))
	got, err := svc.Summarize(text)
	require.NoError(t, err)
	assert.Equal(t, " A concise synopsis.\n", got)
	require.Len(t, backend.inputs, 1)
	assert.Equal(t, text, backend.inputs[0])
}

func TestService_TruncatesToFirst1024Characters(t *testing.T) {
	t.Parallel()

	backend := &countingBackend{result: "summary"}
	svc := New(backend)

	text := strings.Repeat("word ", 500) // 2500 chars, 500 tokens
	_, err := svc.Summarize(text)
	require.NoError(t, err)

	require.Len(t, backend.inputs, 1)
	assert.Equal(t, text[:1024], backend.inputs[0])
	assert.Len(t, backend.inputs[0], 1024)
}

// The cutoff counts characters, not bytes: multi-byte sources still get a
// full 1024 characters and no rune is ever split mid-sequence.
func TestService_TruncationCountsCharactersNotBytes(t *testing.T) {
	t.Parallel()

	backend := &countingBackend{result: "summary"}
	svc := New(backend)

	text := strings.Repeat("é ", 600) // 1200 chars, 1800 bytes, 600 tokens
	_, err := svc.Summarize(text)
	require.NoError(t, err)

	require.Len(t, backend.inputs, 1)
	got := backend.inputs[0]
	assert.Equal(t, string([]rune(text)[:1024]), got)
	assert.Equal(t, 1024, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
}

func TestService_BackendErrorPropagates(t *testing.T) {
	t.Parallel()

	backendErr := errors.New("model unavailable")
	svc := New(&countingBackend{err: backendErr})

	_, err := svc.Summarize(strings.Repeat("token ", 60))
	require.Error(t, err)
	assert.ErrorIs(t, err, backendErr)
}

func TestSummarizerFunc_Adapts(t *testing.T) {
	t.Parallel()

	fn := SummarizerFunc(func(text string) (string, error) {
		return "fixed", nil
	})
	got, err := fn.Summarize("anything")
	require.NoError(t, err)
	assert.Equal(t, "fixed", got)
}
