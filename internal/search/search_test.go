package search

import (
	"testing"

	"devsync/internal/scan"

	"github.com/stretchr/testify/assert"
)

var records = []scan.FileRecord{
	{Path: "a.py", Classes: []string{"Foo"}, Functions: []string{"bar"}},
	{Path: "b.js", Functions: []string{"greet", "bar"}},
	{Path: "c.cpp", Classes: []string{"Shape"}, Functions: []string{"area", "compute"}},
}

func TestSearch_MatchesClassesAndFunctions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a.py"}, Search(records, "Foo"))
	assert.Equal(t, []string{"c.cpp"}, Search(records, "area"))
}

func TestSearch_PreservesRecordOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a.py", "b.js"}, Search(records, "bar"))
}

func TestSearch_ExactEqualityOnly(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Search(records, "Fo"))
	assert.Empty(t, Search(records, "foo"))
	assert.Empty(t, Search(records, "greet "))
}

func TestSearch_NoMatchIsEmptyNotError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Search(records, "Missing"))
	assert.Empty(t, Search(nil, "anything"))
}

func TestMatching_ReturnsFullRecords(t *testing.T) {
	t.Parallel()

	got := Matching(records, "bar")
	assert.Len(t, got, 2)
	assert.Equal(t, "a.py", got[0].Path)
	assert.Equal(t, "b.js", got[1].Path)
}
