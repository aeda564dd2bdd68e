package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name()
	}
	return out
}

func TestSortSiblingsDirectoriesFirst(t *testing.T) {
	entries := []Entry{
		NewFile("b.txt"),
		NewDirectory("A", nil),
		NewFile("a.txt"),
	}

	SortSiblings(entries)

	assert.Equal(t, []string{"A", "a.txt", "b.txt"}, names(entries))
}

func TestSortSiblingsCollation(t *testing.T) {
	entries := []Entry{
		NewFile("zeta.md"),
		NewFile("Beta.md"),
		NewFile("alpha.md"),
		NewDirectory("zdir", nil),
		NewDirectory("adir", nil),
	}

	SortSiblings(entries)

	assert.Equal(t, []string{"adir", "zdir", "alpha.md", "Beta.md", "zeta.md"}, names(entries))
}

func TestSortSiblingsIsTotal(t *testing.T) {
	forward := []Entry{NewFile("a"), NewFile("A"), NewFile("b")}
	backward := []Entry{NewFile("b"), NewFile("A"), NewFile("a")}

	s := NewSorter()
	s.Sort(forward)
	s.Sort(backward)

	assert.Equal(t, names(forward), names(backward))
	assert.Equal(t, "b", forward[2].Name())
}
