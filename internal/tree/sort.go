package tree

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorter orders sibling entries: directories first, then by name using
// locale-aware collation with a byte-order tiebreak. A Sorter is not safe
// for concurrent use.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter returns a Sorter using the root collation order.
func NewSorter() *Sorter {
	return &Sorter{collator: collate.New(language.Und)}
}

// Less reports whether a sorts before b.
func (s *Sorter) Less(a, b Entry) bool {
	aDir, bDir := a.Kind() == KindDirectory, b.Kind() == KindDirectory
	if aDir != bDir {
		return aDir
	}
	if c := s.collator.CompareString(a.Name(), b.Name()); c != 0 {
		return c < 0
	}
	return a.Name() < b.Name()
}

// Sort orders entries in place.
func (s *Sorter) Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return s.Less(entries[i], entries[j])
	})
}

// SortSiblings orders entries in place with a fresh Sorter.
func SortSiblings(entries []Entry) {
	NewSorter().Sort(entries)
}
