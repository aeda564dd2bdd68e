// Package tree holds the entries produced by a directory scan.
//
// A scan yields an ordered slice of Entry values. Each entry is either a
// *Directory, whose children are fixed when it is created, or a *File, whose
// selection flag and loaded content are filled in later by whoever displays
// or reads it. The scanner itself only ever creates entries.
package tree

import (
	"path"

	"github.com/google/uuid"
)

// Kind tags the variant of an Entry.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Entry is a node of the scanned tree.
type Entry interface {
	// ID is stable for a given root-relative path.
	ID() string
	Name() string
	// Path is root-relative, slash separated and never has a leading slash.
	Path() string
	Kind() Kind
}

// idNamespace scopes the name-based UUIDs used as entry ids.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/bethropolis/dir-tree/entry"))

// EntryID derives the id of the entry at root-relative path p.
func EntryID(p string) string {
	return uuid.NewSHA1(idNamespace, []byte(p)).String()
}

type header struct {
	id   string
	name string
	path string
}

func newHeader(p string) header {
	return header{id: EntryID(p), name: path.Base(p), path: p}
}

func (h header) ID() string   { return h.id }
func (h header) Name() string { return h.name }
func (h header) Path() string { return h.path }

// Directory is the directory variant of Entry.
type Directory struct {
	header
	children []Entry
}

// NewDirectory creates the directory at root-relative path p with its final,
// already sorted children.
func NewDirectory(p string, children []Entry) *Directory {
	owned := make([]Entry, len(children))
	copy(owned, children)
	return &Directory{header: newHeader(p), children: owned}
}

func (d *Directory) Kind() Kind { return KindDirectory }

// Children returns a copy of the directory's children in display order.
func (d *Directory) Children() []Entry {
	out := make([]Entry, len(d.children))
	copy(out, d.children)
	return out
}

// Len is the number of direct children.
func (d *Directory) Len() int { return len(d.children) }

// Child returns the i-th child without copying the slice.
func (d *Directory) Child(i int) Entry { return d.children[i] }

var (
	_ Entry = (*Directory)(nil)
	_ Entry = (*File)(nil)
)
