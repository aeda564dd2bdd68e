package tree

import "strings"

// Visit calls fn for every entry in depth-first display order. Returning
// false from fn stops descent into that entry's children.
func Visit(entries []Entry, fn func(e Entry, depth int) bool) {
	type item struct {
		e     Entry
		depth int
	}

	stack := make([]item, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		stack = append(stack, item{entries[i], 0})
	}

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(it.e, it.depth) {
			continue
		}
		if d, ok := it.e.(*Directory); ok {
			for i := d.Len() - 1; i >= 0; i-- {
				stack = append(stack, item{d.Child(i), it.depth + 1})
			}
		}
	}
}

// Files returns every file in the tree in display order.
func Files(entries []Entry) []*File {
	var files []*File
	Visit(entries, func(e Entry, _ int) bool {
		if f, ok := e.(*File); ok {
			files = append(files, f)
		}
		return true
	})
	return files
}

// Count returns the number of directories and files in the tree.
func Count(entries []Entry) (dirs, files int) {
	Visit(entries, func(e Entry, _ int) bool {
		if e.Kind() == KindDirectory {
			dirs++
		} else {
			files++
		}
		return true
	})
	return dirs, files
}

// Find returns the entry at root-relative path p, if present.
func Find(entries []Entry, p string) (Entry, bool) {
	var found Entry
	Visit(entries, func(e Entry, _ int) bool {
		if found != nil {
			return false
		}
		if e.Path() == p {
			found = e
			return false
		}
		return strings.HasPrefix(p, e.Path()+"/")
	})
	return found, found != nil
}
