package setup

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/bethropolis/dir-tree/internal/tree"
)

// SelectFiles marks the files matching any of patterns as selected and
// returns how many were marked. A pattern containing a slash is matched
// against the root-relative path, any other pattern against the file name.
func SelectFiles(entries []tree.Entry, patterns []string, log Logger) int {
	selected := 0
	for _, f := range tree.Files(entries) {
		if matchesAny(f.Path(), patterns) {
			f.SetSelected(true)
			selected++
		}
	}
	log.Debug("Selected %d file(s) matching %v", selected, patterns)
	return selected
}

func matchesAny(p string, patterns []string) bool {
	for _, pattern := range patterns {
		target := p
		if !strings.Contains(pattern, "/") {
			target = path.Base(p)
		}
		if ok, err := doublestar.Match(pattern, target); err == nil && ok {
			return true
		}
	}
	return false
}
