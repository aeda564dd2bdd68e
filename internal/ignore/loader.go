package ignore

import (
	"errors"
	"io/fs"
	"path"
	"strings"

	"github.com/bethropolis/dir-tree/internal/utils"
)

// DefaultIgnoreFileName is the ignore file looked for in every directory.
const DefaultIgnoreFileName = ".gitignore"

// DefaultIgnoreFileNames returns the default candidate list.
func DefaultIgnoreFileNames() []string {
	return []string{DefaultIgnoreFileName}
}

// LoadRules reads the candidate ignore files of directory dir (an fs.FS
// path, "." for the root) in the order given and returns their patterns in
// file order. A missing file contributes nothing; any other read failure is
// logged and treated the same way.
func LoadRules(fsys fs.FS, dir string, names []string, logger utils.Logger) []string {
	logger = utils.OrNoop(logger)

	var patterns []string
	for _, name := range names {
		file := path.Join(dir, name)
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("ignore.LoadRules: cannot read %q, ignoring its rules: %v", file, err)
			}
			continue
		}

		lines := ParseLines(string(data))
		logger.Debug("ignore.LoadRules: %d pattern(s) from %q", len(lines), file)
		patterns = append(patterns, lines...)
	}
	return patterns
}

// ParseLines splits ignore file content into raw patterns, dropping blank
// lines and comments.
func ParseLines(content string) []string {
	content = strings.TrimPrefix(content, "\ufeff")

	var patterns []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}
