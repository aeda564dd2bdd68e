package ignore

import (
	"strings"

	"github.com/bethropolis/dir-tree/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// NewMatcher compiles chain into a matcher. Patterns are prefixed with the
// base path of the set that defined them and kept in chain order, root
// first and file order within a set, which is the precedence order: the
// last matching pattern decides.
func NewMatcher(chain RuleSetChain, opts ...Option) *IgnoreMatcher {
	m := &IgnoreMatcher{
		logger: utils.NoopLogger{},
	}

	// Apply functional options
	for _, opt := range opts {
		opt(m)
	}

	m.patterns = make([]string, 0, chain.Len())
	for _, rs := range chain {
		for _, raw := range rs.Patterns {
			if isEmptyPattern(raw) {
				m.logger.Warn("ignore.NewMatcher: skipping empty pattern %q from %q", raw, displayBase(rs.BasePath))
				continue
			}
			m.patterns = append(m.patterns, PrefixPattern(raw, rs.BasePath))
		}
	}

	if len(m.patterns) == 0 {
		return m
	}

	m.engine = gitignore.New(strings.NewReader(strings.Join(m.patterns, "\n")), "", func(e gitignore.Error) bool {
		line := e.Position().Line
		pattern := ""
		if line > 0 && line <= len(m.patterns) {
			pattern = m.patterns[line-1]
		}
		m.logger.Warn("ignore.NewMatcher: invalid pattern %q skipped: %v", pattern, e.Underlying())
		return true
	})
	m.logger.Debug("ignore.NewMatcher: compiled %d pattern(s) from %d rule set(s)", len(m.patterns), len(chain))

	return m
}

// Patterns returns the compiled, root-relative patterns in precedence order.
func (m *IgnoreMatcher) Patterns() []string {
	out := make([]string, len(m.patterns))
	copy(out, m.patterns)
	return out
}

// isEmptyPattern reports patterns that name nothing once negation and
// slashes are stripped, such as "!" or "/".
func isEmptyPattern(raw string) bool {
	return strings.Trim(strings.TrimPrefix(raw, "!"), "/") == ""
}

func displayBase(basePath string) string {
	if basePath == "" {
		return "."
	}
	return basePath
}
