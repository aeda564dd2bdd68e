// Package ignore provides file/directory pattern matching for exclusion
package ignore

import (
	"github.com/bethropolis/dir-tree/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// RuleSet holds the patterns read from one directory's ignore files,
// together with that directory's root-relative path.
type RuleSet struct {
	Patterns []string
	BasePath string
}

// NewRuleSet copies patterns so the set cannot change after creation.
func NewRuleSet(basePath string, patterns []string) RuleSet {
	owned := make([]string, len(patterns))
	copy(owned, patterns)
	return RuleSet{Patterns: owned, BasePath: basePath}
}

// RuleSetChain is the ordered list of rule sets from the scan root down to
// the current directory.
type RuleSetChain []RuleSet

// Extend returns a new chain with rs appended. The receiver is left intact
// and never shares its backing array with the result.
func (c RuleSetChain) Extend(rs RuleSet) RuleSetChain {
	out := make(RuleSetChain, len(c), len(c)+1)
	copy(out, c)
	return append(out, rs)
}

// Len counts the patterns across every set in the chain.
func (c RuleSetChain) Len() int {
	n := 0
	for _, rs := range c {
		n += len(rs.Patterns)
	}
	return n
}

// IgnoreMatcher decides whether root-relative paths are ignored by a
// compiled RuleSetChain.
type IgnoreMatcher struct {
	// The core gitignore object holding the prefixed patterns
	engine gitignore.GitIgnore

	// patterns is the flat, prefixed list in precedence order
	patterns []string
	logger   utils.Logger
}

// MatchResult explains a matcher decision.
type MatchResult struct {
	// Pattern is the prefixed pattern of the last matching rule.
	Pattern string
	// Line is the 1-indexed position of Pattern in the flat list.
	Line    int
	Matched bool
	Ignored bool
}
