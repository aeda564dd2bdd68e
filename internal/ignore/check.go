package ignore

import "strings"

// MatchPath returns the form of a root-relative path used for rule
// evaluation: directories carry a trailing slash.
func MatchPath(relativePath string, isDir bool) string {
	if !isDir || strings.HasSuffix(relativePath, "/") {
		return relativePath
	}
	return relativePath + "/"
}

// ShouldIgnore checks if a file or directory should be ignored. The path is
// root-relative and may carry the trailing slash produced by MatchPath.
func (m *IgnoreMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	return m.MatchWithReason(relativePath, isDir).Ignored
}

// MatchWithReason is ShouldIgnore with the deciding pattern attached.
func (m *IgnoreMatcher) MatchWithReason(relativePath string, isDir bool) MatchResult {
	// Return early if matcher is nil or has no rules
	if m == nil || m.engine == nil {
		return MatchResult{}
	}

	candidate := strings.TrimSuffix(relativePath, "/")
	if candidate == "" || candidate == "." {
		return MatchResult{} // Never ignore the root itself
	}

	match := m.engine.Relative(candidate, isDir)
	if match == nil {
		return MatchResult{}
	}

	result := MatchResult{
		Pattern: match.String(),
		Line:    match.Position().Line,
		Matched: true,
		Ignored: match.Ignore(),
	}
	if result.Line > 0 && result.Line <= len(m.patterns) {
		result.Pattern = m.patterns[result.Line-1]
	}

	m.logger.Debug("ignore.ShouldIgnore: %q (isDir: %v) matched %q, ignored=%v",
		relativePath, isDir, result.Pattern, result.Ignored)
	return result
}
