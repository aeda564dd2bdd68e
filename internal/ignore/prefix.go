package ignore

import "strings"

// PrefixPattern rewrites a raw pattern defined in the ignore file of the
// directory basePath so that it is expressed relative to the scan root.
//
//	PrefixPattern("/foo", "src")   == "src/foo"
//	PrefixPattern("*.log", "src")  == "src/*.log"
//	PrefixPattern("!keep", "src")  == "!src/keep"
//	PrefixPattern("*.log", "")     == "*.log"
func PrefixPattern(raw, basePath string) string {
	negate := ""
	pattern := raw
	if strings.HasPrefix(pattern, "!") {
		negate = "!"
		pattern = pattern[1:]
	}

	switch {
	case strings.HasPrefix(pattern, "/"):
		pattern = basePath + pattern
	case basePath != "":
		pattern = basePath + "/" + pattern
	}

	return negate + pattern
}
