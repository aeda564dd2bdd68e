package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixPattern(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		basePath string
		want     string
	}{
		{"root plain", "*.log", "", "*.log"},
		{"root anchored", "/foo", "", "/foo"},
		{"root negated", "!keep.log", "", "!keep.log"},
		{"root negated anchored", "!/foo", "", "!/foo"},
		{"nested plain", "*.log", "src", "src/*.log"},
		{"nested anchored", "/foo", "src", "src/foo"},
		{"nested negated", "!keep.log", "src", "!src/keep.log"},
		{"nested negated anchored", "!/build/", "src/app", "!src/app/build/"},
		{"nested dir only", "dist/", "web", "web/dist/"},
		{"nested double star", "**/tmp", "pkg", "pkg/**/tmp"},
		{"nested internal slash", "a/b.txt", "x/y", "x/y/a/b.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrefixPattern(tt.raw, tt.basePath))
		})
	}
}

func TestRuleSetChainExtendDoesNotAlias(t *testing.T) {
	root := RuleSetChain{}.Extend(NewRuleSet("", []string{"*.log"}))
	left := root.Extend(NewRuleSet("a", []string{"x"}))
	right := root.Extend(NewRuleSet("b", []string{"y"}))

	assert.Len(t, root, 1)
	assert.Equal(t, "a", left[1].BasePath)
	assert.Equal(t, "b", right[1].BasePath)
	assert.Equal(t, 2, left.Len())
}

func TestNewRuleSetCopiesPatterns(t *testing.T) {
	patterns := []string{"a", "b"}
	rs := NewRuleSet("src", patterns)
	patterns[0] = "changed"

	assert.Equal(t, []string{"a", "b"}, rs.Patterns)
}
