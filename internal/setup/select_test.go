package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bethropolis/dir-tree/internal/tree"
	"github.com/bethropolis/dir-tree/internal/utils"
)

func selectedPaths(entries []tree.Entry) []string {
	var out []string
	for _, f := range tree.Files(entries) {
		if f.Selected() {
			out = append(out, f.Path())
		}
	}
	return out
}

func TestSelectFiles(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{"name glob matches at any depth", []string{"*.go"}, []string{"cmd/main.go", "internal/a/a.go", "b.go"}},
		{"path glob is anchored", []string{"internal/**/*.go"}, []string{"internal/a/a.go"}},
		{"braces", []string{"*.{md,txt}"}, []string{"docs/guide.md", "notes.txt"}},
		{"several patterns", []string{"b.go", "docs/*"}, []string{"docs/guide.md", "b.go"}},
		{"no match", []string{"*.rs"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []tree.Entry{
				tree.NewDirectory("cmd", []tree.Entry{tree.NewFile("cmd/main.go")}),
				tree.NewDirectory("docs", []tree.Entry{tree.NewFile("docs/guide.md")}),
				tree.NewDirectory("internal", []tree.Entry{
					tree.NewDirectory("internal/a", []tree.Entry{tree.NewFile("internal/a/a.go")}),
				}),
				tree.NewFile("b.go"),
				tree.NewFile("notes.txt"),
			}

			n := SelectFiles(entries, tt.patterns, utils.NoopLogger{})
			assert.Equal(t, tt.want, selectedPaths(entries))
			assert.Equal(t, len(tt.want), n)
		})
	}
}
