package content

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/yuin/goldmark"

	"github.com/bethropolis/dir-tree/internal/tree"
)

// DefaultStyle is the chroma style used for terminal highlighting.
const DefaultStyle = "monokai"

// RenderMarkdown converts markdown source to HTML.
func RenderMarkdown(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("content: rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// Highlight writes c.Data to w with ANSI syntax highlighting for its
// language. Content that is not text is not written.
func Highlight(w io.Writer, c tree.Content, style string) error {
	if !IsTextual(c.FileType) || c.Data == nil {
		return nil
	}
	if style == "" {
		style = DefaultStyle
	}
	if err := quick.Highlight(w, string(c.Data), c.Language, "terminal256", style); err != nil {
		return fmt.Errorf("content: highlighting %s: %w", c.Language, err)
	}
	return nil
}
