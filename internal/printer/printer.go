// Package printer handles output formatting and display
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/bethropolis/dir-tree/internal/content"
	"github.com/bethropolis/dir-tree/internal/tree"
)

// Output formats understood by the printer.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	indentPipe = "│   "
	indentNone = "    "
)

// Printer renders a scanned tree to the configured output destination.
type Printer struct {
	output    io.Writer
	count     atomic.Int64
	useColors bool
	format    string
	style     string

	dirColor  *color.Color
	fileColor *color.Color
}

// New creates a new Printer with default settings
func New() *Printer {
	p := &Printer{
		output: os.Stdout,
		format: FormatText,
		style:  content.DefaultStyle,
	}
	return p.WithColors(true)
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	p.dirColor = color.New(color.FgBlue, color.Bold)
	p.fileColor = color.New(color.FgCyan, color.Bold)
	if enabled {
		p.dirColor.EnableColor()
		p.fileColor.EnableColor()
	} else {
		p.dirColor.DisableColor()
		p.fileColor.DisableColor()
	}
	return p
}

// WithFormat selects text, json, yaml or markdown output. Unknown values
// fall back to text.
func (p *Printer) WithFormat(format string) *Printer {
	switch format {
	case FormatJSON, FormatYAML, FormatMarkdown:
		p.format = format
	default:
		p.format = FormatText
	}
	return p
}

// WithStyle sets the chroma style used for highlighted file contents.
func (p *Printer) WithStyle(style string) *Printer {
	p.style = style
	return p
}

// Node is the serialized form of a tree entry.
type Node struct {
	ID       string       `json:"id" yaml:"id"`
	Name     string       `json:"name" yaml:"name"`
	Path     string       `json:"path" yaml:"path"`
	Kind     string       `json:"kind" yaml:"kind"`
	Children []*Node      `json:"children,omitempty" yaml:"children,omitempty"`
	Content  *NodeContent `json:"content,omitempty" yaml:"content,omitempty"`
}

// NodeContent describes a loaded file. HTML is set for markdown files,
// rendered from Text.
type NodeContent struct {
	FileType string `json:"file_type" yaml:"file_type"`
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	MIME     string `json:"mime,omitempty" yaml:"mime,omitempty"`
	Size     int64  `json:"size" yaml:"size"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
	HTML     string `json:"html,omitempty" yaml:"html,omitempty"`
}

// Document is the top-level JSON/YAML output.
type Document struct {
	Root    string  `json:"root" yaml:"root"`
	Entries []*Node `json:"entries" yaml:"entries"`
}

// Nodes converts entries into their serialized form.
func Nodes(entries []tree.Entry) []*Node {
	nodes := make([]*Node, 0, len(entries))
	for _, e := range entries {
		n := &Node{ID: e.ID(), Name: e.Name(), Path: e.Path(), Kind: e.Kind().String()}
		switch v := e.(type) {
		case *tree.Directory:
			n.Children = Nodes(v.Children())
		case *tree.File:
			if c, ok := v.Content(); ok {
				n.Content = &NodeContent{
					FileType: string(c.FileType),
					Language: c.Language,
					MIME:     c.MIME,
					Size:     c.Size,
					Text:     string(c.Data),
				}
				if c.FileType == tree.FileTypeRendered && c.Data != nil {
					if html, err := content.RenderMarkdown(c.Data); err == nil {
						n.Content.HTML = string(html)
					}
				}
			}
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// PrintTree writes the tree rooted at root in the configured format.
func (p *Printer) PrintTree(root string, entries []tree.Entry) error {
	switch p.format {
	case FormatJSON:
		return p.printJSON(root, entries)
	case FormatYAML:
		return p.printYAML(root, entries)
	case FormatMarkdown:
		return p.printMarkdown(root, entries)
	default:
		return p.printText(root, entries)
	}
}

func (p *Printer) printJSON(root string, entries []tree.Entry) error {
	p.countFiles(entries)
	enc := json.NewEncoder(p.output)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document{Root: root, Entries: Nodes(entries)}); err != nil {
		return fmt.Errorf("printer: encoding JSON: %w", err)
	}
	return nil
}

func (p *Printer) printYAML(root string, entries []tree.Entry) error {
	p.countFiles(entries)
	enc := yaml.NewEncoder(p.output)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Root: root, Entries: Nodes(entries)}); err != nil {
		return fmt.Errorf("printer: encoding YAML: %w", err)
	}
	return enc.Close()
}

// writeTree draws the box-drawing tree below a root line.
func (p *Printer) writeTree(w io.Writer, root string, entries []tree.Entry, colored bool) {
	label := func(e tree.Entry) string {
		if e.Kind() != tree.KindDirectory {
			return e.Name()
		}
		if colored {
			return p.dirColor.Sprint(e.Name() + "/")
		}
		return e.Name() + "/"
	}

	fmt.Fprintln(w, root)

	var walk func(entries []tree.Entry, prefix string)
	walk = func(entries []tree.Entry, prefix string) {
		for i, e := range entries {
			last := i == len(entries)-1
			branch, indent := branchMid, indentPipe
			if last {
				branch, indent = branchLast, indentNone
			}
			fmt.Fprintf(w, "%s%s%s\n", prefix, branch, label(e))
			if d, ok := e.(*tree.Directory); ok {
				walk(d.Children(), prefix+indent)
			}
		}
	}
	walk(entries, "")
}

func (p *Printer) printText(root string, entries []tree.Entry) error {
	p.writeTree(p.output, root, entries, p.useColors)

	for _, f := range tree.Files(entries) {
		c, ok := f.Content()
		if !ok {
			continue
		}
		p.count.Add(1)
		fmt.Fprintf(p.output, "\n%s\n", p.fileColor.Sprint(f.Path()))
		if c.Data == nil {
			fmt.Fprintf(p.output, "[%s %s, %d bytes]\n", c.FileType, c.Language, c.Size)
			continue
		}
		if p.useColors {
			if err := content.Highlight(p.output, c, p.style); err == nil {
				fmt.Fprintln(p.output)
				continue
			}
		}
		fmt.Fprintf(p.output, "%s\n", strings.TrimRight(string(c.Data), "\n"))
	}
	return nil
}

func (p *Printer) printMarkdown(root string, entries []tree.Entry) error {
	fmt.Fprintf(p.output, "# %s\n\n```\n", root)
	p.writeTree(p.output, root, entries, false)
	fmt.Fprint(p.output, "```\n")

	for _, f := range tree.Files(entries) {
		c, ok := f.Content()
		if !ok {
			continue
		}
		p.count.Add(1)
		if c.Data == nil {
			fmt.Fprintf(p.output, "\nfile: %s (%s, %d bytes)\n", f.Path(), c.FileType, c.Size)
			continue
		}
		lang := c.Language
		if lang == "plaintext" {
			lang = ""
		}
		fmt.Fprintf(p.output, "\nfile: %s\n\n```%s\n%s\n```\n", f.Path(), lang, strings.TrimRight(string(c.Data), "\n"))
	}
	return nil
}

func (p *Printer) countFiles(entries []tree.Entry) {
	for _, f := range tree.Files(entries) {
		if f.State() == tree.Loaded {
			p.count.Add(1)
		}
	}
}

// GetCount returns the number of file contents printed
func (p *Printer) GetCount() int64 {
	return p.count.Load()
}
