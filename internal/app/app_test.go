package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/dir-tree/internal/printer"
)

func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		".gitignore": "*.log\n",
		"a.go":       "package a\n",
		"b.log":      "noise\n",
		"sub/c.md":   "# C\n",
	}
	for name, data := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	}
	return dir
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func collect(nodes []*printer.Node, into map[string]*printer.Node) {
	for _, n := range nodes {
		into[n.Path] = n
		collect(n.Children, into)
	}
}

func TestRunJSONWithContent(t *testing.T) {
	dir := writeProject(t)
	noConfig := filepath.Join(t.TempDir(), "none.yaml")

	stdout, _, err := execute(t, dir, "--json", "--content", "--no-color", "--config", noConfig)
	require.NoError(t, err)

	var doc printer.Document
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))

	nodes := map[string]*printer.Node{}
	collect(doc.Entries, nodes)
	assert.Len(t, nodes, 4)
	assert.Contains(t, nodes, "sub/c.md")
	assert.NotContains(t, nodes, "b.log")

	require.NotNil(t, nodes["a.go"].Content)
	assert.Equal(t, "package a\n", nodes["a.go"].Content.Text)
	assert.Equal(t, "go", nodes["a.go"].Content.Language)
	assert.Equal(t, "directory", nodes["sub"].Kind)
}

func TestRunTextExplain(t *testing.T) {
	dir := writeProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", ".gitignore"), []byte("*.tmp\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "x.tmp"), []byte("x"), 0o644))
	noConfig := filepath.Join(t.TempDir(), "none.yaml")

	stdout, stderr, err := execute(t, dir, "--no-color", "--explain", "--config", noConfig)
	require.NoError(t, err)

	assert.Contains(t, stdout, "├── sub/\n")
	assert.Contains(t, stdout, "c.md\n")
	assert.NotContains(t, stdout, "b.log")
	assert.NotContains(t, stdout, "x.tmp")
	assert.Contains(t, stderr, "--- Ignore Patterns (2) ---\n[.]\n  1  *.log\n[sub]\n  2  sub/*.tmp\n")
	assert.Contains(t, stderr, "(sub/*.tmp)")
	assert.Contains(t, stderr, "Skipped FILE: b.log")
	assert.Contains(t, stderr, "(*.log)")
}

func TestRunSelectLoadsMatchingFiles(t *testing.T) {
	dir := writeProject(t)
	noConfig := filepath.Join(t.TempDir(), "none.yaml")

	stdout, _, err := execute(t, dir, "--json", "--select", "*.md", "--config", noConfig)
	require.NoError(t, err)

	var doc printer.Document
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	nodes := map[string]*printer.Node{}
	collect(doc.Entries, nodes)

	assert.Nil(t, nodes["a.go"].Content, "unselected files stay unloaded")
	require.NotNil(t, nodes["sub/c.md"].Content)
	assert.Equal(t, "rendered", nodes["sub/c.md"].Content.FileType)
	assert.Equal(t, "# C\n", nodes["sub/c.md"].Content.Text)
	assert.Contains(t, nodes["sub/c.md"].Content.HTML, "<h1>C</h1>")
}

func TestRunConfigFileAndOutputFile(t *testing.T) {
	dir := writeProject(t)
	out := filepath.Join(t.TempDir(), "tree.yaml")
	cfgPath := filepath.Join(t.TempDir(), "dir-tree.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: yaml\nextensions: [md]\n"), 0o644))

	stdout, _, err := execute(t, dir, "--config", cfgPath, "-o", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "path: sub/c.md")
	assert.NotContains(t, string(data), "a.go")
}

func TestRunErrors(t *testing.T) {
	noConfig := filepath.Join(t.TempDir(), "none.yaml")

	_, _, err := execute(t, filepath.Join(t.TempDir(), "missing"), "--config", noConfig)
	assert.Error(t, err)

	_, _, err = execute(t, ".", "--json", "--markdown", "--config", noConfig)
	assert.ErrorContains(t, err, "--json and --markdown")

	_, _, err = execute(t, ".", "--format", "html", "--config", noConfig)
	assert.ErrorContains(t, err, "unknown format")

	_, _, err = execute(t, "a", "b")
	assert.Error(t, err)
}
