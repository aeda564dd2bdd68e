package picker

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathPicker(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))

	root, err := Path(dir).Pick(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dir, root.Path)
	data, err := fs.ReadFile(root.FS, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestPathPickerErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := Path(file).Pick(context.Background())
	assert.ErrorIs(t, err, ErrNotDir)

	_, err = Path(filepath.Join(dir, "missing")).Pick(context.Background())
	assert.ErrorIs(t, err, fs.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Path(dir).Pick(ctx)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestResolveExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	root, err := Resolve("~")
	require.NoError(t, err)
	assert.Equal(t, home, root.Path)
}

func TestFSPicker(t *testing.T) {
	fsys := fstest.MapFS{"x/y.txt": {Data: []byte("y")}}

	root, err := FS("memory", fsys).Pick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "memory", root.Path)
	assert.Equal(t, fs.FS(fsys), root.FS)
}

func TestPromptPicker(t *testing.T) {
	dir := t.TempDir()

	t.Run("answer", func(t *testing.T) {
		var out bytes.Buffer
		root, err := Prompt(strings.NewReader(dir+"\n"), &out).Pick(context.Background())
		require.NoError(t, err)
		assert.Equal(t, dir, root.Path)
		assert.Contains(t, out.String(), "Directory to scan")
	})

	t.Run("answer without newline", func(t *testing.T) {
		root, err := Prompt(strings.NewReader(dir), io.Discard).Pick(context.Background())
		require.NoError(t, err)
		assert.Equal(t, dir, root.Path)
	})

	t.Run("empty answer cancels", func(t *testing.T) {
		_, err := Prompt(strings.NewReader("  \n"), io.Discard).Pick(context.Background())
		assert.ErrorIs(t, err, ErrCancelled)
	})

	t.Run("end of input cancels", func(t *testing.T) {
		_, err := Prompt(strings.NewReader(""), io.Discard).Pick(context.Background())
		assert.ErrorIs(t, err, ErrCancelled)
	})

	t.Run("context cancels a blocked read", func(t *testing.T) {
		r, w := io.Pipe()
		defer w.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Prompt(r, io.Discard).Pick(ctx)
		assert.ErrorIs(t, err, ErrCancelled)
	})

	t.Run("not a directory", func(t *testing.T) {
		_, err := Prompt(strings.NewReader(filepath.Join(dir, "nope")+"\n"), io.Discard).Pick(context.Background())
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrCancelled)
	})
}
