package walker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/dir-tree/internal/picker"
)

func TestOpenDirectoryInMemory(t *testing.T) {
	fsys := fstest.MapFS{
		".gitignore": file("dist/\n"),
		"dist/app":   file("bin"),
		"src/app.go": file("package app"),
	}

	opened, err := OpenDirectory(context.Background(), picker.FS("project", fsys))
	require.NoError(t, err)
	require.NotNil(t, opened)

	assert.Equal(t, "project", opened.Root.Path)
	assert.Equal(t, []string{"src", ".gitignore"}, names(opened.Tree))
	assert.Equal(t, int64(2), opened.Stats.Files)
}

func TestOpenDirectoryOnDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pkg", "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*.bak\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pkg", "a.go"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pkg", "a.bak"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pkg", "sub", "b.go"), []byte("b"), 0o644))

	opened, err := OpenDirectory(context.Background(), picker.Path(dir))
	require.NoError(t, err)
	require.NotNil(t, opened)

	assert.Equal(t, dir, opened.Root.Path)
	assert.Equal(t, []string{"pkg", "pkg/sub", "pkg/sub/b.go", "pkg/a.go", ".gitignore"}, paths(opened.Tree))
}

func TestOpenDirectoryCancelledPick(t *testing.T) {
	cancelled := picker.Func(func(context.Context) (picker.Root, error) {
		return picker.Root{}, picker.ErrCancelled
	})

	opened, err := OpenDirectory(context.Background(), cancelled)
	assert.NoError(t, err)
	assert.Nil(t, opened)
}

func TestOpenDirectoryCancelledScan(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fsys := cancellingFS{
		MapFS:  fstest.MapFS{"a/b.txt": file("b")},
		at:     "a",
		cancel: cancel,
	}

	opened, err := OpenDirectory(ctx, picker.FS("mem", fsys))
	assert.NoError(t, err)
	assert.Nil(t, opened)
}

func TestOpenDirectoryErrors(t *testing.T) {
	_, err := OpenDirectory(context.Background(), picker.Path(filepath.Join(t.TempDir(), "missing")))
	assert.Error(t, err)

	broken := picker.Func(func(context.Context) (picker.Root, error) {
		return picker.Root{}, errors.New("boom")
	})
	opened, err := OpenDirectory(context.Background(), broken)
	assert.Nil(t, opened)
	assert.EqualError(t, err, "walker: choosing root directory: boom")

	rootFails := failingFS{MapFS: fstest.MapFS{"a": file("a")}, fail: "."}
	_, err = OpenDirectory(context.Background(), picker.FS("mem", rootFails))
	assert.Error(t, err)

	_, err = OpenDirectory(context.Background(), nil)
	assert.Error(t, err)
}
