// Package picker chooses the root directory of a scan and hands it out as
// an fs.FS capability.
package picker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrCancelled means the user declined to choose a directory.
	ErrCancelled = errors.New("picker: selection cancelled")
	// ErrNotDir means the chosen path exists but is not a directory.
	ErrNotDir = errors.New("picker: not a directory")
)

// Root is a chosen scan root.
type Root struct {
	Path string // absolute path, or a display name for in-memory roots
	FS   fs.FS
}

// Picker yields a scan root.
type Picker interface {
	Pick(ctx context.Context) (Root, error)
}

// Func adapts a function to the Picker interface.
type Func func(ctx context.Context) (Root, error)

// Pick calls f.
func (f Func) Pick(ctx context.Context) (Root, error) { return f(ctx) }

// Path returns a Picker for a fixed directory on disk.
func Path(dir string) Picker {
	return Func(func(ctx context.Context) (Root, error) {
		if err := ctx.Err(); err != nil {
			return Root{}, fmt.Errorf("%w: %w", ErrCancelled, err)
		}
		return Resolve(dir)
	})
}

// FS returns a Picker for an existing file system, such as an fstest.MapFS.
func FS(name string, fsys fs.FS) Picker {
	return Func(func(ctx context.Context) (Root, error) {
		if err := ctx.Err(); err != nil {
			return Root{}, fmt.Errorf("%w: %w", ErrCancelled, err)
		}
		return Root{Path: name, FS: fsys}, nil
	})
}

// Resolve validates dir and opens it as a scan root. A leading "~" is
// expanded to the home directory.
func Resolve(dir string) (Root, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "."
	}
	expanded, err := expandHome(dir)
	if err != nil {
		return Root{}, err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return Root{}, fmt.Errorf("picker: failed to get absolute path for %q: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Root{}, fmt.Errorf("picker: %w", err)
	}
	if !info.IsDir() {
		return Root{}, fmt.Errorf("%w: %s", ErrNotDir, abs)
	}
	return Root{Path: abs, FS: os.DirFS(abs)}, nil
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("picker: cannot expand %q: %w", p, err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
