package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bethropolis/dir-tree/internal/tree"
	"github.com/bethropolis/dir-tree/internal/utils"
)

// ErrTooLarge is returned by Load for files above the configured size limit.
var ErrTooLarge = errors.New("content: file exceeds size limit")

// Loader reads file content from the scanned file system into tree.File
// state.
type Loader struct {
	fsys         fs.FS
	logger       utils.Logger
	maxFileSize  int64
	workers      int
	selectedOnly bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets a custom logger for the loader.
func WithLogger(logger utils.Logger) Option {
	return func(l *Loader) { l.logger = utils.OrNoop(logger) }
}

// WithMaxFileSize skips files larger than maxBytes. Zero means no limit.
func WithMaxFileSize(maxBytes int64) Option {
	return func(l *Loader) {
		if maxBytes >= 0 {
			l.maxFileSize = maxBytes
		}
	}
}

// WithWorkers bounds how many files are read at once.
func WithWorkers(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithSelectedOnly restricts LoadAll to files marked as selected.
func WithSelectedOnly(enabled bool) Option {
	return func(l *Loader) { l.selectedOnly = enabled }
}

// NewLoader creates a Loader reading from fsys, the same file system the
// tree was scanned from.
func NewLoader(fsys fs.FS, opts ...Option) *Loader {
	l := &Loader{
		fsys:    fsys,
		logger:  &utils.NoopLogger{},
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads one file and attaches its classified content. On failure the
// file is left unloaded.
func (l *Loader) Load(ctx context.Context, f *tree.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.logger.Debug("content.Load: Reading [%s]", f.Path())

	if l.maxFileSize > 0 {
		info, err := fs.Stat(l.fsys, f.Path())
		if err != nil {
			return fmt.Errorf("content: failed to get file info for %q: %w", f.Path(), err)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("content: %q is not a regular file", f.Path())
		}
		if info.Size() > l.maxFileSize {
			return fmt.Errorf("%w: %q is %d bytes (limit %d)", ErrTooLarge, f.Path(), info.Size(), l.maxFileSize)
		}
	}

	data, err := fs.ReadFile(l.fsys, f.Path())
	if err != nil {
		return fmt.Errorf("content: failed to read %q: %w", f.Path(), err)
	}

	c := Classify(f.Name(), data)
	if IsTextual(c.FileType) {
		c.Data = data
	}
	f.SetContent(c)
	l.logger.Debug("content.Load: [%s] %d bytes, %s/%s", f.Path(), len(data), c.FileType, c.Language)
	return nil
}

// LoadAll loads every file of entries with a bounded pool. Per-file
// failures are logged and never stop the other files; only cancellation of
// ctx is returned.
func (l *Loader) LoadAll(ctx context.Context, entries []tree.Entry) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)

	for _, f := range tree.Files(entries) {
		if l.selectedOnly && !f.Selected() {
			continue
		}
		if gctx.Err() != nil {
			break
		}
		f := f
		g.Go(func() error {
			if err := l.Load(gctx, f); err != nil && gctx.Err() == nil {
				l.logger.Warn("content.LoadAll: %v", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
