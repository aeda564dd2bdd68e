package walker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"sync"
	"time"

	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/tree"
)

// Walk scans fsys from its root and returns the filtered, sorted tree.
//
// Each directory is a frame on an explicit work stack. A frame loads the
// ignore files of its directory, extends the rule chain inherited from its
// ancestors and builds its matcher before evaluating any child. Child
// directories become new frames, so sibling subtrees may be listed in
// parallel (WithConcurrency); the tree is assembled once all frames are done.
//
// Failing to list a subdirectory leaves that directory in the tree without
// children. Failing to list the root is returned as an error. When ctx ends
// first, Walk returns an error wrapping ErrScanCancelled and no tree.
func Walk(ctx context.Context, fsys fs.FS, opts ...Option) (*Result, error) {
	startTime := time.Now()

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if fsys == nil {
		return nil, errors.New("walker: nil file system")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s := newScan(ctx, fsys, options)
	s.push(".", "", nil, options.MaxDepth)

	options.Logger.Debug("walker.Walk started. Concurrent: %v, Workers: %d, MaxDepth: %d",
		options.Concurrent, options.workers(), options.MaxDepth)

	stopProgress := s.reportProgress()
	stopWatch := context.AfterFunc(ctx, s.stop)

	var wg sync.WaitGroup
	for i := 0; i < options.workers(); i++ {
		wg.Add(1)
		go s.worker(i+1, &wg)
	}
	wg.Wait()
	stopWatch()
	stopProgress()

	if err := ctx.Err(); err != nil {
		options.Logger.Debug("Walker: Scan cancelled after %s, discarding partial tree", time.Since(startTime))
		return nil, fmt.Errorf("%w: %w", ErrScanCancelled, err)
	}
	if s.err != nil {
		return nil, s.err
	}

	entries := s.assemble()
	stats := Stats{
		Directories:  s.dirs.Load(),
		Files:        s.files.Load(),
		SkippedDirs:  s.skippedDirs.Load(),
		SkippedFiles: s.skippedFiles.Load(),
		Duration:     time.Since(startTime),
	}
	options.Logger.Debug("Walker: Scanned %d directories and %d files in %s",
		stats.Directories, stats.Files, stats.Duration)

	return &Result{
		Tree:     entries,
		Skipped:  s.tracker.Items(),
		RuleSets: s.ruleSets(),
		Stats:    stats,
	}, nil
}

// assemble builds the tree bottom-up. Child frames always have a higher
// index than their parent, so walking the table backwards creates every
// Directory exactly once, with its final sorted children.
func (s *scan) assemble() []tree.Entry {
	sorter := tree.NewSorter()
	built := make([]*tree.Directory, len(s.frames))

	var root []tree.Entry
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		children := make([]tree.Entry, 0, len(f.files)+len(f.subdirs))
		children = append(children, f.files...)
		for _, idx := range f.subdirs {
			children = append(children, built[idx])
		}
		sorter.Sort(children)

		if i == 0 {
			root = children
			continue
		}
		built[i] = tree.NewDirectory(f.path, children)
	}
	return root
}

// ruleSets returns the rule sets loaded during the scan, ordered by base
// path so the root set comes first.
func (s *scan) ruleSets() []ignore.RuleSet {
	var sets []ignore.RuleSet
	for _, f := range s.frames {
		sets = append(sets, f.rules...)
	}
	sort.SliceStable(sets, func(i, j int) bool { return sets[i].BasePath < sets[j].BasePath })
	return sets
}

// reportProgress starts the periodic progress callback, if any, and returns
// the function that stops it after a final report.
func (s *scan) reportProgress() func() {
	fn := s.options.ProgressFn
	if fn == nil {
		return func() {}
	}

	snapshot := func() ProgressStats {
		return ProgressStats{
			Directories: s.dirs.Load(),
			Files:       s.files.Load(),
			Skipped:     s.skippedDirs.Load() + s.skippedFiles.Load(),
			PendingDirs: s.queued(),
			CurrentPath: s.current.Load().(string),
		}
	}

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(300 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn(snapshot())
			}
		}
	}()

	return func() {
		close(done)
		<-finished
		fn(snapshot())
	}
}
