package walker

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/tree"
)

// frame is one directory waiting to be (or already) listed.
type frame struct {
	index          int
	dir            string // fs.FS name, "." for the root
	path           string // root-relative path, "" for the root
	chain          ignore.RuleSetChain
	depthRemaining int

	// filled by the single worker that processes the frame
	files   []tree.Entry
	subdirs []int
	rules   []ignore.RuleSet
}

// scan holds the shared state of one Walk call. Workers share only the
// frame stack and the frame table; everything else is per frame.
type scan struct {
	ctx     context.Context
	fsys    fs.FS
	options WalkOptions
	tracker *SkippedTracker

	mu      sync.Mutex
	cond    *sync.Cond
	stack   []*frame
	frames  []*frame
	pending int
	stopped bool

	errOnce sync.Once
	err     error

	dirs, files, skippedDirs, skippedFiles atomic.Int64
	current                                atomic.Value
}

func newScan(ctx context.Context, fsys fs.FS, options WalkOptions) *scan {
	s := &scan{
		ctx:     ctx,
		fsys:    fsys,
		options: options,
		tracker: NewSkippedTracker(64),
	}
	s.cond = sync.NewCond(&s.mu)
	s.current.Store("")
	return s
}

// push registers a new frame and makes it available to workers.
func (s *scan) push(dir, relPath string, chain ignore.RuleSetChain, depthRemaining int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := &frame{
		index:          len(s.frames),
		dir:            dir,
		path:           relPath,
		chain:          chain,
		depthRemaining: depthRemaining,
	}
	s.frames = append(s.frames, f)
	s.stack = append(s.stack, f)
	s.pending++
	s.cond.Signal()
	return f.index
}

// next blocks until a frame is available. It reports false once the stack
// is drained with no frame in flight, or after stop.
func (s *scan) next() (*frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.stack) == 0 && s.pending > 0 && !s.stopped {
		s.cond.Wait()
	}
	if s.stopped || len(s.stack) == 0 {
		return nil, false
	}
	f := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return f, true
}

// done marks a frame taken by next as finished.
func (s *scan) done() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending--
	if s.pending == 0 {
		s.cond.Broadcast()
	}
}

// stop makes every worker return after its current frame.
func (s *scan) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.cond.Broadcast()
}

func (s *scan) fail(err error) {
	s.errOnce.Do(func() { s.err = err })
	s.stop()
}

func (s *scan) queued() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.stack))
}

// worker drains the frame stack until the scan completes or stops.
func (s *scan) worker(id int, wg *sync.WaitGroup) {
	defer wg.Done()
	s.options.Logger.Debug("Worker %d: Started", id)

	for {
		f, ok := s.next()
		if !ok {
			break
		}
		if s.ctx.Err() != nil {
			s.options.Logger.Debug("Worker %d: Received cancellation signal", id)
			s.done()
			s.stop()
			break
		}
		if err := s.processFrame(f); err != nil {
			s.fail(err)
		}
		s.done()
	}

	s.options.Logger.Debug("Worker %d: Finished", id)
}

// processFrame lists one directory. The matcher for its children is
// complete before the first child is evaluated.
func (s *scan) processFrame(f *frame) error {
	log := s.options.Logger
	s.current.Store(displayPath(f.path))
	log.Debug("Walker: Scanning %q (depth remaining %d)", displayPath(f.path), f.depthRemaining)

	if f.depthRemaining <= 0 {
		log.Warn("Walker: Depth limit reached at %q, its entries are not listed", displayPath(f.path))
		s.tracker.Track(displayPath(f.path), ReasonDepthLimit, true)
		return nil
	}

	chain := f.chain
	if patterns := ignore.LoadRules(s.fsys, f.dir, s.options.IgnoreFileNames, log); len(patterns) > 0 {
		rs := ignore.NewRuleSet(f.path, patterns)
		chain = chain.Extend(rs)
		f.rules = append(f.rules, rs)
	}
	matcher := ignore.NewMatcher(chain, ignore.WithLogger(log))

	entries, err := fs.ReadDir(s.fsys, f.dir)
	if err != nil {
		if f.index == 0 {
			return fmt.Errorf("walker: cannot list root directory: %w", err)
		}
		log.Error("Walker Error: Cannot list %q, skipping its entries: %v", f.path, err)
		s.tracker.Track(f.path, ReasonListError, true)
		return nil
	}

	for _, d := range entries {
		if s.ctx.Err() != nil {
			return nil
		}
		s.visit(f, chain, matcher, d)
	}
	return nil
}

// visit applies the filters to one child of f and either materializes it or
// queues it as a new frame.
func (s *scan) visit(f *frame, chain ignore.RuleSetChain, matcher *ignore.IgnoreMatcher, d fs.DirEntry) {
	log := s.options.Logger
	name := d.Name()
	isDir := d.IsDir()

	if _, ok := s.options.AlwaysIgnore[name]; ok {
		s.skip(joinPath(f.path, name), ReasonAlwaysIgnored, isDir, "")
		return
	}
	if s.options.ignoreHidden && strings.HasPrefix(name, ".") {
		s.skip(joinPath(f.path, name), ReasonIgnoredHidden, isDir, "")
		return
	}

	childPath := joinPath(f.path, name)
	if res := matcher.MatchWithReason(ignore.MatchPath(childPath, isDir), isDir); res.Ignored {
		log.Debug("Walker: Ignored %q by pattern %q", childPath, res.Pattern)
		s.skip(childPath, ReasonIgnoredRule, isDir, res.Pattern)
		return
	}

	if isDir {
		idx := s.push(path.Join(f.dir, name), childPath, chain, f.depthRemaining-1)
		f.subdirs = append(f.subdirs, idx)
		s.dirs.Add(1)
		return
	}

	if len(s.options.ExtensionMap) > 0 {
		ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
		if _, allowed := s.options.ExtensionMap[ext]; !allowed {
			s.skip(childPath, ReasonFilteredExtension, false, "")
			return
		}
	}

	f.files = append(f.files, tree.NewFile(childPath))
	s.files.Add(1)
}

func (s *scan) skip(relPath string, reason SkippedReason, isDir bool, pattern string) {
	s.tracker.TrackPattern(relPath, reason, isDir, pattern)
	if isDir {
		s.skippedDirs.Add(1)
	} else {
		s.skippedFiles.Add(1)
	}
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

func displayPath(p string) string {
	if p == "" {
		return "."
	}
	return p
}
