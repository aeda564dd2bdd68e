// Package walker builds the filtered, sorted entry tree of a directory.
package walker

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/tree"
)

// ErrScanCancelled is returned by Walk when its context ends before the scan
// completes. The partial tree is discarded.
var ErrScanCancelled = errors.New("walker: scan cancelled")

// SkippedReason clarifies why an entry was left out of the tree.
type SkippedReason string

const (
	ReasonAlwaysIgnored     SkippedReason = "Ignored (Always-Ignore Name)"
	ReasonIgnoredHidden     SkippedReason = "Ignored (Hidden Rule)"
	ReasonIgnoredRule       SkippedReason = "Ignored (Gitignore/Custom Rule)"
	ReasonFilteredExtension SkippedReason = "Filtered (Extension Mismatch)"
	ReasonDepthLimit        SkippedReason = "Truncated (Depth Limit Reached)"
	ReasonListError         SkippedReason = "Skipped (Cannot List Directory)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path    string        `json:"path" yaml:"path"`
	Reason  SkippedReason `json:"reason" yaml:"reason"`
	IsDir   bool          `json:"is_dir" yaml:"is_dir"`
	Pattern string        `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// SkippedTracker collects skipped items from concurrent workers.
type SkippedTracker struct {
	items []SkippedItem
	mutex sync.Mutex
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track records a skipped path.
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.TrackPattern(path, reason, isDir, "")
}

// TrackPattern records a skipped path together with the rule that decided it.
func (st *SkippedTracker) TrackPattern(path string, reason SkippedReason, isDir bool, pattern string) {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir, Pattern: pattern})
}

// Items returns a copy of the tracked items sorted by path.
func (st *SkippedTracker) Items() []SkippedItem {
	st.mutex.Lock()
	items := make([]SkippedItem, len(st.items))
	copy(items, st.items)
	st.mutex.Unlock()

	sort.SliceStable(items, func(i, j int) bool { return items[i].Path < items[j].Path })
	return items
}

// Stats summarizes a finished scan.
type Stats struct {
	Directories  int64         `json:"directories" yaml:"directories"`
	Files        int64         `json:"files" yaml:"files"`
	SkippedDirs  int64         `json:"skipped_dirs" yaml:"skipped_dirs"`
	SkippedFiles int64         `json:"skipped_files" yaml:"skipped_files"`
	Duration     time.Duration `json:"duration" yaml:"duration"`
}

// Result is the outcome of a completed scan.
// RuleSets holds every non-empty set of ignore patterns read during the
// scan, root first.
type Result struct {
	Tree     []tree.Entry
	Skipped  []SkippedItem
	RuleSets []ignore.RuleSet
	Stats    Stats
}

// ProgressCallback is a function that receives progress updates
type ProgressCallback func(stats ProgressStats)

// ProgressStats holds running counters of an in-flight scan.
type ProgressStats struct {
	Directories int64  // Directories accepted so far
	Files       int64  // Files accepted so far
	Skipped     int64  // Entries left out so far
	PendingDirs int64  // Directory frames waiting for a worker
	CurrentPath string // Directory most recently taken by a worker
}
