package walker

import (
	"runtime"
	"strings"

	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/utils"
)

// DefaultMaxDepth bounds how many directory levels below the root are listed.
const DefaultMaxDepth = 5

// DefaultAlwaysIgnore returns the names excluded regardless of ignore files.
func DefaultAlwaysIgnore() []string {
	return []string{".git", "node_modules", ".vscode", ".idea"}
}

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger          utils.Logger
	Concurrent      bool
	MaxWorkers      int
	IgnoreFileNames []string
	MaxDepth        int
	AlwaysIgnore    map[string]struct{}
	ExtensionMap    map[string]struct{}
	ignoreHidden    bool
	ProgressFn      ProgressCallback
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	opts := WalkOptions{
		Logger:          &utils.NoopLogger{},
		Concurrent:      false,
		MaxWorkers:      runtime.NumCPU(),
		IgnoreFileNames: ignore.DefaultIgnoreFileNames(),
		MaxDepth:        DefaultMaxDepth,
		ExtensionMap:    nil, // No extension filtering by default
		ignoreHidden:    false,
		ProgressFn:      nil,
	}
	WithAlwaysIgnore(DefaultAlwaysIgnore())(&opts)
	return opts
}

// workers returns how many goroutines drain the frame stack.
func (o WalkOptions) workers() int {
	if !o.Concurrent || o.MaxWorkers < 1 {
		return 1
	}
	return o.MaxWorkers
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		opts.Logger = utils.OrNoop(logger)
	}
}

// WithConcurrency enables or disables scanning sibling directories in parallel
func WithConcurrency(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.Concurrent = enabled
	}
}

// WithMaxWorkers sets the maximum number of concurrent workers
func WithMaxWorkers(workers int) Option {
	return func(opts *WalkOptions) {
		if workers > 0 {
			opts.MaxWorkers = workers
		}
	}
}

// WithIgnoreFileNames sets the candidate ignore files read in every
// directory, in precedence order. An empty list disables ignore files.
func WithIgnoreFileNames(names []string) Option {
	return func(opts *WalkOptions) {
		opts.IgnoreFileNames = append([]string(nil), names...)
	}
}

// WithMaxDepth sets the depth bound. Negative values are treated as zero.
func WithMaxDepth(depth int) Option {
	return func(opts *WalkOptions) {
		if depth < 0 {
			depth = 0
		}
		opts.MaxDepth = depth
	}
}

// WithAlwaysIgnore replaces the set of bare names that are never listed.
func WithAlwaysIgnore(names []string) Option {
	return func(opts *WalkOptions) {
		set := make(map[string]struct{}, len(names))
		for _, name := range names {
			if name = strings.TrimSpace(name); name != "" {
				set[name] = struct{}{}
			}
		}
		opts.AlwaysIgnore = set
	}
}

// WithExtensions sets the file extensions to include (without the dot)
func WithExtensions(extensions []string) Option {
	return func(opts *WalkOptions) {
		if len(extensions) == 0 {
			opts.ExtensionMap = nil
			return
		}
		extMap := make(map[string]struct{}, len(extensions))
		for _, ext := range extensions {
			extMap[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
		}
		opts.ExtensionMap = extMap
	}
}

// WithIgnoreHidden enables or disables ignoring dot-prefixed names
func WithIgnoreHidden(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.ignoreHidden = enabled
	}
}

// WithProgress adds a progress callback function
func WithProgress(fn ProgressCallback) Option {
	return func(o *WalkOptions) {
		o.ProgressFn = fn
	}
}
