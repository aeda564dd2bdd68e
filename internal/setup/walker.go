// Package setup provides initialization and configuration functions
package setup

import (
	"fmt"
	"io"

	"github.com/bethropolis/dir-tree/internal/config"
	"github.com/bethropolis/dir-tree/internal/content"
	"github.com/bethropolis/dir-tree/internal/utils"
	"github.com/bethropolis/dir-tree/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	utils.Logger
}

const bytesPerMB = 1024 * 1024

// ConfigureWalker maps the configuration onto walker options. When progress
// is enabled, a status line is rewritten on progressOut.
func ConfigureWalker(cfg *config.Config, log Logger, progressOut io.Writer) []walker.Option {
	if len(cfg.Extensions) > 0 {
		log.Info("Filtering enabled. Only including extensions: %v", cfg.Extensions)
	} else {
		log.Debug("No extension filtering (including all file types).")
	}
	if cfg.IgnoreHidden {
		log.Info("Ignoring hidden files/directories (starting with '.').")
	} else {
		log.Debug("Including hidden files/directories.")
	}
	log.Debug("Ignore files: %v, always ignored: %v, max depth: %d", cfg.IgnoreFileNames, cfg.AlwaysIgnore, cfg.MaxDepth)

	opts := []walker.Option{
		walker.WithLogger(log),
		walker.WithConcurrency(cfg.Concurrent),
		walker.WithMaxWorkers(cfg.MaxWorkers),
		walker.WithIgnoreFileNames(cfg.IgnoreFileNames),
		walker.WithMaxDepth(cfg.MaxDepth),
		walker.WithAlwaysIgnore(cfg.AlwaysIgnore),
		walker.WithIgnoreHidden(cfg.IgnoreHidden),
		walker.WithExtensions(cfg.Extensions),
	}

	if cfg.ShowProgress && progressOut != nil {
		log.Debug("Progress display enabled")
		opts = append(opts, walker.WithProgress(ProgressLine(progressOut)))
	}
	return opts
}

// ProgressLine returns a progress callback that overwrites a single status
// line on w.
func ProgressLine(w io.Writer) walker.ProgressCallback {
	return func(stats walker.ProgressStats) {
		path := truncateLeft(stats.CurrentPath, 40)
		fmt.Fprintf(w, "\rScanning: %-40s | Dirs: %d | Files: %d | Skipped: %d | Pending: %d",
			path,
			stats.Directories,
			stats.Files,
			stats.Skipped,
			stats.PendingDirs)
	}
}

// truncateLeft shortens s to at most width runes, keeping its end.
func truncateLeft(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return "..." + string(r[len(r)-(width-3):])
}

// ConfigureLoader maps the configuration onto content loader options.
func ConfigureLoader(cfg *config.Config, log Logger) []content.Option {
	opts := []content.Option{
		content.WithLogger(log),
		content.WithWorkers(cfg.MaxWorkers),
		content.WithSelectedOnly(len(cfg.Select) > 0),
	}
	if cfg.MaxFileSizeMB > 0 {
		opts = append(opts, content.WithMaxFileSize(cfg.MaxFileSizeMB*bytesPerMB))
		log.Info("Ignoring files larger than %d MB.", cfg.MaxFileSizeMB)
	}
	return opts
}
