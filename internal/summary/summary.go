// Package summary handles display of scan results and statistics
package summary

import (
	"fmt"
	"io"
	"time"

	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults shows the end results of a scan operation
func DisplayResults(logger Logger, stats walker.Stats, printed int64, quiet bool) {
	if quiet {
		return
	}
	logger.Info("Listed %d directories and %d files.", stats.Directories, stats.Files)
	if stats.SkippedDirs+stats.SkippedFiles > 0 {
		logger.Info("Skipped %d directories and %d files.", stats.SkippedDirs, stats.SkippedFiles)
	}
	if printed > 0 {
		logger.Info("Printed the contents of %d files.", printed)
	}
	logger.Info("Scan complete in %v.", stats.Duration.Round(time.Millisecond))
}

// DisplaySkippedItems formats and prints information about skipped items.
// Items are expected in the order walker.SkippedTracker.Items returns them.
func DisplaySkippedItems(
	logger Logger,
	skippedItems []walker.SkippedItem,
	output io.Writer,
	quiet bool,
) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		infoLog("No items were skipped.")
	}
	for _, item := range skippedItems {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		line := fmt.Sprintf("Skipped %s: %-50.50s [%s]", typeStr, item.Path, item.Reason)
		if item.Pattern != "" {
			line += fmt.Sprintf(" (%s)", item.Pattern)
		}
		fmt.Fprintln(output, line)
	}
	infoLog("--- End Skipped Items ---")
}

// DisplayPatterns lists every ignore pattern read during the scan, grouped
// by the directory that defined it. Patterns are shown root-relative, the
// form used in the skipped items list.
func DisplayPatterns(sets []ignore.RuleSet, output io.Writer) {
	total := 0
	for _, rs := range sets {
		total += len(rs.Patterns)
	}

	fmt.Fprintf(output, "--- Ignore Patterns (%d) ---\n", total)
	n := 0
	for _, rs := range sets {
		base := rs.BasePath
		if base == "" {
			base = "."
		}
		fmt.Fprintf(output, "[%s]\n", base)
		for _, raw := range rs.Patterns {
			n++
			fmt.Fprintf(output, "%3d  %s\n", n, ignore.PrefixPattern(raw, rs.BasePath))
		}
	}
}
