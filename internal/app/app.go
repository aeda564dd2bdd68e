// Package app wires configuration, scanning and output together.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/bethropolis/dir-tree/internal/config"
	"github.com/bethropolis/dir-tree/internal/content"
	"github.com/bethropolis/dir-tree/internal/logger"
	"github.com/bethropolis/dir-tree/internal/picker"
	"github.com/bethropolis/dir-tree/internal/printer"
	"github.com/bethropolis/dir-tree/internal/setup"
	"github.com/bethropolis/dir-tree/internal/summary"
	"github.com/bethropolis/dir-tree/internal/walker"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer
	Errors io.Writer

	closer io.Closer
}

// New creates an App writing the tree to stdout, or to cfg.OutputFile when
// set, and diagnostics to stderr.
func New(cfg *config.Config, stdout, stderr io.Writer) (*App, error) {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	a := &App{cfg: cfg, Output: stdout, Errors: stderr}
	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file: %w", err)
		}
		a.Output = file
		a.closer = file
	}

	a.log = logger.New(stderr, false, cfg.UseColors)
	a.log.SetLevel(cfg.LogLevel)
	return a, nil
}

// Close releases the output file, if one was opened.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

// picker chooses how the root directory is obtained: an explicit argument
// wins, then an interactive prompt, then the working directory.
func (a *App) picker() picker.Picker {
	if a.cfg.RootDir != "" && !a.cfg.Interactive {
		return picker.Path(a.cfg.RootDir)
	}
	if a.cfg.Interactive || (a.cfg.RootDir == "" && isatty.IsTerminal(os.Stdin.Fd())) {
		initial := a.cfg.RootDir
		if initial == "" {
			initial = "."
		}
		return picker.Interactive(initial)
	}
	return picker.Path(".")
}

// Run executes the main application logic
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	if a.log.Verbose() {
		a.log.Debug("Verbose mode enabled")
		a.log.Debug("Color output: %v", a.cfg.UseColors)
		a.log.Debug("Concurrent mode: %v (workers: %d)", a.cfg.Concurrent, a.cfg.MaxWorkers)
		a.log.Debug("Output format: %s", a.cfg.Format)
	}

	opened, err := walker.OpenDirectory(ctx, a.picker(), setup.ConfigureWalker(a.cfg, a.log, a.Errors)...)
	if a.cfg.ShowProgress {
		fmt.Fprintln(a.Errors)
	}
	if err != nil {
		return err
	}
	if opened == nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("timeout of %v reached", a.cfg.Timeout)
		}
		a.log.Info("Cancelled, nothing to show.")
		return nil
	}
	a.log.Info("Scanned directory: %s", opened.Root.Path)

	if len(a.cfg.Select) > 0 {
		n := setup.SelectFiles(opened.Tree, a.cfg.Select, a.log)
		a.log.Info("Selected %d file(s) for content loading.", n)
	}
	if a.cfg.LoadContent || len(a.cfg.Select) > 0 {
		loader := content.NewLoader(opened.Root.FS, setup.ConfigureLoader(a.cfg, a.log)...)
		if err := loader.LoadAll(ctx, opened.Tree); err != nil {
			return fmt.Errorf("loading file contents: %w", err)
		}
	}

	p := printer.New().
		WithOutput(a.Output).
		WithColors(a.cfg.UseColors && a.cfg.Format == config.FormatText).
		WithFormat(a.cfg.Format)
	if err := p.PrintTree(opened.Root.Path, opened.Tree); err != nil {
		return err
	}

	quiet := a.log.Level() > logger.LevelInfo
	summary.DisplayResults(a.log, opened.Stats, p.GetCount(), quiet)

	if a.cfg.Explain {
		summary.DisplayPatterns(opened.RuleSets, a.Errors)
	}
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, opened.Skipped, a.Errors, quiet)
	}
	return nil
}
