package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// RegisterFlags declares the command-line flags. Defaults shown in help
// come from DefaultConfig; only flags set explicitly override the config
// file (see ApplyFlags).
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()

	fs.String("config", "", "Path to config file (default: "+DefaultConfigFile+" if present)")
	fs.Bool("interactive", false, "Prompt for the directory to scan")

	fs.StringSlice("ignore-file", d.IgnoreFileNames, "Ignore file names read in every directory, in precedence order")
	fs.Int("max-depth", d.MaxDepth, "Maximum number of directory levels to list")
	fs.StringSlice("always-ignore", d.AlwaysIgnore, "Names that are never listed, whatever the ignore files say")
	fs.Bool("hidden", d.IgnoreHidden, "Ignore hidden files/directories (starting with '.')")
	fs.StringSlice("ext", nil, "Only include files with these extensions (comma-separated, e.g., 'go,md,txt')")

	fs.Bool("concurrent", d.Concurrent, "Scan sibling directories concurrently")
	fs.Int("workers", d.MaxWorkers, "Max number of concurrent workers (defaults to number of CPU cores)")
	fs.Bool("content", d.LoadContent, "Load and print file contents")
	fs.StringArray("select", nil, "Only load contents of files matching this glob pattern, repeatable (implies --content)")
	fs.Int64("max-size", d.MaxFileSizeMB, "Max file size to load in MB (0 = no limit)")
	fs.Bool("progress", false, "Show progress information")
	fs.Duration("timeout", 0, "Maximum execution time (e.g., '30s', '5m')")

	fs.StringP("format", "f", d.Format, "Output format: text, json, yaml or markdown")
	fs.Bool("json", false, "Shorthand for --format json")
	fs.Bool("markdown", false, "Shorthand for --format markdown")
	fs.StringP("output", "o", "", "Output to file instead of stdout")
	fs.Bool("show-skipped", false, "Show a list of skipped files/directories and reasons at the end")
	fs.Bool("explain", false, "Show the ignore patterns of every scanned directory and the pattern behind every skipped entry")

	fs.String("log-level", d.LogLevel, "Set the logging level (debug, info, warn, error, none)")
	fs.BoolP("verbose", "v", false, "Shorthand for --log-level debug")
	fs.BoolP("quiet", "q", false, "Shorthand for --log-level warn")
	fs.Bool("no-color", false, "Disable color output")
}

// ApplyFlags overrides c with every flag set on the command line.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	changed := func(name string) bool { return err == nil && fs.Changed(name) }
	enabled := func(name string) bool {
		v, _ := fs.GetBool(name)
		return changed(name) && v
	}

	if changed("interactive") {
		c.Interactive, err = fs.GetBool("interactive")
	}
	if changed("ignore-file") {
		c.IgnoreFileNames, err = fs.GetStringSlice("ignore-file")
	}
	if changed("max-depth") {
		c.MaxDepth, err = fs.GetInt("max-depth")
	}
	if changed("always-ignore") {
		c.AlwaysIgnore, err = fs.GetStringSlice("always-ignore")
	}
	if changed("hidden") {
		c.IgnoreHidden, err = fs.GetBool("hidden")
	}
	if changed("ext") {
		var exts []string
		exts, err = fs.GetStringSlice("ext")
		c.Extensions = NormalizeExtensions(exts)
	}
	if changed("concurrent") {
		c.Concurrent, err = fs.GetBool("concurrent")
	}
	if changed("workers") {
		c.MaxWorkers, err = fs.GetInt("workers")
	}
	if changed("content") {
		c.LoadContent, err = fs.GetBool("content")
	}
	if changed("select") {
		c.Select, err = fs.GetStringArray("select")
	}
	if changed("max-size") {
		c.MaxFileSizeMB, err = fs.GetInt64("max-size")
	}
	if changed("progress") {
		c.ShowProgress, err = fs.GetBool("progress")
	}
	if changed("timeout") {
		c.Timeout, err = fs.GetDuration("timeout")
	}
	if changed("format") {
		var f string
		f, err = fs.GetString("format")
		c.Format = strings.ToLower(f)
	}
	if enabled("json") && enabled("markdown") {
		return fmt.Errorf("config: cannot use both --json and --markdown")
	}
	if enabled("json") {
		c.Format = FormatJSON
	}
	if enabled("markdown") {
		c.Format = FormatMarkdown
	}
	if changed("output") {
		c.OutputFile, err = fs.GetString("output")
	}
	if changed("show-skipped") {
		c.ShowSkipped, err = fs.GetBool("show-skipped")
	}
	if changed("explain") {
		c.Explain, err = fs.GetBool("explain")
	}
	if changed("log-level") {
		c.LogLevel, err = fs.GetString("log-level")
	}
	if enabled("verbose") {
		c.LogLevel = "debug"
	}
	if enabled("quiet") {
		c.LogLevel = "warn"
	}
	if changed("no-color") {
		c.NoColor, err = fs.GetBool("no-color")
	}

	if err != nil {
		return fmt.Errorf("config: reading flags: %w", err)
	}
	if c.Explain {
		c.ShowSkipped = true
	}
	return nil
}
