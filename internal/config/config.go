// Package config holds the dir-tree settings: defaults, an optional YAML
// file and command-line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/walker"
)

// DefaultConfigFile is looked up in the working directory when no --config
// flag is given.
const DefaultConfigFile = ".dir-tree.yaml"

// Output formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// Config holds all application configuration settings
type Config struct {
	// Directory settings
	RootDir     string
	Interactive bool

	// Filtering settings
	IgnoreFileNames []string
	MaxDepth        int
	AlwaysIgnore    []string
	IgnoreHidden    bool
	Extensions      []string

	// Processing settings
	Concurrent    bool
	MaxWorkers    int
	LoadContent   bool
	Select        []string
	MaxFileSizeMB int64
	ShowProgress  bool
	Timeout       time.Duration

	// Output settings
	Format      string
	OutputFile  string
	ShowSkipped bool
	Explain     bool

	// Logging settings
	LogLevel  string
	NoColor   bool
	UseColors bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		IgnoreFileNames: ignore.DefaultIgnoreFileNames(),
		MaxDepth:        walker.DefaultMaxDepth,
		AlwaysIgnore:    walker.DefaultAlwaysIgnore(),
		IgnoreHidden:    false,
		Concurrent:      false,
		MaxWorkers:      runtime.NumCPU(),
		LoadContent:     false,
		MaxFileSizeMB:   0, // No limit
		Format:          FormatText,
		LogLevel:        "info",
	}
}

// fileConfig mirrors the YAML file layout.
type fileConfig struct {
	IgnoreFileNames []string `yaml:"ignore_file_names"`
	MaxDepth        *int     `yaml:"max_depth"`
	AlwaysIgnore    []string `yaml:"always_ignore"`
	IgnoreHidden    *bool    `yaml:"ignore_hidden"`
	Extensions      []string `yaml:"extensions"`
	Concurrent      *bool    `yaml:"concurrent"`
	Workers         *int     `yaml:"workers"`
	LoadContent     *bool    `yaml:"load_content"`
	Select          []string `yaml:"select"`
	MaxFileSizeMB   *int64   `yaml:"max_file_size_mb"`
	Format          string   `yaml:"format"`
	LogLevel        string   `yaml:"log_level"`
	NoColor         *bool    `yaml:"no_color"`
	Output          string   `yaml:"output"`
	ShowSkipped     *bool    `yaml:"show_skipped"`
	Progress        *bool    `yaml:"progress"`
	Timeout         string   `yaml:"timeout"`
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.merge(fc); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) merge(fc fileConfig) error {
	if fc.IgnoreFileNames != nil {
		c.IgnoreFileNames = fc.IgnoreFileNames
	}
	if fc.MaxDepth != nil {
		c.MaxDepth = *fc.MaxDepth
	}
	if fc.AlwaysIgnore != nil {
		c.AlwaysIgnore = fc.AlwaysIgnore
	}
	if fc.IgnoreHidden != nil {
		c.IgnoreHidden = *fc.IgnoreHidden
	}
	if fc.Extensions != nil {
		c.Extensions = NormalizeExtensions(fc.Extensions)
	}
	if fc.Concurrent != nil {
		c.Concurrent = *fc.Concurrent
	}
	if fc.Workers != nil {
		c.MaxWorkers = *fc.Workers
	}
	if fc.LoadContent != nil {
		c.LoadContent = *fc.LoadContent
	}
	if fc.Select != nil {
		c.Select = fc.Select
	}
	if fc.MaxFileSizeMB != nil {
		c.MaxFileSizeMB = *fc.MaxFileSizeMB
	}
	if fc.Format != "" {
		c.Format = strings.ToLower(fc.Format)
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.NoColor != nil {
		c.NoColor = *fc.NoColor
	}
	if fc.Output != "" {
		c.OutputFile = fc.Output
	}
	if fc.ShowSkipped != nil {
		c.ShowSkipped = *fc.ShowSkipped
	}
	if fc.Progress != nil {
		c.ShowProgress = *fc.Progress
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", fc.Timeout, err)
		}
		c.Timeout = d
	}
	return nil
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown:
	default:
		return fmt.Errorf("config: unknown format %q (want text, json, yaml or markdown)", c.Format)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("config: max depth must be >= 0, got %d", c.MaxDepth)
	}
	if c.MaxWorkers < 1 {
		return fmt.Errorf("config: workers must be >= 1, got %d", c.MaxWorkers)
	}
	if c.MaxFileSizeMB < 0 {
		return fmt.Errorf("config: max file size must be >= 0, got %d", c.MaxFileSizeMB)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must be >= 0, got %s", c.Timeout)
	}
	for _, pattern := range c.Select {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("config: invalid select pattern %q", pattern)
		}
	}
	return nil
}

// ResolveColors decides whether colored output is used: never when
// disabled, when writing to a file or when stderr is not a terminal.
func (c *Config) ResolveColors(stderr *os.File) {
	c.UseColors = !c.NoColor && c.OutputFile == "" && stderr != nil && isatty.IsTerminal(stderr.Fd())
}

// NormalizeExtensions lower-cases extensions and strips dots and blanks.
func NormalizeExtensions(exts []string) []string {
	var out []string
	for _, ext := range exts {
		for _, part := range strings.Split(ext, ",") {
			clean := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(part), ".")))
			if clean != "" {
				out = append(out, clean)
			}
		}
	}
	return out
}
