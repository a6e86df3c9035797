// Package config loads the user configuration of glance from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/glance/display"
	"github.com/iw2rmb/glance/loader"
	"github.com/iw2rmb/glance/page"
)

// Width modes.
const (
	WidthBlock    = "block"
	WidthTerminal = "terminal"
)

// Duration is a time.Duration written as a string ("30s", "2m") in TOML.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Config holds the reader configuration.
type Config struct {
	// DisplayWidth is the width budget of one status row.
	DisplayWidth int `toml:"display_width"`
	// DisplayLines is the number of rows joined into one page.
	DisplayLines int `toml:"display_lines"`

	// AutoStopDelay pauses `glance read` after this long without a page turn
	// and ends `glance follow` after this long in total. 0 disables.
	AutoStopDelay Duration `toml:"auto_stop_delay"`
	// AutoAdvanceInterval turns pages on a timer. 0 disables.
	AutoAdvanceInterval Duration `toml:"auto_advance_interval"`
	// AutoAdvanceJitter adds up to this much random delay to each turn.
	AutoAdvanceJitter Duration `toml:"auto_advance_jitter"`

	// WidthMode is "block" (Unicode block ranges) or "terminal" (East Asian Width tables).
	WidthMode string `toml:"width_mode"`
	// Encoding of documents: auto, utf-8, utf-16, gb18030.
	Encoding string `toml:"encoding"`
	// LibraryPath overrides the location of the library file.
	LibraryPath string `toml:"library_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DisplayWidth: 45,
		DisplayLines: 1,
		WidthMode:    WidthBlock,
		Encoding:     string(loader.EncodingAuto),
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(configDir(), "config.toml")
}

// DefaultLibraryPath returns the default library file location.
func DefaultLibraryPath() string {
	return filepath.Join(configDir(), "library.json")
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "glance")
}

// Load reads the config at path over the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes c to path, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return f.Close()
}

// Validate checks every field.
func (c *Config) Validate() error {
	if err := c.Page().Validate(); err != nil {
		return err
	}
	if c.AutoStopDelay.Duration < 0 || c.AutoAdvanceInterval.Duration < 0 || c.AutoAdvanceJitter.Duration < 0 {
		return errors.New("durations must not be negative")
	}
	switch c.WidthMode {
	case "", WidthBlock, WidthTerminal:
	default:
		return fmt.Errorf("unknown width_mode %q", c.WidthMode)
	}
	if _, err := loader.ParseEncoding(c.Encoding); err != nil {
		return err
	}
	return nil
}

// Page returns the page sizing.
func (c *Config) Page() page.Config {
	return page.Config{DisplayWidth: c.DisplayWidth, LinesPerPage: c.DisplayLines}
}

// Measure returns the width measure selected by WidthMode.
func (c *Config) Measure() display.Measure {
	if c.WidthMode == WidthTerminal {
		return display.Terminal
	}
	return display.Block
}

// LoaderOptions returns the document decoding options.
func (c *Config) LoaderOptions() loader.Options {
	enc, err := loader.ParseEncoding(c.Encoding)
	if err != nil {
		enc = loader.EncodingAuto
	}
	return loader.Options{Encoding: enc}
}

// Library returns the library file path.
func (c *Config) Library() string {
	if c.LibraryPath != "" {
		return c.LibraryPath
	}
	return DefaultLibraryPath()
}
