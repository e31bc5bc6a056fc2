// Package config loads bluecheck.toml, the optional per-project settings
// file. Every setting has a command-line flag that takes precedence.
//
//	[output]
//	format = "pretty"   # pretty|json|short|msgpack
//	color  = "auto"     # auto|on|off
//
//	[check]
//	year = 2024               # fixed current year for the range check
//	jobs = 4
//	warnings_as_errors = false
//	no_warnings = false
//
//	[tables]
//	courts = ["Cal. Ct. App."]
//
//	[tables.reporters]
//	"Cal. Rptr." = "California Reporter"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"bluecheck/internal/refdata"
)

// FileName is the name searched for by Find.
const FileName = "bluecheck.toml"

type Config struct {
	Output OutputConfig `toml:"output"`
	Check  CheckConfig  `toml:"check"`
	Tables TablesConfig `toml:"tables"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type CheckConfig struct {
	Year             int  `toml:"year"`
	Jobs             int  `toml:"jobs"`
	WarningsAsErrors bool `toml:"warnings_as_errors"`
	NoWarnings       bool `toml:"no_warnings"`
}

type TablesConfig struct {
	Reporters map[string]string `toml:"reporters"`
	Courts    []string          `toml:"courts"`
}

// Manifest is a loaded configuration and where it came from.
type Manifest struct {
	Path   string
	Config Config
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the nearest configuration file. It returns
// ok=false without error when there is none.
func Discover(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Config: cfg}, true, nil
}

// Load decodes and validates one configuration file. Unknown keys are
// rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Output.Format {
	case "", "pretty", "json", "short", "msgpack":
	default:
		return fmt.Errorf("[output].format: unsupported value %q (must be pretty, json, short or msgpack)", c.Output.Format)
	}
	switch c.Output.Color {
	case "", "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color: unsupported value %q (must be auto, on or off)", c.Output.Color)
	}
	if c.Check.Year < 0 {
		return fmt.Errorf("[check].year must not be negative")
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("[check].jobs must not be negative")
	}
	if c.Check.NoWarnings && c.Check.WarningsAsErrors {
		return fmt.Errorf("[check].no_warnings and [check].warnings_as_errors cannot both be set")
	}
	for abbr := range c.Tables.Reporters {
		if strings.TrimSpace(abbr) == "" {
			return fmt.Errorf("[tables.reporters]: empty reporter abbreviation")
		}
	}
	return nil
}

// ApplyTables extends base with the configured reporters and courts.
func (c Config) ApplyTables(base *refdata.Tables) *refdata.Tables {
	if len(c.Tables.Reporters) == 0 && len(c.Tables.Courts) == 0 {
		return base
	}
	return base.With(c.Tables.Reporters, c.Tables.Courts)
}
