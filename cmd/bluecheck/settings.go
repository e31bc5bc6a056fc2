package main

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"bluecheck/internal/config"
)

// checkSettings are the effective options of one check run. Explicit flags
// win over the configuration file, which wins over flag defaults.
type checkSettings struct {
	format           string
	color            switchMode
	currentYear      int // 0 disables the upper year bound
	jobs             int
	noWarnings       bool
	warningsAsErrors bool
	quiet            bool
	maxDiagnostics   int
	showCodes        bool
	preview          bool
}

func resolveSettings(flags *pflag.FlagSet, cfg config.Config, now func() time.Time) (checkSettings, error) {
	var s checkSettings
	var err error

	if s.format, err = pickString(flags, "format", cfg.Output.Format, "pretty"); err != nil {
		return s, err
	}
	switch s.format {
	case "pretty", "json", "short", "msgpack":
	default:
		return s, fmt.Errorf("unknown format: %s", s.format)
	}

	colorValue, err := pickString(flags, "color", cfg.Output.Color, "auto")
	if err != nil {
		return s, err
	}
	if s.color, err = readMode("color", colorValue); err != nil {
		return s, err
	}

	year, err := pickInt(flags, "year", cfg.Check.Year)
	if err != nil {
		return s, err
	}
	switch {
	case year == 0:
		s.currentYear = now().Year()
	case year > 0:
		s.currentYear = year
	}

	if s.jobs, err = pickInt(flags, "jobs", cfg.Check.Jobs); err != nil {
		return s, err
	}
	if s.jobs < 0 {
		return s, fmt.Errorf("--jobs must not be negative")
	}
	if s.noWarnings, err = pickBool(flags, "no-warnings", cfg.Check.NoWarnings); err != nil {
		return s, err
	}
	if s.warningsAsErrors, err = pickBool(flags, "warnings-as-errors", cfg.Check.WarningsAsErrors); err != nil {
		return s, err
	}
	if s.noWarnings && s.warningsAsErrors {
		return s, fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}

	for name, dst := range map[string]*bool{
		"quiet":   &s.quiet,
		"codes":   &s.showCodes,
		"preview": &s.preview,
	} {
		if *dst, err = pickBool(flags, name, false); err != nil {
			return s, err
		}
	}
	if s.maxDiagnostics, err = pickInt(flags, "max-diagnostics", 0); err != nil {
		return s, err
	}
	return s, nil
}

// pickString returns the flag value when it was set explicitly or there is no
// configured value, the configured value otherwise. A flag the command does
// not define falls back to the configured value, then def.
func pickString(flags *pflag.FlagSet, name, configured, def string) (string, error) {
	if flags.Lookup(name) == nil {
		if configured != "" {
			return configured, nil
		}
		return def, nil
	}
	v, err := flags.GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	if flags.Changed(name) || configured == "" {
		return v, nil
	}
	return configured, nil
}

func pickInt(flags *pflag.FlagSet, name string, configured int) (int, error) {
	if flags.Lookup(name) == nil {
		return configured, nil
	}
	v, err := flags.GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	if flags.Changed(name) || configured == 0 {
		return v, nil
	}
	return configured, nil
}

func pickBool(flags *pflag.FlagSet, name string, configured bool) (bool, error) {
	if flags.Lookup(name) == nil {
		return configured, nil
	}
	v, err := flags.GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	if flags.Changed(name) {
		return v, nil
	}
	return v || configured, nil
}
