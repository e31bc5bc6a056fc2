package main

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"bluecheck/internal/config"
)

func newCheckFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("check", pflag.ContinueOnError)
	registerRootFlags(fs)
	registerCheckFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return fs
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func TestResolveSettingsDefaults(t *testing.T) {
	s, err := resolveSettings(newCheckFlags(t), config.Config{}, fixedNow)
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	if s.format != "pretty" || s.color != modeAuto || s.currentYear != 2025 || s.jobs != 0 || s.maxDiagnostics != 100 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestResolveSettingsPrecedence(t *testing.T) {
	cfg := config.Config{
		Output: config.OutputConfig{Format: "json", Color: "off"},
		Check:  config.CheckConfig{Year: 1999, Jobs: 3, NoWarnings: true},
	}

	t.Run("config fills unset flags", func(t *testing.T) {
		s, err := resolveSettings(newCheckFlags(t), cfg, fixedNow)
		if err != nil {
			t.Fatalf("resolveSettings: %v", err)
		}
		if s.format != "json" || s.color != modeOff || s.currentYear != 1999 || s.jobs != 3 || !s.noWarnings {
			t.Fatalf("config not applied: %+v", s)
		}
	})

	t.Run("explicit flags win", func(t *testing.T) {
		fs := newCheckFlags(t, "--format=short", "--color=on", "--year=2030", "--jobs=1", "--no-warnings=false")
		s, err := resolveSettings(fs, cfg, fixedNow)
		if err != nil {
			t.Fatalf("resolveSettings: %v", err)
		}
		if s.format != "short" || s.color != modeOn || s.currentYear != 2030 || s.jobs != 1 || s.noWarnings {
			t.Fatalf("flags did not win: %+v", s)
		}
	})
}

func TestResolveSettingsYear(t *testing.T) {
	tests := []struct {
		args []string
		want int
	}{
		{nil, 2025},
		{[]string{"--year=1990"}, 1990},
		{[]string{"--year=-1"}, 0},
	}
	for _, tt := range tests {
		s, err := resolveSettings(newCheckFlags(t, tt.args...), config.Config{}, fixedNow)
		if err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		if s.currentYear != tt.want {
			t.Fatalf("%v: currentYear = %d, want %d", tt.args, s.currentYear, tt.want)
		}
	}
}

func TestResolveSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"format", []string{"--format=xml"}, "unknown format"},
		{"color", []string{"--color=sometimes"}, "invalid --color value"},
		{"jobs", []string{"--jobs=-2"}, "must not be negative"},
		{"conflict", []string{"--no-warnings", "--warnings-as-errors"}, "cannot be used together"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveSettings(newCheckFlags(t, tt.args...), config.Config{}, fixedNow)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestResolveSettingsMissingFlags(t *testing.T) {
	fs := pflag.NewFlagSet("tables", pflag.ContinueOnError)
	s, err := resolveSettings(fs, config.Config{Check: config.CheckConfig{Year: 2001}}, fixedNow)
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	if s.format != "pretty" || s.color != modeAuto || s.currentYear != 2001 {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestReadMode(t *testing.T) {
	tests := map[string]switchMode{"": modeAuto, "AUTO": modeAuto, " on ": modeOn, "off": modeOff}
	for in, want := range tests {
		got, err := readMode("ui", in)
		if err != nil || got != want {
			t.Fatalf("readMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := readMode("ui", "maybe"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
