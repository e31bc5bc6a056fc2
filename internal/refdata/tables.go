// Package refdata holds the reference tables citations are checked against:
// known reporter abbreviations with their descriptive names, and recognized
// court abbreviations. Tables are immutable once built and safe for
// concurrent readers.
package refdata

import (
	"sort"
	"sync"
)

// Tables is a read-only pair of ReporterTable and CourtSet.
type Tables struct {
	reporters map[string]string
	courts    map[string]struct{}
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the compiled-in tables. The same value is shared by every
// caller.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables = build(defaultReporters, defaultCourts)
	})
	return defaultTables
}

func build(reporters map[string]string, courts []string) *Tables {
	t := &Tables{
		reporters: make(map[string]string, len(reporters)),
		courts:    make(map[string]struct{}, len(courts)),
	}
	for abbr, name := range reporters {
		t.reporters[abbr] = name
	}
	for _, c := range courts {
		t.courts[c] = struct{}{}
	}
	return t
}

// With returns a copy of t extended by extra reporters and courts. Extra
// reporter entries replace built-in descriptions with the same key. Blank
// keys are ignored.
func (t *Tables) With(reporters map[string]string, courts []string) *Tables {
	out := build(t.reporters, nil)
	for c := range t.courts {
		out.courts[c] = struct{}{}
	}
	for abbr, name := range reporters {
		if abbr == "" {
			continue
		}
		out.reporters[abbr] = name
	}
	for _, c := range courts {
		if c == "" {
			continue
		}
		out.courts[c] = struct{}{}
	}
	return out
}

// Describe returns the descriptive name of reporter. The lookup is exact.
func (t *Tables) Describe(reporter string) (string, bool) {
	name, ok := t.reporters[reporter]
	return name, ok
}

// IsKnownCourt reports whether abbrev is a recognized court.
func (t *Tables) IsKnownCourt(abbrev string) bool {
	_, ok := t.courts[abbrev]
	return ok
}

// Reporter is one ReporterTable entry.
type Reporter struct {
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
}

// Reporters lists the reporter table sorted by abbreviation.
func (t *Tables) Reporters() []Reporter {
	out := make([]Reporter, 0, len(t.reporters))
	for abbr, name := range t.reporters {
		out = append(out, Reporter{Abbrev: abbr, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Abbrev < out[j].Abbrev })
	return out
}

// Courts lists the court set sorted lexically.
func (t *Tables) Courts() []string {
	out := make([]string, 0, len(t.courts))
	for c := range t.courts {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
