package main

import (
	"fmt"
	"io"
	"os"

	"bluecheck/internal/batch"
	"bluecheck/internal/diag"
	"bluecheck/internal/diagfmt"
)

// entriesOf labels batch items for the renderers. source names the file the
// citations came from; command-line citations are labelled argN.
func entriesOf(items []batch.Item, source string) []diagfmt.Entry {
	entries := make([]diagfmt.Entry, 0, len(items))
	for i, it := range items {
		label := fmt.Sprintf("arg%d", i+1)
		if it.Input.Line > 0 {
			label = fmt.Sprintf("%s:%d", source, it.Input.Line)
		}
		entries = append(entries, diagfmt.Entry{Label: label, Result: it.Result})
	}
	return entries
}

// filterEntries drops the severities the settings hide. Hiding warnings never
// changes validity.
func filterEntries(entries []diagfmt.Entry, s checkSettings) []diagfmt.Entry {
	if !s.noWarnings && !s.quiet {
		return entries
	}
	out := make([]diagfmt.Entry, len(entries))
	for i, e := range entries {
		res := e.Result
		if s.noWarnings {
			res = res.Without(diag.SevWarning)
		}
		if s.quiet {
			res = res.Without(diag.SevInfo)
		}
		out[i] = diagfmt.Entry{Label: e.Label, Result: res}
	}
	return out
}

// failed reports whether the run should exit with status 1.
func failed(entries []diagfmt.Entry, s checkSettings) bool {
	for _, e := range entries {
		if !e.Result.IsValid() {
			return true
		}
		if s.warningsAsErrors && e.Result.Diagnostics.HasWarnings() {
			return true
		}
	}
	return false
}

func render(w io.Writer, entries []diagfmt.Entry, s checkSettings, labels bool) error {
	jsonOpts := diagfmt.JSONOpts{IncludeDiagnostics: s.showCodes, Max: s.maxDiagnostics}
	switch s.format {
	case "pretty":
		diagfmt.Pretty(w, entries, diagfmt.PrettyOpts{
			Color:       s.color.enabled(os.Stdout),
			ShowCodes:   s.showCodes,
			ShowPreview: s.preview,
			ShowLabels:  labels,
			Max:         s.maxDiagnostics,
		})
		if len(entries) > 1 {
			writeSummary(w, summaryOf(entries))
		}
	case "short":
		diagfmt.Short(w, entries, s.maxDiagnostics)
	case "json":
		if err := diagfmt.JSON(w, entries, jsonOpts); err != nil {
			return fmt.Errorf("failed to format results: %w", err)
		}
	case "msgpack":
		if err := diagfmt.Msgpack(w, entries, jsonOpts); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", s.format)
	}
	return nil
}

func summaryOf(entries []diagfmt.Entry) batch.Summary {
	items := make([]batch.Item, len(entries))
	for i, e := range entries {
		items[i] = batch.Item{Result: e.Result}
	}
	return batch.Summarize(items)
}

func writeSummary(w io.Writer, sum batch.Summary) {
	fmt.Fprintf(w, "\nchecked %d citations: %d valid", sum.Total, sum.Valid)
	if sum.WithWarnings > 0 {
		fmt.Fprintf(w, " (%d with warnings)", sum.WithWarnings)
	}
	fmt.Fprintf(w, ", %d with errors\n", sum.Total-sum.Valid)
}
