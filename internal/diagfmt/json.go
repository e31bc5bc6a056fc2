package diagfmt

import (
	"encoding/json"
	"io"

	"bluecheck/internal/citation"
)

// DiagnosticJSON is one coded diagnostic with its byte span in the citation.
type DiagnosticJSON struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Start    uint32 `json:"start"`
	End      uint32 `json:"end"`
}

// ResultJSON is the machine-readable form of citation.Result. Components
// holds every component key; an absent pin cite is null and an unmatched
// citation has an empty map.
type ResultJSON struct {
	Label       string             `json:"label,omitempty"`
	Citation    string             `json:"citation"`
	IsValid     bool               `json:"is_valid"`
	Shape       string             `json:"shape"`
	Errors      []string           `json:"errors"`
	Warnings    []string           `json:"warnings"`
	Info        []string           `json:"info"`
	Components  map[string]*string `json:"components"`
	Diagnostics []DiagnosticJSON   `json:"diagnostics,omitempty"`
}

// Output is the root of JSON and msgpack output.
type Output struct {
	Results []ResultJSON `json:"results"`
	Count   int          `json:"count"`
	Valid   int          `json:"valid"`
}

// BuildResult converts one result without serializing it.
func BuildResult(label string, res citation.Result, opts JSONOpts) ResultJSON {
	out := ResultJSON{
		Label:      label,
		Citation:   res.Input,
		IsValid:    res.IsValid(),
		Shape:      res.Shape.String(),
		Errors:     res.Errors(),
		Warnings:   res.Warnings(),
		Info:       res.Info(),
		Components: make(map[string]*string),
	}
	for _, f := range res.Fields() {
		if f.Value == "" {
			out.Components[f.Key] = nil
			continue
		}
		v := f.Value
		out.Components[f.Key] = &v
	}

	if opts.IncludeDiagnostics {
		items := res.Diagnostics.Items()
		n := len(items)
		if opts.Max > 0 && opts.Max < n {
			n = opts.Max
		}
		out.Diagnostics = make([]DiagnosticJSON, 0, n)
		for _, d := range items[:n] {
			out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
				Severity: d.Severity.Label(),
				Code:     d.Code.ID(),
				Message:  d.Message,
				Start:    d.Primary.Start,
				End:      d.Primary.End,
			})
		}
	}
	return out
}

// BuildOutput converts every entry, keeping their order.
func BuildOutput(entries []Entry, opts JSONOpts) Output {
	out := Output{Results: make([]ResultJSON, 0, len(entries))}
	for _, e := range entries {
		r := BuildResult(e.Label, e.Result, opts)
		if r.IsValid {
			out.Valid++
		}
		out.Results = append(out.Results, r)
	}
	out.Count = len(out.Results)
	return out
}

// JSON writes entries as indented JSON.
func JSON(w io.Writer, entries []Entry, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildOutput(entries, opts))
}
