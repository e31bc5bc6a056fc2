package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bluecheck/internal/diag"
)

const defaultWidth = 70

// style pairs a bold section heading with the color of its lines.
type style struct {
	head *color.Color
	body *color.Color
}

type palette struct {
	valid     *color.Color
	invalid   *color.Color
	err       style
	warn      style
	info      style
	component style
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	pair := func(fg color.Attribute) style {
		return style{head: mk(fg, color.Bold), body: mk(fg)}
	}
	return palette{
		valid:     mk(color.FgGreen, color.Bold),
		invalid:   mk(color.FgRed, color.Bold),
		err:       pair(color.FgRed),
		warn:      pair(color.FgYellow),
		info:      pair(color.FgBlue),
		component: pair(color.FgCyan),
	}
}

// Pretty renders results in the checker's report layout: a status banner,
// then ERRORS, WARNINGS, INFORMATION and CITATION COMPONENTS sections.
// Empty sections and blank component values are skipped.
func Pretty(w io.Writer, entries []Entry, opts PrettyOpts) {
	p := newPalette(opts.Color)
	width := int(opts.Width)
	if width == 0 {
		width = defaultWidth
	}
	separator := strings.Repeat("=", width)

	for idx, e := range entries {
		if idx > 0 {
			fmt.Fprintln(w)
		}
		if opts.ShowLabels {
			fmt.Fprintf(w, "== %s ==\n", e.Label)
		}
		res := e.Result
		fmt.Fprintln(w, separator)
		if res.IsValid() {
			p.valid.Fprintln(w, "✓ VALID FORMAT")
		} else {
			p.invalid.Fprintln(w, "✗ FORMAT ISSUES FOUND")
		}
		fmt.Fprintln(w, separator)
		fmt.Fprintln(w)

		shown := res.Diagnostics.Items()
		hidden := 0
		if opts.Max > 0 && opts.Max < len(shown) {
			hidden = len(shown) - opts.Max
			shown = shown[:opts.Max]
		}
		writeSection(w, res.Input, shown, diag.SevError, p.err, "ERRORS:", "*", opts)
		writeSection(w, res.Input, shown, diag.SevWarning, p.warn, "⚠ WARNINGS:", "•", opts)
		writeSection(w, res.Input, shown, diag.SevInfo, p.info, "ℹ INFORMATION:", "•", opts)
		if hidden > 0 {
			fmt.Fprintf(w, "(%d more diagnostics not shown)\n\n", hidden)
		}

		if fields := res.Fields(); len(fields) > 0 {
			p.component.head.Fprintln(w, "CITATION COMPONENTS:")
			for _, f := range fields {
				if f.Value == "" {
					continue
				}
				p.component.body.Fprintf(w, "  %s: %s\n", FieldLabel(f.Key), f.Value)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, separator)
	}
}

// FieldLabel turns a component key such as "start_page" into "Start Page".
func FieldLabel(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

func writeSection(w io.Writer, input string, diags []diag.Diagnostic, sev diag.Severity, st style, title, bullet string, opts PrettyOpts) {
	var items []diag.Diagnostic
	for _, d := range diags {
		if d.Severity == sev {
			items = append(items, d)
		}
	}
	if len(items) == 0 {
		return
	}
	st.head.Fprintln(w, title)
	for _, d := range items {
		msg := d.Message
		if opts.ShowCodes {
			msg = fmt.Sprintf("%s [%s]", msg, d.Code.ID())
		}
		st.body.Fprintf(w, "  %s %s\n", bullet, msg)
		if opts.ShowPreview && input != "" {
			writePreview(w, input, d.Primary, st.body)
		}
	}
	fmt.Fprintln(w)
}

// writePreview echoes text and underlines sp. Columns are display cells so
// wide runes stay aligned.
func writePreview(w io.Writer, text string, sp diag.Span, c *color.Color) {
	const indent = "      "
	start := min(int(sp.Start), len(text))
	end := min(max(int(sp.End), start), len(text))
	pad := runewidth.StringWidth(text[:start])
	n := max(runewidth.StringWidth(text[start:end]), 1)

	fmt.Fprintf(w, "%s%s\n", indent, text)
	c.Fprintf(w, "%s%s%s\n", indent, strings.Repeat(" ", pad), strings.Repeat("^", n))
}
