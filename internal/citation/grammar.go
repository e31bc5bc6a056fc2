package citation

import (
	"regexp"
	"strings"
	"unicode"

	"fortio.org/safecast"

	"bluecheck/internal/diag"
)

// Shape identifies which citation layout matched.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeWithCourt
	ShapeNoCourt
)

func (s Shape) String() string {
	switch s {
	case ShapeWithCourt:
		return "with-court"
	case ShapeNoCourt:
		return "no-court"
	}
	return "none"
}

// Whitespace and digits are Unicode-aware: a non-breaking space between
// reporter and page is as good as a plain one.
const (
	space = `\s\v\x{1c}-\x{1f}\x{85}\p{Z}`
	digit = `\p{Nd}`
)

// Both layouts share the prefix up to the parenthetical. The case name and
// reporter are lazy so the shortest leftmost split wins; digit runs are
// greedy.
const shapePrefix = `^(.+?),[` + space + `]*(` + digit + `+)[` + space + `]+` +
	`([A-Z][A-Za-z0-9.` + space + `]+?)[` + space + `]+(` + digit + `+)` +
	`(?:,[` + space + `]*(` + digit + `+))?[` + space + `]*`

var (
	withCourtRe = regexp.MustCompile(shapePrefix + `\(([^)]+)[` + space + `]+(` + digit + `{4})\)\.?$`)
	noCourtRe   = regexp.MustCompile(shapePrefix + `\((` + digit + `{4})\)\.?$`)
)

// Capture groups shared by both layouts.
const (
	groupCaseName = 1
	groupVolume   = 2
	groupReporter = 3
	groupPage     = 4
	groupPinCite  = 5
)

// field is one extracted component together with its location in the text.
type field struct {
	value string
	span  diag.Span
}

// parsed holds the raw components of a matched citation. Absent optional
// fields have an empty value.
type parsed struct {
	shape    Shape
	caseName field
	volume   field
	reporter field
	page     field
	pinCite  field
	court    field
	year     field
}

// match applies the two layouts in priority order.
func match(text string) (parsed, bool) {
	if loc := withCourtRe.FindStringSubmatchIndex(text); loc != nil {
		p := commonFields(text, loc)
		p.shape = ShapeWithCourt
		p.court = trimmedField(text, loc, 6)
		p.year = rawField(text, loc, 7)
		return p, true
	}
	if loc := noCourtRe.FindStringSubmatchIndex(text); loc != nil {
		p := commonFields(text, loc)
		p.shape = ShapeNoCourt
		p.year = rawField(text, loc, 6)
		return p, true
	}
	return parsed{}, false
}

func commonFields(text string, loc []int) parsed {
	return parsed{
		caseName: rawField(text, loc, groupCaseName),
		volume:   rawField(text, loc, groupVolume),
		reporter: trimmedField(text, loc, groupReporter),
		page:     rawField(text, loc, groupPage),
		pinCite:  rawField(text, loc, groupPinCite),
	}
}

// rawField returns capture group g verbatim. A group that did not
// participate yields the zero field.
func rawField(text string, loc []int, g int) field {
	start, end := loc[2*g], loc[2*g+1]
	if start < 0 {
		return field{}
	}
	return field{value: text[start:end], span: spanOf(start, end)}
}

// trimmedField is rawField with surrounding whitespace removed from both the
// value and the span.
func trimmedField(text string, loc []int, g int) field {
	start, end := loc[2*g], loc[2*g+1]
	if start < 0 {
		return field{}
	}
	raw := text[start:end]
	lead := len(raw) - len(strings.TrimLeftFunc(raw, isSpace))
	value := trimSpace(raw)
	return field{value: value, span: spanOf(start+lead, start+lead+len(value))}
}

// isSpace matches the whitespace the grammars accept, which adds the ASCII
// separators U+001C..U+001F to unicode.IsSpace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func spanOf(start, end int) diag.Span {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		return diag.Span{}
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		return diag.Span{Start: s, End: s}
	}
	return diag.Span{Start: s, End: e}
}

// wholeSpan covers all of text.
func wholeSpan(text string) diag.Span {
	return spanOf(0, len(text))
}

// endSpan is the empty span just past the last byte of text.
func endSpan(text string) diag.Span {
	return spanOf(len(text), len(text))
}
