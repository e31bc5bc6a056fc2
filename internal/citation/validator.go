package citation

import (
	"bluecheck/internal/diag"
	"bluecheck/internal/refdata"
)

// maxDiagnostics bounds one result; the check pipeline emits far fewer.
const maxDiagnostics = 32

// Options configures a Validator.
type Options struct {
	// Tables defaults to refdata.Default().
	Tables *refdata.Tables
	// CurrentYear is the upper reference for the year-range warning
	// (years above CurrentYear+1 are unusual). Callers read the clock;
	// a non-positive value disables the upper bound.
	CurrentYear int
}

// Validator checks citations. It is immutable and safe for concurrent use.
type Validator struct {
	tables      *refdata.Tables
	currentYear int
}

func New(opts Options) *Validator {
	tables := opts.Tables
	if tables == nil {
		tables = refdata.Default()
	}
	return &Validator{tables: tables, currentYear: opts.CurrentYear}
}

// Check validates text with the default tables.
func Check(text string, currentYear int) Result {
	return New(Options{CurrentYear: currentYear}).Validate(text)
}

// Result is the outcome of one Validate call.
type Result struct {
	// Input is the citation after surrounding whitespace was trimmed. Spans
	// in Diagnostics index into it.
	Input       string
	Shape       Shape
	Components  Components
	Diagnostics *diag.Bag
}

// Validate checks one citation. It never fails: malformed input produces a
// result with at least one error.
func (v *Validator) Validate(citation string) Result {
	text := trimSpace(citation)
	bag := diag.NewBag(maxDiagnostics)
	res := Result{Input: text, Diagnostics: bag}

	p, ok := match(text)
	if !ok {
		diag.ReportError(diag.BagReporter{Bag: bag}, diag.ShpMismatch, wholeSpan(text), shapeMessage).Emit()
		return res
	}
	res.Shape = p.shape
	res.Components = componentsOf(p)

	c := &checker{r: diag.BagReporter{Bag: bag}, tables: v.tables, currentYear: v.currentYear}
	c.caseName(p.caseName)
	c.volume(p.volume)
	c.reporter(p.reporter)
	c.page(p.page)
	c.pinCite(p.pinCite)
	if p.shape == ShapeWithCourt {
		c.court(p.court, p.reporter)
	} else {
		c.omittedCourt(p.reporter)
	}
	c.year(p.year)
	c.period(text)

	return res
}

// IsValid reports whether the citation has no errors.
func (r Result) IsValid() bool {
	return !r.Diagnostics.HasErrors()
}

// Matched reports whether either citation shape matched.
func (r Result) Matched() bool {
	return r.Shape != ShapeNone
}

func (r Result) Errors() []string   { return r.Diagnostics.Messages(diag.SevError) }
func (r Result) Warnings() []string { return r.Diagnostics.Messages(diag.SevWarning) }
func (r Result) Info() []string     { return r.Diagnostics.Messages(diag.SevInfo) }

// Fields returns the component map in display order, or nil when the shape
// did not match.
func (r Result) Fields() []Field {
	if !r.Matched() {
		return nil
	}
	return r.Components.Fields()
}

// Without returns r with every diagnostic of severity sev dropped. Validity
// is unaffected unless sev is SevError.
func (r Result) Without(sev diag.Severity) Result {
	r.Diagnostics = r.Diagnostics.Without(sev)
	return r
}
