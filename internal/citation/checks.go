package citation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"bluecheck/internal/diag"
	"bluecheck/internal/refdata"
)

const versus = " v. "

// abbreviable are party-name words Rule 10.2.1 shortens when followed by
// "of". The scan is a plain substring search.
var abbreviable = []string{"United States", "State", "People", "Commonwealth"}

const (
	minYear = 1700

	shapeMessage = "Citation does not match basic Bluebook format: " +
		"Case Name, Volume Reporter Page (Court Year)"
)

// checker runs the per-component checks of one Validate call.
type checker struct {
	r           diag.Reporter
	tables      *refdata.Tables
	currentYear int
}

func (c *checker) caseName(f field) {
	name := f.value
	if name == "" || name[0] < 'A' || name[0] > 'Z' {
		diag.ReportWarning(c.r, diag.CaseLowercaseStart, f.span,
			"Case name should start with a capital letter").Emit()
	}

	if !strings.Contains(name, versus) {
		diag.ReportError(c.r, diag.CaseMissingVersus, f.span,
			`Case name must include " v. " (with periods and spaces) between parties`).Emit()
	} else {
		parts := strings.Split(name, versus)
		if len(parts) != 2 {
			diag.ReportError(c.r, diag.CasePartyCount, f.span,
				`Case name should have exactly two parties separated by " v. "`).Emit()
		} else if trimSpace(parts[0]) == "" || trimSpace(parts[1]) == "" {
			diag.ReportError(c.r, diag.CaseEmptyParty, f.span,
				"Both party names must be present").Emit()
		}
	}

	for _, word := range abbreviable {
		idx := strings.Index(name, word+" of ")
		if idx < 0 || strings.Contains(name, word+" v.") {
			continue
		}
		sp := subSpan(f.span, idx, len(word)+len(" of"))
		diag.ReportInfo(c.r, diag.CaseAbbreviate, sp,
			fmt.Sprintf(`Consider abbreviating "%s of" in party names per Bluebook Rule 10.2.1`, word)).Emit()
	}
}

func (c *checker) volume(f field) {
	if !isDigits(f.value) {
		diag.ReportError(c.r, diag.NumVolume, f.span, "Volume number must be numeric").Emit()
	}
}

func (c *checker) reporter(f field) {
	name, ok := c.tables.Describe(f.value)
	if !ok {
		diag.ReportWarning(c.r, diag.RepUnknown, f.span,
			fmt.Sprintf(`Reporter "%s" not recognized. Common reporters include: U.S., F.3d, F.4th, S. Ct., etc`, f.value)).Emit()
		return
	}
	diag.ReportInfo(c.r, diag.RepKnown, f.span, "Reporter: "+name).Emit()
}

func (c *checker) page(f field) {
	if !isDigits(f.value) {
		diag.ReportError(c.r, diag.NumPage, f.span, "Page number must be numeric").Emit()
	}
}

func (c *checker) pinCite(f field) {
	if f.value != "" && !isDigits(f.value) {
		diag.ReportError(c.r, diag.NumPinCite, f.span, "Pin cite (if present) must be numeric").Emit()
	}
}

// court runs only when the parenthetical named a court.
func (c *checker) court(court, reporter field) {
	if reporter.value == refdata.SupremeCourt && court.value != refdata.SupremeCourt {
		diag.ReportWarning(c.r, diag.CrtSupremeRedundant, court.span,
			"U.S. Supreme Court cases in U.S. Reports need only year in parenthetical").Emit()
	}
	if !c.tables.IsKnownCourt(court.value) && court.value != refdata.SupremeCourt {
		diag.ReportWarning(c.r, diag.CrtUnverified, court.span,
			fmt.Sprintf(`Court "%s" may need verification. Use standard abbreviations.`, court.value)).Emit()
	}
}

// omittedCourt runs when the parenthetical held only the year.
func (c *checker) omittedCourt(reporter field) {
	if reporter.value == refdata.SupremeCourt {
		diag.ReportInfo(c.r, diag.CrtSupremeOmitted, reporter.span,
			"Supreme Court case - court designation not required").Emit()
	}
}

func (c *checker) year(f field) {
	y, ok := yearValue(f.value)
	if !ok {
		diag.ReportError(c.r, diag.YearFormat, f.span, "Year must be in YYYY format").Emit()
		return
	}
	if y < minYear || (c.currentYear > 0 && y > c.currentYear+1) {
		diag.ReportWarning(c.r, diag.YearUnusual, f.span, "Year appears unusual. Please verify").Emit()
	}
}

// yearValue parses exactly four decimal digits from any script.
func yearValue(s string) (int, bool) {
	if utf8.RuneCountInString(s) != 4 {
		return 0, false
	}
	y := 0
	for _, r := range s {
		d, ok := digitValue(r)
		if !ok {
			return 0, false
		}
		y = y*10 + d
	}
	return y, true
}

// period checks the whole (already trimmed) citation, not a component.
func (c *checker) period(text string) {
	if !strings.HasSuffix(text, ".") {
		diag.ReportWarning(c.r, diag.PunTrailingPeriod, endSpan(text), "Citation should end with a period.").Emit()
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// digitValue returns the value of a decimal digit. Decimal digits come in
// contiguous runs of ten starting at zero, so the offset into the run gives
// the value.
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}
	n := 0
	for unicode.IsDigit(r - 1) {
		r--
		n++
	}
	return n % 10, true
}

// subSpan narrows sp to n bytes starting off bytes into it.
func subSpan(sp diag.Span, off, n int) diag.Span {
	inner := spanOf(off, off+n)
	return diag.Span{Start: sp.Start + inner.Start, End: sp.Start + inner.End}
}
