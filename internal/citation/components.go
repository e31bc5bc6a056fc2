package citation

import (
	"fmt"
	"strings"
)

// CourtNotSpecified is the Court value when the citation has no court in its
// parenthetical.
const CourtNotSpecified = "Not specified"

// Components are the structural fields extracted from a matched citation.
type Components struct {
	CaseName  string
	Volume    string
	Reporter  string
	StartPage string
	PinCite   string // empty when absent
	Court     string
	Year      string

	// CourtGiven is true when Court came from the citation rather than
	// defaulting to CourtNotSpecified.
	CourtGiven bool
}

// Field is one named component in display order.
type Field struct {
	Key   string
	Value string
}

// Component keys, in the order Fields returns them.
const (
	KeyCaseName  = "case_name"
	KeyVolume    = "volume"
	KeyReporter  = "reporter"
	KeyStartPage = "start_page"
	KeyPinCite   = "pin_cite"
	KeyCourt     = "court"
	KeyYear      = "year"
)

func componentsOf(p parsed) Components {
	c := Components{
		CaseName:   p.caseName.value,
		Volume:     p.volume.value,
		Reporter:   p.reporter.value,
		StartPage:  p.page.value,
		PinCite:    p.pinCite.value,
		Court:      p.court.value,
		Year:       p.year.value,
		CourtGiven: p.shape == ShapeWithCourt,
	}
	if !c.CourtGiven {
		c.Court = CourtNotSpecified
	}
	return c
}

// Fields lists every component by key. PinCite is included even when empty;
// renderers decide whether to show blank values.
func (c Components) Fields() []Field {
	return []Field{
		{KeyCaseName, c.CaseName},
		{KeyVolume, c.Volume},
		{KeyReporter, c.Reporter},
		{KeyStartPage, c.StartPage},
		{KeyPinCite, c.PinCite},
		{KeyCourt, c.Court},
		{KeyYear, c.Year},
	}
}

// Format renders the components back into citation form:
// "Case, Vol Reporter Page[, Pin] (Court Year)." or "(Year)." when no court
// was given.
func (c Components) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s %s %s", c.CaseName, c.Volume, c.Reporter, c.StartPage)
	if c.PinCite != "" {
		fmt.Fprintf(&b, ", %s", c.PinCite)
	}
	if c.CourtGiven {
		fmt.Fprintf(&b, " (%s %s).", c.Court, c.Year)
	} else {
		fmt.Fprintf(&b, " (%s).", c.Year)
	}
	return b.String()
}
