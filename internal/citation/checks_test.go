package citation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"bluecheck/internal/diag"
	"bluecheck/internal/refdata"
)

func runCheck(fn func(c *checker)) []diag.Code {
	bag := diag.NewBag(maxDiagnostics)
	c := &checker{r: diag.BagReporter{Bag: bag}, tables: refdata.Default(), currentYear: testYear}
	fn(c)
	out := []diag.Code{}
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func TestComponentChecks(t *testing.T) {
	tests := []struct {
		name string
		fn   func(c *checker)
		want []diag.Code
	}{
		{"volume digits", func(c *checker) { c.volume(field{value: "347"}) }, []diag.Code{}},
		{"volume letters", func(c *checker) { c.volume(field{value: "34a"}) }, []diag.Code{diag.NumVolume}},
		{"page empty", func(c *checker) { c.page(field{}) }, []diag.Code{diag.NumPage}},
		{"page digits", func(c *checker) { c.page(field{value: "483"}) }, []diag.Code{}},
		{"pin absent", func(c *checker) { c.pinCite(field{}) }, []diag.Code{}},
		{"pin digits", func(c *checker) { c.pinCite(field{value: "153"}) }, []diag.Code{}},
		{"pin letters", func(c *checker) { c.pinCite(field{value: "abc"}) }, []diag.Code{diag.NumPinCite}},
		{"year short", func(c *checker) { c.year(field{value: "195"}) }, []diag.Code{diag.YearFormat}},
		{"year letters", func(c *checker) { c.year(field{value: "19x4"}) }, []diag.Code{diag.YearFormat}},
		{"year unicode digits", func(c *checker) { c.year(field{value: "١٩٥٤"}) }, []diag.Code{diag.YearFormat}},
		{"three parties", func(c *checker) { c.caseName(field{value: "A v. B v. C"}) }, []diag.Code{diag.CasePartyCount}},
		{"blank defendant", func(c *checker) { c.caseName(field{value: "A v.  "}) }, []diag.Code{diag.CaseEmptyParty}},
		{"empty plaintiff", func(c *checker) { c.caseName(field{value: "  v. B"}) }, []diag.Code{diag.CaseLowercaseStart, diag.CaseEmptyParty}},
		{"empty name", func(c *checker) { c.caseName(field{}) }, []diag.Code{diag.CaseLowercaseStart, diag.CaseMissingVersus}},
		{"period present", func(c *checker) { c.period("x.") }, []diag.Code{}},
		{"period missing", func(c *checker) { c.period("x") }, []diag.Code{diag.PunTrailingPeriod}},
		{"omitted non-supreme", func(c *checker) { c.omittedCourt(field{value: "F.3d"}) }, []diag.Code{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, runCheck(tt.fn)); diff != "" {
				t.Fatalf("codes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckerUsesConfiguredTables(t *testing.T) {
	tables := refdata.Default().With(map[string]string{"Cal. Rptr.": "California Reporter"}, []string{"Cal. Ct. App."})
	v := New(Options{Tables: tables, CurrentYear: testYear})
	res := v.Validate("People v. Doe, 5 Cal. Rptr. 9 (Cal. Ct. App. 1960).")
	if len(res.Warnings()) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings())
	}
	if diff := cmp.Diff([]string{"Reporter: California Reporter"}, res.Info()); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}
