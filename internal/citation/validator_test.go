package citation

import (
	"strconv"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"bluecheck/internal/diag"
)

const testYear = 2025

var exampleCitations = []string{
	"Brown v. Board of Education, 347 U.S. 483 (1954).",
	"Roe v. Wade, 410 U.S. 113, 153 (1973).",
	"Chevron U.S.A. Inc. v. Natural Resources Defense Council, Inc., 467 U.S. 837 (1984).",
	"United States v. Microsoft Corp., 253 F.3d 34 (D.C. Cir. 2001).",
}

type summary struct {
	Valid      bool
	Errors     []string
	Warnings   []string
	Info       []string
	Components Components
}

func summarize(r Result) summary {
	return summary{
		Valid:      r.IsValid(),
		Errors:     r.Errors(),
		Warnings:   r.Warnings(),
		Info:       r.Info(),
		Components: r.Components,
	}
}

func codesOf(r Result) []diag.Code {
	out := make([]diag.Code, 0, r.Diagnostics.Len())
	for _, d := range r.Diagnostics.Items() {
		out = append(out, d.Code)
	}
	return out
}

func TestBrownNoCourtShape(t *testing.T) {
	res := Check("Brown v. Board of Education, 347 U.S. 483 (1954).", testYear)

	want := summary{
		Valid:    true,
		Errors:   []string{},
		Warnings: []string{},
		Info: []string{
			"Reporter: Supreme Court",
			"Supreme Court case - court designation not required",
		},
		Components: Components{
			CaseName:  "Brown v. Board of Education",
			Volume:    "347",
			Reporter:  "U.S.",
			StartPage: "483",
			Court:     CourtNotSpecified,
			Year:      "1954",
		},
	}
	if diff := cmp.Diff(want, summarize(res)); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if res.Shape != ShapeNoCourt {
		t.Fatalf("shape = %v, want no-court", res.Shape)
	}
}

func TestRoePinCite(t *testing.T) {
	res := Check("Roe v. Wade, 410 U.S. 113, 153 (1973).", testYear)
	if !res.IsValid() {
		t.Fatalf("expected valid, errors: %v", res.Errors())
	}
	if res.Components.PinCite != "153" || res.Components.StartPage != "113" {
		t.Fatalf("page/pin = %q/%q", res.Components.StartPage, res.Components.PinCite)
	}
}

func TestMicrosoftWithCourt(t *testing.T) {
	res := Check("United States v. Microsoft Corp., 253 F.3d 34 (D.C. Cir. 2001).", testYear)
	if !res.IsValid() || len(res.Warnings()) != 0 {
		t.Fatalf("expected clean result, got errors=%v warnings=%v", res.Errors(), res.Warnings())
	}
	if res.Shape != ShapeWithCourt || !res.Components.CourtGiven {
		t.Fatalf("shape = %v, court given = %v", res.Shape, res.Components.CourtGiven)
	}
	if res.Components.Court != "D.C. Cir." {
		t.Fatalf("court = %q", res.Components.Court)
	}
	if diff := cmp.Diff([]string{"Reporter: Federal Reporter (3rd)"}, res.Info()); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingVersusAndPeriod(t *testing.T) {
	res := Check("Smith v Jones, 1 F.3d 1 (1st Cir. 1990)", testYear)
	if res.IsValid() {
		t.Fatal("expected invalid result")
	}
	want := []diag.Code{diag.CaseMissingVersus, diag.RepKnown, diag.PunTrailingPeriod}
	if diff := cmp.Diff(want, codesOf(res)); diff != "" {
		t.Fatalf("codes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Citation should end with a period."}, res.Warnings()); diff != "" {
		t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestShapeMismatch(t *testing.T) {
	for _, input := range []string{"", "   ", "not a citation", "Smith v. Jones, 1 F.3d 1, abc (1st Cir. 1990)."} {
		t.Run(input, func(t *testing.T) {
			res := Check(input, testYear)
			if res.IsValid() || res.Matched() {
				t.Fatal("expected an unmatched, invalid result")
			}
			want := []diag.Code{diag.ShpMismatch}
			if diff := cmp.Diff(want, codesOf(res)); diff != "" {
				t.Fatalf("codes mismatch (-want +got):\n%s", diff)
			}
			if res.Fields() != nil {
				t.Fatalf("expected no components, got %v", res.Fields())
			}
		})
	}
}

func TestYearRange(t *testing.T) {
	tests := []struct {
		year string
		warn bool
	}{
		{"1699", true},
		{"1700", false},
		{"1954", false},
		{strconv.Itoa(testYear + 1), false},
		{strconv.Itoa(testYear + 2), true},
	}
	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			res := Check("Smith v. Jones, 1 F.3d 1 (1st Cir. "+tt.year+").", testYear)
			got := false
			for _, d := range res.Diagnostics.Items() {
				if d.Code == diag.YearUnusual {
					got = true
				}
			}
			if got != tt.warn {
				t.Fatalf("year warning = %v, want %v", got, tt.warn)
			}
			if !res.IsValid() {
				t.Fatalf("year range must not affect validity: %v", res.Errors())
			}
		})
	}
}

func TestNoCurrentYearDisablesUpperBound(t *testing.T) {
	res := New(Options{}).Validate("Smith v. Jones, 1 F.3d 1 (1st Cir. 9999).")
	if len(res.Warnings()) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings())
	}
	res = New(Options{}).Validate("Smith v. Jones, 1 F.3d 1 (1st Cir. 1500).")
	if len(res.Warnings()) != 1 {
		t.Fatalf("lower bound should still apply: %v", res.Warnings())
	}
}

func TestUnknownReporter(t *testing.T) {
	res := Check("Smith v. Jones, 1 Z.9th 1 (1st Cir. 1990).", testYear)
	if !res.IsValid() {
		t.Fatalf("unknown reporter must not invalidate: %v", res.Errors())
	}
	want := []string{`Reporter "Z.9th" not recognized. Common reporters include: U.S., F.3d, F.4th, S. Ct., etc`}
	if diff := cmp.Diff(want, res.Warnings()); diff != "" {
		t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestSupremeCourtParenthetical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []diag.Code
	}{
		{
			name:  "redundant and unverified",
			input: "Roe v. Wade, 410 U.S. 113 (S. Ct. 1973).",
			want:  []diag.Code{diag.RepKnown, diag.CrtSupremeRedundant, diag.CrtUnverified},
		},
		{
			name:  "explicit U.S.",
			input: "Roe v. Wade, 410 U.S. 113 (U.S. 1973).",
			want:  []diag.Code{diag.RepKnown},
		},
		{
			name:  "omitted",
			input: "Roe v. Wade, 410 U.S. 113 (1973).",
			want:  []diag.Code{diag.RepKnown, diag.CrtSupremeOmitted},
		},
		{
			name:  "omitted outside U.S. Reports",
			input: "Roe v. Wade, 93 S. Ct. 705 (1973).",
			want:  []diag.Code{diag.RepKnown},
		},
		{
			name:  "unknown court",
			input: "Doe v. Roe, 5 P.3d 9 (Cal. Ct. App. 2000).",
			want:  []diag.Code{diag.RepKnown, diag.CrtUnverified},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(tt.input, testYear)
			if diff := cmp.Diff(tt.want, codesOf(res)); diff != "" {
				t.Fatalf("codes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReporterTieBreak(t *testing.T) {
	tests := []struct {
		input    string
		reporter string
		page     string
		pin      string
	}{
		{"Doe v. Roe, 100 F. Supp. 2d 200 (S.D.N.Y. 2000).", "F. Supp. 2d", "200", ""},
		{"Doe v. Roe, 5 F. Supp. 12 34 (D. Del. 1999).", "F. Supp. 12", "34", ""},
		{"Doe v. Roe, 5 F.3d 12, 34 (D. Del. 1999).", "F.3d", "12", "34"},
		{"Doe v. Roe, 5 So. 3d 7 (1999).", "So. 3d", "7", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := Check(tt.input, testYear).Components
			if c.Reporter != tt.reporter || c.StartPage != tt.page || c.PinCite != tt.pin {
				t.Fatalf("got reporter=%q page=%q pin=%q", c.Reporter, c.StartPage, c.PinCite)
			}
		})
	}
}

func TestCaseNameWithComma(t *testing.T) {
	res := Check(exampleCitations[2], testYear)
	if got := res.Components.CaseName; got != "Chevron U.S.A. Inc. v. Natural Resources Defense Council, Inc." {
		t.Fatalf("case name = %q", got)
	}
	if !res.IsValid() {
		t.Fatalf("errors: %v", res.Errors())
	}
}

func TestCourtWhitespaceTrimmed(t *testing.T) {
	res := Check("Doe v. Roe, 1 F.3d 2 (  9th Cir.   1999).", testYear)
	if got := res.Components.Court; got != "9th Cir." {
		t.Fatalf("court = %q", got)
	}
	if len(res.Warnings()) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings())
	}
}

func TestInputTrimmed(t *testing.T) {
	res := Check("  \tRoe v. Wade, 410 U.S. 113 (1973).\n", testYear)
	if !res.IsValid() || res.Input != "Roe v. Wade, 410 U.S. 113 (1973)." {
		t.Fatalf("input = %q, errors = %v", res.Input, res.Errors())
	}
}

func TestAbbreviationSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		caseName string
		want     []string
	}{
		{"state of", "State of Texas v. Jones", []string{"State"}},
		{"two words", "People of the State of New York v. Smith", []string{"State", "People"}},
		{"suppressed by v.", "People v. People of Guam", nil},
		{"united states", "United States of America v. Smith", []string{"United States"}},
		{"substring match", "BigState of Mind v. Jones", []string{"State"}},
		{"none", "Smith v. Jones", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(tt.caseName+", 1 F.3d 1 (1st Cir. 1990).", testYear)
			var got []string
			for _, d := range res.Diagnostics.Items() {
				if d.Code == diag.CaseAbbreviate {
					got = append(got, res.Input[d.Primary.Start : d.Primary.End-uint32(len(" of"))])
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("suggestions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLowercaseCaseName(t *testing.T) {
	res := Check("smith v. Jones, 1 F.3d 1 (1st Cir. 1990).", testYear)
	if !res.IsValid() {
		t.Fatalf("lowercase start is only a warning: %v", res.Errors())
	}
	if diff := cmp.Diff([]string{"Case name should start with a capital letter"}, res.Warnings()); diff != "" {
		t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyParty(t *testing.T) {
	res := Check("Smith v. , 1 F.3d 1 (1st Cir. 1990).", testYear)
	if diff := cmp.Diff([]string{"Both party names must be present"}, res.Errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnosticSpans(t *testing.T) {
	res := Check("Smith v Jones, 1 F.3d 1 (1st Cir. 1990)", testYear)
	items := res.Diagnostics.Items()
	if len(items) != 3 {
		t.Fatalf("got %d diagnostics", len(items))
	}
	spanText := func(d diag.Diagnostic) string { return res.Input[d.Primary.Start:d.Primary.End] }
	if got := spanText(items[0]); got != "Smith v Jones" {
		t.Errorf("case span = %q", got)
	}
	if got := spanText(items[1]); got != "F.3d" {
		t.Errorf("reporter span = %q", got)
	}
	if sp := items[2].Primary; !sp.Empty() || int(sp.Start) != len(res.Input) {
		t.Errorf("period span = %v", sp)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, input := range exampleCitations {
		t.Run(input, func(t *testing.T) {
			first := Check(input, testYear)
			formatted := first.Components.Format()
			if formatted != input {
				t.Errorf("Format() = %q, want %q", formatted, input)
			}
			again := Check(formatted, testYear)
			if !again.IsValid() {
				t.Fatalf("re-validation errors: %v", again.Errors())
			}
			if diff := cmp.Diff(first.Components, again.Components); diff != "" {
				t.Fatalf("components drifted (-first +again):\n%s", diff)
			}
		})
	}
}

func TestFieldsOrder(t *testing.T) {
	fields := Check(exampleCitations[1], testYear).Fields()
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	want := []string{KeyCaseName, KeyVolume, KeyReporter, KeyStartPage, KeyPinCite, KeyCourt, KeyYear}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestSharedValidatorIsReentrant(t *testing.T) {
	v := New(Options{CurrentYear: testYear})
	inputs := append([]string{"Smith v Jones, 1 F.3d 1 (1st Cir. 1990)", "garbage"}, exampleCitations...)

	want := make([]summary, len(inputs))
	for i, in := range inputs {
		want[i] = summarize(New(Options{CurrentYear: testYear}).Validate(in))
	}

	var wg sync.WaitGroup
	got := make([][]summary, 8)
	for w := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, in := range inputs {
				got[w] = append(got[w], summarize(v.Validate(in)))
			}
		}()
	}
	wg.Wait()

	for w := range got {
		if diff := cmp.Diff(want, got[w]); diff != "" {
			t.Fatalf("worker %d diverged (-want +got):\n%s", w, diff)
		}
	}
}

func TestWithoutWarnings(t *testing.T) {
	res := Check("Smith v Jones, 1 F.3d 1 (1st Cir. 1990)", testYear).Without(diag.SevWarning)
	if len(res.Warnings()) != 0 || res.IsValid() {
		t.Fatalf("warnings=%v valid=%v", res.Warnings(), res.IsValid())
	}
}

func TestUnicodeWhitespaceAndDigits(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		input    string
		reporter string
		page     string
		year     string
	}{
		{"nbsp before page", "Smith v. Jones, 1 F.3d\u00a01 (2000).", "Smith v. Jones, 1 F.3d\u00a01 (2000).", "F.3d", "1", "2000"},
		{"vertical tab before page", "Smith v. Jones, 1 F.3d\v1 (2000).", "Smith v. Jones, 1 F.3d\v1 (2000).", "F.3d", "1", "2000"},
		{"ideographic space around", "\u3000Roe v. Wade, 410 U.S. 113 (1973).\u00a0", "Roe v. Wade, 410 U.S. 113 (1973).", "U.S.", "113", "1973"},
		{"arabic-indic year", "Roe v. Wade, 410 U.S. 113 (\u0661\u0669\u0667\u0663).", "Roe v. Wade, 410 U.S. 113 (\u0661\u0669\u0667\u0663).", "U.S.", "113", "\u0661\u0669\u0667\u0663"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(tt.in, testYear)
			if !res.IsValid() {
				t.Fatalf("expected valid, errors: %q", res.Errors())
			}
			if res.Input != tt.input {
				t.Fatalf("Input = %q, want %q", res.Input, tt.input)
			}
			c := res.Components
			if c.Reporter != tt.reporter || c.StartPage != tt.page || c.Year != tt.year {
				t.Fatalf("components = %+v", c)
			}
			if len(res.Warnings()) != 0 {
				t.Fatalf("unexpected warnings: %q", res.Warnings())
			}
		})
	}
}

func TestYearValue(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1973", 1973, true},
		{"\u0661\u0669\u0667\u0663", 1973, true},
		{"\U0001D7CF\U0001D7D7\U0001D7D5\U0001D7D1", 1973, true},
		{"197", 0, false},
		{"19734", 0, false},
		{"19a3", 0, false},
	}
	for _, tt := range tests {
		got, ok := yearValue(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("yearValue(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
