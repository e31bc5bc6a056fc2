package citation

// Guide is the one-line layout reminder shown next to example citations.
const Guide = "Format: Case Name, Volume Reporter Page, Pinpoint (Court Year).\n" +
	"Example: Brown v. Board of Education, 347 U.S. 483, 495 (1954)."

var examples = [...]string{
	"Brown v. Board of Education, 347 U.S. 483 (1954).",
	"Roe v. Wade, 410 U.S. 113, 153 (1973).",
	"Chevron U.S.A. Inc. v. Natural Resources Defense Council, Inc., 467 U.S. 837 (1984).",
	"United States v. Microsoft Corp., 253 F.3d 34 (D.C. Cir. 2001).",
}

// Examples returns the well-formed sample citations. Callers own the slice.
func Examples() []string {
	out := make([]string, len(examples))
	copy(out, examples[:])
	return out
}
