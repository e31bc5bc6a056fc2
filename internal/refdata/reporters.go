package refdata

// defaultReporters maps reporter abbreviations to descriptive names. Keys are
// matched exactly: no case folding, no punctuation or space normalization.
var defaultReporters = map[string]string{
	"U.S.":        "Supreme Court",
	"S. Ct.":      "Supreme Court Reporter",
	"L. Ed.":      "Lawyers' Edition",
	"F.":          "Federal Reporter (1st)",
	"F.2d":        "Federal Reporter (2nd)",
	"F.3d":        "Federal Reporter (3rd)",
	"F.4th":       "Federal Reporter (4th)",
	"F. Supp.":    "Federal Supplement (1st)",
	"F. Supp. 2d": "Federal Supplement (2nd)",
	"F. Supp. 3d": "Federal Supplement (3rd)",
	"A.":          "Atlantic Reporter (1st)",
	"A.2d":        "Atlantic Reporter (2nd)",
	"A.3d":        "Atlantic Reporter (3rd)",
	"P.":          "Pacific Reporter (1st)",
	"P.2d":        "Pacific Reporter (2nd)",
	"P.3d":        "Pacific Reporter (3rd)",
	"N.E.":        "Northeastern Reporter (1st)",
	"N.E.2d":      "Northeastern Reporter (2nd)",
	"N.E.3d":      "Northeastern Reporter (3rd)",
	"N.W.":        "Northwestern Reporter (1st)",
	"N.W.2d":      "Northwestern Reporter (2nd)",
	"S.E.":        "Southeastern Reporter (1st)",
	"S.E.2d":      "Southeastern Reporter (2nd)",
	"S.W.":        "Southwestern Reporter (1st)",
	"S.W.2d":      "Southwestern Reporter (2nd)",
	"S.W.3d":      "Southwestern Reporter (3rd)",
	"So.":         "Southern Reporter (1st)",
	"So. 2d":      "Southern Reporter (2nd)",
	"So. 3d":      "Southern Reporter (3rd)",
}
