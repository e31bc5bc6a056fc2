package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Overall citation shape
	ShpMismatch Code = 1001

	// Case name
	CaseLowercaseStart Code = 2001
	CaseMissingVersus  Code = 2002
	CasePartyCount     Code = 2003
	CaseEmptyParty     Code = 2004
	CaseAbbreviate     Code = 2005

	// Numeric fields
	NumVolume  Code = 3001
	NumPage    Code = 3002
	NumPinCite Code = 3003

	// Reporter
	RepKnown   Code = 4000
	RepUnknown Code = 4001

	// Court parenthetical
	CrtSupremeOmitted   Code = 5000
	CrtSupremeRedundant Code = 5001
	CrtUnverified       Code = 5002

	// Year
	YearFormat  Code = 6001
	YearUnusual Code = 6002

	// Punctuation
	PunTrailingPeriod Code = 7001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:         "Unknown diagnostic",
		ShpMismatch:         "Citation shape not recognized",
		CaseLowercaseStart:  "Case name starts in lower case",
		CaseMissingVersus:   "Missing \" v. \" separator",
		CasePartyCount:      "Wrong number of parties",
		CaseEmptyParty:      "Empty party name",
		CaseAbbreviate:      "Party name can be abbreviated",
		NumVolume:           "Volume is not numeric",
		NumPage:             "Start page is not numeric",
		NumPinCite:          "Pin cite is not numeric",
		RepKnown:            "Recognized reporter",
		RepUnknown:          "Unrecognized reporter",
		CrtSupremeOmitted:   "Supreme Court designation omitted",
		CrtSupremeRedundant: "Redundant Supreme Court designation",
		CrtUnverified:       "Unrecognized court",
		YearFormat:          "Malformed year",
		YearUnusual:         "Year out of range",
		PunTrailingPeriod:   "Missing trailing period",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SHP%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("CAS%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("NUM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("REP%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CRT%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("YR%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("PUN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
