package refdata

// SupremeCourt is both a reporter abbreviation and a court designation.
const SupremeCourt = "U.S."

var defaultCourts = []string{
	SupremeCourt,
	"D.C. Cir.",
	"1st Cir.", "2nd Cir.", "3rd Cir.", "4th Cir.", "5th Cir.", "6th Cir.",
	"7th Cir.", "8th Cir.", "9th Cir.", "10th Cir.", "11th Cir.",
	"Fed. Cir.",
	"D. Del.", "S.D.N.Y.", "N.D. Cal.", "E.D. Va.", "W.D. Tex.", "C.D. Cal.", "D.D.C.",
}
