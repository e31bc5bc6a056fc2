// Package citation checks free-text case citations against a simplified
// subset of Bluebook Rule 10.
//
// A citation is first matched against one of two shapes:
//
//	Case Name, Volume Reporter Page[, Pin] (Court Year).
//	Case Name, Volume Reporter Page[, Pin] (Year).
//
// The with-court shape is tried first. When neither matches, the result holds
// a single SHP1001 error and no components. Otherwise every component runs
// through a fixed sequence of checks, each emitting diagnostics of its own:
// case name, volume, reporter, start page, pin cite, court, year, trailing
// period. Errors make a citation invalid; warnings and info never do.
//
// Validation is a pure function of the input, the reference tables and the
// supplied current year. A Validator holds no per-call state and may be
// shared between goroutines.
package citation
