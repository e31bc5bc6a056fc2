package diagfmt

import "bluecheck/internal/citation"

// Entry is one checked citation and the label it is reported under, such as
// "cites.txt:3" or "arg 1".
type Entry struct {
	Label  string
	Result citation.Result
}

// PrettyOpts configures pretty-printing of results.
type PrettyOpts struct {
	Color       bool
	ShowCodes   bool  // append [CODE] to each message
	ShowPreview bool  // echo the citation with a caret line under the span
	ShowLabels  bool  // print "== label ==" before each result
	Width       uint8 // separator width, 0 means 70
	Max         int   // cap on diagnostics per result, 0 means all
}

// JSONOpts configures JSON and msgpack output.
type JSONOpts struct {
	IncludeDiagnostics bool // add the coded diagnostics with spans
	Max                int  // cap on diagnostics per result, 0 means all
}
