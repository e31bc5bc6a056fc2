package diagfmt

import (
	"fmt"
	"io"

	"bluecheck/internal/diag"
)

// Short writes one line per diagnostic, see diag.FormatShortDiagnostics.
// max caps the diagnostics printed per entry; 0 means all.
func Short(w io.Writer, entries []Entry, max int) {
	for _, e := range entries {
		items := e.Result.Diagnostics.Items()
		if max > 0 && max < len(items) {
			items = items[:max]
		}
		if out := diag.FormatShortDiagnostics(e.Label, e.Result.Input, items); out != "" {
			fmt.Fprintln(w, out)
		}
	}
}
