package diag

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatShortDiagnostics renders diagnostics of one citation into a stable,
// single-line-per-entry form:
//
//	<severity> <CODE> <label>:<col> <message>
//
// label identifies the citation (for example "cites.txt:3"); col is the
// 1-based display column of the diagnostic's start within text. Entries keep
// the order of diags. The result is empty when diags is empty.
func FormatShortDiagnostics(label, text string, diags []Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}
	var b strings.Builder
	for i, d := range diags {
		fmt.Fprintf(&b, "%s %s %s:%d %s", d.Severity.Label(), d.Code.ID(), label, Column(text, d.Primary.Start), sanitizeMessage(d.Message))
		if i < len(diags)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Column converts a byte offset into text to a 1-based display column.
// Offsets past the end clamp to the column after the last cell.
func Column(text string, offset uint32) int {
	end := min(int(offset), len(text))
	return runewidth.StringWidth(text[:end]) + 1
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
