// Package version holds build metadata for the bluecheck CLI.
// The variables can be overridden at build time via -ldflags.
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored renders v with major, minor and patch in distinct colors. A
// pre-release or build suffix stays plain, as does a version that is not
// dotted.
func Colored(v string, enabled bool) string {
	parts := strings.SplitN(v, ".", 3)
	if !enabled || len(parts) != 3 {
		return v
	}
	patch, rest := parts[2], ""
	if i := strings.IndexAny(patch, "-+"); i >= 0 {
		patch, rest = patch[:i], patch[i:]
	}
	return paint(parts[0], color.FgYellow) + "." + paint(parts[1], color.FgGreen) + "." + paint(patch, color.FgBlue) + rest
}

func paint(s string, fg color.Attribute) string {
	c := color.New(fg, color.Bold)
	c.EnableColor()
	return c.Sprint(s)
}
