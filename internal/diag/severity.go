package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for positive confirmations and suggestions.
	SevInfo Severity = iota
	// SevWarning is for stylistic concerns that never affect validity.
	SevWarning
	// SevError marks a format-breaking problem.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Label is the lower-case form used by short and JSON output.
func (s Severity) Label() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}
