package diag

import "fmt"

// Span is a half-open byte range into the checked citation text.
type Span struct {
	Start uint32 // inclusive
	End   uint32 // exclusive
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  Span
}

func New(sev Severity, code Code, primary Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}
