// Package diag defines the diagnostic model produced by citation checks.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//     Only errors make a citation invalid.
//   - Code – compact numeric identifier (see codes.go) with a stable string
//     form such as CAS2002.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary – byte Span into the checked citation text that the finding
//     refers to. An empty span marks a position (e.g. the end of the text).
//
// # Emitting diagnostics
//
// Checks should use a diag.Reporter to decouple emission from storage. The
// helpers ReportError/ReportWarning/ReportInfo build a ReportBuilder that is
// sent with Emit. BagReporter aggregates diagnostics into a Bag, which keeps
// insertion order so consumers see findings in the order checks ran.
//
// # Scope
//
// Package diag does not render results or perform IO beyond the single-line
// FormatShortDiagnostics helper; pretty, JSON and msgpack output live in
// internal/diagfmt.
package diag
