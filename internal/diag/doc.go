// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// Diagnostic is the central record: Severity, a numeric Code with a stable
// string ID (LEX1001, SYN2012, ...), a short Message, the Primary span and
// optional Notes with secondary spans.
//
// Producers emit through a Reporter so they stay decoupled from storage.
// The parser and the lexer build diagnostics with ReportError(...).Emit();
// BagReporter collects them into a Bag, which supports limits, sorting and
// deduplication. DedupReporter and MultiReporter compose reporters.
//
// Package diag does no terminal rendering; that lives in internal/diagfmt.
// FormatShort is the one exception: a stable single-line form used in tests
// and by the CLI's short output.
package diag
