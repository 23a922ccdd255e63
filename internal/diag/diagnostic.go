package diag

import "swiftfmt/internal/source"

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single reported problem. The formatter is tolerant: even
// with error-severity diagnostics the pipeline still produces lossless
// output, so diagnostics are advisory for the user, not control flow.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Primary  source.Span
	Message  string
	Notes    []Note
}
