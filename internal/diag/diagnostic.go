package diag

import "tclc/internal/source"

// Note provides auxiliary context for a diagnostic message — e.g.
// pointing back at the declaration whose shape a guard check refers
// to.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic captures a single issue surfaced by the lexer, parser or
// differentiator. TCL has no quick-fix/autofix feature, so this is
// intentionally just severity + code + message + notes — see
// DESIGN.md for why a Fix/FixThunk/FixApplicability layer was not
// built.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// WithNote appends a note to the diagnostic and returns it, so call
// sites can chain note-attachment onto construction.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
