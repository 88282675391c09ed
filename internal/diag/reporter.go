package diag

import "tclc/internal/source"

// Reporter is the minimal contract phases use to surface diagnostics,
// so the lexer and parser don't need to know whether they're being
// driven interactively (one case) or from a batch run (many cases
// sharing one Bag).
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter adapts a *Bag to Reporter.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter discards every diagnostic; useful for call sites (like
// differentiator unit tests) that only care about the return value.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// Error constructs and reports a SevError diagnostic, returning it so
// callers can treat the first reported error as the fatal-to-case
// failure cause (§7).
func Error(r Reporter, code Code, primary source.Span, msg string) Diagnostic {
	d := Diagnostic{Severity: SevError, Code: code, Primary: primary, Message: msg}
	if r != nil {
		r.Report(d)
	}
	return d
}
