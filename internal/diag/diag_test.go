package diag

import (
	"testing"

	"tclc/internal/source"
)

func TestBagRespectsCapacity(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{Severity: SevError, Code: LexUnknownChar}) {
		t.Fatalf("first add should succeed")
	}
	if !b.Add(Diagnostic{Severity: SevWarning, Code: SynUnexpectedToken}) {
		t.Fatalf("second add should succeed")
	}
	if b.Add(Diagnostic{Severity: SevInfo}) {
		t.Fatalf("third add should be dropped at capacity 2")
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Severity: SevWarning})
	if b.HasErrors() {
		t.Fatalf("warning-only bag must not report errors")
	}
	b.Add(Diagnostic{Severity: SevError})
	if !b.HasErrors() {
		t.Fatalf("bag with an error must report HasErrors")
	}
}

func TestBagSortIsDeterministic(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Code: SynUnexpectedToken, Primary: source.Span{Start: 5, End: 6}})
	b.Add(Diagnostic{Code: LexUnknownChar, Primary: source.Span{Start: 1, End: 2}})
	b.Sort()
	if b.Items()[0].Primary.Start != 1 {
		t.Fatalf("expected lowest span start first after sort")
	}
}

func TestBagReporterForwardsToBag(t *testing.T) {
	b := NewBag(10)
	r := BagReporter{Bag: b}
	Error(r, SynUnexpectedToken, source.Span{}, "boom")
	if b.Len() != 1 || b.Items()[0].Severity != SevError {
		t.Fatalf("expected a single error diagnostic in the bag")
	}
}
