package printer

import (
	"bytes"
	"testing"

	"tclc/internal/diag"
	"tclc/internal/parser"
	"tclc/internal/types"
)

func parseOne(t *testing.T, src string, ins, outs []string) string {
	t.Helper()
	bag := diag.NewBag(16)
	k, err := parser.Parse(src, parser.Options{
		Name:     "kern",
		ElemType: types.FloatScalar(32),
		Ins:      ins,
		Outs:     outs,
		Reporter: diag.BagReporter{Bag: bag},
	})
	if err != nil {
		t.Fatalf("parse failed: %v (%+v)", err, bag.Items())
	}
	var buf bytes.Buffer
	if err := Print(&buf, k); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	return buf.String()
}

// Scenario 5 (§8): an affine index must print a guarded if.
func TestPrintAffineIndexEmitsGuard(t *testing.T) {
	out := parseOne(t, "A<16,32>[i+1,j] = B<16,32>[i,j];", []string{"B"}, []string{"A"})
	if !contains(out, "if (i + 1 < 16) {") {
		t.Fatalf("expected a bound guard, got:\n%s", out)
	}
}

// Scenario 6 (§8): literal fidelity — no constant folding.
func TestPrintKeepsLiteralFidelity(t *testing.T) {
	out := parseOne(t, "C<4>[i] = A<4>[i] + 0;", []string{"A"}, []string{"C"})
	if !contains(out, "C[i] = A[i] + 0;") {
		t.Fatalf("expected unfolded literal, got:\n%s", out)
	}
}

func TestPrintSignatureDeduplicatesParams(t *testing.T) {
	out := parseOne(t, "C<4>[i] = A<4>[i] + A<4>[i];", []string{"A", "A"}, []string{"C"})
	if !contains(out, "void kern(float (&A)[4], float (&C)[4]) {") {
		t.Fatalf("unexpected signature:\n%s", out)
	}
}

func TestPrintMoveAccumulatesWhenDstReadOnRHS(t *testing.T) {
	out := parseOne(t, "C<4>[i] = C<4>[i] + A<4>[i];", []string{"A", "C"}, []string{"C"})
	if !contains(out, "C[i] += C[i] + A[i];") {
		t.Fatalf("expected += accumulation, got:\n%s", out)
	}
}

// Invariant 4 (§8): printing the same Kernel twice is byte-identical.
func TestPrintIsDeterministic(t *testing.T) {
	src := "C<4,16>[i,j] = A<4,16>[i,j] * B<4,16>[i,j] + 1.0;"
	first := parseOne(t, src, []string{"A", "B"}, []string{"C"})
	second := parseOne(t, src, []string{"A", "B"}, []string{"C"})
	if first != second {
		t.Fatalf("expected deterministic output, got:\n%s\n---\n%s", first, second)
	}
}

// §8 round-trip law: a multi-dimensional reference must print one
// bracket pair per dimension, matching grad_case4.cc/grad_case7.cc's
// `dB[i][k]` style. A comma-joined `dB[i, k]` would compile as a
// comma-operator expression and silently discard all but the last
// index.
func TestPrintMultiDimVarUsesBracketPerDimension(t *testing.T) {
	out := parseOne(t, "C<4,16>[i,j] = A<4,16>[i,j] * B<4,16>[i,j];", []string{"A", "B"}, []string{"C"})
	if !contains(out, "C[i][j] = A[i][j] * B[i][j];") {
		t.Fatalf("expected bracket-per-dimension indexing, got:\n%s", out)
	}
	if contains(out, "[i, j]") || contains(out, "[i,j]") {
		t.Fatalf("found comma-joined index, got:\n%s", out)
	}
}

func contains(s, sub string) bool {
	return bytes.Contains([]byte(s), []byte(sub))
}
