package diffeng

import "testing"

// Scenario 1 (§8).
func TestDifferentiateProductRule(t *testing.T) {
	src := "C<4,16>[i,j] = A<4,16>[i,j] * B<4,16>[i,j] + 1.0;"
	results, err := Differentiate(src, "C", []string{"A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := results[0].Kernel
	want := "dA<4,16>[i,j] = dC<4,16>[i,j] * B<4,16>[i,j];"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Scenario 2 (§8).
func TestDifferentiateMatrixProductTwoTargets(t *testing.T) {
	src := "A<16,32>[i,j] = B<16,32>[i,k] * C<32,32>[k,j];"
	results, err := Differentiate(src, "A", []string{"B", "C"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Kernel != "dB<16,32>[i,k] = dA<16,32>[i,j] * C<32,32>[k,j];" {
		t.Fatalf("unexpected dB kernel: %q", results[0].Kernel)
	}
	// differentiateOne substitutes the differentiated atom in place,
	// so the surviving term keeps its original left-to-right order —
	// B first, then the differentiated atom — matching grad_case4.cc.
	if results[1].Kernel != "dC<32,32>[k,j] = B<16,32>[i,k] * dA<16,32>[i,j];" {
		t.Fatalf("unexpected dC kernel: %q", results[1].Kernel)
	}
}

// Scenario 3 (§8): transpose.
func TestDifferentiateTranspose(t *testing.T) {
	src := "B<16,32>[i,j] = A<32,16>[j,i];"
	results, err := Differentiate(src, "B", []string{"A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "dA<32,16>[j,i] = dB<16,32>[i,j];"
	if results[0].Kernel != want {
		t.Fatalf("got %q, want %q", results[0].Kernel, want)
	}
}

func TestDifferentiateInsListCollectsFreeVariables(t *testing.T) {
	src := "C<4,16>[i,j] = A<4,16>[i,j] * B<4,16>[i,j] + 1.0;"
	results, err := Differentiate(src, "C", []string{"A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ins := results[0].Ins
	if len(ins) != 2 || ins[0] != "dC" || ins[1] != "B" {
		t.Fatalf("unexpected ins list: %v", ins)
	}
}

// §7's "LHS = target" ambiguity: differentiating an output against
// its own name, when it never appears on its own RHS, has no surviving
// term and falls back to a degenerate zero (§9 has0 resolution).
func TestDifferentiateSelfTargetYieldsDegenerateZero(t *testing.T) {
	src := "C<4,16>[i,j] = A<4,16>[i,j] + 1.0;"
	results, err := Differentiate(src, "C", []string{"C"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Kernel != "dC<4,16>[i,j] = 0;" {
		t.Fatalf("expected a degenerate zero kernel, got %q", results[0].Kernel)
	}
	if len(results[0].Ins) != 0 {
		t.Fatalf("expected no ins for a degenerate zero kernel, got %v", results[0].Ins)
	}
}

// Invariant 5 (§8): d(A + B) = dA + dB as strings, after pruning.
func TestLinearityHolds(t *testing.T) {
	src := "C<4,16>[i,j] = A<4,16>[i,j] * D<4,16>[i,j] + B<4,16>[i,j] * D<4,16>[i,j];"
	ok, err := Linearity(src, "C", "D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected differentiation to be linear over '+'")
	}
}
