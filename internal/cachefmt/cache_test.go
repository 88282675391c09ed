package cachefmt

import (
	"path/filepath"
	"testing"

	"tclc/internal/ir"
	"tclc/internal/types"
)

func TestLoadMissingFileYieldsEmptyCache(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), ".tclc-cache.msgpack"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c) != 0 {
		t.Fatalf("expected empty cache, got %v", c)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".tclc-cache.msgpack")
	c := Cache{
		"case_1": {Name: "k1", Hash: "abc123", Inputs: []string{"A"}, Outputs: []string{"B"}, StmtCount: 1},
	}
	if err := c.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !loaded.Unchanged("case_1", "abc123") {
		t.Fatalf("expected case_1 to be reported unchanged")
	}
	if loaded.Unchanged("case_1", "different") {
		t.Fatalf("expected a changed hash to invalidate the cache entry")
	}
	if loaded.Unchanged("case_2", "abc123") {
		t.Fatalf("expected an absent case to never report unchanged")
	}
}

func TestSummarizeCountsStatementsAndDeclarations(t *testing.T) {
	k := &ir.Kernel{
		Name: "k1",
		Inputs: []*ir.Var{
			{Name: "A", Ty: types.FloatScalar(32)},
		},
		Outputs: []*ir.Var{
			{Name: "B", Ty: types.FloatScalar(32)},
		},
		Stmts: []ir.Stmt{&ir.Move{}},
	}
	s := Summarize(k, "deadbeef")
	if s.Name != "k1" || s.Hash != "deadbeef" || s.StmtCount != 1 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if len(s.Inputs) != 1 || s.Inputs[0] != "A" {
		t.Fatalf("unexpected inputs: %v", s.Inputs)
	}
	if len(s.Outputs) != 1 || s.Outputs[0] != "B" {
		t.Fatalf("unexpected outputs: %v", s.Outputs)
	}
}
