package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"tclc/internal/config"
	"tclc/internal/ir"
	"tclc/internal/printer"
)

func printFn(k *ir.Kernel) (string, error) {
	var buf bytes.Buffer
	if err := printer.Print(&buf, k); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeCase(t *testing.T, dir, name string, c Case) string {
	t.Helper()
	path := filepath.Join(dir, name)
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadCaseRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := writeCase(t, dir, "case_1.json", Case{
		Name:     "addk",
		Ins:      []string{"A", "B"},
		Outs:     []string{"C"},
		DataType: "float",
		Kernel:   "C<4>[i] = A<4>[i] + B<4>[i];",
	})
	c, err := LoadCase(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "addk" || c.DataType != "float" {
		t.Fatalf("unexpected case: %+v", c)
	}
}

func TestLowerProducesCCode(t *testing.T) {
	c := &Case{
		Name:     "addk",
		Ins:      []string{"A", "B"},
		Outs:     []string{"C"},
		DataType: "float",
		Kernel:   "C<4>[i] = A<4>[i] + B<4>[i];",
	}
	res, err := Lower(c, 16, printFn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains([]byte(res.Code), []byte("void addk(")) {
		t.Fatalf("unexpected generated code:\n%s", res.Code)
	}
}

func TestDiffProducesGeneratedCases(t *testing.T) {
	c := &Case{
		Name:     "C",
		Ins:      []string{"A", "B"},
		Outs:     []string{"C"},
		DataType: "float",
		Kernel:   "C<4,16>[i,j] = A<4,16>[i,j] * B<4,16>[i,j] + 1.0;",
		GradTo:   []string{"A"},
	}
	res, err := Diff(c, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Cases) != 1 {
		t.Fatalf("expected 1 generated case, got %d", len(res.Cases))
	}
	got := res.Cases[0]
	if got.Kernel != "dA<4,16>[i,j] = dC<4,16>[i,j] * B<4,16>[i,j];" {
		t.Fatalf("unexpected generated kernel: %q", got.Kernel)
	}
	if got.GradTo != nil {
		t.Fatalf("generated case must not carry grad_to")
	}
}

type recordingSink struct {
	events []Event
}

func (s *recordingSink) OnEvent(e Event) {
	s.events = append(s.events, e)
}

func TestRunSkipsConfiguredCasesAndWritesOutput(t *testing.T) {
	cfg := config.Config{
		CasesDir:   t.TempDir(),
		KernelsDir: t.TempDir(),
		FirstCase:  1,
		LastCase:   3,
		SkipCases:  []int64{2},
	}
	writeCase(t, cfg.CasesDir, "case_1.json", Case{
		Name: "k1", Ins: []string{"A"}, Outs: []string{"B"},
		DataType: "float", Kernel: "B<4>[i] = A<4>[i];",
	})
	writeCase(t, cfg.CasesDir, "case_3.json", Case{
		Name: "k3", Ins: []string{"A"}, Outs: []string{"B"},
		DataType: "float", Kernel: "B<4>[i] = A<4>[i];",
	})

	sink := &recordingSink{}
	result := Run(cfg, 16, printFn, sink)

	if result.Skipped != 1 {
		t.Fatalf("expected 1 skipped case, got %d", result.Skipped)
	}
	if result.Processed != 2 {
		t.Fatalf("expected 2 processed cases, got %d", result.Processed)
	}
	if len(result.Failed) != 0 {
		t.Fatalf("expected no failures, got %v", result.Failed)
	}
	if _, err := os.Stat(outputPath(cfg, 1)); err != nil {
		t.Fatalf("expected case_1.cc to be written: %v", err)
	}
	if _, err := os.Stat(outputPath(cfg, 2)); err == nil {
		t.Fatalf("case_2 should have been skipped, not written")
	}
}

func TestRunRecordsMissingCaseAsFailureNotFatal(t *testing.T) {
	cfg := config.Config{
		CasesDir:   t.TempDir(),
		KernelsDir: t.TempDir(),
		FirstCase:  1,
		LastCase:   1,
	}
	result := Run(cfg, 16, printFn, NopSink{})
	if result.Processed != 0 || len(result.Failed) != 1 {
		t.Fatalf("expected exactly one recorded failure, got %+v", result)
	}
}

func TestLintNeverWritesFiles(t *testing.T) {
	cfg := config.Config{
		CasesDir:   t.TempDir(),
		KernelsDir: t.TempDir(),
		FirstCase:  1,
		LastCase:   2,
	}
	writeCase(t, cfg.CasesDir, "case_1.json", Case{
		Name: "k1", Ins: []string{"A"}, Outs: []string{"B"},
		DataType: "float", Kernel: "B<4>[i] = A<4>[i];",
	})
	writeCase(t, cfg.CasesDir, "case_2.json", Case{
		Name: "k2", Ins: []string{"A"}, Outs: []string{"B"},
		DataType: "float", Kernel: "B<4>[i] = A<4>[i];",
	})

	result := Lint(context.Background(), cfg, 16, printFn, NopSink{})
	if result.Processed != 2 {
		t.Fatalf("expected 2 processed cases, got %d", result.Processed)
	}
	entries, err := os.ReadDir(cfg.KernelsDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("lint must never write output, found: %v", entries)
	}
}
