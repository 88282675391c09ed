package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "tclc.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Default()
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadOverridesIndividualFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tclc.toml")
	writeFile(t, path, `
cases_dir = "./mycases"
last_case = 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CasesDir != "./mycases" {
		t.Fatalf("got cases_dir %q", cfg.CasesDir)
	}
	if cfg.LastCase != 5 {
		t.Fatalf("got last_case %d", cfg.LastCase)
	}
	// Untouched fields keep their defaults.
	if cfg.KernelsDir != "./kernels" {
		t.Fatalf("got kernels_dir %q", cfg.KernelsDir)
	}
	if len(cfg.SkipCases) != 3 || cfg.SkipCases[0] != 6 {
		t.Fatalf("got skip_cases %v", cfg.SkipCases)
	}
}

func TestSkips(t *testing.T) {
	cfg := Default()
	for _, n := range []int64{6, 8, 10} {
		if !cfg.Skips(n) {
			t.Fatalf("expected case %d to be skipped", n)
		}
	}
	if cfg.Skips(7) {
		t.Fatalf("case 7 should not be skipped")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
