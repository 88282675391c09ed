package main

import (
	"testing"

	"tclc/internal/config"
)

func TestCaseNamesForSkipsConfiguredCases(t *testing.T) {
	cfg := config.Config{FirstCase: 1, LastCase: 4, SkipCases: []int64{2}}
	names := caseNamesFor(cfg)
	want := []string{"case_1", "case_3", "case_4"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}
