package version

import "testing"

func TestVersionHasDefaultValue(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestVersionVarsCanBeOverridden(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	}()

	Version = "1.2.3"
	GitCommit = "abc123"
	BuildDate = "2026-07-31T00:00:00Z"

	if Version != "1.2.3" || GitCommit != "abc123" || BuildDate != "2026-07-31T00:00:00Z" {
		t.Fatalf("overrides did not take effect: %q %q %q", Version, GitCommit, BuildDate)
	}
}
