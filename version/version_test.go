package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("GetFullVersion() = %q, want %q", got, "dev")
	}

	Version, GitCommit, BuildDate = "v1.0.0", "abc123", "2026-10-19"
	defer func() { Version, GitCommit, BuildDate = "dev", "unknown", "unknown" }()

	want := "v1.0.0 (commit abc123, built 2026-10-19)"
	if got := GetFullVersion(); got != want {
		t.Errorf("GetFullVersion() = %q, want %q", got, want)
	}
	if got := GetVersion(); got != "v1.0.0" {
		t.Errorf("GetVersion() = %q, want %q", got, "v1.0.0")
	}
}
