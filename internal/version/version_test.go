package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestDescribe(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	}()

	Version = "1.2.3"
	GitCommit = ""
	BuildDate = ""
	if got := Describe(false); got != "pancake 1.2.3\n" {
		t.Errorf("Describe = %q", got)
	}

	// имитация -ldflags
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"
	got := Describe(false)
	for _, want := range []string{"pancake 1.2.3\n", "commit: abc123def456\n", "built:  2024-01-15T10:30:00Z\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("Describe misses %q: %q", want, got)
		}
	}
}

func TestColored(t *testing.T) {
	orig := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = orig }()

	tests := []struct {
		in        string
		suffix    string
		colorless bool
	}{
		{"0.1.0-dev", "-dev", false},
		{"1.2.3-rc.1+build.123", "-rc.1+build.123", false},
		{"1.0.0", "", false},
		{"snapshot", "", true},
	}
	for _, tt := range tests {
		got := Colored(tt.in)
		if tt.colorless {
			if got != tt.in {
				t.Errorf("Colored(%q) = %q, want unchanged", tt.in, got)
			}
			continue
		}
		if !strings.Contains(got, "\x1b[") {
			t.Errorf("Colored(%q) has no escape codes: %q", tt.in, got)
		}
		if !strings.HasSuffix(got, tt.suffix) {
			t.Errorf("Colored(%q) = %q, want suffix %q", tt.in, got, tt.suffix)
		}
	}
}
