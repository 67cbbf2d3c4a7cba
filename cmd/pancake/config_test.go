package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFindProjectConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, configFileName), "[output]\ncolor = \"off\"\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := findProjectConfig(nested)
	if err != nil || !ok {
		t.Fatalf("findProjectConfig: ok=%v err=%v", ok, err)
	}
	want, _ := filepath.Abs(filepath.Join(root, configFileName))
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	writeFile(t, path, `# project settings
[output]
format = "tree"

[parse]
max_diagnostics = 5
extensions = [".js", ".cjs"]

[cache]
enabled = true
`)
	cfg, err := loadProjectConfig(path)
	if err != nil {
		t.Fatalf("loadProjectConfig: %v", err)
	}
	if cfg.Config.Output.Format != "tree" || cfg.Config.Parse.MaxDiagnostics != 5 || !cfg.Config.Cache.Enabled {
		t.Errorf("unexpected config: %+v", cfg.Config)
	}
	if got := strings.Join(cfg.extensions(), ","); got != ".js,.cjs" {
		t.Errorf("extensions = %q", got)
	}
	if cfg.defined("parse", "jobs") || cfg.defined("output", "color") {
		t.Error("absent keys reported as defined")
	}
}

func TestLoadProjectConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown_key", "[output]\ncolour = \"on\"\n", "unknown keys: output.colour"},
		{"unknown_table", "[lint]\nstrict = true\n", "unknown keys"},
		{"bad_color", "[output]\ncolor = \"sometimes\"\n", "[output].color"},
		{"bad_format", "[output]\nformat = \"xml\"\n", "[output].format"},
		{"negative_jobs", "[parse]\njobs = -1\n", "[parse].jobs"},
		{"bad_extension", "[parse]\nextensions = [\"js\"]\n", "[parse].extensions"},
		{"syntax", "[output\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), configFileName)
			writeFile(t, path, tt.content)
			_, err := loadProjectConfig(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestApplyProjectConfigKeepsExplicitFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	writeFile(t, path, "[output]\nformat = \"tree\"\n[parse]\njobs = 3\n")
	cfg, err := loadProjectConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	cmd := &cobra.Command{Use: "parse"}
	cmd.Flags().String("format", "pretty", "")
	cmd.Flags().Int("jobs", 0, "")
	if err := cmd.Flags().Parse([]string{"--format", "json"}); err != nil {
		t.Fatal(err)
	}
	if err := applyProjectConfig(cmd, cfg); err != nil {
		t.Fatalf("applyProjectConfig: %v", err)
	}
	// явный флаг важнее файла
	if got, _ := cmd.Flags().GetString("format"); got != "json" {
		t.Errorf("format = %q, want json", got)
	}
	if got, _ := cmd.Flags().GetInt("jobs"); got != 3 {
		t.Errorf("jobs = %d, want 3", got)
	}
}

func TestApplyProjectConfigSkipsForeignFormats(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	writeFile(t, path, "[output]\nformat = \"tree\"\n")
	cfg, err := loadProjectConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	cmd := &cobra.Command{Use: "tokenize"}
	cmd.Flags().String("format", "pretty", "")
	if err := applyProjectConfig(cmd, cfg); err != nil {
		t.Fatal(err)
	}
	if got, _ := cmd.Flags().GetString("format"); got != "pretty" {
		t.Errorf("tokenize format = %q, want pretty", got)
	}
}

func TestReadModes(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, " on ": uiModeOn, "off": uiModeOff} {
		if got, err := readUIMode(in); err != nil || got != want {
			t.Errorf("readUIMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readUIMode("maybe"); err == nil {
		t.Error("readUIMode accepted an invalid value")
	}
	for in, want := range map[string]colorMode{"auto": colorAuto, "On": colorOn, "off": colorOff} {
		if got, err := readColorMode(in); err != nil || got != want {
			t.Errorf("readColorMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readColorMode("always"); err == nil {
		t.Error("readColorMode accepted an invalid value")
	}
	if shouldUseTUI(uiModeOff, false) || !shouldUseTUI(uiModeOn, true) {
		t.Error("explicit ui modes ignored")
	}
}
