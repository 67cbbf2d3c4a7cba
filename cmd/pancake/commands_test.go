package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// execute гоняет rootCmd с чистыми флагами и захваченным выводом.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		if err := f.Value.Set(f.DefValue); err != nil {
			t.Fatalf("reset --%s: %v", f.Name, err)
		}
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// project создаёт временный проект с pancake.toml и возвращает путь к конфигу.
func project(t *testing.T, files map[string]string) (string, string) {
	t.Helper()
	root := t.TempDir()
	cfg := filepath.Join(root, configFileName)
	writeFile(t, cfg, "[output]\ncolor = \"off\"\nformat = \"tree\"\n")
	for name, content := range files {
		writeFile(t, filepath.Join(root, "src", name), content)
	}
	return root, cfg
}

func TestParseCommandUsesConfigFormat(t *testing.T) {
	root, cfg := project(t, map[string]string{"a.js": "1 + 2\n"})

	stdout, stderr, err := execute(t, "parse", "--config", cfg, filepath.Join(root, "src", "a.js"))
	if err != nil {
		t.Fatalf("parse: %v\nstderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "Binary +") || !strings.Contains(stdout, "left: Number 1") {
		t.Errorf("expected tree output, got:\n%s", stdout)
	}
}

func TestParseCommandReportsSyntaxErrorAsJSON(t *testing.T) {
	root, cfg := project(t, map[string]string{"b.js": "f("})

	stdout, stderr, err := execute(t, "parse", "--format", "json", "--config", cfg, filepath.Join(root, "src", "b.js"))
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if !strings.Contains(stdout, `"kind": "Program"`) {
		t.Errorf("stdout is not a JSON AST:\n%s", stdout)
	}
	var diags struct {
		Diagnostics []struct {
			Code string `json:"code"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal([]byte(stderr), &diags); err != nil {
		t.Fatalf("stderr is not JSON: %v\n%s", err, stderr)
	}
	if len(diags.Diagnostics) != 1 || diags.Diagnostics[0].Code != "SYN2002" {
		t.Errorf("diagnostics = %+v", diags.Diagnostics)
	}
}

func TestParseCommandPrettyDiagnostics(t *testing.T) {
	root, cfg := project(t, map[string]string{"c.js": "x = 'open\n"})

	_, stderr, err := execute(t, "parse", "--format", "pretty", "--config", cfg, filepath.Join(root, "src", "c.js"))
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if !strings.Contains(stderr, "ERROR LEX1002") || !strings.Contains(stderr, "^") {
		t.Errorf("stderr:\n%s", stderr)
	}
	if strings.Contains(stderr, "\x1b[") {
		t.Error("color must be off per pancake.toml")
	}
}

func TestParseDirectoryWithTimings(t *testing.T) {
	root, cfg := project(t, map[string]string{"a.js": "a", "lib/b.mjs": "b = 1"})

	stdout, stderr, err := execute(t, "parse", "--ui", "off", "--timings", "--format", "pretty", "--config", cfg, filepath.Join(root, "src"))
	if err != nil {
		t.Fatalf("parse dir: %v\nstderr: %s", err, stderr)
	}
	for _, want := range []string{"== a.js ==", "== lib/b.mjs ==", "Assign ="} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout misses %q:\n%s", want, stdout)
		}
	}
	if !strings.Contains(stderr, "timings:") || !strings.Contains(stderr, "2 files") {
		t.Errorf("timing summary missing:\n%s", stderr)
	}
}

func TestTokenizeCommand(t *testing.T) {
	root, cfg := project(t, map[string]string{"a.js": "a = /x/g"})

	stdout, stderr, err := execute(t, "tokenize", "--format", "json", "--config", cfg, filepath.Join(root, "src", "a.js"))
	if err != nil {
		t.Fatalf("tokenize: %v\nstderr: %s", err, stderr)
	}
	var toks []struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(stdout), &toks); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	if len(toks) != 3 || toks[2].Kind != "regex" || toks[2].Text != "/x/g" {
		t.Errorf("tokens = %+v", toks)
	}
}

func TestTokenizeDirectoryIgnoresTreeFormat(t *testing.T) {
	root, cfg := project(t, map[string]string{"a.js": "a", "b.js": "b"})

	stdout, stderr, err := execute(t, "tokenize", "--config", cfg, filepath.Join(root, "src"))
	if err != nil {
		t.Fatalf("tokenize dir: %v\nstderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "== a.js ==") || !strings.Contains(stdout, "== b.js ==") || !strings.Contains(stdout, "identifier") {
		t.Errorf("stdout:\n%s", stdout)
	}
}

func TestCommandRejectsUnknownFormat(t *testing.T) {
	root, cfg := project(t, map[string]string{"a.js": "a"})
	_, _, err := execute(t, "tokenize", "--format", "tree", "--config", cfg, filepath.Join(root, "src", "a.js"))
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("err = %v", err)
	}
}

func TestVersionCommandJSON(t *testing.T) {
	stdout, _, err := execute(t, "version", "--format", "json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, stdout)
	}
	if payload.Tool != "pancake" || payload.Version == "" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestParseCommandWritesHeapProfile(t *testing.T) {
	root, cfg := project(t, map[string]string{"a.js": "a"})
	memPath := filepath.Join(root, "mem.pprof")

	_, stderr, err := execute(t, "parse", "--mem-profile", memPath, "--config", cfg, filepath.Join(root, "src", "a.js"))
	if err != nil {
		t.Fatalf("parse: %v\nstderr: %s", err, stderr)
	}
	if st, err := os.Stat(memPath); err != nil || st.Size() == 0 {
		t.Errorf("heap profile not written: %v", err)
	}
}
