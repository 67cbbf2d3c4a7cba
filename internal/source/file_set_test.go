package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.js", []byte("hello world"), 0)
	id2 := fs.Add("test.js", []byte("hello universe"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}

	latest, ok := fs.GetLatest("test.js")
	if !ok || latest != id2 {
		t.Fatalf("expected latest id %d, got %d (ok=%v)", id2, latest, ok)
	}
	if string(fs.Get(id1).Content) != "hello world" {
		t.Errorf("old version content lost: %q", fs.Get(id1).Content)
	}
	if fs.Get(99) != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.js", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("expected LineIdx %v, got %v", expected, file.LineIdx)
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("LineIdx[%d] = %d, want %d", i, file.LineIdx[i], val)
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	content := "let x\nжж = 1"
	id := fs.AddVirtual("r.js", []byte(content))

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{4, 1, 5},
		{6, 2, 1},
		{uint32(len("let x\nжж")), 2, 3},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start.Line != tt.line || start.Col != tt.col {
			t.Errorf("offset %d: expected %d:%d, got %d:%d", tt.off, tt.line, tt.col, start.Line, start.Col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("l.js", []byte("one\ntwo\nthree")))

	for i, want := range []string{"one", "two", "three", ""} {
		if got := f.GetLine(uint32(i + 1)); got != want {
			t.Errorf("line %d: expected %q, got %q", i+1, want, got)
		}
	}
	if f.GetLine(0) != "" {
		t.Error("line 0 must be empty")
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name  string
		raw   []byte
		want  string
		flags FileFlags
	}{
		{"plain", []byte("a\nb"), "a\nb", 0},
		{"crlf", []byte("a\r\nb\r\n"), "a\nb\n", FileNormalizedCRLF},
		{"bom", []byte("\xEF\xBB\xBFx"), "x", FileHadBOM},
		{"utf16le", []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, "hi", FileTranscoded},
		{"utf16be", []byte{0xFE, 0xFF, 0, 'o', 0, 'k'}, "ok", FileTranscoded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".js")
			if err := os.WriteFile(path, tt.raw, 0o600); err != nil {
				t.Fatalf("write: %v", err)
			}
			fs := NewFileSet()
			id, err := fs.Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			f := fs.Get(id)
			if string(f.Content) != tt.want {
				t.Errorf("expected content %q, got %q", tt.want, f.Content)
			}
			if f.Flags != tt.flags {
				t.Errorf("expected flags %b, got %b", tt.flags, f.Flags)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.js")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()
	baseDir := filepath.Join(tmp, "base")
	target := filepath.Join(tmp, "other", "file.js")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := normalizePath(target); got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}

	inside, err := RelativePath(filepath.Join(baseDir, "x", "y.js"), baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if inside != "x/y.js" {
		t.Fatalf("expected x/y.js, got %q", inside)
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	a := in.Intern("alpha")
	if in.Intern("alpha") != a {
		t.Fatal("same string must intern to same id")
	}
	if in.Intern("beta") == a {
		t.Fatal("different strings must not share id")
	}
	if s, ok := in.Lookup(a); !ok || s != "alpha" {
		t.Fatalf("lookup: %q %v", s, ok)
	}
	if s := in.MustLookup(NoStringID); s != "" {
		t.Fatalf("NoStringID must map to empty string, got %q", s)
	}
	if _, ok := in.Lookup(StringID(42)); ok {
		t.Fatal("unknown id must not resolve")
	}
	if in.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", in.Len())
	}
}
