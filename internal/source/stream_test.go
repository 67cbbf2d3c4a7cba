package source

import "testing"

func TestCharacterStreamPositions(t *testing.T) {
	s := NewCharacterStream("ab\nc")

	want := []struct {
		ch        rune
		line, col int
	}{
		{'a', 0, 0},
		{'b', 0, 1},
		{'\n', 0, 2},
		{'c', 1, 0},
		{EOF, 1, 1},
	}
	for i, w := range want {
		pos := s.Position()
		if pos.Line != w.line || pos.Column != w.col {
			t.Fatalf("step %d: expected %d:%d, got %d:%d", i, w.line, w.col, pos.Line, pos.Column)
		}
		if got := s.Next(); got != w.ch {
			t.Fatalf("step %d: expected %q, got %q", i, w.ch, got)
		}
	}
	// после конца всегда EOF
	if got := s.Next(); got != EOF {
		t.Fatalf("expected EOF after end, got %q", got)
	}
}

func TestCharacterStreamPeekAndBack(t *testing.T) {
	s := NewCharacterStream("xy")
	if s.Peek() != 'x' || s.PeekNext() != 'y' {
		t.Fatalf("unexpected lookahead %q %q", s.Peek(), s.PeekNext())
	}
	s.Next()
	if s.PeekNext() != EOF {
		t.Fatalf("expected EOF as second lookahead, got %q", s.PeekNext())
	}
	before := s.Position()
	s.Next()
	s.Back()
	if s.Position() != before {
		t.Fatalf("back did not restore position: %v vs %v", s.Position(), before)
	}
	if got := s.Next(); got != 'y' {
		t.Fatalf("expected y after back, got %q", got)
	}
}

func TestCharacterStreamNewlineBack(t *testing.T) {
	s := NewCharacterStream("a\nb")
	s.Next()
	s.Next() // '\n'
	if pos := s.Position(); pos.Line != 1 || pos.Column != 0 {
		t.Fatalf("expected 1:0 after newline, got %v", pos)
	}
	s.Back()
	if pos := s.Position(); pos.Line != 0 || pos.Column != 1 {
		t.Fatalf("expected 0:1 after back over newline, got %v", pos)
	}
}

func TestCharacterStreamDoubleBackPanics(t *testing.T) {
	s := NewCharacterStream("abc")
	s.Next()
	s.Next()
	s.Back()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on second Back")
		}
	}()
	s.Back()
}

func TestCharacterStreamUnicodeColumns(t *testing.T) {
	s := NewCharacterStream("ж😀z")
	s.Next()
	s.Next()
	pos := s.Position()
	if pos.Column != 2 {
		t.Fatalf("expected column 2 counted in runes, got %d", pos.Column)
	}
	if pos.Offset != len("ж😀") {
		t.Fatalf("expected byte offset %d, got %d", len("ж😀"), pos.Offset)
	}
	start := Position{}
	if sp := s.SpanFrom(start); sp.Start != 0 || int(sp.End) != len("ж😀") {
		t.Fatalf("unexpected span %v", sp)
	}
}
