package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"pancake/internal/lexer"
	"pancake/internal/token"
)

func lexAll(t *testing.T, text string) []token.Token {
	t.Helper()
	toks, err := lexer.NewFromString(text, lexer.Options{}).Collect()
	if err != nil {
		t.Fatalf("lex %q: %v", text, err)
	}
	return toks
}

func TestFormatTokensPretty(t *testing.T) {
	toks := lexAll(t, "a = /x/g\nb")

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, TokenOpts{}); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[2], "regex") || !strings.HasSuffix(lines[2], `"/x/g"`) {
		t.Errorf("regex line = %q", lines[2])
	}
	// b начинает новую строку
	if !strings.HasPrefix(lines[3], "   4 ↵     1:0") || !strings.HasSuffix(lines[3], `"b"`) {
		t.Errorf("newline token line = %q", lines[3])
	}
}

func TestFormatTokensPrettyWithEOF(t *testing.T) {
	toks := append(lexAll(t, "x"), token.Token{Kind: token.EOF})

	var without, with bytes.Buffer
	if err := FormatTokensPretty(&without, toks, TokenOpts{}); err != nil {
		t.Fatal(err)
	}
	if err := FormatTokensPretty(&with, toks, TokenOpts{WithEOF: true}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(without.String(), "eof") {
		t.Errorf("EOF printed without WithEOF:\n%s", without.String())
	}
	if !strings.Contains(with.String(), "eof") {
		t.Errorf("EOF missing with WithEOF:\n%s", with.String())
	}
}

func TestFormatTokensJSON(t *testing.T) {
	toks := lexAll(t, "f(`a${b}c`)")

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks, TokenOpts{}); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	kinds := make([]string, len(out))
	for i, tok := range out {
		kinds[i] = tok.Kind
	}
	want := "identifier symbol templateliteral-chunk identifier templateliteral-end symbol"
	if got := strings.Join(kinds, " "); got != want {
		t.Errorf("kinds = %q, want %q", got, want)
	}
	if out[2].Text != "a" || out[4].Text != "c" {
		t.Errorf("template texts = %q, %q", out[2].Text, out[4].Text)
	}
	if out[0].Span.Start != 0 || out[0].Span.End != 1 {
		t.Errorf("span of f = %+v", out[0].Span)
	}
}
