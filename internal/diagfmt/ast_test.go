package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"pancake/internal/ast"
	"pancake/internal/parser"
)

func parseProgram(t *testing.T, text string) (*ast.Builder, []ast.StmtID) {
	t.Helper()
	p := parser.Parse(text)
	stmts, err := p.All()
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	return p.Builder(), stmts
}

func TestFormatASTPretty(t *testing.T) {
	b, stmts := parseProgram(t, "if (x) { y() } else z = 1")

	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, b, stmts, nil); err != nil {
		t.Fatalf("FormatASTPretty: %v", err)
	}
	output := buf.String()
	for _, want := range []string{
		"Program (span: span(0-25))\n",
		"└─ If (span: span(0-25))\n",
		"   ├─ cond: Identifier x (span: span(4-5))\n",
		"   ├─ then: Block",
		"   │  └─ ExpressionStatement",
		"   │     └─ Call",
		"   │        └─ callee: Identifier y",
		"   └─ else: ExpressionStatement",
		"      └─ Assign =",
		"         ├─ target: Identifier z",
		"         └─ value: Number 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output misses %q:\n%s", want, output)
		}
	}
}

func TestFormatASTPrettyTemplate(t *testing.T) {
	b, stmts := parseProgram(t, "`a${b}c`")

	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, b, stmts, nil); err != nil {
		t.Fatalf("FormatASTPretty: %v", err)
	}
	output := buf.String()
	// у текстовых кусков шаблона нет собственного span
	for _, want := range []string{`Text "a"` + "\n", `Text "c"` + "\n", "Identifier b (span:"} {
		if !strings.Contains(output, want) {
			t.Errorf("output misses %q:\n%s", want, output)
		}
	}
}

func TestFormatASTJSON(t *testing.T) {
	b, stmts := parseProgram(t, "var a = 1, b\nwhile (a) break")

	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, b, stmts); err != nil {
		t.Fatalf("FormatASTJSON: %v", err)
	}
	var root ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if root.Kind != "Program" || len(root.Children) != 2 {
		t.Fatalf("root = %s with %d children", root.Kind, len(root.Children))
	}

	decl := root.Children[0]
	if decl.Text != "var" || len(decl.Children) != 2 {
		t.Fatalf("declaration = %+v", decl)
	}
	first := decl.Children[0]
	if first.Kind != "Binding" || len(first.Children) != 2 || first.Children[1].Role != "init" {
		t.Errorf("first binding = %+v", first)
	}
	if second := decl.Children[1]; len(second.Children) != 1 || second.Children[0].Text != "b" {
		t.Errorf("second binding = %+v", second)
	}

	loop := root.Children[1]
	if loop.Kind != "While" || loop.Children[0].Role != "cond" || loop.Children[1].Role != "body" {
		t.Errorf("loop = %+v", loop)
	}
	if root.Span.Start != 0 || root.Span.End != loop.Span.End {
		t.Errorf("program span = %+v", root.Span)
	}
}

func TestFormatASTTree(t *testing.T) {
	b, stmts := parseProgram(t, "1 + 2")

	var buf bytes.Buffer
	if err := FormatASTTree(&buf, b, stmts); err != nil {
		t.Fatalf("FormatASTTree: %v", err)
	}
	want := strings.Join([]string{
		"      ExpressionStatement",
		"               |",
		"           Binary +",
		"       /       |        \\",
		"left: Number 1   right: Number 2",
	}, "\n") + "\n"
	if got := buf.String(); got != want {
		t.Errorf("tree mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatASTTreeSeparatesStatements(t *testing.T) {
	b, stmts := parseProgram(t, "a; b")

	var buf bytes.Buffer
	if err := FormatASTTree(&buf, b, stmts); err != nil {
		t.Fatalf("FormatASTTree: %v", err)
	}
	blocks := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n\n")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d:\n%s", len(blocks), buf.String())
	}
	if !strings.HasSuffix(blocks[1], "Identifier b") {
		t.Errorf("second block = %q", blocks[1])
	}
}
