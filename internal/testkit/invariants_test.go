package testkit_test

import (
	"strings"
	"testing"

	"pancake/internal/parser"
	"pancake/internal/testkit"
)

func TestCheckSpanInvariants(t *testing.T) {
	inputs := []string{
		"",
		"a = 1; b = 2",
		"if (x) { y() }\nwhile (z) z--",
		"var f = function () { return 1 }\nclass A { m() {} }",
		"x = `a${b}c`;;",
	}
	for _, input := range inputs {
		p := parser.Parse(input)
		stmts, err := p.All()
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if err := testkit.CheckSpanInvariants(p.Builder(), stmts, []byte(input)); err != nil {
			t.Errorf("invariants for %q: %v", input, err)
		}
	}
}

func TestCheckSpanInvariantsDetectsOverflow(t *testing.T) {
	input := "answer = 42"
	p := parser.Parse(input)
	stmts, err := p.All()
	if err != nil {
		t.Fatal(err)
	}
	// обрезанное содержимое короче span'а оператора
	err = testkit.CheckSpanInvariants(p.Builder(), stmts, []byte(input[:4]))
	if err == nil || !strings.Contains(err.Error(), "beyond content") {
		t.Errorf("err = %v", err)
	}
	if err := testkit.CheckSpanInvariants(nil, nil, nil); err == nil {
		t.Error("nil builder accepted")
	}
}
