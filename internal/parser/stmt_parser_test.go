package parser

import (
	"errors"
	"io"
	"slices"
	"testing"

	"pancake/internal/ast"
	"pancake/internal/diag"
	"pancake/internal/lexer"
	"pancake/internal/trace"
)

func TestStatementTermination(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"newline_splits", "a\nb", []string{"ExpressionStatement", "ExpressionStatement"}},
		{"operator_continues", "a + \n b", []string{"ExpressionStatement"}},
		{"semicolons", "a; b;", []string{"ExpressionStatement", "ExpressionStatement"}},
		{"postfix_not_across_newline", "a\n++b", []string{"ExpressionStatement", "ExpressionStatement"}},
		{"return_then_newline", "return\nx", []string{"Return", "ExpressionStatement"}},
		{"empty_statements", ";;", []string{"Empty", "Empty"}},
		{"closing_brace", "{ a }", []string{"Block"}},
		{"comments_only", "// nothing\n/* here */", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, stmts := parseSource(t, tt.input)
			if got := stmtKinds(b, stmts); !slices.Equal(got, tt.want) {
				t.Errorf("parse %q = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVarDeclarations(t *testing.T) {
	b, stmts := parseSource(t, "var a = 1, b, c = x ? y : z\nlet [d, e] = arr\nconst f = (g, h) => { return g + h }")
	if got := stmtKinds(b, stmts); len(got) != 3 {
		t.Fatalf("expected 3 statements, got %v", got)
	}

	first, ok := b.Stmts.VarDecl(stmts[0])
	if !ok || first.Kind != ast.VarVar || len(first.Bindings) != 3 {
		t.Fatalf("unexpected var declaration: %+v", first)
	}
	if first.Bindings[1].Init != ast.NoExprID {
		t.Errorf("b must have no initializer")
	}
	if got := render(b, first.Bindings[2].Init); got != "(? x y z)" {
		t.Errorf("c initializer = %s", got)
	}

	second, _ := b.Stmts.VarDecl(stmts[1])
	if second.Kind != ast.VarLet || render(b, second.Bindings[0].Target) != "[d e]" {
		t.Errorf("unexpected let declaration: kind %s target %s", second.Kind, render(b, second.Bindings[0].Target))
	}

	third, _ := b.Stmts.VarDecl(stmts[2])
	if third.Kind != ast.VarConst {
		t.Errorf("kind = %s, want const", third.Kind)
	}
	if got := render(b, third.Bindings[0].Init); got != "(=> (g h) {})" {
		t.Errorf("f initializer = %s", got)
	}
}

func TestIfElse(t *testing.T) {
	b, stmts := parseSource(t, "if (a) b; else c")
	data, ok := b.Stmts.If(stmts[0])
	if !ok {
		t.Fatalf("expected if, got %v", stmtKinds(b, stmts))
	}
	if render(b, data.Cond) != "a" || data.Else == ast.NoStmtID {
		t.Errorf("unexpected if: cond %s else %d", render(b, data.Cond), data.Else)
	}

	b, stmts = parseSource(t, "if (a) { b } else if (c) { d }")
	data, _ = b.Stmts.If(stmts[0])
	if kind := b.Stmts.Get(data.Else).Kind; kind != ast.StmtIf {
		t.Errorf("else branch = %s, want If", kind)
	}
}

func TestSwitch(t *testing.T) {
	b, stmts := parseSource(t, "switch (x) { case 1: a(); break; default: b() }")
	data, ok := b.Stmts.Switch(stmts[0])
	if !ok {
		t.Fatalf("expected switch, got %v", stmtKinds(b, stmts))
	}
	if len(data.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(data.Cases))
	}
	first := data.Cases[0]
	if render(b, first.Test) != "1" {
		t.Errorf("case test = %s", render(b, first.Test))
	}
	if got := stmtKinds(b, first.Body); !slices.Equal(got, []string{"ExpressionStatement", "Break"}) {
		t.Errorf("case body = %v", got)
	}
	if call, _ := b.Stmts.Expr(first.Body[0]); render(b, call.Expr) != "(call a)" {
		t.Errorf("case call = %s", render(b, call.Expr))
	}
	if data.Cases[1].Test != ast.NoExprID || len(data.Cases[1].Body) != 1 {
		t.Errorf("unexpected default clause: %+v", data.Cases[1])
	}
}

func TestTryCatchFinally(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		params     int
		hasCatch   bool
		hasFinally bool
	}{
		{"full", "try { a } catch (e) { b } finally { c }", 1, true, true},
		{"catch_without_binding", "try { a } catch { b }", 0, true, false},
		{"finally_only", "try { a } finally { c }", 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, stmts := parseSource(t, tt.input)
			data, ok := b.Stmts.Try(stmts[0])
			if !ok {
				t.Fatalf("expected try, got %v", stmtKinds(b, stmts))
			}
			if len(data.Params) != tt.params {
				t.Errorf("params = %d, want %d", len(data.Params), tt.params)
			}
			if (data.Catch != ast.NoStmtID) != tt.hasCatch || (data.Finally != ast.NoStmtID) != tt.hasFinally {
				t.Errorf("catch=%d finally=%d", data.Catch, data.Finally)
			}
		})
	}
}

func TestLoops(t *testing.T) {
	b, stmts := parseSource(t, "outer: for (;;) { break outer }")
	label, ok := b.Stmts.Label(stmts[0])
	if !ok || b.Name(label.Label) != "outer" {
		t.Fatalf("expected label outer, got %v", stmtKinds(b, stmts))
	}
	loop, ok := b.Stmts.For(label.Body)
	if !ok {
		t.Fatalf("label body is not a for loop")
	}
	if b.Stmts.Get(loop.Init).Kind != ast.StmtEmpty || loop.Cond != ast.NoExprID || loop.Post != ast.NoExprID {
		t.Errorf("unexpected for header: %+v", loop)
	}
	block, _ := b.Stmts.Block(loop.Body)
	jump, ok := b.Stmts.Jump(block.Stmts[0])
	if !ok || b.Name(jump.Label) != "outer" {
		t.Errorf("expected break outer")
	}

	b, stmts = parseSource(t, "for (let i = 0; i < n; i++) sum += i")
	loop, _ = b.Stmts.For(stmts[0])
	if b.Stmts.Get(loop.Init).Kind != ast.StmtVarDecl {
		t.Errorf("init = %s", b.Stmts.Get(loop.Init).Kind)
	}
	if render(b, loop.Cond) != "(< i n)" || render(b, loop.Post) != "(post++ i)" {
		t.Errorf("cond %s post %s", render(b, loop.Cond), render(b, loop.Post))
	}

	b, stmts = parseSource(t, "do x++; while (x < 3)\ndo { y() } while (y); z\nwhile (a) b()\nwith (o) f()")
	want := []string{"DoWhile", "DoWhile", "ExpressionStatement", "While", "With"}
	if got := stmtKinds(b, stmts); !slices.Equal(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}

	b, stmts = parseSource(t, "while (a) { continue\nlabel }")
	loopData, _ := b.Stmts.Loop(stmts[0])
	body, _ := b.Stmts.Block(loopData.Body)
	if got := stmtKinds(b, body.Stmts); !slices.Equal(got, []string{"Continue", "ExpressionStatement"}) {
		t.Errorf("label on the next line must not attach to continue: %v", got)
	}
}

func TestDeclarations(t *testing.T) {
	b, stmts := parseSource(t, `
function add(a, b = 1, ...rest) { return a + b }
async function load() { await fetch() }
class A extends B { constructor(x) { this.x = x } get() { return 1 }; m() {} }
async () => 1
`)
	want := []string{"FunctionDeclaration", "AsyncFunctionDeclaration", "ClassDeclaration", "ExpressionStatement"}
	if got := stmtKinds(b, stmts); !slices.Equal(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}

	fn, _ := b.Stmts.Decl(stmts[0])
	if got := render(b, fn.Decl); got != "(function add/3)" {
		t.Errorf("function = %s", got)
	}
	data, _ := b.Exprs.Function(fn.Decl)
	if got := render(b, data.Params[1]); got != "(= b 1)" {
		t.Errorf("default param = %s", got)
	}

	async, _ := b.Stmts.Decl(stmts[1])
	if got := render(b, async.Decl); got != "(asyncfunction load/0)" {
		t.Errorf("async function = %s", got)
	}

	class, _ := b.Stmts.Decl(stmts[2])
	if got := render(b, class.Decl); got != "(class A B [constructor get m])" {
		t.Errorf("class = %s", got)
	}

	arrow, _ := b.Stmts.Expr(stmts[3])
	if got := render(b, arrow.Expr); got != "(async=> () 1)" {
		t.Errorf("async arrow = %s", got)
	}
}

func TestStatementErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"missing_semicolon", "a b", diag.SynExpectSemicolon},
		{"var_missing_semicolon", "let x = 1 2", diag.SynExpectSemicolon},
		{"try_without_handler", "try { a }", diag.SynTryWithoutHandler},
		{"switch_clause", "switch (x) { foo }", diag.SynExpectToken},
		{"function_without_name", "function () {}", diag.SynExpectIdentifier},
		{"class_without_name", "class {}", diag.SynExpectIdentifier},
		{"import_statement", "import x from 'y'", diag.SynUnsupported},
		{"export_statement", "export default 1", diag.SynUnsupported},
		{"do_without_while", "do x; y", diag.SynExpectToken},
		{"unclosed_block", "{ a", diag.SynUnexpectedEOF},
		{"if_without_paren", "if a", diag.SynExpectToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseError(t, tt.input)
			if got := syntaxCode(t, err); got != tt.code {
				t.Errorf("parse %q: code %s, want %s (%v)", tt.input, got.ID(), tt.code.ID(), err)
			}
		})
	}
}

func TestTryWithoutHandlerMessage(t *testing.T) {
	err := parseError(t, "try { a }")
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if se.Msg != "catch or finally after try" {
		t.Errorf("message = %q", se.Msg)
	}
	if d := se.Diagnostic(); d.Code != diag.SynTryWithoutHandler || d.Severity != diag.SevError {
		t.Errorf("diagnostic = %+v", d)
	}
}

func TestNextIsLazyAndSticky(t *testing.T) {
	p := Parse("a\nb c\nd")

	if _, err := p.Next(); err != nil {
		t.Fatalf("first statement: %v", err)
	}
	_, err := p.Next()
	if err == nil {
		t.Fatal("expected error on second statement")
	}
	// после ошибки парсер отдаёт её же
	if _, again := p.Next(); again != err {
		t.Errorf("error is not sticky: %v vs %v", again, err)
	}

	empty := Parse("")
	if _, err := empty.Next(); err != io.EOF {
		t.Errorf("empty input: got %v, want io.EOF", err)
	}
	if _, err := empty.Next(); err != io.EOF {
		t.Errorf("repeated Next after EOF: got %v, want io.EOF", err)
	}
}

func TestStatementsIterator(t *testing.T) {
	var count int
	for _, err := range Parse("a; b; c").Statements() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("iteration stopped after %d statements", count)
	}
}

func TestReporterReceivesSyntaxError(t *testing.T) {
	bag := diag.NewBag(0)
	p := New(lexer.Scan("a b"), nil, Options{Reporter: diag.BagReporter{Bag: bag}})
	if _, err := p.All(); err == nil {
		t.Fatal("expected error")
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SynExpectSemicolon {
		t.Errorf("diagnostics: %s", diagnosticsSummary(bag))
	}
}

type recordingTracer struct {
	events []*trace.Event
}

func (r *recordingTracer) Emit(ev *trace.Event) { r.events = append(r.events, ev) }
func (r *recordingTracer) Flush() error         { return nil }
func (r *recordingTracer) Close() error         { return nil }
func (r *recordingTracer) Level() trace.Level   { return trace.LevelDebug }
func (r *recordingTracer) Enabled() bool        { return true }

func TestTracerGetsPointPerStatement(t *testing.T) {
	rec := &recordingTracer{}
	p := New(lexer.Scan("a\nif (b) c"), nil, Options{Tracer: rec, TraceParent: 7})
	if _, err := p.All(); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rec.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(rec.events))
	}
	ev := rec.events[1]
	if ev.Kind != trace.KindPoint || ev.Scope != trace.ScopeNode || ev.ParentID != 7 || ev.Detail != "If" {
		t.Errorf("unexpected event: %+v", ev)
	}
}
