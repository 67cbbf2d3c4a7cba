package parser

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"pancake/internal/ast"
	"pancake/internal/diag"
	"pancake/internal/lexer"
	"pancake/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// parseSource разбирает input целиком и требует отсутствия ошибок.
func parseSource(t *testing.T, input string) (*ast.Builder, []ast.StmtID) {
	t.Helper()
	bag := diag.NewBag(0)
	p := New(lexer.Scan(input), nil, Options{Reporter: diag.BagReporter{Bag: bag}})
	stmts, err := p.All()
	if err != nil {
		t.Fatalf("parse %q: %v (diagnostics: %s)", input, err, diagnosticsSummary(bag))
	}
	return p.Builder(), stmts
}

// parseError разбирает input и возвращает первую ошибку; её отсутствие — провал теста.
func parseError(t *testing.T, input string) error {
	t.Helper()
	_, err := Parse(input).All()
	if err == nil {
		t.Fatalf("parse %q: expected an error", input)
	}
	return err
}

func syntaxCode(t *testing.T, err error) diag.Code {
	t.Helper()
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
	}
	return se.Code
}

// parseExpr разбирает единственный оператор-выражение и печатает его в виде S-выражения.
func parseExpr(t *testing.T, input string) string {
	t.Helper()
	b, stmts := parseSource(t, input)
	if len(stmts) != 1 {
		t.Fatalf("parse %q: expected 1 statement, got %d", input, len(stmts))
	}
	data, ok := b.Stmts.Expr(stmts[0])
	if !ok {
		t.Fatalf("parse %q: expected expression statement, got %s", input, b.Stmts.Get(stmts[0]).Kind)
	}
	return render(b, data.Expr)
}

// render печатает выражение компактно, чтобы проверять форму дерева строкой.
func render(b *ast.Builder, id ast.ExprID) string {
	if id == ast.NoExprID {
		return "_"
	}
	expr := b.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprIdent:
		data, _ := b.Exprs.Ident(id)
		return b.Name(data.Name)
	case ast.ExprNumber, ast.ExprRegex:
		data, _ := b.Exprs.Literal(id)
		return b.Name(data.Value)
	case ast.ExprString:
		data, _ := b.Exprs.Literal(id)
		return fmt.Sprintf("%q", b.Name(data.Value))
	case ast.ExprBinary:
		data, _ := b.Exprs.Binary(id)
		return fmt.Sprintf("(%s %s %s)", data.Op, render(b, data.Left), render(b, data.Right))
	case ast.ExprAssign:
		data, _ := b.Exprs.Assign(id)
		return fmt.Sprintf("(%s %s %s)", data.Op, render(b, data.Target), render(b, data.Value))
	case ast.ExprPrefix:
		data, _ := b.Exprs.Unary(id)
		return fmt.Sprintf("(%s %s)", data.Op, render(b, data.Operand))
	case ast.ExprPostfix:
		data, _ := b.Exprs.Unary(id)
		return fmt.Sprintf("(post%s %s)", data.Op, render(b, data.Operand))
	case ast.ExprConditional:
		data, _ := b.Exprs.Conditional(id)
		return fmt.Sprintf("(? %s %s %s)", render(b, data.Cond), render(b, data.Then), render(b, data.Else))
	case ast.ExprCall:
		data, _ := b.Exprs.Call(id)
		parts := []string{"call", render(b, data.Callee)}
		for _, arg := range data.Args {
			parts = append(parts, render(b, arg))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ast.ExprMember:
		data, _ := b.Exprs.Member(id)
		return fmt.Sprintf("(. %s %s)", render(b, data.Object), b.Name(data.Property))
	case ast.ExprComputedMember:
		data, _ := b.Exprs.ComputedMember(id)
		return fmt.Sprintf("([] %s %s)", render(b, data.Object), render(b, data.Index))
	case ast.ExprArrowFunction, ast.ExprAsyncArrowFunction:
		data, _ := b.Exprs.Arrow(id)
		params := make([]string, len(data.Params))
		for i, param := range data.Params {
			params[i] = render(b, param)
		}
		body := "{}"
		if data.Block == ast.NoStmtID {
			body = render(b, data.Body)
		}
		head := "=>"
		if expr.Kind == ast.ExprAsyncArrowFunction {
			head = "async=>"
		}
		return fmt.Sprintf("(%s (%s) %s)", head, strings.Join(params, " "), body)
	case ast.ExprTemplateLiteral:
		data, _ := b.Exprs.Template(id)
		parts := []string{"`"}
		for i, text := range data.Texts {
			parts = append(parts, fmt.Sprintf("%q", b.Name(text)))
			if i < len(data.Exprs) {
				parts = append(parts, render(b, data.Exprs[i]))
			}
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ast.ExprArray:
		data, _ := b.Exprs.Array(id)
		elems := make([]string, len(data.Elems))
		for i, elem := range data.Elems {
			elems[i] = render(b, elem)
		}
		return "[" + strings.Join(elems, " ") + "]"
	case ast.ExprObject:
		data, _ := b.Exprs.Object(id)
		props := make([]string, len(data.Props))
		for i, prop := range data.Props {
			key := render(b, prop.Key)
			if prop.Computed {
				key = "[" + key + "]"
			}
			switch prop.Kind {
			case ast.PropInit:
				props[i] = key + ":" + render(b, prop.Value)
			case ast.PropShorthand:
				props[i] = key
			case ast.PropMethod:
				props[i] = key + "()"
			default:
				props[i] = prop.Kind.String() + " " + key
			}
			if prop.Async {
				props[i] = "async " + props[i]
			}
		}
		return "{" + strings.Join(props, " ") + "}"
	case ast.ExprFunction, ast.ExprAsyncFunction:
		data, _ := b.Exprs.Function(id)
		return fmt.Sprintf("(%s %s/%d)", strings.ToLower(expr.Kind.String()), nameOr(b, data.Name), len(data.Params))
	case ast.ExprClass:
		data, _ := b.Exprs.Class(id)
		names := make([]string, len(data.Methods))
		for i, m := range data.Methods {
			names[i] = b.Name(m.Name)
		}
		return fmt.Sprintf("(class %s %s [%s])", nameOr(b, data.Name), render(b, data.Extends), strings.Join(names, " "))
	}
	return "<" + expr.Kind.String() + ">"
}

// nameOr печатает "-" вместо отсутствующего имени.
func nameOr(b *ast.Builder, id source.StringID) string {
	if id == source.NoStringID {
		return "-"
	}
	return b.Name(id)
}

// stmtKinds возвращает виды операторов по порядку.
func stmtKinds(b *ast.Builder, stmts []ast.StmtID) []string {
	out := make([]string, len(stmts))
	for i, id := range stmts {
		out[i] = b.Stmts.Get(id).Kind.String()
	}
	return out
}
