package parser

import (
	"fmt"

	"pancake/internal/ast"
	"pancake/internal/diag"
	"pancake/internal/source"
	"pancake/internal/token"
)

// parseArrow: левый операнд '=>' — параметры, запятые разворачиваются в список.
func parseArrow(p *Parser, left ast.ExprID, _ token.Token, prec int) (ast.ExprID, error) {
	start := p.last.Span
	if expr := p.b.Exprs.Get(left); expr != nil {
		start = expr.Span
	}
	return p.arrowBody(start, p.flattenParams(left, nil), prec)
}

// finishArrow достраивает "() =>": пустой список параметров.
func (p *Parser) finishArrow(open token.Token, params []ast.ExprID) (ast.ExprID, error) {
	return p.arrowBody(open.Span, params, precSpread)
}

func (p *Parser) arrowBody(start source.Span, params []ast.ExprID, prec int) (ast.ExprID, error) {
	data := ast.ExprArrowData{Params: params, Body: ast.NoExprID, Block: ast.NoStmtID}
	if p.at("{") {
		block, err := p.parseBlock()
		if err != nil {
			return ast.NoExprID, err
		}
		data.Block = block
	} else {
		body, err := p.parseExpression(prec)
		if err != nil {
			return ast.NoExprID, err
		}
		data.Body = body
	}
	return p.b.Exprs.NewArrow(start.Cover(p.last.Span), false, data), nil
}

func (p *Parser) flattenParams(id ast.ExprID, out []ast.ExprID) []ast.ExprID {
	if bin, ok := p.b.Exprs.Binary(id); ok && bin.Op == ast.ExprBinaryComma {
		out = p.flattenParams(bin.Left, out)
		return p.flattenParams(bin.Right, out)
	}
	return append(out, id)
}

// finishFunction разбирает "(params) { body }"; start задаёт начало диапазона.
func (p *Parser) finishFunction(start token.Token, async bool, name source.StringID) (ast.ExprID, error) {
	if _, err := p.expect("("); err != nil {
		return ast.NoExprID, err
	}
	params, err := p.parseList(")")
	if err != nil {
		return ast.NoExprID, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return ast.NoExprID, err
	}
	data := ast.ExprFunctionData{Name: name, Params: params, Body: body}
	return p.b.Exprs.NewFunction(p.spanFrom(start), async, data), nil
}

// optionalName съедает имя функции или класса, если оно есть.
func (p *Parser) optionalName() source.StringID {
	tok := p.peek()
	if tok.Kind != token.Identifier || tok.IsKeyword() {
		return source.NoStringID
	}
	p.next()
	return p.b.Intern(tok.Text)
}

func parseFunctionExpr(p *Parser, tok token.Token, _ int) (ast.ExprID, error) {
	return p.finishFunction(tok, false, p.optionalName())
}

// parseFunction — объявление: имя обязательно.
func (p *Parser) parseFunction(start token.Token, async bool) (ast.ExprID, error) {
	name, err := p.expectIdent("function name")
	if err != nil {
		return ast.NoExprID, err
	}
	return p.finishFunction(start, async, p.b.Intern(name.Text))
}

func parseClassExpr(p *Parser, tok token.Token, _ int) (ast.ExprID, error) {
	return p.finishClass(tok, p.optionalName())
}

func (p *Parser) parseClass(start token.Token) (ast.ExprID, error) {
	name, err := p.expectIdent("class name")
	if err != nil {
		return ast.NoExprID, err
	}
	return p.finishClass(start, p.b.Intern(name.Text))
}

// finishClass: [extends expr] { method(params) { body } ... }
func (p *Parser) finishClass(start token.Token, name source.StringID) (ast.ExprID, error) {
	data := ast.ExprClassData{Name: name, Extends: ast.NoExprID}
	if p.eatWord("extends") {
		base, err := p.parseExpression(precAssignment)
		if err != nil {
			return ast.NoExprID, err
		}
		data.Extends = base
	}
	if _, err := p.expect("{"); err != nil {
		return ast.NoExprID, err
	}
	for !p.at("}") {
		if p.eat(";") {
			continue
		}
		method, err := p.parseClassMethod()
		if err != nil {
			return ast.NoExprID, err
		}
		data.Methods = append(data.Methods, method)
	}
	if _, err := p.expect("}"); err != nil {
		return ast.NoExprID, err
	}
	return p.b.Exprs.NewClass(p.spanFrom(start), data), nil
}

func (p *Parser) parseClassMethod() (ast.ClassMethod, error) {
	tok := p.peek()
	if tok.Is("[") {
		return ast.ClassMethod{}, p.fail(diag.SynUnsupported, tok, "computed class members are not supported")
	}
	if tok.Kind != token.Identifier {
		if tok.Kind == token.EOF {
			return ast.ClassMethod{}, p.unexpected(tok)
		}
		return ast.ClassMethod{}, p.fail(diag.SynExpectIdentifier, tok, fmt.Sprintf("expected method name, got %s", describe(tok)))
	}
	switch tok.Text {
	case "get", "set", "async", "static":
		if !p.peekNext().Is("(") {
			return ast.ClassMethod{}, p.fail(diag.SynUnsupported, tok, fmt.Sprintf("%s class members are not supported", tok.Text))
		}
	}
	p.next()
	name := p.b.Intern(tok.Text)
	fn, err := p.finishFunction(tok, false, name)
	if err != nil {
		return ast.ClassMethod{}, err
	}
	return ast.ClassMethod{Name: name, Func: fn, Span: p.spanFrom(tok)}, nil
}

// parseAsyncExpr: async допустим только перед функцией или стрелкой.
// Без продолжения на той же строке это обычный идентификатор.
func parseAsyncExpr(p *Parser, tok token.Token, prec int) (ast.ExprID, error) {
	next := p.peek()
	startsFn := next.IsWord("function") || next.Is("(") ||
		(next.Kind == token.Identifier && !next.IsKeyword())
	if !startsFn || next.IsNewline {
		return parseIdentifier(p, tok, prec)
	}
	expr, err := p.parseExpression(prec)
	if err != nil {
		return ast.NoExprID, err
	}
	if !p.b.Exprs.MakeAsync(expr) {
		return ast.NoExprID, p.fail(diag.SynAsyncNotFunction, tok, "async must be followed by a function or an arrow function")
	}
	if e := p.b.Exprs.Get(expr); e != nil {
		e.Span = tok.Span.Cover(e.Span)
	}
	return expr, nil
}
