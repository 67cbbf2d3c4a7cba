package parser

import (
	"fmt"

	"pancake/internal/ast"
	"pancake/internal/diag"
	"pancake/internal/source"
	"pancake/internal/token"
)

// parseExpression — цикл Пратта: префикс, затем инфиксы, пока их приоритет
// строго больше minPrec.
func (p *Parser) parseExpression(minPrec int) (ast.ExprID, error) {
	tok := p.next()
	pre, ok := p.g.prefixFor(tok)
	if !ok {
		return ast.NoExprID, p.unexpected(tok)
	}
	left, err := pre.parse(p, tok, pre.prec)
	if err != nil {
		return ast.NoExprID, err
	}

	for {
		op := p.peek()
		in, ok := p.g.infixFor(op)
		if !ok || in.prec <= minPrec {
			break
		}
		// x \n ++y: постфикс не переносится через строку
		if in.prec == precPostfix && op.IsNewline {
			break
		}
		p.next()
		rhs := in.prec
		if in.right {
			rhs--
		}
		left, err = in.parse(p, left, op, rhs)
		if err != nil {
			return ast.NoExprID, err
		}
	}
	return left, nil
}

// spanFromExpr покрывает левый операнд и всё прочитанное после него.
func (p *Parser) spanFromExpr(id ast.ExprID) source.Span {
	expr := p.b.Exprs.Get(id)
	if expr == nil {
		return p.last.Span
	}
	return expr.Span.Cover(p.last.Span)
}

func parseIdentifier(p *Parser, tok token.Token, _ int) (ast.ExprID, error) {
	return p.b.Exprs.NewIdent(tok.Span, p.b.Intern(tok.Text)), nil
}

func parseLiteral(p *Parser, tok token.Token, _ int) (ast.ExprID, error) {
	var kind ast.ExprKind
	switch tok.Kind {
	case token.Number:
		kind = ast.ExprNumber
	case token.String:
		kind = ast.ExprString
	case token.Regex:
		kind = ast.ExprRegex
	default:
		return ast.NoExprID, p.unexpected(tok)
	}
	return p.b.Exprs.NewLiteral(kind, tok.Span, p.b.Intern(tok.Text)), nil
}

func parsePrefixOp(p *Parser, tok token.Token, prec int) (ast.ExprID, error) {
	op, ok := ast.LookupUnaryOp(tok.Text)
	if !ok {
		return ast.NoExprID, p.unexpected(tok)
	}
	operand, err := p.parseExpression(prec)
	if err != nil {
		return ast.NoExprID, err
	}
	return p.b.Exprs.NewPrefix(p.spanFrom(tok), op, operand), nil
}

// parseGroup: '(' expr ')' либо '()' перед '=>'.
func parseGroup(p *Parser, tok token.Token, _ int) (ast.ExprID, error) {
	if p.at(")") {
		p.next()
		arrow := p.peek()
		if !arrow.Is("=>") {
			return ast.NoExprID, p.fail(diag.SynExpectExpression, arrow, "expected expression in parentheses")
		}
		p.next()
		return p.finishArrow(tok, nil)
	}
	inner, err := p.parseExpression(precLowest)
	if err != nil {
		return ast.NoExprID, err
	}
	if _, err := p.expect(")"); err != nil {
		return ast.NoExprID, err
	}
	return inner, nil
}

func parseBinary(p *Parser, left ast.ExprID, tok token.Token, prec int) (ast.ExprID, error) {
	op, ok := ast.LookupBinaryOp(tok.Text)
	if !ok {
		return ast.NoExprID, p.unexpected(tok)
	}
	right, err := p.parseExpression(prec)
	if err != nil {
		return ast.NoExprID, err
	}
	return p.b.Exprs.NewBinary(p.spanFromExpr(left), op, left, right), nil
}

func parseAssign(p *Parser, left ast.ExprID, tok token.Token, prec int) (ast.ExprID, error) {
	op, ok := ast.LookupBinaryOp(tok.Text)
	if !ok || !op.IsAssignment() {
		return ast.NoExprID, p.unexpected(tok)
	}
	value, err := p.parseExpression(prec)
	if err != nil {
		return ast.NoExprID, err
	}
	return p.b.Exprs.NewAssign(p.spanFromExpr(left), op, left, value), nil
}

func parseConditional(p *Parser, cond ast.ExprID, _ token.Token, _ int) (ast.ExprID, error) {
	then, err := p.parseExpression(precLowest)
	if err != nil {
		return ast.NoExprID, err
	}
	if _, err := p.expect(":"); err != nil {
		return ast.NoExprID, err
	}
	els, err := p.parseExpression(precAssignment)
	if err != nil {
		return ast.NoExprID, err
	}
	return p.b.Exprs.NewConditional(p.spanFromExpr(cond), cond, then, els), nil
}

func parsePostfix(p *Parser, left ast.ExprID, tok token.Token, _ int) (ast.ExprID, error) {
	op, ok := ast.LookupUnaryOp(tok.Text)
	if !ok {
		return ast.NoExprID, p.unexpected(tok)
	}
	return p.b.Exprs.NewPostfix(p.spanFromExpr(left), op, left), nil
}

func parseCall(p *Parser, callee ast.ExprID, _ token.Token, _ int) (ast.ExprID, error) {
	args, err := p.parseList(")")
	if err != nil {
		return ast.NoExprID, err
	}
	return p.b.Exprs.NewCall(p.spanFromExpr(callee), callee, args), nil
}

func parseMember(p *Parser, object ast.ExprID, _ token.Token, _ int) (ast.ExprID, error) {
	// после '.' допустимо любое слово, включая ключевые: a.default, a.new
	name := p.peek()
	if name.Kind != token.Identifier {
		return ast.NoExprID, p.fail(diag.SynExpectIdentifier, name, fmt.Sprintf("expected property name, got %s", describe(name)))
	}
	p.next()
	return p.b.Exprs.NewMember(p.spanFromExpr(object), object, p.b.Intern(name.Text)), nil
}

func parseComputedMember(p *Parser, object ast.ExprID, _ token.Token, _ int) (ast.ExprID, error) {
	index, err := p.parseExpression(precLowest)
	if err != nil {
		return ast.NoExprID, err
	}
	if _, err := p.expect("]"); err != nil {
		return ast.NoExprID, err
	}
	return p.b.Exprs.NewComputedMember(p.spanFromExpr(object), object, index), nil
}

// parseList разбирает элементы через запятую до closer (аргументы, параметры).
// Открывающая скобка уже съедена, завершающая запятая допустима.
func (p *Parser) parseList(closer string) ([]ast.ExprID, error) {
	var items []ast.ExprID
	for !p.at(closer) {
		item, err := p.parseExpression(precComma)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.eat(",") {
			break
		}
	}
	if _, err := p.expect(closer); err != nil {
		return nil, err
	}
	return items, nil
}

func parseImportExpr(p *Parser, tok token.Token, _ int) (ast.ExprID, error) {
	return ast.NoExprID, p.fail(diag.SynUnsupported, tok, "import expressions are not supported")
}
