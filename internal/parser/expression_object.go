package parser

import (
	"fmt"

	"pancake/internal/ast"
	"pancake/internal/diag"
	"pancake/internal/source"
	"pancake/internal/token"
)

// parseArray: '[' уже съеден. Пустое место между запятыми — дырка (NoExprID),
// завершающая запятая ничего не добавляет.
func parseArray(p *Parser, tok token.Token, prec int) (ast.ExprID, error) {
	var elems []ast.ExprID
	for {
		if p.eat("]") {
			break
		}
		if p.eat(",") {
			elems = append(elems, ast.NoExprID)
			continue
		}
		elem, err := p.parseExpression(prec)
		if err != nil {
			return ast.NoExprID, err
		}
		elems = append(elems, elem)
		if p.eat(",") {
			continue
		}
		if _, err := p.expect("]"); err != nil {
			return ast.NoExprID, err
		}
		break
	}
	return p.b.Exprs.NewArray(p.spanFrom(tok), elems), nil
}

// parseObject: '{' уже съеден.
func parseObject(p *Parser, tok token.Token, prec int) (ast.ExprID, error) {
	var props []ast.ObjectProp
	for !p.at("}") {
		prop, err := p.parseProperty(prec)
		if err != nil {
			return ast.NoExprID, err
		}
		props = append(props, prop)
		if !p.eat(",") {
			break
		}
	}
	if _, err := p.expect("}"); err != nil {
		return ast.NoExprID, err
	}
	return p.b.Exprs.NewObject(p.spanFrom(tok), props), nil
}

// propModifier: get/set/async работают как модификатор, только если за ними
// идёт ключ, а не ':', '(', ',' или '}'.
func (p *Parser) propModifier() string {
	tok := p.peek()
	if tok.Kind != token.Identifier {
		return ""
	}
	switch tok.Text {
	case "get", "set", "async":
	default:
		return ""
	}
	switch after := p.peekNext(); {
	case after.Is(":"), after.Is("("), after.Is(","), after.Is("}"):
		return ""
	}
	p.next()
	return tok.Text
}

func (p *Parser) parseProperty(prec int) (ast.ObjectProp, error) {
	prop := ast.ObjectProp{Kind: ast.PropInit, Value: ast.NoExprID}
	modifier := p.propModifier()
	prop.Async = modifier == "async"

	keyTok := p.next()
	switch keyTok.Kind {
	case token.Identifier:
		prop.Key = p.b.Exprs.NewIdent(keyTok.Span, p.b.Intern(keyTok.Text))
	case token.String, token.Number:
		key, err := parseLiteral(p, keyTok, prec)
		if err != nil {
			return prop, err
		}
		prop.Key = key
	case token.Symbol:
		if !keyTok.Is("[") {
			return prop, p.unexpected(keyTok)
		}
		key, err := p.parseExpression(precLowest)
		if err != nil {
			return prop, err
		}
		if _, err := p.expect("]"); err != nil {
			return prop, err
		}
		prop.Key = key
		prop.Computed = true
	default:
		return prop, p.unexpected(keyTok)
	}

	switch {
	case p.at("("):
		fn, err := p.finishFunction(keyTok, prop.Async, source.NoStringID)
		if err != nil {
			return prop, err
		}
		prop.Value = fn
		switch modifier {
		case "get":
			prop.Kind = ast.PropGetter
		case "set":
			prop.Kind = ast.PropSetter
		default:
			prop.Kind = ast.PropMethod
		}
		return prop, nil
	case modifier != "":
		return prop, p.expected(p.peek(), fmt.Sprintf("%q after %s", "(", modifier))
	case p.eat(":"):
		value, err := p.parseExpression(prec)
		if err != nil {
			return prop, err
		}
		prop.Value = value
		return prop, nil
	}

	if keyTok.Kind != token.Identifier || prop.Computed {
		return prop, p.fail(diag.SynExpectToken, p.peek(), fmt.Sprintf("expected %q after property key", ":"))
	}
	prop.Kind = ast.PropShorthand
	return prop, nil
}
