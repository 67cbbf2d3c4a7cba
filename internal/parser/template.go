package parser

import (
	"pancake/internal/ast"
	"pancake/internal/source"
	"pancake/internal/token"
)

// parseTemplate собирает шаблонную строку: текст, выражение, текст, ..., текст.
// Текст куска уже без разделителей; TemplateChunk означает, что дальше идёт "${".
func parseTemplate(p *Parser, tok token.Token, _ int) (ast.ExprID, error) {
	texts := []source.StringID{p.b.Intern(tok.Text)}
	var exprs []ast.ExprID

	cur := tok
	for cur.Kind == token.TemplateChunk {
		expr, err := p.parseExpression(precLowest)
		if err != nil {
			return ast.NoExprID, err
		}
		exprs = append(exprs, expr)

		cur = p.next()
		if !cur.IsTemplate() {
			return ast.NoExprID, p.expected(cur, "template continuation")
		}
		texts = append(texts, p.b.Intern(cur.Text))
	}
	return p.b.Exprs.NewTemplate(p.spanFrom(tok), texts, exprs), nil
}
