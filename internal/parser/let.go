package parser

import (
	"pancake/internal/ast"
)

// parseVarDecl: var|let|const target [= init] {, target [= init]}.
// Цель разбирается выше присваивания, поэтому '=' достаётся объявлению;
// инициализатор останавливается на запятой-разделителе.
func parseVarDecl(p *Parser) (ast.StmtID, error) {
	kw := p.next()
	kind := ast.VarVar
	switch kw.Text {
	case "let":
		kind = ast.VarLet
	case "const":
		kind = ast.VarConst
	}

	var bindings []ast.VarBinding
	for {
		target, err := p.parseExpression(precBinding)
		if err != nil {
			return ast.NoStmtID, err
		}
		binding := ast.VarBinding{Target: target, Init: ast.NoExprID}
		if p.eat("=") {
			init, err := p.parseExpression(precComma)
			if err != nil {
				return ast.NoStmtID, err
			}
			binding.Init = init
		}
		bindings = append(bindings, binding)
		if !p.eat(",") {
			break
		}
	}

	if err := p.endStatement(); err != nil {
		return ast.NoStmtID, err
	}
	return p.b.Stmts.NewVarDecl(p.spanFrom(kw), kind, bindings), nil
}
