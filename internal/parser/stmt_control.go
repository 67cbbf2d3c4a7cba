package parser

import (
	"fmt"

	"pancake/internal/ast"
	"pancake/internal/diag"
	"pancake/internal/token"
)

// parseParenExpr: '(' expr ')'.
func (p *Parser) parseParenExpr() (ast.ExprID, error) {
	if _, err := p.expect("("); err != nil {
		return ast.NoExprID, err
	}
	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return ast.NoExprID, err
	}
	if _, err := p.expect(")"); err != nil {
		return ast.NoExprID, err
	}
	return expr, nil
}

func parseTry(p *Parser) (ast.StmtID, error) {
	kw := p.next()
	block, err := p.parseBlock()
	if err != nil {
		return ast.NoStmtID, err
	}
	data := ast.StmtTryData{Block: block, Catch: ast.NoStmtID, Finally: ast.NoStmtID}
	if p.eatWord("catch") {
		if p.eat("(") {
			params, err := p.parseList(")")
			if err != nil {
				return ast.NoStmtID, err
			}
			data.Params = params
		}
		if data.Catch, err = p.parseBlock(); err != nil {
			return ast.NoStmtID, err
		}
	}
	if p.eatWord("finally") {
		if data.Finally, err = p.parseBlock(); err != nil {
			return ast.NoStmtID, err
		}
	}
	if data.Catch == ast.NoStmtID && data.Finally == ast.NoStmtID {
		return ast.NoStmtID, p.fail(diag.SynTryWithoutHandler, p.peek(), "catch or finally after try")
	}
	return p.b.Stmts.NewTry(p.spanFrom(kw), data), nil
}

func parseIf(p *Parser) (ast.StmtID, error) {
	kw := p.next()
	cond, err := p.parseParenExpr()
	if err != nil {
		return ast.NoStmtID, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return ast.NoStmtID, err
	}
	els := ast.NoStmtID
	if p.eatWord("else") {
		if els, err = p.parseStatement(); err != nil {
			return ast.NoStmtID, err
		}
	}
	return p.b.Stmts.NewIf(p.spanFrom(kw), cond, then, els), nil
}

func parseWhile(p *Parser) (ast.StmtID, error) {
	kw := p.next()
	cond, err := p.parseParenExpr()
	if err != nil {
		return ast.NoStmtID, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return ast.NoStmtID, err
	}
	return p.b.Stmts.NewLoop(ast.StmtWhile, p.spanFrom(kw), cond, body), nil
}

// parseDoWhile: do stmt while (cond) [;]
func parseDoWhile(p *Parser) (ast.StmtID, error) {
	kw := p.next()
	body, err := p.parseStatement()
	if err != nil {
		return ast.NoStmtID, err
	}
	if _, err := p.expectWord("while"); err != nil {
		return ast.NoStmtID, err
	}
	cond, err := p.parseParenExpr()
	if err != nil {
		return ast.NoStmtID, err
	}
	p.eat(";")
	return p.b.Stmts.NewLoop(ast.StmtDoWhile, p.spanFrom(kw), cond, body), nil
}

// parseFor: for (init; cond; post) body. Init — полноценный оператор,
// он сам съедает свою ';'.
func parseFor(p *Parser) (ast.StmtID, error) {
	kw := p.next()
	if _, err := p.expect("("); err != nil {
		return ast.NoStmtID, err
	}
	data := ast.StmtForData{Cond: ast.NoExprID, Post: ast.NoExprID}
	var err error
	if data.Init, err = p.parseStatement(); err != nil {
		return ast.NoStmtID, err
	}
	if !p.at(";") {
		if data.Cond, err = p.parseExpression(precLowest); err != nil {
			return ast.NoStmtID, err
		}
	}
	if _, err := p.expect(";"); err != nil {
		return ast.NoStmtID, err
	}
	if !p.at(")") {
		if data.Post, err = p.parseExpression(precLowest); err != nil {
			return ast.NoStmtID, err
		}
	}
	if _, err := p.expect(")"); err != nil {
		return ast.NoStmtID, err
	}
	if data.Body, err = p.parseStatement(); err != nil {
		return ast.NoStmtID, err
	}
	return p.b.Stmts.NewFor(p.spanFrom(kw), data), nil
}

func parseWith(p *Parser) (ast.StmtID, error) {
	kw := p.next()
	object, err := p.parseParenExpr()
	if err != nil {
		return ast.NoStmtID, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return ast.NoStmtID, err
	}
	return p.b.Stmts.NewWith(p.spanFrom(kw), object, body), nil
}

func parseFunctionDecl(p *Parser) (ast.StmtID, error) {
	kw := p.next()
	fn, err := p.parseFunction(kw, false)
	if err != nil {
		return ast.NoStmtID, err
	}
	return p.b.Stmts.NewDecl(ast.StmtFunction, p.spanFrom(kw), fn), nil
}

// parseAsyncStmt: "async function name" — объявление, остальное — выражение.
func parseAsyncStmt(p *Parser) (ast.StmtID, error) {
	if fn := p.peekNext(); !fn.IsWord("function") || fn.IsNewline {
		return p.parseExpressionStatement()
	}
	kw := p.next()
	p.next() // function
	fn, err := p.parseFunction(kw, true)
	if err != nil {
		return ast.NoStmtID, err
	}
	return p.b.Stmts.NewDecl(ast.StmtAsyncFunction, p.spanFrom(kw), fn), nil
}

func parseClassDecl(p *Parser) (ast.StmtID, error) {
	kw := p.next()
	class, err := p.parseClass(kw)
	if err != nil {
		return ast.NoStmtID, err
	}
	return p.b.Stmts.NewDecl(ast.StmtClass, p.spanFrom(kw), class), nil
}

// parseSwitch: тело клаузы идёт до следующего case/default или '}'.
func parseSwitch(p *Parser) (ast.StmtID, error) {
	kw := p.next()
	disc, err := p.parseParenExpr()
	if err != nil {
		return ast.NoStmtID, err
	}
	if _, err := p.expect("{"); err != nil {
		return ast.NoStmtID, err
	}
	var cases []ast.SwitchCase
	for !p.at("}") {
		head := p.peek()
		clause := ast.SwitchCase{Test: ast.NoExprID}
		switch {
		case p.eatWord("case"):
			if clause.Test, err = p.parseExpression(precLowest); err != nil {
				return ast.NoStmtID, err
			}
		case p.eatWord("default"):
		default:
			if head.Kind == token.EOF {
				return ast.NoStmtID, p.unexpected(head)
			}
			return ast.NoStmtID, p.fail(diag.SynExpectToken, head, "expected case or default")
		}
		if _, err := p.expect(":"); err != nil {
			return ast.NoStmtID, err
		}
		for !p.at("}") && !p.atWord("case") && !p.atWord("default") && p.peek().Kind != token.EOF {
			stmt, err := p.parseStatement()
			if err != nil {
				return ast.NoStmtID, err
			}
			clause.Body = append(clause.Body, stmt)
		}
		clause.Span = p.spanFrom(head)
		cases = append(cases, clause)
	}
	p.next() // '}'
	return p.b.Stmts.NewSwitch(p.spanFrom(kw), disc, cases), nil
}

// parseModuleStmt: import/export не поддерживаются.
func parseModuleStmt(p *Parser) (ast.StmtID, error) {
	kw := p.peek()
	return ast.NoStmtID, p.fail(diag.SynUnsupported, kw, fmt.Sprintf("%s statements are not supported", kw.Text))
}
