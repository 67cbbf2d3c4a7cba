package parser

import (
	"pancake/internal/ast"
	"pancake/internal/source"
	"pancake/internal/token"
)

// parseStatement: метка, оператор по ключевому слову или выражение.
func (p *Parser) parseStatement() (ast.StmtID, error) {
	tok := p.peek()
	if tok.Kind == token.Identifier && !tok.IsKeyword() && p.peekNext().Is(":") {
		return p.parseLabel()
	}
	if fn, ok := p.g.statementFor(tok); ok {
		return fn(p)
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseExpressionStatement() (ast.StmtID, error) {
	start := p.peek()
	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return ast.NoStmtID, err
	}
	if err := p.endStatement(); err != nil {
		return ast.NoStmtID, err
	}
	return p.b.Stmts.NewExpr(p.spanFrom(start), expr), nil
}

func (p *Parser) parseLabel() (ast.StmtID, error) {
	name := p.next()
	p.next() // ':'
	body, err := p.parseStatement()
	if err != nil {
		return ast.NoStmtID, err
	}
	return p.b.Stmts.NewLabel(p.spanFrom(name), p.b.Intern(name.Text), body), nil
}

// parseBlock: '{' statements '}'.
func (p *Parser) parseBlock() (ast.StmtID, error) {
	open, err := p.expect("{")
	if err != nil {
		return ast.NoStmtID, err
	}
	var stmts []ast.StmtID
	for !p.at("}") && p.peek().Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return ast.NoStmtID, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect("}"); err != nil {
		return ast.NoStmtID, err
	}
	return p.b.Stmts.NewBlock(p.spanFrom(open), stmts), nil
}

func parseBlockStmt(p *Parser) (ast.StmtID, error) {
	return p.parseBlock()
}

func parseEmpty(p *Parser) (ast.StmtID, error) {
	tok := p.next()
	return p.b.Stmts.NewBare(ast.StmtEmpty, tok.Span), nil
}

func parseDebugger(p *Parser) (ast.StmtID, error) {
	kw := p.next()
	if err := p.endStatement(); err != nil {
		return ast.NoStmtID, err
	}
	return p.b.Stmts.NewBare(ast.StmtDebugger, p.spanFrom(kw)), nil
}

// parseJump: break/continue с необязательной меткой на той же строке.
func parseJump(p *Parser) (ast.StmtID, error) {
	kw := p.next()
	kind := ast.StmtBreak
	if kw.Text == "continue" {
		kind = ast.StmtContinue
	}
	label := source.NoStringID
	if tok := p.peek(); tok.Kind == token.Identifier && !tok.IsNewline && !tok.IsKeyword() {
		p.next()
		label = p.b.Intern(tok.Text)
	}
	if err := p.endStatement(); err != nil {
		return ast.NoStmtID, err
	}
	return p.b.Stmts.NewJump(kind, p.spanFrom(kw), label), nil
}

// parseValueStmt: return/throw; значение отсутствует, если оператор тут же кончается.
func parseValueStmt(p *Parser) (ast.StmtID, error) {
	kw := p.next()
	kind := ast.StmtReturn
	if kw.Text == "throw" {
		kind = ast.StmtThrow
	}
	value := ast.NoExprID
	if !p.shouldEndStatement() {
		expr, err := p.parseExpression(precLowest)
		if err != nil {
			return ast.NoStmtID, err
		}
		value = expr
	}
	if err := p.endStatement(); err != nil {
		return ast.NoStmtID, err
	}
	return p.b.Stmts.NewValue(kind, p.spanFrom(kw), value), nil
}
