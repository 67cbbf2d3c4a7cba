package parser

import (
	"sync"

	"pancake/internal/ast"
	"pancake/internal/token"
)

// tokenKey — ключ таблиц: вид токена и, для символов и слов, его текст.
// Пустой text означает запись "по виду" (литералы, обычные идентификаторы).
type tokenKey struct {
	kind token.Kind
	text string
}

type prefixFn func(p *Parser, tok token.Token, prec int) (ast.ExprID, error)

type infixFn func(p *Parser, left ast.ExprID, tok token.Token, prec int) (ast.ExprID, error)

type stmtFn func(p *Parser) (ast.StmtID, error)

type prefixParselet struct {
	prec  int
	parse prefixFn
}

type infixParselet struct {
	prec  int
	right bool
	parse infixFn
}

// Grammar holds the dispatch tables of the expression and statement parsers.
// It is immutable after construction and safe to share between parsers.
type Grammar struct {
	prefix     map[tokenKey]prefixParselet
	infix      map[tokenKey]infixParselet
	statements map[tokenKey]stmtFn
}

// DefaultGrammar returns the shared grammar for the full language.
var DefaultGrammar = sync.OnceValue(newDefaultGrammar)

func newDefaultGrammar() *Grammar {
	g := &Grammar{
		prefix:     make(map[tokenKey]prefixParselet),
		infix:      make(map[tokenKey]infixParselet),
		statements: make(map[tokenKey]stmtFn),
	}

	// литералы и имена
	g.prefixKind(token.Identifier, precLowest, parseIdentifier)
	g.prefixKind(token.Number, precLowest, parseLiteral)
	g.prefixKind(token.String, precLowest, parseLiteral)
	g.prefixKind(token.Regex, precLowest, parseLiteral)
	g.prefixKind(token.TemplateChunk, precLowest, parseTemplate)
	g.prefixKind(token.TemplateEnd, precLowest, parseTemplate)

	// унарные
	for _, sym := range prefixSymbols {
		g.prefixSymbol(sym, precUnary, parsePrefixOp)
	}
	for _, kw := range prefixKeywords {
		g.prefixWord(kw, precUnary, parsePrefixOp)
	}
	g.prefixSymbol("...", precSpread, parsePrefixOp)
	g.prefixWord("yield", precSpread, parsePrefixOp)

	// составные
	g.prefixSymbol("(", precGroup, parseGroup)
	g.prefixSymbol("[", precComma, parseArray)
	g.prefixSymbol("{", precComma, parseObject)
	g.prefixWord("function", precLowest, parseFunctionExpr)
	g.prefixWord("class", precLowest, parseClassExpr)
	g.prefixWord("async", precSpread, parseAsyncExpr)
	g.prefixWord("import", precLowest, parseImportExpr)

	// инфиксные
	for _, op := range binarySymbols {
		g.infix[tokenKey{token.Symbol, op.sym}] = infixParselet{prec: op.prec, right: op.right, parse: parseBinary}
	}
	for _, kw := range binaryKeywords {
		g.infix[tokenKey{token.Identifier, kw}] = infixParselet{prec: precRelational, parse: parseBinary}
	}
	for _, sym := range assignmentSymbols {
		g.infix[tokenKey{token.Symbol, sym}] = infixParselet{prec: precAssignment, right: true, parse: parseAssign}
	}
	g.infix[tokenKey{token.Symbol, "=>"}] = infixParselet{prec: precAssignment, right: true, parse: parseArrow}
	g.infix[tokenKey{token.Symbol, "?"}] = infixParselet{prec: precConditional, parse: parseConditional}
	g.infix[tokenKey{token.Symbol, "++"}] = infixParselet{prec: precPostfix, parse: parsePostfix}
	g.infix[tokenKey{token.Symbol, "--"}] = infixParselet{prec: precPostfix, parse: parsePostfix}
	g.infix[tokenKey{token.Symbol, "("}] = infixParselet{prec: precCall, parse: parseCall}
	g.infix[tokenKey{token.Symbol, "."}] = infixParselet{prec: precCall, parse: parseMember}
	g.infix[tokenKey{token.Symbol, "["}] = infixParselet{prec: precCall, parse: parseComputedMember}

	// операторы
	for word, fn := range map[string]stmtFn{
		"var":      parseVarDecl,
		"let":      parseVarDecl,
		"const":    parseVarDecl,
		"break":    parseJump,
		"continue": parseJump,
		"return":   parseValueStmt,
		"throw":    parseValueStmt,
		"debugger": parseDebugger,
		"try":      parseTry,
		"if":       parseIf,
		"while":    parseWhile,
		"do":       parseDoWhile,
		"for":      parseFor,
		"with":     parseWith,
		"function": parseFunctionDecl,
		"async":    parseAsyncStmt,
		"class":    parseClassDecl,
		"switch":   parseSwitch,
		"import":   parseModuleStmt,
		"export":   parseModuleStmt,
	} {
		g.statements[tokenKey{token.Identifier, word}] = fn
	}
	g.statements[tokenKey{token.Symbol, "{"}] = parseBlockStmt
	g.statements[tokenKey{token.Symbol, ";"}] = parseEmpty

	return g
}

func (g *Grammar) prefixKind(kind token.Kind, prec int, fn prefixFn) {
	g.prefix[tokenKey{kind: kind}] = prefixParselet{prec: prec, parse: fn}
}

func (g *Grammar) prefixSymbol(sym string, prec int, fn prefixFn) {
	g.prefix[tokenKey{token.Symbol, sym}] = prefixParselet{prec: prec, parse: fn}
}

func (g *Grammar) prefixWord(word string, prec int, fn prefixFn) {
	g.prefix[tokenKey{token.Identifier, word}] = prefixParselet{prec: prec, parse: fn}
}

// prefixFor: сначала точный ключ (символ или ключевое слово), затем запись по виду.
func (g *Grammar) prefixFor(tok token.Token) (prefixParselet, bool) {
	if tok.Kind == token.Symbol || tok.Kind == token.Identifier {
		if pl, ok := g.prefix[tokenKey{tok.Kind, tok.Text}]; ok {
			return pl, true
		}
	}
	// зарезервированное слово без своей записи не может начинать выражение
	if tok.Kind == token.Symbol || (tok.Kind == token.Identifier && tok.IsKeyword()) {
		return prefixParselet{}, false
	}
	pl, ok := g.prefix[tokenKey{kind: tok.Kind}]
	return pl, ok
}

func (g *Grammar) infixFor(tok token.Token) (infixParselet, bool) {
	if tok.Kind != token.Symbol && tok.Kind != token.Identifier {
		return infixParselet{}, false
	}
	pl, ok := g.infix[tokenKey{tok.Kind, tok.Text}]
	return pl, ok
}

func (g *Grammar) statementFor(tok token.Token) (stmtFn, bool) {
	if tok.Kind != token.Symbol && tok.Kind != token.Identifier {
		return nil, false
	}
	fn, ok := g.statements[tokenKey{tok.Kind, tok.Text}]
	return fn, ok
}

// InfixPrecedence returns the binding power of tok as an infix operator,
// or 0 when tok is not one.
func (g *Grammar) InfixPrecedence(tok token.Token) int {
	pl, ok := g.infixFor(tok)
	if !ok {
		return 0
	}
	return pl.prec
}

// HasPrefix reports whether tok can start an expression.
func (g *Grammar) HasPrefix(tok token.Token) bool {
	_, ok := g.prefixFor(tok)
	return ok
}
