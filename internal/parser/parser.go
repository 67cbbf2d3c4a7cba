package parser

import (
	"io"
	"iter"

	"pancake/internal/ast"
	"pancake/internal/bufiter"
	"pancake/internal/diag"
	"pancake/internal/lexer"
	"pancake/internal/source"
	"pancake/internal/token"
	"pancake/internal/trace"
)

// Options configures a Parser. Zero value uses DefaultGrammar and no reporting.
type Options struct {
	Grammar     *Grammar
	Reporter    diag.Reporter
	Tracer      trace.Tracer
	TraceParent uint64 // span of the enclosing pass, 0 for none
}

// Parser pulls top-level statements from a token stream on demand.
type Parser struct {
	tokens *bufiter.Iterator[token.Token]
	b      *ast.Builder
	g      *Grammar
	opts   Options
	err    error
	last   token.Token
}

// Parse parses text lazily: nothing is lexed until the first Next.
func Parse(text string) *Parser {
	return New(lexer.Scan(text), nil, Options{})
}

// New creates a parser over tokens. A nil builder gets a fresh one.
func New(tokens *bufiter.Iterator[token.Token], b *ast.Builder, opts Options) *Parser {
	if b == nil {
		b = ast.NewBuilder(ast.Hints{}, nil)
	}
	g := opts.Grammar
	if g == nil {
		g = DefaultGrammar()
	}
	return &Parser{tokens: tokens, b: b, g: g, opts: opts}
}

// Builder returns the arena owning every node produced so far.
func (p *Parser) Builder() *ast.Builder {
	return p.b
}

// Err returns the error that stopped the parser, if any.
func (p *Parser) Err() error {
	return p.err
}

// Next parses one top-level statement. It returns io.EOF once the input is
// exhausted, and the same error forever after the first failure.
func (p *Parser) Next() (ast.StmtID, error) {
	if p.err != nil {
		return ast.NoStmtID, p.err
	}
	if p.peek().Kind == token.EOF {
		if err := p.tokens.Err(); err != nil {
			p.err = err
			return ast.NoStmtID, err
		}
		return ast.NoStmtID, io.EOF
	}
	id, err := p.parseStatement()
	if err != nil {
		return ast.NoStmtID, err
	}
	if p.opts.Tracer != nil {
		if st := p.b.Stmts.Get(id); st != nil {
			trace.Point(p.opts.Tracer, trace.ScopeNode, "stmt", p.opts.TraceParent, st.Kind.String())
		}
	}
	return id, nil
}

// Statements adapts Next to range-over-func. It stops after the first error.
func (p *Parser) Statements() iter.Seq2[ast.StmtID, error] {
	return func(yield func(ast.StmtID, error) bool) {
		for {
			id, err := p.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(ast.NoStmtID, err)
				return
			}
			if !yield(id, nil) {
				return
			}
		}
	}
}

// All parses the whole program. Statements parsed before an error are returned with it.
func (p *Parser) All() ([]ast.StmtID, error) {
	var out []ast.StmtID
	for id, err := range p.Statements() {
		if err != nil {
			return out, err
		}
		out = append(out, id)
	}
	return out, nil
}

// eof — синтетический конец потока сразу за последним прочитанным токеном.
func (p *Parser) eof() token.Token {
	end := p.last.Span.End
	return token.Token{
		Kind: token.EOF,
		Pos:  p.last.Pos,
		Span: source.Span{File: p.last.Span.File, Start: end, End: end},
	}
}

func (p *Parser) peek() token.Token {
	tok, ok := p.tokens.Peek()
	if !ok {
		return p.eof()
	}
	return tok
}

func (p *Parser) peekNext() token.Token {
	tok, ok := p.tokens.PeekNext()
	if !ok {
		return p.eof()
	}
	return tok
}

func (p *Parser) next() token.Token {
	tok, ok := p.tokens.Next()
	if !ok {
		return p.eof()
	}
	p.last = tok
	return tok
}
