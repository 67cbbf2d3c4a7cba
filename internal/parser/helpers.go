package parser

import (
	"fmt"

	"pancake/internal/diag"
	"pancake/internal/source"
	"pancake/internal/token"
)

func (p *Parser) at(sym string) bool {
	return p.peek().Is(sym)
}

func (p *Parser) atWord(word string) bool {
	return p.peek().IsWord(word)
}

// eat съедает символ, если он следующий.
func (p *Parser) eat(sym string) bool {
	if !p.at(sym) {
		return false
	}
	p.next()
	return true
}

func (p *Parser) eatWord(word string) bool {
	if !p.atWord(word) {
		return false
	}
	p.next()
	return true
}

func (p *Parser) expect(sym string) (token.Token, error) {
	tok := p.peek()
	if !tok.Is(sym) {
		return tok, p.expected(tok, fmt.Sprintf("%q", sym))
	}
	return p.next(), nil
}

func (p *Parser) expectWord(word string) (token.Token, error) {
	tok := p.peek()
	if !tok.IsWord(word) {
		return tok, p.expected(tok, fmt.Sprintf("%q", word))
	}
	return p.next(), nil
}

func (p *Parser) expected(tok token.Token, what string) error {
	if tok.Kind == token.EOF {
		return p.fail(diag.SynUnexpectedEOF, tok, fmt.Sprintf("expected %s, got end of input", what))
	}
	return p.fail(diag.SynExpectToken, tok, fmt.Sprintf("expected %s, got %s", what, describe(tok)))
}

// expectIdent требует имя: идентификатор, не являющийся зарезервированным словом.
func (p *Parser) expectIdent(what string) (token.Token, error) {
	tok := p.peek()
	if tok.Kind != token.Identifier || tok.IsKeyword() {
		if tok.Kind == token.EOF {
			return tok, p.fail(diag.SynUnexpectedEOF, tok, "unexpected end of input")
		}
		return tok, p.fail(diag.SynExpectIdentifier, tok, fmt.Sprintf("expected %s, got %s", what, describe(tok)))
	}
	return p.next(), nil
}

// spanFrom покрывает всё от start до последнего прочитанного токена.
func (p *Parser) spanFrom(start token.Token) source.Span {
	return start.Span.Cover(p.last.Span)
}

// shouldEndStatement: конец ввода, ';', '}' или токен с новой строки.
func (p *Parser) shouldEndStatement() bool {
	tok := p.peek()
	return tok.Kind == token.EOF || tok.Is(";") || tok.Is("}") || tok.IsNewline
}

// endStatement реализует правило завершения оператора без обязательной ';'.
// Закрывающая '}' остаётся для блока.
func (p *Parser) endStatement() error {
	tok := p.peek()
	switch {
	case tok.Kind == token.EOF:
		return p.lexErr()
	case tok.Is(";"):
		p.next()
		return nil
	case tok.Is("}"), tok.IsNewline:
		return nil
	}
	return p.fail(diag.SynExpectSemicolon, tok, "expected ;")
}

// lexErr поднимает ошибку лексера, если поток оборвался из-за неё.
func (p *Parser) lexErr() error {
	if err := p.tokens.Err(); err != nil {
		if p.err == nil {
			p.err = err
		}
		return err
	}
	return nil
}
