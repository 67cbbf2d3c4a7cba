package parser

import (
	"fmt"

	"pancake/internal/diag"
	"pancake/internal/token"
)

// SyntaxError is the first grammar violation; parsing stops there.
type SyntaxError struct {
	Code  diag.Code
	Token token.Token
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Token.Pos, e.Msg, e.Code.ID())
}

// Diagnostic converts the error for rendering.
func (e *SyntaxError) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Token.Span, e.Msg)
}

// fail фиксирует первую ошибку. Если лексер уже сломался в буфере
// предпросмотра, возвращаем его ошибку: синтаксическая — лишь следствие обрыва потока.
func (p *Parser) fail(code diag.Code, tok token.Token, msg string) error {
	if p.err != nil {
		return p.err
	}
	if lexErr := p.tokens.Err(); lexErr != nil {
		p.err = lexErr
		return lexErr
	}
	err := &SyntaxError{Code: code, Token: tok, Msg: msg}
	p.err = err
	if p.opts.Reporter != nil {
		diag.ReportError(p.opts.Reporter, code, tok.Span, msg).Emit()
	}
	return err
}

func (p *Parser) unexpected(tok token.Token) error {
	if tok.Kind == token.EOF {
		return p.fail(diag.SynUnexpectedEOF, tok, "unexpected end of input")
	}
	return p.fail(diag.SynUnexpectedToken, tok, fmt.Sprintf("unexpected %s", describe(tok)))
}

// describe печатает токен для сообщений об ошибках.
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of input"
	case token.Symbol:
		return fmt.Sprintf("%q", tok.Text)
	case token.Identifier:
		if token.IsKeyword(tok.Text) {
			return fmt.Sprintf("keyword %q", tok.Text)
		}
		return fmt.Sprintf("identifier %q", tok.Text)
	case token.TemplateChunk, token.TemplateEnd:
		return "template literal"
	default:
		return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
	}
}
