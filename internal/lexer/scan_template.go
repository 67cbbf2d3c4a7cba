package lexer

import (
	"pancake/internal/diag"
	"pancake/internal/source"
	"pancake/internal/token"
)

// scanTemplateChunk читает сырой текст шаблона до "${" или закрывающей '`'.
// Токен начинается с открывающего разделителя ('`' или '}' интерполяции).
// '\' сохраняется вместе со следующим символом.
func (lx *Lexer) scanTemplateChunk() (token.Token, error) {
	m := lx.top()
	start, tmplStart := m.chunk, m.start
	for {
		r := lx.stream.Next()
		switch {
		case r == source.EOF:
			lx.buf.Reset()
			return token.Token{}, lx.fail(diag.LexUnterminatedTemplate, tmplStart, "unterminated template literal")
		case r == '\\':
			lx.buf.PushRune(r)
			esc := lx.stream.Next()
			if esc == source.EOF {
				lx.buf.Reset()
				return token.Token{}, lx.fail(diag.LexUnterminatedTemplate, tmplStart, "unterminated template literal")
			}
			lx.buf.PushRune(esc)
		case r == '`':
			tok := lx.makeToken(token.TemplateEnd, start, lx.takeText())
			lx.modes = lx.modes[:len(lx.modes)-1]
			return tok, nil
		case r == '$' && lx.stream.Peek() == '{':
			lx.stream.Next()
			tok := lx.makeToken(token.TemplateChunk, start, lx.takeText())
			lx.modes = append(lx.modes, lexMode{nested: true})
			return tok, nil
		default:
			lx.buf.PushRune(r)
		}
	}
}
