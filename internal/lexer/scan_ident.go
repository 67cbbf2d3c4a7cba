package lexer

import (
	"pancake/internal/token"
)

// scanIdent сканирует идентификатор или ключевое слово; ключевые слова
// остаются Identifier, парсер различает их по тексту.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.stream.Position()
	lx.buf.PushRune(lx.stream.Next())
	for isIdentContinue(lx.stream.Peek()) {
		lx.buf.PushRune(lx.stream.Next())
	}
	return lx.makeToken(token.Identifier, start, lx.takeText())
}
