package lexer

import (
	"pancake/internal/diag"
	"pancake/internal/source"
	"pancake/internal/token"
)

// scanString читает строку в кавычках ' или ".
// '\' отбрасывается, следующий символ копируется как есть; переводы строк допустимы.
// Token.Text — содержимое без кавычек.
func (lx *Lexer) scanString() (token.Token, error) {
	start := lx.stream.Position()
	quote := lx.stream.Next()
	for {
		r := lx.stream.Next()
		switch r {
		case source.EOF:
			lx.buf.Reset()
			return token.Token{}, lx.fail(diag.LexUnterminatedString, start, "unterminated string literal")
		case '\\':
			esc := lx.stream.Next()
			if esc == source.EOF {
				lx.buf.Reset()
				return token.Token{}, lx.fail(diag.LexUnterminatedString, start, "unterminated string literal")
			}
			lx.buf.PushRune(esc)
		case quote:
			return lx.makeToken(token.String, start, lx.takeText()), nil
		default:
			lx.buf.PushRune(r)
		}
	}
}
