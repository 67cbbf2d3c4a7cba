package lexer

import (
	"pancake/internal/diag"
	"pancake/internal/source"
	"pancake/internal/token"
)

// scanRegex читает /body/flags. Внутри [...] '/' не завершает литерал,
// '\' экранирует один символ, перевод строки — ошибка.
// Token.Text включает слэши и флаги.
func (lx *Lexer) scanRegex() (token.Token, error) {
	start := lx.stream.Position()
	lx.buf.PushRune(lx.stream.Next())

	inClass := false
	for {
		r := lx.stream.Next()
		if r == source.EOF || r == '\n' {
			lx.buf.Reset()
			return token.Token{}, lx.fail(diag.LexUnterminatedRegex, start, "unterminated regular expression")
		}
		lx.buf.PushRune(r)
		switch {
		case r == '\\':
			esc := lx.stream.Next()
			if esc == source.EOF || esc == '\n' {
				lx.buf.Reset()
				return token.Token{}, lx.fail(diag.LexUnterminatedRegex, start, "unterminated regular expression")
			}
			lx.buf.PushRune(esc)
		case r == '[':
			inClass = true
		case r == ']':
			inClass = false
		case r == '/' && !inClass:
			for isASCIILetter(lx.stream.Peek()) {
				lx.buf.PushRune(lx.stream.Next())
			}
			return lx.makeToken(token.Regex, start, lx.takeText()), nil
		}
	}
}
