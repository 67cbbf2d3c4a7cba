package lexer

import (
	"pancake/internal/diag"
	"pancake/internal/token"
)

// Поддержка: 123, .5, 1.25, 1e-3, 1.0E+10, 0x1F, 0o17, 0b101.
// Token.Text — исходная запись числа.
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.stream.Position()

	if lx.stream.Peek() == '0' {
		var digit func(rune) bool
		switch lx.stream.PeekNext() {
		case 'x', 'X':
			digit = isHex
		case 'o', 'O':
			digit = isOct
		case 'b', 'B':
			digit = isBin
		}
		if digit != nil {
			lx.buf.PushRune(lx.stream.Next())
			lx.buf.PushRune(lx.stream.Next())
			if !digit(lx.stream.Peek()) {
				lx.buf.Reset()
				return token.Token{}, lx.fail(diag.LexBadNumber, start, "Invalid or unexpected token")
			}
			for digit(lx.stream.Peek()) {
				lx.buf.PushRune(lx.stream.Next())
			}
			return lx.makeToken(token.Number, start, lx.takeText()), nil
		}
	}

	// целая часть (может отсутствовать у ".5")
	for isDec(lx.stream.Peek()) {
		lx.buf.PushRune(lx.stream.Next())
	}

	// дробная часть; символ после дроби не трогаем
	if lx.stream.Peek() == '.' {
		lx.buf.PushRune(lx.stream.Next())
		for isDec(lx.stream.Peek()) {
			lx.buf.PushRune(lx.stream.Next())
		}
	}

	// экспонента
	if r := lx.stream.Peek(); r == 'e' || r == 'E' {
		lx.buf.PushRune(lx.stream.Next())
		if r := lx.stream.Peek(); r == '+' || r == '-' {
			lx.buf.PushRune(lx.stream.Next())
		}
		if !isDec(lx.stream.Peek()) {
			lx.buf.Reset()
			return token.Token{}, lx.fail(diag.LexBadNumber, start, "Invalid or unexpected token")
		}
		for isDec(lx.stream.Peek()) {
			lx.buf.PushRune(lx.stream.Next())
		}
	}

	return lx.makeToken(token.Number, start, lx.takeText()), nil
}
