package lexer

import "unicode"

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDec(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHex(r rune) bool {
	return isDec(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isOct(r rune) bool {
	return r >= '0' && r <= '7'
}

func isBin(r rune) bool {
	return r == '0' || r == '1'
}

// isIdentStart: буквы, '_', '$' и несколько специальных кодпоинтов.
func isIdentStart(r rune) bool {
	switch {
	case isASCIILetter(r), r == '_', r == '$':
		return true
	case r < 0x80:
		return false
	case r == '\u203f', r == '\u0336', r == '\u200c', r == '\u200d':
		return true
	case r >= '\u2160' && r <= '\u2188':
		return true
	}
	return unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isDec(r)
}

func isSpace(r rune) bool {
	return r >= 0 && unicode.IsSpace(r)
}

// closerOf возвращает закрывающую скобку для открывающей.
func closerOf(open string) string {
	switch open {
	case "(":
		return ")"
	case "[":
		return "]"
	case "{":
		return "}"
	}
	return ""
}
