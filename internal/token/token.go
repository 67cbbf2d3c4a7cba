package token

import (
	"pancake/internal/source"
)

// Token represents a single lexeme with its location.
type Token struct {
	Kind      Kind
	Pos       source.Position
	Span      source.Span
	Text      string
	IsNewline bool // первый токен или первый на своей строке
}

// Is reports whether the token is the symbol sym.
func (t Token) Is(sym string) bool {
	return t.Kind == Symbol && t.Text == sym
}

// IsWord reports whether the token is the identifier (or keyword) word.
func (t Token) IsWord(word string) bool {
	return t.Kind == Identifier && t.Text == word
}

// IsTemplate reports whether the token is a template literal part.
func (t Token) IsTemplate() bool {
	return t.Kind == TemplateChunk || t.Kind == TemplateEnd
}

// IsLiteral reports whether the token is a numeric, string, regex, or template literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String, Regex, TemplateChunk, TemplateEnd:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind == Identifier && IsKeyword(t.Text)
}
