package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero Kind; no well-formed token carries it.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Identifier covers names and keywords.
	Identifier
	// Number is a numeric literal in any radix.
	Number
	// String is a single- or double-quoted literal.
	String
	// Regex is a regular expression literal including its flags.
	Regex
	// Symbol is an operator or punctuator.
	Symbol
	// TemplateChunk is the literal text before a ${ interpolation.
	TemplateChunk
	// TemplateEnd is the literal text before the closing backtick.
	TemplateEnd
)

var kindNames = [...]string{
	Invalid:       "invalid",
	EOF:           "eof",
	Identifier:    "identifier",
	Number:        "number",
	String:        "string",
	Regex:         "regex",
	Symbol:        "symbol",
	TemplateChunk: "templateliteral-chunk",
	TemplateEnd:   "templateliteral-end",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return Invalid, false
}
