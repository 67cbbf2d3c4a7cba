package token

var keywords = map[string]struct{}{
	"async":      {},
	"await":      {},
	"break":      {},
	"case":       {},
	"catch":      {},
	"class":      {},
	"const":      {},
	"continue":   {},
	"debugger":   {},
	"default":    {},
	"delete":     {},
	"do":         {},
	"else":       {},
	"export":     {},
	"extends":    {},
	"finally":    {},
	"for":        {},
	"function":   {},
	"if":         {},
	"import":     {},
	"in":         {},
	"instanceof": {},
	"let":        {},
	"new":        {},
	"return":     {},
	"switch":     {},
	"throw":      {},
	"try":        {},
	"typeof":     {},
	"var":        {},
	"void":       {},
	"while":      {},
	"with":       {},
	"yield":      {},
}

// IsKeyword reports whether word is reserved by the grammar.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}
