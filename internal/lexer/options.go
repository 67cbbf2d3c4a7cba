package lexer

import (
	"pancake/internal/diag"
)

type Options struct {
	// Reporter получает фатальную ошибку в виде диагностики; может быть nil.
	Reporter diag.Reporter
	// Symbols — таблица операторов; nil означает DefaultSymbols().
	Symbols *SymbolTable
}

func (o Options) symbols() *SymbolTable {
	if o.Symbols != nil {
		return o.Symbols
	}
	return DefaultSymbols()
}
