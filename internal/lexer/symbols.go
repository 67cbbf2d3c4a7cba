package lexer

import (
	"fmt"
	"slices"
	"sync"
)

// defaultSymbols — операторы и пунктуация.
var defaultSymbols = []string{
	"(", ")", "[", "]", "{", "}",
	".", ",", ";", "...",
	"-", "+", "++", "--",
	"*", "**", "/", "%",
	"<<", ">>", ">>>",
	"<", "<=", ">", ">=",
	"==", "!=", "===", "!==",
	"&", "^", "|", "!", "~",
	"&&", "||",
	"?", ":",
	"=", "+=", "-=", "*=", "/=", "%=", "**=",
	"<<=", ">>=", ">>>=", "&=", "^=", "|=",
	"=>",
}

// defaultRegexSafe — символы, после которых '/' начинает регулярное выражение.
var defaultRegexSafe = []string{
	"{", "}", "(", "[", ",", ";", "...",
	"-", "+", "++", "--", "*", "**", "/", "%",
	"<<", ">>", ">>>", "<", ">", "<=", ">=",
	"==", "!=", "===", "!==",
	"&", "^", "|", "!", "~", "&&", "||", "?", ":",
	"=", "+=", "-=", "*=", "/=", "%=", "**=",
	"<<=", ">>=", ">>>=", "&=", "^=", "|=", "=>",
}

// SymbolTable is the read-only operator set shared by all lexers.
type SymbolTable struct {
	trie      *Trie[string]
	regexSafe map[string]struct{}
	symbols   []string
}

// DefaultSymbols returns the table for the full operator set.
var DefaultSymbols = sync.OnceValue(func() *SymbolTable {
	return NewSymbolTable(defaultSymbols, defaultRegexSafe)
})

// NewSymbolTable builds a table. The longest-match scan can step back only
// one character, so a key whose nearest shorter match is two or more runes
// back (say "ab" and "abcd" without "abc") is rejected with a panic.
func NewSymbolTable(symbols, regexSafe []string) *SymbolTable {
	t := &SymbolTable{
		trie:      NewTrie[string](),
		regexSafe: make(map[string]struct{}, len(regexSafe)),
		symbols:   slices.Clone(symbols),
	}
	for _, sym := range symbols {
		t.trie.Insert(sym, sym)
	}
	for _, sym := range regexSafe {
		t.regexSafe[sym] = struct{}{}
	}
	slices.Sort(t.symbols)
	t.symbols = slices.Compact(t.symbols)
	if err := checkBackoff(t.trie); err != nil {
		panic(err)
	}
	return t
}

// checkBackoff проверяет, что любой неудачный шаг откатывается одним Back.
func checkBackoff(trie *Trie[string]) error {
	var bad error
	var visit func(n *TrieNode[string], prefix []rune, lastValued int)
	visit = func(n *TrieNode[string], prefix []rune, lastValued int) {
		depth := len(prefix)
		if _, ok := n.Value(); ok {
			lastValued = depth
		} else if lastValued > 0 && depth-lastValued > 1 && bad == nil {
			bad = fmt.Errorf("lexer: symbol prefix %q needs more than one step back", string(prefix))
		}
		for r, child := range n.children {
			visit(child, append(prefix, r), lastValued)
		}
	}
	visit(trie.Root(), nil, 0)
	return bad
}

// Root exposes the trie root for the longest-match walk.
func (t *SymbolTable) Root() *TrieNode[string] {
	return t.trie.Root()
}

// IsStart reports whether some symbol begins with r.
func (t *SymbolTable) IsStart(r rune) bool {
	return t.trie.Root().Child(r) != nil
}

// Lookup is an exact match against the table.
func (t *SymbolTable) Lookup(sym string) bool {
	_, ok := t.trie.Find(sym)
	return ok
}

// AllowsRegexAfter reports whether a regex literal may follow symbol sym.
func (t *SymbolTable) AllowsRegexAfter(sym string) bool {
	_, ok := t.regexSafe[sym]
	return ok
}

// Symbols returns the sorted symbol list.
func (t *SymbolTable) Symbols() []string {
	return slices.Clone(t.symbols)
}
