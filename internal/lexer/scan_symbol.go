package lexer

import (
	"fmt"

	"pancake/internal/diag"
	"pancake/internal/token"
)

// scanSymbol — жадный поиск самого длинного оператора по trie.
// Идём по Peek, пока есть ребёнок; если последний узел без значения,
// откатываемся на один символ (см. NewSymbolTable).
// Второй результат true, если '}' закрыла интерполяцию шаблона.
func (lx *Lexer) scanSymbol() (token.Token, bool, error) {
	start := lx.stream.Position()
	node := lx.symbols.Root()
	depth, matched := 0, 0
	var value string
	for {
		child := node.Child(lx.stream.Peek())
		if child == nil {
			break
		}
		lx.stream.Next()
		node = child
		depth++
		if v, ok := node.Value(); ok {
			value, matched = v, depth
		}
	}
	if matched == 0 {
		return token.Token{}, false, lx.fail(diag.LexUnexpectedChar, start, "unexpected character")
	}
	if depth > matched {
		lx.stream.Back()
	}

	tok := lx.makeToken(token.Symbol, start, value)
	closes, err := lx.trackBracket(tok)
	return tok, closes, err
}

// trackBracket ведёт стек скобок текущего уровня.
func (lx *Lexer) trackBracket(tok token.Token) (bool, error) {
	m := lx.top()
	switch tok.Text {
	case "(", "[", "{":
		m.brackets = append(m.brackets, tok)
	case ")", "]", "}":
		if len(m.brackets) == 0 {
			if tok.Text == "}" && m.nested {
				return true, nil
			}
			return false, lx.fail(diag.LexUnmatchedBracket, tok.Pos, fmt.Sprintf("unmatched %q", tok.Text))
		}
		open := m.brackets[len(m.brackets)-1]
		if closerOf(open.Text) != tok.Text {
			return false, lx.fail(diag.LexMismatchedBracket, tok.Pos,
				fmt.Sprintf("mismatched bracket: %q closes %q opened at %s", tok.Text, open.Text, open.Pos))
		}
		m.brackets = m.brackets[:len(m.brackets)-1]
	}
	return false, nil
}
