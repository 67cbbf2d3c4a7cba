package lexer

import (
	"iter"

	"pancake/internal/bufiter"
	"pancake/internal/token"
)

// Scan lexes text lazily and returns the buffered token stream.
// The stream ends with a single EOF token; a lexical error ends it early
// and is available from Err on the iterator.
func Scan(text string) *bufiter.Iterator[token.Token] {
	return NewFromString(text, Options{}).Tokens()
}

// Tokens wraps the lexer into a buffered iterator for the parser.
func (lx *Lexer) Tokens() *bufiter.Iterator[token.Token] {
	finished := false
	return bufiter.New(func() (token.Token, bool, error) {
		if finished {
			return token.Token{}, false, nil
		}
		tok, err := lx.Next()
		if err != nil {
			finished = true
			return token.Token{}, false, err
		}
		if tok.Kind == token.EOF {
			finished = true
		}
		return tok, true, nil
	})
}

// All yields every token before EOF. After an error it yields the error once and stops.
func (lx *Lexer) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := lx.Next()
			if err != nil {
				yield(token.Token{}, err)
				return
			}
			if tok.Kind == token.EOF {
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

// Collect lexes the whole input and returns the tokens before EOF.
func (lx *Lexer) Collect() ([]token.Token, error) {
	var out []token.Token
	for tok, err := range lx.All() {
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
	return out, nil
}
