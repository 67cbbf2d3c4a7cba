package lexer

import (
	"pancake/internal/diag"
	"pancake/internal/source"
)

// skipTrivia пропускает пробелы и комментарии; в токены они не попадают.
// Переводы строк учитываются через номер строки в emit.
func (lx *Lexer) skipTrivia() error {
	for {
		r := lx.stream.Peek()
		switch {
		case isSpace(r):
			lx.stream.Next()
		case r == '/' && lx.stream.PeekNext() == '/':
			for r := lx.stream.Peek(); r != '\n' && r != source.EOF; r = lx.stream.Peek() {
				lx.stream.Next()
			}
		case r == '/' && lx.stream.PeekNext() == '*':
			if err := lx.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (lx *Lexer) skipBlockComment() error {
	start := lx.stream.Position()
	lx.stream.Next() // '/'
	lx.stream.Next() // '*'
	for {
		r := lx.stream.Next()
		switch {
		case r == source.EOF:
			return lx.fail(diag.LexUnterminatedBlockComment, start, "unterminated block comment")
		case r == '*' && lx.stream.Peek() == '/':
			lx.stream.Next()
			return nil
		}
	}
}
