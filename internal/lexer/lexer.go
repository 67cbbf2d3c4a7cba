package lexer

import (
	"fmt"

	"pancake/internal/diag"
	"pancake/internal/source"
	"pancake/internal/token"
)

// lexMode — уровень вложенности: обычный код или тело шаблонной строки.
type lexMode struct {
	template bool
	nested   bool            // код внутри ${...}; непарная '}' закрывает интерполяцию
	brackets []token.Token   // открытые скобки этого уровня
	start    source.Position // позиция открывающей '`'
	chunk    source.Position // начало текущего куска шаблона
}

type Lexer struct {
	stream   *source.CharacterStream
	opts     Options
	symbols  *SymbolTable
	buf      TextBuffer
	modes    []lexMode
	prev     token.Token
	hasPrev  bool
	lastLine int
	err      error
	done     bool
}

// New creates a lexer over a loaded file; spans carry the file ID.
func New(file *source.File, opts Options) *Lexer {
	return newLexer(source.NewFileStream(file), opts)
}

// NewFromString creates a lexer over an in-memory text.
func NewFromString(text string, opts Options) *Lexer {
	return newLexer(source.NewCharacterStream(text), opts)
}

func newLexer(stream *source.CharacterStream, opts Options) *Lexer {
	return &Lexer{
		stream:  stream,
		opts:    opts,
		symbols: opts.symbols(),
		modes:   []lexMode{{}},
	}
}

// Next возвращает следующий токен. После конца ввода всегда возвращает EOF,
// после ошибки всегда возвращает ту же ошибку.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.err != nil {
		return token.Token{}, lx.err
	}
	if lx.done {
		return lx.eofToken(), nil
	}
	for {
		if lx.top().template {
			tok, err := lx.scanTemplateChunk()
			if err != nil {
				return token.Token{}, err
			}
			return lx.emit(tok), nil
		}

		if err := lx.skipTrivia(); err != nil {
			return token.Token{}, err
		}

		r := lx.stream.Peek()
		if r == source.EOF {
			if m := lx.top(); m.nested {
				return token.Token{}, lx.fail(diag.LexUnterminatedTemplate, lx.templateStart(), "unterminated template literal")
			}
			lx.done = true
			return lx.eofToken(), nil
		}

		var (
			tok token.Token
			err error
		)
		switch {
		case isIdentStart(r):
			tok = lx.scanIdent()
		case isDec(r) || (r == '.' && isDec(lx.stream.PeekNext())):
			tok, err = lx.scanNumber()
		case r == '"' || r == '\'':
			tok, err = lx.scanString()
		case r == '`':
			start := lx.stream.Position()
			lx.stream.Next()
			lx.modes = append(lx.modes, lexMode{template: true, start: start, chunk: start})
			continue
		case r == '/' && lx.regexAllowed():
			tok, err = lx.scanRegex()
		case lx.symbols.IsStart(r):
			var closesInterpolation bool
			tok, closesInterpolation, err = lx.scanSymbol()
			if err == nil && closesInterpolation {
				lx.modes = lx.modes[:len(lx.modes)-1]
				lx.top().chunk = tok.Pos
				continue
			}
		default:
			start := lx.stream.Position()
			lx.stream.Next()
			return token.Token{}, lx.fail(diag.LexUnknownChar, start, fmt.Sprintf("unknown character %q", r))
		}
		if err != nil {
			return token.Token{}, err
		}
		return lx.emit(tok), nil
	}
}

// Err returns the first lexical error, if any.
func (lx *Lexer) Err() error {
	return lx.err
}

func (lx *Lexer) top() *lexMode {
	return &lx.modes[len(lx.modes)-1]
}

// templateStart ищет ближайший открытый шаблон.
func (lx *Lexer) templateStart() source.Position {
	for i := len(lx.modes) - 1; i >= 0; i-- {
		if lx.modes[i].template {
			return lx.modes[i].start
		}
	}
	return lx.stream.Position()
}

// regexAllowed: '/' начинает регулярку в начале ввода, в начале
// интерполяции или после символа из regex-safe набора.
func (lx *Lexer) regexAllowed() bool {
	if !lx.hasPrev {
		return true
	}
	switch lx.prev.Kind {
	case token.TemplateChunk:
		return true
	case token.Symbol:
		return lx.symbols.AllowsRegexAfter(lx.prev.Text)
	default:
		return false
	}
}

func (lx *Lexer) makeToken(kind token.Kind, start source.Position, text string) token.Token {
	return token.Token{
		Kind: kind,
		Pos:  start,
		Span: lx.stream.SpanFrom(start),
		Text: text,
	}
}

// emit проставляет IsNewline и запоминает токен как предыдущий.
func (lx *Lexer) emit(tok token.Token) token.Token {
	tok.IsNewline = !lx.hasPrev || tok.Pos.Line > lx.lastLine
	lx.prev = tok
	lx.hasPrev = true
	lx.lastLine = lx.stream.Position().Line
	return tok
}

func (lx *Lexer) eofToken() token.Token {
	pos := lx.stream.Position()
	return token.Token{
		Kind:      token.EOF,
		Pos:       pos,
		Span:      lx.stream.SpanFrom(pos),
		IsNewline: !lx.hasPrev || pos.Line > lx.lastLine,
	}
}

// takeText забирает накопленный текст; пустой буфер даёт пустую строку.
func (lx *Lexer) takeText() string {
	if lx.buf.Len() == 0 {
		return ""
	}
	text, err := lx.buf.Consume()
	if err != nil {
		return ""
	}
	return text
}
