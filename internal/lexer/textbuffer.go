package lexer

import "errors"

// textBufferPage — шаг роста буфера в рунах.
const textBufferPage = 2048

// ErrEmptyBuffer is returned by Consume when nothing was pushed.
// The lexer never consumes an empty buffer, so seeing it means a scanner bug.
var ErrEmptyBuffer = errors.New("lexer: consume on empty text buffer")

// TextBuffer accumulates lexeme runes between tokens. Storage is reused
// after Consume.
type TextBuffer struct {
	data []rune
	n    int
}

// PushRune appends a single rune.
func (b *TextBuffer) PushRune(r rune) {
	if b.n == len(b.data) {
		grown := make([]rune, len(b.data)+textBufferPage)
		copy(grown, b.data[:b.n])
		b.data = grown
	}
	b.data[b.n] = r
	b.n++
}

// Push appends every rune of s.
func (b *TextBuffer) Push(s string) {
	for _, r := range s {
		b.PushRune(r)
	}
}

// Len returns the number of buffered runes.
func (b *TextBuffer) Len() int {
	return b.n
}

// Cap returns the current storage size in runes.
func (b *TextBuffer) Cap() int {
	return len(b.data)
}

// Consume returns the accumulated text and empties the buffer.
func (b *TextBuffer) Consume() (string, error) {
	if b.n == 0 {
		return "", ErrEmptyBuffer
	}
	s := string(b.data[:b.n])
	b.n = 0
	return s, nil
}

// Reset drops buffered text without decoding it.
func (b *TextBuffer) Reset() {
	b.n = 0
}
