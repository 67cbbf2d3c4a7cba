package source

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// EOF is the marker CharacterStream yields after the last character.
const EOF rune = -1

// Position is a 0-based line/column pair; columns count Unicode scalar values.
// Offset is the byte offset into the source and is only used for spans.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// CharacterStream iterates source text rune by rune with one step of lookbehind.
type CharacterStream struct {
	file    FileID
	text    string
	pos     Position
	prev    Position
	canBack bool
}

// NewCharacterStream creates a stream over an in-memory string.
func NewCharacterStream(text string) *CharacterStream {
	return &CharacterStream{text: text}
}

// NewFileStream creates a stream over a loaded file; spans carry its ID.
func NewFileStream(f *File) *CharacterStream {
	return &CharacterStream{file: f.ID, text: string(f.Content)}
}

// File returns the ID used for spans produced by this stream.
func (s *CharacterStream) File() FileID {
	return s.file
}

// Next returns the current character and advances. After the end it keeps returning EOF.
func (s *CharacterStream) Next() rune {
	s.prev = s.pos
	s.canBack = true
	if s.pos.Offset >= len(s.text) {
		return EOF
	}
	r, size := utf8.DecodeRuneInString(s.text[s.pos.Offset:])
	s.pos.Offset += size
	if r == '\n' {
		s.pos.Line++
		s.pos.Column = 0
	} else {
		s.pos.Column++
	}
	return r
}

// Peek returns the next character without consuming it.
func (s *CharacterStream) Peek() rune {
	if s.pos.Offset >= len(s.text) {
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(s.text[s.pos.Offset:])
	return r
}

// PeekNext returns the character after Peek without consuming anything.
func (s *CharacterStream) PeekNext() rune {
	if s.pos.Offset >= len(s.text) {
		return EOF
	}
	_, size := utf8.DecodeRuneInString(s.text[s.pos.Offset:])
	off := s.pos.Offset + size
	if off >= len(s.text) {
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(s.text[off:])
	return r
}

// Back rewinds exactly one Next. A second Back without a Next in between
// is a caller bug and panics.
func (s *CharacterStream) Back() {
	if !s.canBack {
		panic("source: CharacterStream.Back called twice without Next")
	}
	s.pos = s.prev
	s.canBack = false
}

// Position returns a copy of the position of the next character.
func (s *CharacterStream) Position() Position {
	return s.pos
}

// SpanFrom returns the byte span between start and the current position.
func (s *CharacterStream) SpanFrom(start Position) Span {
	return Span{File: s.file, Start: offset32(start.Offset), End: offset32(s.pos.Offset)}
}

func offset32(off int) uint32 {
	v, err := safecast.Conv[uint32](off)
	if err != nil {
		panic(fmt.Errorf("source offset overflow: %w", err))
	}
	return v
}
