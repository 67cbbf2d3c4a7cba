package lexer

import (
	"fmt"

	"pancake/internal/diag"
	"pancake/internal/source"
)

// Error is a fatal lexical error. The lexer stops at the first one.
type Error struct {
	Code diag.Code
	Pos  source.Position
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Pos, e.Msg, e.Code.ID())
}

// Diagnostic converts the error for rendering.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Span, e.Msg)
}

// fail фиксирует первую ошибку; дальше лексер отдаёт только её.
func (lx *Lexer) fail(code diag.Code, start source.Position, msg string) error {
	err := &Error{
		Code: code,
		Pos:  start,
		Span: lx.stream.SpanFrom(start),
		Msg:  msg,
	}
	lx.err = err
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, err.Span, msg).Emit()
	}
	return err
}
