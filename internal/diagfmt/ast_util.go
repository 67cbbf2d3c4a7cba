package diagfmt

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"pancake/internal/diag"
	"pancake/internal/source"
)

// formatSpan formats a source.Span into a string.
// If fs is non-nil, it resolves the span to start and end positions and returns "startLine:startCol-endLine:endCol".
// If fs is nil, it returns "span(start-end)".
func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil && fs.Get(span.File) != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}

// formatPath печатает путь файла в выбранном режиме.
func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	base := ""
	if mode == PathModeRelative {
		base = fs.BaseDir()
	}
	return f.FormatPath(mode.name(), base)
}

// locatable: у ошибок загрузки и служебных диагностик нет места в исходнике.
func locatable(code diag.Code) bool {
	id := code.ID()
	return strings.HasPrefix(id, "LEX") || strings.HasPrefix(id, "SYN")
}

// painter возвращает цвет, явно включённый или выключенный независимо от терминала.
func painter(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
