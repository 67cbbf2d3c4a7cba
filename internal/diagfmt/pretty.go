package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"pancake/internal/diag"
	"pancake/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	p := prettyPrinter{
		w:      w,
		fs:     fs,
		opts:   opts,
		bold:   painter(opts.Color, color.Bold),
		gutter: painter(opts.Color, color.FgBlue),
		caret:  painter(opts.Color, color.FgRed, color.Bold),
		note:   painter(opts.Color, color.FgCyan),
	}
	for i := range bag.Items() {
		p.diagnostic(&bag.Items()[i])
	}
}

type prettyPrinter struct {
	w      io.Writer
	fs     *source.FileSet
	opts   PrettyOpts
	bold   *color.Color
	gutter *color.Color
	caret  *color.Color
	note   *color.Color
}

func (p *prettyPrinter) severity(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return painter(p.opts.Color, color.FgRed, color.Bold).Sprint(sev.String())
	case diag.SevWarning:
		return painter(p.opts.Color, color.FgYellow, color.Bold).Sprint(sev.String())
	default:
		return painter(p.opts.Color, color.FgGreen).Sprint(sev.String())
	}
}

func (p *prettyPrinter) diagnostic(d *diag.Diagnostic) {
	file := p.file(d)
	if file == nil {
		fmt.Fprintf(p.w, "%s %s: %s\n", p.severity(d.Severity), d.Code.ID(), p.bold.Sprint(d.Message))
		return
	}
	start, _ := p.fs.Resolve(d.Primary)
	fmt.Fprintf(p.w, "%s:%d:%d: %s %s: %s\n",
		formatPath(file, p.fs, p.opts.PathMode), start.Line, start.Col,
		p.severity(d.Severity), d.Code.ID(), p.bold.Sprint(d.Message))
	p.snippet(file, d.Primary, p.opts.Context)

	if !p.opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nf := p.fs.Get(n.Span.File)
		if nf == nil || n.Span == (source.Span{}) {
			fmt.Fprintf(p.w, "  %s %s\n", p.note.Sprint("note:"), n.Msg)
			continue
		}
		ns, _ := p.fs.Resolve(n.Span)
		fmt.Fprintf(p.w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
			formatPath(nf, p.fs, p.opts.PathMode), ns.Line, ns.Col, n.Msg)
		p.snippet(nf, n.Span, 0)
	}
}

func (p *prettyPrinter) file(d *diag.Diagnostic) *source.File {
	if p.fs == nil || !locatable(d.Code) {
		return nil
	}
	return p.fs.Get(d.Primary.File)
}

// snippet печатает строку span'а (и context строк до неё) и подчёркивание.
func (p *prettyPrinter) snippet(file *source.File, span source.Span, context int) {
	start, end := p.fs.Resolve(span)
	first := int(start.Line) - max(context, 0)
	if first < 1 {
		first = 1
	}
	width := len(fmt.Sprint(start.Line))
	for ln := first; ln <= int(start.Line); ln++ {
		fmt.Fprintf(p.w, " %s %s\n", p.gutter.Sprintf("%*d |", width, ln), file.GetLine(uint32(ln)))
	}
	line := file.GetLine(start.Line)
	endCol := end.Col
	if end.Line != start.Line {
		// многострочный span подчёркиваем до конца первой строки
		endCol = uint32(len([]rune(line))) + 1
	}
	pad, length := caretGeometry(line, int(start.Col), int(endCol))
	fmt.Fprintf(p.w, " %s %s%s\n",
		p.gutter.Sprintf("%*s |", width, ""),
		pad,
		p.caret.Sprint("^"+strings.Repeat("~", length-1)))
}

// caretGeometry считает отступ и длину подчёркивания в ячейках терминала.
// Колонки 1-based и считаются в рунах; табы сохраняются в отступе.
func caretGeometry(line string, startCol, endCol int) (string, int) {
	runes := []rune(line)
	startCol = min(max(startCol, 1), len(runes)+1)
	endCol = min(max(endCol, startCol), len(runes)+1)

	var pad strings.Builder
	for _, r := range runes[:startCol-1] {
		if r == '\t' {
			pad.WriteRune('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	length := runewidth.StringWidth(string(runes[startCol-1 : endCol-1]))
	return pad.String(), max(length, 1)
}
