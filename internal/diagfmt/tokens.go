package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"pancake/internal/source"
	"pancake/internal/token"
)

type TokenOutput struct {
	Kind      string      `json:"kind"`
	Text      string      `json:"text"`
	Line      int         `json:"line"`
	Column    int         `json:"column"`
	Span      source.Span `json:"span"`
	IsNewline bool        `json:"is_newline,omitempty"`
}

func tokenColor(kind token.Kind, enabled bool) *color.Color {
	switch kind {
	case token.Identifier:
		return painter(enabled, color.FgWhite)
	case token.Number:
		return painter(enabled, color.FgMagenta)
	case token.String, token.TemplateChunk, token.TemplateEnd:
		return painter(enabled, color.FgGreen)
	case token.Regex:
		return painter(enabled, color.FgYellow)
	case token.Symbol:
		return painter(enabled, color.FgCyan)
	default:
		return painter(enabled, color.Faint)
	}
}

// FormatTokensPretty выводит токены в человекочитаемом формате.
// Позиции 0-based, как в самих токенах; '↵' отмечает первый токен строки.
func FormatTokensPretty(w io.Writer, tokens []token.Token, opts TokenOpts) error {
	for i, tok := range tokens {
		if tok.Kind == token.EOF && !opts.WithEOF {
			break
		}
		nl := " "
		if tok.IsNewline {
			nl = "↵"
		}
		kind := tokenColor(tok.Kind, opts.Color).Sprintf("%-21s", tok.Kind.String())
		if _, err := fmt.Fprintf(w, "%4d %s %5d:%-4d %s", i+1, nl, tok.Pos.Line, tok.Pos.Column, kind); err != nil {
			return err
		}
		if tok.Kind != token.EOF {
			if _, err := fmt.Fprintf(w, " %q", tok.Text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// BuildTokensOutput converts tokens to their JSON shape, stopping at EOF
// unless opts.WithEOF is set.
func BuildTokensOutput(tokens []token.Token, opts TokenOpts) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.EOF && !opts.WithEOF {
			break
		}
		output = append(output, TokenOutput{
			Kind:      tok.Kind.String(),
			Text:      tok.Text,
			Line:      tok.Pos.Line,
			Column:    tok.Pos.Column,
			Span:      tok.Span,
			IsNewline: tok.IsNewline,
		})
	}
	return output
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, opts TokenOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTokensOutput(tokens, opts))
}
