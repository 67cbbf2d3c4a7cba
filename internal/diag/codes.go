package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnexpectedChar           Code = 1006
	LexUnterminatedRegex        Code = 1007
	LexUnterminatedTemplate     Code = 1008
	LexUnmatchedBracket         Code = 1009
	LexMismatchedBracket        Code = 1010

	// Парсерные
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnexpectedEOF     Code = 2002
	SynExpectToken       Code = 2003
	SynExpectSemicolon   Code = 2012
	SynAsyncNotFunction  Code = 2017
	SynTryWithoutHandler Code = 2031
	SynUnsupported       Code = 2032
	SynExpectIdentifier  Code = 2102
	SynExpectExpression  Code = 2203

	// I/O
	IOLoadFileError Code = 4001

	// Наблюдаемость
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string literal",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Bad number literal",
		LexUnexpectedChar:           "Unexpected character",
		LexUnterminatedRegex:        "Unterminated regular expression",
		LexUnterminatedTemplate:     "Unterminated template literal",
		LexUnmatchedBracket:         "Unmatched closing bracket",
		LexMismatchedBracket:        "Mismatched brackets",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynUnexpectedEOF:            "Unexpected end of input",
		SynExpectToken:              "Expected token",
		SynExpectSemicolon:          "Missing semicolon",
		SynAsyncNotFunction:         "async must precede a function",
		SynTryWithoutHandler:        "try without catch or finally",
		SynUnsupported:              "Unsupported syntax",
		SynExpectIdentifier:         "Expected identifier",
		SynExpectExpression:         "Expected expression",
		IOLoadFileError:             "I/O load file error",
		ObsInfo:                     "Observability information",
		ObsTimings:                  "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
