// Package token defines lexical token kinds for the pancake front end.
// Invariants:
//   - Keywords are identifiers; the parser recognizes them by Text.
//   - Token.Text is the decoded lexeme: string and template chunks exclude their
//     delimiters, regex literals keep slashes and flags.
//   - Token.Pos is the 0-based line/column of the first character; Token.Span
//     covers the raw source bytes of the lexeme.
//   - Comments and whitespace never reach the token stream.
package token
