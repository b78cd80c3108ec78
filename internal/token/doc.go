// Package token defines lexical token kinds and trivia for the Lox frontend.
// Invariants:
//   - Token.Text is the exact source slice for Token.Span (quotes included
//     for strings, every digit and the decimal point for numbers).
//   - Token.Line is the line holding the token's final character; for a
//     multi-line string that is the line of the closing quote.
//   - Decoded literal values live in Token.Str / Token.Num, never raw
//     lexemes: Str has the quotes stripped, Num is the parsed float64.
//   - Whitespace and line comments are leading Trivia and never appear in
//     the main token stream.
package token
