/*
File: lumen/lexer/lexer_utils.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/amaji/lumen/errs"
)

// isWhitespace reports whether curr is whitespace under Unicode's
// definition (space, tab, newline, carriage return, and friends).
func isWhitespace(curr byte) bool {
	return unicode.IsSpace(rune(curr))
}

// isAlphanumeric reports whether curr is a letter or digit.
func isAlphanumeric(curr byte) bool {
	return unicode.IsLetter(rune(curr)) || unicode.IsDigit(rune(curr))
}

// isNumeric reports whether curr is a decimal digit.
func isNumeric(curr byte) bool {
	return unicode.IsDigit(rune(curr))
}

// isAlpha reports whether curr is an alphabetic character.
func isAlpha(curr byte) bool {
	return unicode.IsLetter(rune(curr))
}

// readStringLiteral reads a double-quoted string literal, consuming the
// opening and closing quotes. Reaching end-of-source before the closing
// quote fails with a LexerError; the interior text is carried verbatim
// with no escape processing.
func readStringLiteral(lex *Lexer) (Token, error) {
	startLine, startColumn := lex.Line, lex.Column
	lex.Advance() // consume opening quote

	var builder strings.Builder
	for lex.Current != '"' {
		if lex.Current == 0 {
			return Token{}, &errs.LexerError{
				Position: lex.Position,
				Message:  "unterminated string literal",
			}
		}
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0
		}
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	lex.Advance() // consume closing quote
	return NewTokenWithMetadata(STRING_LIT, builder.String(), startLine, startColumn), nil
}

// readNumber reads a numeric literal: digits with at most one '.'. The
// accumulated text is parsed as a 64-bit float; a parse failure (which
// cannot normally occur given the scan rules below, but is checked anyway)
// fails with a LexerError.
func readNumber(lex *Lexer) (Token, error) {
	startLine, startColumn := lex.Line, lex.Column
	start := lex.Position
	hasDot := false

	for isNumeric(lex.Current) || (lex.Current == '.' && !hasDot) {
		if lex.Current == '.' {
			hasDot = true
		}
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]
	if _, err := strconv.ParseFloat(literal, 64); err != nil {
		return Token{}, &errs.LexerError{
			Position: start,
			Message:  "malformed number literal '" + literal + "'",
		}
	}

	return NewTokenWithMetadata(NUMBER_LIT, literal, startLine, startColumn), nil
}

// readIdentifier reads an identifier: a leading letter or underscore
// followed by letters, digits, or underscores. The resulting text is
// looked up against the reserved-word table; a match yields that keyword
// token, otherwise an IDENTIFIER_ID token carrying the text.
func readIdentifier(lex *Lexer) Token {
	startLine, startColumn := lex.Line, lex.Column
	start := lex.Position

	lex.Advance() // first character already known to be alpha or '_'
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]
	return NewTokenWithMetadata(lookupIdent(literal), literal, startLine, startColumn)
}
