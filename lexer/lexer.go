/*
File    : lumen/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "github.com/amaji/lumen/errs"

// Lexer performs lexical analysis of Lumen source code: a single forward
// pass with one character of lookahead. Position state tracks a 0-based
// byte offset, 1-based line, and 1-based column.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int
}

// NewLexer initializes a Lexer positioned at the first character of src,
// at line 1 column 1.
func NewLexer(src string) Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
}

// NextToken skips whitespace and comments, then returns the next token. It
// returns a *errs.LexerError for an unterminated string, an unparseable
// number, or an unexpected character.
func (lex *Lexer) NextToken() (Token, error) {
	var token Token
	lex.IgnoreWhitespacesAndComments()

	switch lex.Current {
	case '=':
		if lex.Peek() == '=' {
			token = NewTokenWithMetadata(EQ_OP, "==", lex.Line, lex.Column)
			lex.Advance()
		} else {
			token = NewTokenWithMetadata(ASSIGN_OP, "=", lex.Line, lex.Column)
		}
	case '!':
		if lex.Peek() == '=' {
			token = NewTokenWithMetadata(NE_OP, "!=", lex.Line, lex.Column)
			lex.Advance()
		} else {
			token = NewTokenWithMetadata(NOT_OP, "!", lex.Line, lex.Column)
		}
	case '<':
		if lex.Peek() == '=' {
			token = NewTokenWithMetadata(LE_OP, "<=", lex.Line, lex.Column)
			lex.Advance()
		} else {
			token = NewTokenWithMetadata(LT_OP, "<", lex.Line, lex.Column)
		}
	case '>':
		if lex.Peek() == '=' {
			token = NewTokenWithMetadata(GE_OP, ">=", lex.Line, lex.Column)
			lex.Advance()
		} else {
			token = NewTokenWithMetadata(GT_OP, ">", lex.Line, lex.Column)
		}
	case '+':
		token = NewTokenWithMetadata(PLUS_OP, "+", lex.Line, lex.Column)
	case '-':
		token = NewTokenWithMetadata(MINUS_OP, "-", lex.Line, lex.Column)
	case '*':
		token = NewTokenWithMetadata(MUL_OP, "*", lex.Line, lex.Column)
	case '/':
		token = NewTokenWithMetadata(DIV_OP, "/", lex.Line, lex.Column)
	case '(':
		token = NewTokenWithMetadata(LEFT_PAREN, "(", lex.Line, lex.Column)
	case ')':
		token = NewTokenWithMetadata(RIGHT_PAREN, ")", lex.Line, lex.Column)
	case '{':
		token = NewTokenWithMetadata(LEFT_BRACE, "{", lex.Line, lex.Column)
	case '}':
		token = NewTokenWithMetadata(RIGHT_BRACE, "}", lex.Line, lex.Column)
	case ',':
		token = NewTokenWithMetadata(COMMA_DELIM, ",", lex.Line, lex.Column)
	case ';':
		token = NewTokenWithMetadata(SEMICOLON_DELIM, ";", lex.Line, lex.Column)
	case '.':
		// Lexed but never parsed: a lone
		// '.' surfaces as a ParserError downstream, never here.
		token = NewTokenWithMetadata(DOT_OP, ".", lex.Line, lex.Column)
	case 0:
		token = NewTokenWithMetadata(EOF_TYPE, "EOF", lex.Line, lex.Column)
	case '"':
		return readStringLiteral(lex)
	default:
		if isNumeric(lex.Current) {
			return readNumber(lex)
		}
		if isAlpha(lex.Current) || lex.Current == '_' {
			return readIdentifier(lex), nil
		}
		return Token{}, &errs.LexerError{
			Position: lex.Position,
			Message:  "unexpected character '" + string(lex.Current) + "'",
		}
	}

	lex.Advance()
	return token, nil
}

// Peek returns the next character without consuming it, or 0 at end of
// source.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance moves to the next character, updating Position, Column, and
// Current. Callers handle Line/newline tracking themselves.
func (lex *Lexer) Advance() {
	lex.Position++
	lex.Column++

	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// IgnoreWhitespacesAndComments skips whitespace and line comments
// ('/' followed by '/', through but not including the next newline).
func (lex *Lexer) IgnoreWhitespacesAndComments() {
	for {
		if isWhitespace(lex.Current) {
			if lex.Current == '\n' {
				lex.Line++
				lex.Column = 0
			}
			lex.Advance()
		} else if lex.Current == '/' && lex.Peek() == '/' {
			lex.SkipSingleLineComment()
		} else {
			break
		}
	}
}

// SkipSingleLineComment advances past '//' through the next newline or end
// of source; the newline itself is left unconsumed.
func (lex *Lexer) SkipSingleLineComment() {
	lex.Advance()
	lex.Advance()

	for lex.Current != '\n' && lex.Current != 0 {
		lex.Advance()
	}
}

// ConsumeTokens tokenizes the entire source, returning a token stream that
// ends with exactly one EOF sentinel, or the first lexer error encountered.
func (lex *Lexer) ConsumeTokens() ([]Token, error) {
	tokens := make([]Token, 0)
	for {
		token, err := lex.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Type == EOF_TYPE {
			break
		}
	}
	return tokens, nil
}
