/*
File    : lumen/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsumeTokens(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		tokens []TokenType
	}{
		{
			name:   "empty source yields only EOF",
			input:  "",
			tokens: []TokenType{EOF_TYPE},
		},
		{
			name:  "var declaration",
			input: "var x = 42;",
			tokens: []TokenType{
				VAR_KEY, IDENTIFIER_ID, ASSIGN_OP, NUMBER_LIT, SEMICOLON_DELIM, EOF_TYPE,
			},
		},
		{
			name:  "function literal with call",
			input: "var f = function(a, b) { return a + b; }; f(1, 2);",
			tokens: []TokenType{
				VAR_KEY, IDENTIFIER_ID, ASSIGN_OP, FUNC_KEY, LEFT_PAREN, IDENTIFIER_ID,
				COMMA_DELIM, IDENTIFIER_ID, RIGHT_PAREN, LEFT_BRACE, RETURN_KEY,
				IDENTIFIER_ID, PLUS_OP, IDENTIFIER_ID, SEMICOLON_DELIM, RIGHT_BRACE,
				SEMICOLON_DELIM, IDENTIFIER_ID, LEFT_PAREN, NUMBER_LIT, COMMA_DELIM,
				NUMBER_LIT, RIGHT_PAREN, SEMICOLON_DELIM, EOF_TYPE,
			},
		},
		{
			name:  "two-character operators",
			input: "a == b != c <= d >= e;",
			tokens: []TokenType{
				IDENTIFIER_ID, EQ_OP, IDENTIFIER_ID, NE_OP, IDENTIFIER_ID, LE_OP,
				IDENTIFIER_ID, GE_OP, IDENTIFIER_ID, SEMICOLON_DELIM, EOF_TYPE,
			},
		},
		{
			name:  "line comment is skipped entirely",
			input: "1; // trailing comment\n2;",
			tokens: []TokenType{
				NUMBER_LIT, SEMICOLON_DELIM, NUMBER_LIT, SEMICOLON_DELIM, EOF_TYPE,
			},
		},
		{
			name:  "dot is lexed but reserved",
			input: ".",
			tokens: []TokenType{DOT_OP, EOF_TYPE},
		},
		{
			name:  "string literal",
			input: `"hello world";`,
			tokens: []TokenType{STRING_LIT, SEMICOLON_DELIM, EOF_TYPE},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex := NewLexer(tt.input)
			tokens, err := lex.ConsumeTokens()
			assert.NoError(t, err)
			assert.Len(t, tokens, len(tt.tokens))
			for i, want := range tt.tokens {
				assert.Equal(t, want, tokens[i].Type, "token %d", i)
			}
			assert.Equal(t, EOF_TYPE, tokens[len(tokens)-1].Type, "stream must end in exactly one EOF sentinel")
		})
	}
}

func TestConsumeTokens_NumberLiteralText(t *testing.T) {
	lex := NewLexer("3.14")
	tokens, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.Equal(t, NUMBER_LIT, tokens[0].Type)
	assert.Equal(t, "3.14", tokens[0].Literal)
}

func TestConsumeTokens_StringLiteralText(t *testing.T) {
	lex := NewLexer(`"hi " + 1;`)
	tokens, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.Equal(t, STRING_LIT, tokens[0].Type)
	assert.Equal(t, "hi ", tokens[0].Literal)
}

func TestConsumeTokens_UnterminatedString(t *testing.T) {
	lex := NewLexer(`"abc`)
	_, err := lex.ConsumeTokens()
	assert.Error(t, err)
}

func TestConsumeTokens_UnexpectedCharacter(t *testing.T) {
	lex := NewLexer("@")
	_, err := lex.ConsumeTokens()
	assert.Error(t, err)
}

func TestToken_LineAndColumn(t *testing.T) {
	lex := NewLexer("var\nx = 1;")
	tokens, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	// 'x' begins on line 2, column 1.
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 1, tokens[1].Column)
}
