/*
File    : lumen/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/amaji/lumen/errs"
	"github.com/amaji/lumen/lexer"
)

const maxParams = 255

// Parser consumes a token vector produced by the lexer and produces a
// statement list with one token of lookahead and no backtracking; the
// first error terminates parsing (no synchronization).
type Parser struct {
	tokens  []lexer.Token
	current int
}

// NewParser lexes src and returns a Parser positioned at its first token.
// A lexer failure (malformed input, unterminated string, ...) is returned
// unwrapped so callers can distinguish it from a later ParserError.
func NewParser(src string) (*Parser, error) {
	lex := lexer.NewLexer(src)
	tokens, err := lex.ConsumeTokens()
	if err != nil {
		return nil, err
	}
	return &Parser{tokens: tokens}, nil
}

// Parse repeatedly calls declaration until the end-of-stream sentinel is
// current.
func (p *Parser) Parse() ([]Stmt, error) {
	var statements []Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

func (p *Parser) declaration() (Stmt, error) {
	if p.match(lexer.VAR_KEY, lexer.LET_KEY, lexer.CONST_KEY) {
		return p.varDeclaration()
	}
	if p.match(lexer.FUNC_KEY) {
		return p.funcDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (Stmt, error) {
	kind := p.previous().Literal
	if !p.check(lexer.IDENTIFIER_ID) {
		return nil, p.error("Expected variable name")
	}
	name := p.advance().Literal

	var init Expr
	if p.match(lexer.ASSIGN_OP) {
		var err error
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.SEMICOLON_DELIM, "Expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &VarDecl{Kind: kind, Name: name, Init: init}, nil
}

func (p *Parser) funcDeclaration() (Stmt, error) {
	if !p.check(lexer.IDENTIFIER_ID) {
		return nil, p.error("Expected function name")
	}
	name := p.advance().Literal

	params, err := p.paramList()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LEFT_BRACE, "Expected '{' before function body"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &FuncDecl{Name: name, Params: params, Body: body}, nil
}

// paramList parses "(" params? ")" where the opening paren has not yet
// been consumed.
func (p *Parser) paramList() ([]string, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expected '(' after function name"); err != nil {
		return nil, err
	}

	var params []string
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxParams {
				return nil, p.error("Cannot have more than 255 parameters")
			}
			if !p.check(lexer.IDENTIFIER_ID) {
				return nil, p.error("Expected parameter name")
			}
			params = append(params, p.advance().Literal)
			if !p.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expected ')' after parameters"); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.match(lexer.IF_KEY):
		return p.ifStatement()
	case p.match(lexer.WHILE_KEY):
		return p.whileStatement()
	case p.match(lexer.RETURN_KEY):
		return p.returnStatement()
	case p.match(lexer.LEFT_BRACE):
		return p.block()
	default:
		return p.exprStatement()
	}
}

func (p *Parser) ifStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expected '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expected ')' after if condition"); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch Stmt
	if p.match(lexer.ELSE_KEY) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &If{Condition: cond, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expected '(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expected ')' after while condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &While{Condition: cond, Body: body}, nil
}

func (p *Parser) returnStatement() (Stmt, error) {
	var value Expr
	if !p.check(lexer.SEMICOLON_DELIM) {
		var err error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON_DELIM, "Expected ';' after return value"); err != nil {
		return nil, err
	}
	return &Return{Value: value}, nil
}

// block parses declaration* "}" where the opening brace has already been
// consumed by the caller.
func (p *Parser) block() (*Block, error) {
	var statements []Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(lexer.RIGHT_BRACE, "Expected '}' after block"); err != nil {
		return nil, err
	}
	return &Block{Statements: statements}, nil
}

func (p *Parser) exprStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON_DELIM, "Expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: expr}, nil
}

func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

// assignment is right-associative and restricted to a bare identifier
// target.
func (p *Parser) assignment() (Expr, error) {
	expr, err := p.logicOr()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.ASSIGN_OP) {
		tok := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if ident, ok := expr.(*Identifier); ok {
			return &Assign{Name: ident.Name, Value: value, Line: tok.Line, Column: tok.Column}, nil
		}
		return nil, p.error("Invalid assignment target")
	}
	return expr, nil
}

func (p *Parser) logicOr() (Expr, error) {
	expr, err := p.logicAnd()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.OR_KEY) {
		tok := p.previous()
		right, err := p.logicAnd()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: "or", Right: right, Line: tok.Line, Column: tok.Column}
	}
	return expr, nil
}

func (p *Parser) logicAnd() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.AND_KEY) {
		tok := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: "and", Right: right, Line: tok.Line, Column: tok.Column}
	}
	return expr, nil
}

func (p *Parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.EQ_OP, lexer.NE_OP) {
		tok := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: string(tok.Type), Right: right, Line: tok.Line, Column: tok.Column}
	}
	return expr, nil
}

func (p *Parser) comparison() (Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP) {
		tok := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: string(tok.Type), Right: right, Line: tok.Line, Column: tok.Column}
	}
	return expr, nil
}

func (p *Parser) term() (Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.PLUS_OP, lexer.MINUS_OP) {
		tok := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: string(tok.Type), Right: right, Line: tok.Line, Column: tok.Column}
	}
	return expr, nil
}

func (p *Parser) factor() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.DIV_OP, lexer.MUL_OP) {
		tok := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: string(tok.Type), Right: right, Line: tok.Line, Column: tok.Column}
	}
	return expr, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(lexer.NOT_OP, lexer.MINUS_OP) {
		tok := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: string(tok.Type), Operand: operand, Line: tok.Line, Column: tok.Column}, nil
	}
	return p.call()
}

func (p *Parser) call() (Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.LEFT_PAREN) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee Expr) (Expr, error) {
	tok := p.previous()
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxParams {
				return nil, p.error("Cannot have more than 255 arguments")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expected ')' after arguments"); err != nil {
		return nil, err
	}
	return &Call{Callee: callee, Args: args, Line: tok.Line, Column: tok.Column}, nil
}

func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(lexer.FALSE_KEY):
		return &BooleanLiteral{Value: false}, nil
	case p.match(lexer.TRUE_KEY):
		return &BooleanLiteral{Value: true}, nil
	case p.match(lexer.NULL_KEY):
		return &NullLiteral{}, nil
	case p.match(lexer.NUMBER_LIT):
		lit := p.previous().Literal
		value, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, p.error("Malformed number literal '" + lit + "'")
		}
		return &NumberLiteral{Value: value}, nil
	case p.match(lexer.STRING_LIT):
		return &StringLiteral{Value: p.previous().Literal}, nil
	case p.match(lexer.IDENTIFIER_ID):
		tok := p.previous()
		return &Identifier{Name: tok.Literal, Line: tok.Line, Column: tok.Column}, nil
	case p.match(lexer.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RIGHT_PAREN, "Expected ')' after expression"); err != nil {
			return nil, err
		}
		return expr, nil
	case p.match(lexer.FUNC_KEY):
		params, err := p.paramList()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.LEFT_BRACE, "Expected '{' before function body"); err != nil {
			return nil, err
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		return &FunctionLiteral{Params: params, Body: body}, nil
	default:
		return nil, p.error("Expected expression")
	}
}

// --- token-stream helpers ---

// match advances and returns true if the current token's kind is any of
// types; otherwise it leaves the cursor untouched.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// check reports whether the current token's kind equals t, matching
// payload-carrying kinds (number/string/identifier) by kind alone
// regardless of their literal.
func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF_TYPE
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(t lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.error(message)
}

func (p *Parser) error(message string) error {
	tok := p.peek()
	return &errs.ParserError{Line: tok.Line, Column: tok.Column, Message: message}
}
