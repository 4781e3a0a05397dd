/*
File    : mix-lang/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser implements a Pratt (top-down operator precedence) parser
over the lexer's token stream. Parse errors are accumulated rather than
raised: a Program with a non-empty error list is not trusted for
evaluation, but parsing itself never aborts early.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/mix-lang/lexer"
)

// Parser holds two-token lookahead state plus the prefix/infix parse
// function registries keyed by token kind.
type Parser struct {
	lex *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	errors []string

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// NewParser builds a Parser over src, registers every prefix/infix
// parse function, and primes curToken/peekToken with two advances.
func NewParser(src string) *Parser {
	par := &Parser{lex: lexer.NewLexer(src)}

	par.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:    par.parseIdentifier,
		lexer.INT:      par.parseIntegerLiteral,
		lexer.TRUE:     par.parseBooleanLiteral,
		lexer.FALSE:    par.parseBooleanLiteral,
		lexer.BANG:     par.parsePrefixExpression,
		lexer.MINUS:    par.parsePrefixExpression,
		lexer.LPAREN:   par.parseGroupedExpression,
		lexer.IF:       par.parseIfExpression,
		lexer.FUNCTION: par.parseFunctionLiteral,
	}

	par.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:     par.parseInfixExpression,
		lexer.MINUS:    par.parseInfixExpression,
		lexer.ASTERISK: par.parseInfixExpression,
		lexer.SLASH:    par.parseInfixExpression,
		lexer.LT:       par.parseInfixExpression,
		lexer.GT:       par.parseInfixExpression,
		lexer.EQ:       par.parseInfixExpression,
		lexer.NEQ:      par.parseInfixExpression,
		lexer.LPAREN:   par.parseCallExpression,
	}

	par.advance()
	par.advance()
	return par
}

// advance shifts peekToken into curToken and pulls a fresh peekToken
// from the lexer.
func (par *Parser) advance() {
	par.curToken = par.peekToken
	par.peekToken = par.lex.NextToken()
}

// Errors returns the accumulated parse error messages, in the order
// they were raised.
func (par *Parser) Errors() []string { return par.errors }

// HasErrors reports whether any parse error was raised.
func (par *Parser) HasErrors() bool { return len(par.errors) > 0 }

func (par *Parser) peekError(kind lexer.TokenType) {
	msg := fmt.Sprintf("expected next token to be %s, got %s instead", kind, par.peekToken.Type)
	par.errors = append(par.errors, msg)
}

func (par *Parser) noPrefixParseFnError(kind lexer.TokenType) {
	par.errors = append(par.errors, fmt.Sprintf("no prefix parse function for %s found", kind))
}

// expectPeek advances past peekToken if it matches kind, else records a
// peekError and leaves the cursor unmoved.
func (par *Parser) expectPeek(kind lexer.TokenType) bool {
	if par.peekToken.Type == kind {
		par.advance()
		return true
	}
	par.peekError(kind)
	return false
}

// Parse drains the token stream into a Program, collecting errors as it
// goes rather than stopping at the first one.
func (par *Parser) Parse() *Program {
	program := &Program{}

	for par.curToken.Type != lexer.EOF {
		stmt := par.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		par.advance()
	}

	return program
}
