/*
File    : mix-lang/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Implements the Pratt expression core and every registered prefix/infix
parse function.
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/mix-lang/lexer"
)

// parseExpression is the Pratt loop: find a prefix parser for curToken,
// invoke it, then keep folding in infix operators whose precedence
// exceeds the caller's floor.
func (par *Parser) parseExpression(precedence int) Expression {
	prefix := par.prefixParseFns[par.curToken.Type]
	if prefix == nil {
		par.noPrefixParseFnError(par.curToken.Type)
		return nil
	}
	left := prefix()

	for par.peekToken.Type != lexer.SEMICOLON && precedence < peekPrecedence(par.peekToken) {
		infix := par.infixParseFns[par.peekToken.Type]
		if infix == nil {
			return left
		}
		par.advance()
		left = infix(left)
	}

	return left
}

func (par *Parser) parseIdentifier() Expression {
	return &Identifier{Token: par.curToken, Name: par.curToken.Literal}
}

func (par *Parser) parseIntegerLiteral() Expression {
	lit := &IntegerLiteral{Token: par.curToken}

	value, err := strconv.ParseInt(par.curToken.Literal, 10, 64)
	if err != nil {
		par.errors = append(par.errors, "could not parse "+par.curToken.Literal+" as integer")
		return nil
	}
	lit.Value = value
	return lit
}

func (par *Parser) parseBooleanLiteral() Expression {
	return &BooleanLiteral{Token: par.curToken, Value: par.curToken.Type == lexer.TRUE}
}

// parsePrefixExpression handles unary `!` and `-`, recursing at PREFIX
// so that e.g. `-a * b` parses as `(-a) * b`.
func (par *Parser) parsePrefixExpression() Expression {
	expr := &PrefixExpression{Token: par.curToken, Operator: par.curToken.Literal}
	par.advance()
	expr.Right = par.parseExpression(PREFIX)
	return expr
}

// parseInfixExpression handles every binary operator. Recursing at the
// operator's own precedence (not one below it) is what makes same-level
// operators left-associative: `a + b + c` parses as `(a + b) + c`.
func (par *Parser) parseInfixExpression(left Expression) Expression {
	expr := &InfixExpression{Token: par.curToken, Left: left, Operator: par.curToken.Literal}
	precedence := peekPrecedence(par.curToken)
	par.advance()
	expr.Right = par.parseExpression(precedence)
	return expr
}

func (par *Parser) parseGroupedExpression() Expression {
	par.advance()
	expr := par.parseExpression(LOWEST)
	if !par.expectPeek(lexer.RPAREN) {
		return nil
	}
	return expr
}

// parseIfExpression parses `if ( cond ) { then } (else { else })?`.
func (par *Parser) parseIfExpression() Expression {
	expr := &IfExpression{Token: par.curToken}

	if !par.expectPeek(lexer.LPAREN) {
		return nil
	}
	par.advance()
	expr.Condition = par.parseExpression(LOWEST)

	if !par.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !par.expectPeek(lexer.LBRACE) {
		return nil
	}
	expr.Then = par.parseBlockStatement()

	if par.peekToken.Type == lexer.ELSE {
		par.advance()
		if !par.expectPeek(lexer.LBRACE) {
			return nil
		}
		expr.Else = par.parseBlockStatement()
	}

	return expr
}

// parseFunctionLiteral parses `fn ( params ) { body }`.
func (par *Parser) parseFunctionLiteral() Expression {
	lit := &FunctionLiteral{Token: par.curToken}

	if !par.expectPeek(lexer.LPAREN) {
		return nil
	}
	lit.Parameters = par.parseFunctionParameters()

	if !par.expectPeek(lexer.LBRACE) {
		return nil
	}
	lit.Body = par.parseBlockStatement()

	return lit
}

func (par *Parser) parseFunctionParameters() []*Identifier {
	var params []*Identifier

	if par.peekToken.Type == lexer.RPAREN {
		par.advance()
		return params
	}

	par.advance()
	params = append(params, &Identifier{Token: par.curToken, Name: par.curToken.Literal})

	for par.peekToken.Type == lexer.COMMA {
		par.advance()
		par.advance()
		params = append(params, &Identifier{Token: par.curToken, Name: par.curToken.Literal})
	}

	if !par.expectPeek(lexer.RPAREN) {
		return nil
	}
	return params
}

// parseCallExpression handles `callee ( args )`, called as the LPAREN
// infix parser once a callable expression has been parsed as left.
func (par *Parser) parseCallExpression(callee Expression) Expression {
	expr := &CallExpression{Token: par.curToken, Callee: callee}
	expr.Arguments = par.parseCallArguments()
	return expr
}

func (par *Parser) parseCallArguments() []Expression {
	var args []Expression

	if par.peekToken.Type == lexer.RPAREN {
		par.advance()
		return args
	}

	par.advance()
	args = append(args, par.parseExpression(LOWEST))

	for par.peekToken.Type == lexer.COMMA {
		par.advance()
		par.advance()
		args = append(args, par.parseExpression(LOWEST))
	}

	if !par.expectPeek(lexer.RPAREN) {
		return nil
	}
	return args
}
