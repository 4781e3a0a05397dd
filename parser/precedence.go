/*
File    : mix-lang/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/mix-lang/lexer"

// Precedence levels, lowest to highest. Left-associativity for every
// infix operator falls out of recursing at the operator's own
// precedence rather than one level below it.
const (
	LOWEST      int = iota
	EQUALS          // == !=
	LESSGREATER     // < >
	SUM             // + -
	PRODUCT         // * /
	PREFIX          // -x !x
	CALL            // fn(x)
)

var precedences = map[lexer.TokenType]int{
	lexer.EQ:       EQUALS,
	lexer.NEQ:      EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.ASTERISK: PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.LPAREN:   CALL,
}

// peekPrecedence returns the binding power of tok, or LOWEST if tok has
// no registered infix parser.
func peekPrecedence(tok lexer.Token) int {
	if p, ok := precedences[tok.Type]; ok {
		return p
	}
	return LOWEST
}

type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)
