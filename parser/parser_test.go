/*
File    : mix-lang/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser_LetStatements(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
	}{
		{"let x = 5;", "x"},
		{"let y = true;", "y"},
		{"let foobar = y;", "foobar"},
	}

	for _, tt := range tests {
		par := NewParser(tt.input)
		program := par.Parse()
		assert.False(t, par.HasErrors(), par.Errors())
		assert.Equal(t, 1, len(program.Statements))

		stmt, ok := program.Statements[0].(*LetStatement)
		assert.True(t, ok)
		assert.Equal(t, "let", stmt.Literal())
		assert.Equal(t, tt.wantName, stmt.Name.Name)
	}
}

func TestParser_LetStatement_MissingAssign(t *testing.T) {
	par := NewParser("let x 5;")
	par.Parse()
	assert.True(t, par.HasErrors())
	assert.Contains(t, par.Errors()[0], "expected next token to be =")
}

func TestParser_ReturnStatements(t *testing.T) {
	par := NewParser("return 5; return add(1,2);")
	program := par.Parse()
	assert.False(t, par.HasErrors(), par.Errors())
	assert.Equal(t, 2, len(program.Statements))

	for _, s := range program.Statements {
		stmt, ok := s.(*ReturnStatement)
		assert.True(t, ok)
		assert.Equal(t, "return", stmt.Literal())
	}
}

func TestParser_IdentifierExpression(t *testing.T) {
	par := NewParser("foobar;")
	program := par.Parse()
	assert.False(t, par.HasErrors())
	stmt := program.Statements[0].(*ExpressionStatement)
	ident, ok := stmt.Expr.(*Identifier)
	assert.True(t, ok)
	assert.Equal(t, "foobar", ident.Name)
}

func TestParser_IntegerLiteralExpression(t *testing.T) {
	par := NewParser("5;")
	program := par.Parse()
	stmt := program.Statements[0].(*ExpressionStatement)
	lit, ok := stmt.Expr.(*IntegerLiteral)
	assert.True(t, ok)
	assert.Equal(t, int64(5), lit.Value)
}

func TestParser_PrefixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator string
	}{
		{"!5;", "!"},
		{"-15;", "-"},
	}
	for _, tt := range tests {
		par := NewParser(tt.input)
		program := par.Parse()
		stmt := program.Statements[0].(*ExpressionStatement)
		expr, ok := stmt.Expr.(*PrefixExpression)
		assert.True(t, ok)
		assert.Equal(t, tt.operator, expr.Operator)
	}
}

func TestParser_InfixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		left     int64
		operator string
		right    int64
	}{
		{"5 + 5;", 5, "+", 5},
		{"5 - 5;", 5, "-", 5},
		{"5 * 5;", 5, "*", 5},
		{"5 / 5;", 5, "/", 5},
		{"5 > 5;", 5, ">", 5},
		{"5 < 5;", 5, "<", 5},
		{"5 == 5;", 5, "==", 5},
		{"5 != 5;", 5, "!=", 5},
	}

	for _, tt := range tests {
		par := NewParser(tt.input)
		program := par.Parse()
		stmt := program.Statements[0].(*ExpressionStatement)
		expr, ok := stmt.Expr.(*InfixExpression)
		assert.True(t, ok)
		assert.Equal(t, tt.left, expr.Left.(*IntegerLiteral).Value)
		assert.Equal(t, tt.operator, expr.Operator)
		assert.Equal(t, tt.right, expr.Right.(*IntegerLiteral).Value)
	}
}

func TestParser_OperatorPrecedence_String(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a + b + c", "((a+b)+c)"},
		{"a + b * c", "(a+(b*c))"},
		{"3 > 5 == false", "((3>5)==false)"},
		{"-5 * (3 + 2)", "((-5)*(3+2))"},
		{"a + b * c + d / e - f", "(((a+(b*c))+(d/e))-f)"},
	}

	for _, tt := range tests {
		par := NewParser(tt.input)
		program := par.Parse()
		assert.False(t, par.HasErrors(), par.Errors())
		assert.Equal(t, tt.want, program.String())
	}
}

func TestParser_StringRoundTrips_Relex(t *testing.T) {
	sources := []string{"a + b + c", "a + b * c", "3 > 5 == false", "-5 * (3 + 2)"}
	for _, src := range sources {
		first := NewParser(src)
		program := first.Parse()
		assert.False(t, first.HasErrors())

		stringified := program.String()
		second := NewParser(stringified)
		reparsed := second.Parse()
		assert.False(t, second.HasErrors())
		assert.Equal(t, stringified, reparsed.String())
	}
}

func TestParser_IfExpression(t *testing.T) {
	par := NewParser("if (x < y) { x }")
	program := par.Parse()
	assert.False(t, par.HasErrors(), par.Errors())
	stmt := program.Statements[0].(*ExpressionStatement)
	expr, ok := stmt.Expr.(*IfExpression)
	assert.True(t, ok)
	assert.Equal(t, 1, len(expr.Then.Statements))
	assert.Nil(t, expr.Else)
}

func TestParser_IfElseExpression(t *testing.T) {
	par := NewParser("if (x < y) { x } else { y }")
	program := par.Parse()
	stmt := program.Statements[0].(*ExpressionStatement)
	expr := stmt.Expr.(*IfExpression)
	assert.NotNil(t, expr.Else)
	assert.Equal(t, 1, len(expr.Else.Statements))
}

func TestParser_FunctionLiteral(t *testing.T) {
	par := NewParser("fn(x, y) { x + y; }")
	program := par.Parse()
	stmt := program.Statements[0].(*ExpressionStatement)
	fn, ok := stmt.Expr.(*FunctionLiteral)
	assert.True(t, ok)
	assert.Equal(t, 2, len(fn.Parameters))
	assert.Equal(t, "x", fn.Parameters[0].Name)
	assert.Equal(t, "y", fn.Parameters[1].Name)
	assert.Equal(t, 1, len(fn.Body.Statements))
}

func TestParser_CallExpression(t *testing.T) {
	par := NewParser("add(1, 2 * 3, 4 + 5);")
	program := par.Parse()
	stmt := program.Statements[0].(*ExpressionStatement)
	call, ok := stmt.Expr.(*CallExpression)
	assert.True(t, ok)
	assert.Equal(t, "add", call.Callee.(*Identifier).Name)
	assert.Equal(t, 3, len(call.Arguments))
}

func TestParser_NoPrefixParseFnError(t *testing.T) {
	par := NewParser(";")
	par.Parse()
	assert.True(t, par.HasErrors())
	assert.Contains(t, par.Errors()[0], "no prefix parse function for")
}
