/*
File    : mix-lang/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package eval implements the tree-walking evaluator. Eval is the single
entry point: it recursively walks an AST node against an environment
frame and returns a runtime value. Errors and returns are themselves
values (objects.Error, objects.ReturnValue) that propagate through the
ordinary return path — the evaluator never uses a host-language
exception for a program-visible failure.
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/mix-lang/environment"
	"github.com/akashmaji946/mix-lang/function"
	"github.com/akashmaji946/mix-lang/objects"
	"github.com/akashmaji946/mix-lang/parser"
)

// Shared singletons. Using one Boolean/Null value everywhere is a
// minor allocation saving; truthiness, equality and Inspect all read
// values, so nothing depends on identity.
var (
	TRUE  = &objects.Boolean{Value: true}
	FALSE = &objects.Boolean{Value: false}
	NULL  = &objects.Null{}
)

func nativeBoolToBooleanObject(val bool) *objects.Boolean {
	if val {
		return TRUE
	}
	return FALSE
}

// Eval dispatches on the concrete node type and returns the resulting
// runtime value.
func Eval(node parser.Node, env *environment.Environment) objects.Object {
	switch n := node.(type) {
	case *parser.Program:
		return evalProgram(n, env)
	case *parser.ExpressionStatement:
		return Eval(n.Expr, env)
	case *parser.BlockStatement:
		return evalBlockStatement(n, env)
	case *parser.LetStatement:
		return evalLetStatement(n, env)
	case *parser.ReturnStatement:
		return evalReturnStatement(n, env)

	case *parser.IntegerLiteral:
		return &objects.Integer{Value: n.Value}
	case *parser.BooleanLiteral:
		return nativeBoolToBooleanObject(n.Value)
	case *parser.Identifier:
		return evalIdentifier(n, env)
	case *parser.FunctionLiteral:
		return &function.Function{Parameters: n.Parameters, Body: n.Body, Env: env}

	case *parser.PrefixExpression:
		return evalPrefixExpression(n, env)
	case *parser.InfixExpression:
		return evalInfixExpression(n, env)
	case *parser.IfExpression:
		return evalIfExpression(n, env)
	case *parser.CallExpression:
		return evalCallExpression(n, env)
	}
	return NULL
}

// IsError is nil-safe: an absent result (e.g. a parse error left a nil
// expression) is not an Error.
func IsError(obj objects.Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == objects.ErrorType
}

func newError(format string, a ...any) *objects.Error {
	return &objects.Error{Message: fmt.Sprintf(format, a...)}
}
