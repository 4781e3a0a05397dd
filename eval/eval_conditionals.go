/*
File    : mix-lang/eval/eval_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/mix-lang/environment"
	"github.com/akashmaji946/mix-lang/objects"
	"github.com/akashmaji946/mix-lang/parser"
)

// evalIfExpression evaluates the condition, converts it to a boolean
// via the language's truthiness rule (not a strict-Boolean check), and
// evaluates whichever branch applies. A false condition with no else
// branch yields NULL.
func evalIfExpression(node *parser.IfExpression, env *environment.Environment) objects.Object {
	condition := Eval(node.Condition, env)
	if IsError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return Eval(node.Then, env)
	} else if node.Else != nil {
		return Eval(node.Else, env)
	}
	return NULL
}

// isTruthy: BOOLEAN uses its own value, INTEGER is truthy unless zero,
// NULL and everything else is false.
func isTruthy(obj objects.Object) bool {
	switch o := obj.(type) {
	case *objects.Boolean:
		return o.Value
	case *objects.Integer:
		return o.Value != 0
	case *objects.Null:
		return false
	default:
		return false
	}
}
