/*
File    : mix-lang/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/mix-lang/environment"
	"github.com/akashmaji946/mix-lang/function"
	"github.com/akashmaji946/mix-lang/objects"
	"github.com/akashmaji946/mix-lang/parser"
)

func evalPrefixExpression(node *parser.PrefixExpression, env *environment.Environment) objects.Object {
	right := Eval(node.Right, env)
	if IsError(right) {
		return right
	}

	switch node.Operator {
	case "!":
		return evalBangOperator(right)
	case "-":
		return evalMinusPrefixOperator(right)
	default:
		return newError("not supported : %s %s", node.Operator, right.Type())
	}
}

// evalBangOperator follows the language's truthiness rule rather than
// requiring a Boolean operand: `!5` is a legal FALSE, not a type error.
func evalBangOperator(right objects.Object) objects.Object {
	return nativeBoolToBooleanObject(!isTruthy(right))
}

func evalMinusPrefixOperator(right objects.Object) objects.Object {
	if right.Type() != objects.IntegerType {
		return newError("not supported : - %s", right.Type())
	}
	value := right.(*objects.Integer).Value
	if value == minInt64 {
		return newError("integer overflow")
	}
	return &objects.Integer{Value: -value}
}

func evalInfixExpression(node *parser.InfixExpression, env *environment.Environment) objects.Object {
	left := Eval(node.Left, env)
	if IsError(left) {
		return left
	}
	right := Eval(node.Right, env)
	if IsError(right) {
		return right
	}
	return applyInfixOperator(node.Operator, left, right)
}

const minInt64 = -1 << 63

func applyInfixOperator(op string, left, right objects.Object) objects.Object {
	switch op {
	case "+", "-", "*", "/", "<", ">":
		if left.Type() != objects.IntegerType || right.Type() != objects.IntegerType {
			return newError("type mismatch : %s %s %s", left.Type(), op, right.Type())
		}
		return evalIntegerInfixExpression(op, left.(*objects.Integer), right.(*objects.Integer))
	case "==", "!=":
		comparable := left.Type() == right.Type() &&
			(left.Type() == objects.IntegerType || left.Type() == objects.BooleanType)
		if !comparable {
			return newError("type mismatch : %s %s %s", left.Type(), op, right.Type())
		}
		equal := objectsEqual(left, right)
		if op == "!=" {
			equal = !equal
		}
		return nativeBoolToBooleanObject(equal)
	default:
		return newError("not supported : %s %s", op, left.Type())
	}
}

func objectsEqual(left, right objects.Object) bool {
	if l, ok := left.(*objects.Integer); ok {
		return l.Value == right.(*objects.Integer).Value
	}
	return left.(*objects.Boolean).Value == right.(*objects.Boolean).Value
}

// evalIntegerInfixExpression implements signed 64-bit arithmetic.
// Division is floor division (rounds toward negative infinity), and
// both division by zero and overflow are explicit ERROR values rather
// than the host-undefined behavior the reference source leaves open —
// see DESIGN.md.
func evalIntegerInfixExpression(op string, left, right *objects.Integer) objects.Object {
	l, r := left.Value, right.Value

	switch op {
	case "+":
		sum := l + r
		if (r > 0 && sum < l) || (r < 0 && sum > l) {
			return newError("integer overflow")
		}
		return &objects.Integer{Value: sum}
	case "-":
		diff := l - r
		if (r < 0 && diff < l) || (r > 0 && diff > l) {
			return newError("integer overflow")
		}
		return &objects.Integer{Value: diff}
	case "*":
		if mulOverflows(l, r) {
			return newError("integer overflow")
		}
		return &objects.Integer{Value: l * r}
	case "/":
		if r == 0 {
			return newError("division by zero")
		}
		return &objects.Integer{Value: floorDiv(l, r)}
	case "<":
		return nativeBoolToBooleanObject(l < r)
	case ">":
		return nativeBoolToBooleanObject(l > r)
	}
	return newError("not supported : %s %s", op, left.Type())
}

// mulOverflows reports whether a*b is not representable as a signed
// 64-bit integer. The round-trip check (product/b != a) is reliable
// everywhere except the two's-complement edge case MinInt64 / -1, which
// Go itself special-cases to MinInt64 rather than overflowing — so a
// product that wraps back to MinInt64 with one operand equal to -1 would
// otherwise round-trip clean and hide a real overflow. That case is
// checked directly first.
func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if (a == -1 && b == minInt64) || (b == -1 && a == minInt64) {
		return true
	}
	product := a * b
	return product/b != a
}

// floorDiv rounds the quotient toward negative infinity, unlike Go's
// native `/` which truncates toward zero.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func evalCallExpression(node *parser.CallExpression, env *environment.Environment) objects.Object {
	callee := Eval(node.Callee, env)
	if IsError(callee) {
		return callee
	}

	args := evalExpressions(node.Arguments, env)
	if len(args) == 1 && IsError(args[0]) {
		return args[0]
	}

	return applyFunction(callee, args)
}

// evalExpressions evaluates left to right and abandons the rest at the
// first ERROR, returning that single error as a one-element slice.
func evalExpressions(exps []parser.Expression, env *environment.Environment) []objects.Object {
	var result []objects.Object
	for _, exp := range exps {
		evaluated := Eval(exp, env)
		if IsError(evaluated) {
			return []objects.Object{evaluated}
		}
		result = append(result, evaluated)
	}
	return result
}

func applyFunction(fn objects.Object, args []objects.Object) objects.Object {
	fnObj, ok := fn.(*function.Function)
	if !ok {
		return newError("not a function: %s", fn.Type())
	}

	if len(args) != len(fnObj.Parameters) {
		return newError("wrong number of arguments: expected %d, got %d", len(fnObj.Parameters), len(args))
	}

	extendedEnv := environment.NewEnclosedEnvironment(fnObj.Env)
	for i, param := range fnObj.Parameters {
		extendedEnv.Set(param.Name, args[i])
	}

	evaluated := Eval(fnObj.Body, extendedEnv)
	return unwrapReturnValue(evaluated)
}

func unwrapReturnValue(obj objects.Object) objects.Object {
	if rv, ok := obj.(*objects.ReturnValue); ok {
		return rv.Value
	}
	return obj
}
