/*
File    : mix-lang/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/mix-lang/environment"
	"github.com/akashmaji946/mix-lang/objects"
	"github.com/akashmaji946/mix-lang/parser"
)

// evalProgram iterates the top-level statements, stopping early on an
// ERROR or a RETURN. The outermost RETURN is unwrapped here, so
// `return 5;` at program scope evaluates to plain INTEGER(5), not a
// wrapped value — the cleanest reading of the source's inconsistency on
// this point (see DESIGN.md).
func evalProgram(program *parser.Program, env *environment.Environment) objects.Object {
	var result objects.Object = NULL

	for _, stmt := range program.Statements {
		result = Eval(stmt, env)

		switch result := result.(type) {
		case *objects.ReturnValue:
			return result.Value
		case *objects.Error:
			return result
		}
	}
	return result
}

// evalBlockStatement iterates a block's statements the same way, except
// a RETURN is returned still wrapped: only a function call site (or
// evalProgram at the top) unwraps it. This is what lets a return inside
// a nested if-block terminate the enclosing function rather than just
// the block.
func evalBlockStatement(block *parser.BlockStatement, env *environment.Environment) objects.Object {
	var result objects.Object = NULL

	for _, stmt := range block.Statements {
		result = Eval(stmt, env)

		if result != nil {
			kind := result.Type()
			if kind == objects.ReturnType || kind == objects.ErrorType {
				return result
			}
		}
	}
	return result
}

func evalLetStatement(stmt *parser.LetStatement, env *environment.Environment) objects.Object {
	val := Eval(stmt.Value, env)
	if IsError(val) {
		return val
	}
	env.Set(stmt.Name.Name, val)
	return NULL
}

func evalReturnStatement(stmt *parser.ReturnStatement, env *environment.Environment) objects.Object {
	val := Eval(stmt.Value, env)
	if IsError(val) {
		return val
	}
	return &objects.ReturnValue{Value: val}
}

func evalIdentifier(node *parser.Identifier, env *environment.Environment) objects.Object {
	if val, ok := env.Get(node.Name); ok {
		return val
	}
	return newError("identifier not found : %s", node.Name)
}
