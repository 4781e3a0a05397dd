/*
File    : mix-lang/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package function defines the runtime closure value. It is kept out of
the objects package so that objects need not import environment: a
Function holds a pointer reference to the environment frame active at
its definition site, which is exactly what makes closures capture by
reference rather than by copy.
*/
package function

import (
	"bytes"
	"strings"

	"github.com/akashmaji946/mix-lang/environment"
	"github.com/akashmaji946/mix-lang/objects"
	"github.com/akashmaji946/mix-lang/parser"
)

// Function is a first-class closure: its parameters and body come from
// the FunctionLiteral it was built from, and Env is the *same* frame
// object active when the literal was evaluated — not a copy. A later
// re-`let` of a variable in that frame is visible to every closure that
// captured it.
type Function struct {
	Parameters []*parser.Identifier
	Body       *parser.BlockStatement
	Env        *environment.Environment
}

func (f *Function) Type() objects.ObjectType { return objects.FunctionType }

// Inspect renders "fn (p1,p2,...) {<body>}" where <body> is the
// concatenation of the body statements' String() forms, per the
// language's canonical value-printing rule.
func (f *Function) Inspect() string {
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}

	var buf bytes.Buffer
	buf.WriteString("fn (")
	buf.WriteString(strings.Join(params, ","))
	buf.WriteString(") {")
	buf.WriteString(f.Body.String())
	buf.WriteString("}")
	return buf.String()
}
