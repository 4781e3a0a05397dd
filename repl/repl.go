/*
File    : mix-lang/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop. It is the spec's
external, not-core collaborator: it wires source -> lexer -> parser ->
program -> eval(env) and prints value.Inspect(), nothing more. The REPL
keeps one environment alive for the whole session, so `let`s and
closures from one line are visible on the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/mix-lang/environment"
	"github.com/akashmaji946/mix-lang/eval"
	"github.com/akashmaji946/mix-lang/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for a session: banner, version,
// prompt. It carries no interpreter state itself — each Start call
// creates its own environment.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl builds a Repl with the given display configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop against reader/writer until the user
// exits or EOF is hit. One environment frame lives for the whole
// session, so bindings and closures persist across lines.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := environment.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line, env)
	}
}

// executeWithRecovery parses and evaluates one line, printing parse
// errors or the resulting value.Inspect() without ever letting a host
// panic end the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, env *environment.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	par := parser.NewParser(line)
	program := par.Parse()

	if par.HasErrors() {
		for _, msg := range par.Errors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	result := eval.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == "ERROR" {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
	} else {
		yellowColor.Fprintf(writer, "%s\n", result.Inspect())
	}
}
