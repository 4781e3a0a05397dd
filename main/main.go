/*
File    : mix-lang/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Mix interpreter. It provides two
modes of operation:
1. REPL Mode (default): interactive Read-Eval-Print Loop
2. File Mode: execute a Mix source file given on the command line
*/
package main

import (
	"os"

	"github.com/akashmaji946/mix-lang/environment"
	"github.com/akashmaji946/mix-lang/eval"
	"github.com/akashmaji946/mix-lang/parser"
	"github.com/akashmaji946/mix-lang/repl"
	"github.com/fatih/color"
)

// VERSION is the current version of the Mix interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "mix >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
    ▄▄▄▄                       ▄▄▄  ▄▄▄
  ██▀▀▀▀█                      ███  ███
 ██         ▄████▄             ████████    ▀██  ██▀
 ██  ▄▄▄▄  ██▀  ▀██   	       ██ ██ ██       ████
 ██  ▀▀██  ██    ██   █████    ██ ▀▀ ██       ▄██▄
  ██▄▄▄██  ▀██▄▄██▀            ██    ██     ▄█▀▀█▄
    ▀▀▀▀     ▀▀▀▀              ▀▀    ▀▀    ▀▀▀  ▀▀▀
`

// LINE is a separator used for visual formatting in the REPL banner.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main determines the operating mode from command-line arguments:
//
//	mix                - start in REPL (interactive) mode
//	mix <filename>      - execute the named Mix source file
//	mix --help          - display help information
//	mix --version       - display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

// showHelp displays the help information for the interpreter.
func showHelp() {
	cyanColor.Println("Mix - An Interpreted Programming Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  mix                     Start interactive REPL mode")
	yellowColor.Println("  mix <path-to-file>      Execute a Mix source file")
	yellowColor.Println("  mix --help              Display this help message")
	yellowColor.Println("  mix --version           Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                    Exit the REPL")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  mix")
	yellowColor.Println("  mix samples/fib.mix")
}

// showVersion displays the version information for the interpreter.
func showVersion() {
	cyanColor.Println("Mix - An Interpreted Programming Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads a Mix source file and executes it, exiting non-zero on
// any file, parse, or runtime error.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	executeFileWithRecovery(string(fileContent))
}

// executeFileWithRecovery parses and evaluates source read from a file.
// A host panic is caught and reported the same way a parse or runtime
// error would be, rather than crashing the process.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	par := parser.NewParser(source)
	program := par.Parse()

	if par.HasErrors() {
		for _, msg := range par.Errors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		os.Exit(1)
	}

	result := eval.Eval(program, environment.NewEnvironment())
	if result == nil {
		return
	}

	if result.Type() == "ERROR" {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}

	if result.Type() != "NULL" {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
	}
}
