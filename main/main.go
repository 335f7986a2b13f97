/*
File    : lumen/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Lumen interpreter. It supports
two modes: no positional argument starts the REPL; a positional argument
names a script file to run once.
*/
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/amaji/lumen/eval"
	"github.com/amaji/lumen/file"
	"github.com/amaji/lumen/objects"
	"github.com/amaji/lumen/parser"
	"github.com/amaji/lumen/repl"
)

var (
	// VERSION is the current version of the Lumen interpreter.
	VERSION = "v1.0.0"

	// AUTHOR contains the contact information of the interpreter's author.
	AUTHOR = "akashmaji(@iisc.ac.in)"

	// LICENCE specifies the software license.
	LICENCE = "MIT"

	// PROMPT is the per-line prompt shown in REPL mode.
	PROMPT = "> "

	// BANNER is the ASCII art logo shown when starting the REPL.
	BANNER = `
 ██╗     ██╗   ██╗███╗   ███╗███████╗███╗   ██╗
 ██║     ██║   ██║████╗ ████║██╔════╝████╗  ██║
 ██║     ██║   ██║██╔████╔██║█████╗  ██╔██╗ ██║
 ██║     ██║   ██║██║╚██╔╝██║██╔══╝  ██║╚██╗██║
 ███████╗╚██████╔╝██║ ╚═╝ ██║███████╗██║ ╚████║
 ╚══════╝ ╚═════╝ ╚═╝     ╚═╝╚══════╝╚═╝  ╚═══╝
`

	// LINE is a separator used for visual formatting in the REPL banner.
	LINE = "----------------------------------------------------------------"
)

var redColor = color.New(color.FgRed)

// main dispatches to file mode or REPL mode based on os.Args, following
// the `lumen [-ast] [path]` contract: -ast is only meaningful together
// with a path and prints the parsed AST to stderr before evaluating.
func main() {
	args := os.Args[1:]

	var (
		dumpAST  bool
		filePath string
	)
	for _, a := range args {
		switch a {
		case "-ast":
			dumpAST = true
		default:
			filePath = a
		}
	}

	if filePath == "" {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	runFile(filePath, dumpAST)
}

// runFile reads and runs a single Lumen source file: a read failure or an
// evaluation failure each print to stderr and exit non-zero.
func runFile(path string, dumpAST bool) {
	source, err := file.ReadSource(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file '%s': %v\n", path, err)
		os.Exit(1)
	}

	if dumpAST {
		par, err := parser.NewParser(source)
		if err != nil {
			redColor.Fprintf(os.Stderr, "Error: %s\n", err.Error())
			os.Exit(1)
		}
		stmts, err := par.Parse()
		if err != nil {
			redColor.Fprintf(os.Stderr, "Error: %s\n", err.Error())
			os.Exit(1)
		}
		os.Stderr.WriteString(parser.Dump(stmts))
	}

	result, err := eval.Eval(source)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
	if _, isUndefined := result.(*objects.Undefined); !isUndefined {
		os.Stdout.WriteString(result.Display() + "\n")
	}
}
