/*
File    : lumen/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the interactive prompt: print "> " before each
line, read one line, evaluate it, and print any non-undefined result
prefixed with "=> "; errors print on their own line with an "Error: "
prefix and the prompt continues.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/amaji/lumen/eval"
	"github.com/amaji/lumen/objects"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive session. Banner/Version/Author/Line/License are
// purely cosmetic, printed once at startup; Prompt is the per-line prompt,
// pinned to "> " by the CLI entrypoint.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl builds a Repl. Callers that only care about the bare
// prompt/result contract can pass empty strings for every cosmetic field
// and "> " for prompt.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner, skipped entirely when Banner
// is empty so a minimal Repl produces no extra output ahead of the first
// "> " prompt.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	if r.Banner == "" {
		return
	}
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-eval-print loop until EOF, a readline error, or
// ".exit" is entered. A single Evaluator is shared across lines so
// declarations persist across the session.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()

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
		r.evalLine(writer, line, evaluator)
	}
}

// evalLine evaluates one line and prints the result: a non-undefined
// value prefixed with "=> ", or an error prefixed with "Error: ". Either
// way the loop continues.
func (r *Repl) evalLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	result, err := evaluator.Eval(line)
	if err != nil {
		redColor.Fprintf(writer, "Error: %s\n", err.Error())
		return
	}
	if _, isUndefined := result.(*objects.Undefined); isUndefined {
		return
	}
	yellowColor.Fprintf(writer, "=> %s\n", result.Display())
}
