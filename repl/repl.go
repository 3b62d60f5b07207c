/*
File    : minilisp/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for mini-lisp. The REPL
provides an interactive environment where users can:
- Enter mini-lisp forms line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the parser and evaluator to execute user input.
*/
package repl

import (
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/minilisp/env"
	"github.com/akashmaji946/minilisp/eval"
	"github.com/akashmaji946/minilisp/parser"
)

// Color definitions for REPL output, matching each message's role:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance. It encapsulates all
// the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type a mini-lisp form and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '/exit' to quit, '/env' to list top-level bindings")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: it prints the banner, wires up readline
// for line editing and history, creates one evaluator and one global
// environment shared across the whole session (so a `define` on one line
// is visible on the next), and reads-evaluates-prints until '/exit' or EOF.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)
	globalEnv := evaluator.NewGlobalEnv()

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

		if line == "/exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		if line == "/env" {
			r.printEnv(writer, globalEnv)
			continue
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, evaluator, globalEnv)
	}
}

// printEnv lists the bindings currently held in the session's top-level
// frame, sorted by name for stable output.
func (r *Repl) printEnv(writer io.Writer, globalEnv *env.Environment) {
	bindings := globalEnv.Bindings()
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		cyanColor.Fprintf(writer, "(no top-level bindings)\n")
		return
	}
	for _, name := range names {
		cyanColor.Fprintf(writer, "%s = %s\n", name, bindings[name].String())
	}
}

// executeWithRecovery parses and evaluates one line against the session's
// shared global environment, with panic recovery so a single malformed
// input never ends the session (unlike file mode, the REPL always returns
// to the prompt after an error).
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator, globalEnv *env.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	par := parser.NewParser(line)
	prog, err := par.Parse()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	evaluator.SetParser(par)
	results, evalErr := evaluator.Run(prog, globalEnv)
	if evalErr != nil {
		redColor.Fprintf(writer, "%s\n", evalErr)
		return
	}

	for _, v := range results {
		yellowColor.Fprintf(writer, "%s\n", v.String())
	}
}
