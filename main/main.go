/*
File    : minilisp/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the mini-lisp interpreter.
It provides three modes of operation:
1. REPL mode (default): interactive read-eval-print loop
2. File mode: execute a mini-lisp source file given on the command line
3. Server mode: one REPL session per TCP connection

The interpreter uses a lexer-parser-evaluator pipeline to process mini-lisp
source.
*/
package main

import (
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/minilisp/eval"
	"github.com/akashmaji946/minilisp/parser"
	"github.com/akashmaji946/minilisp/repl"
)

// VERSION is the current version of the mini-lisp interpreter.
var VERSION = "v1.0.0"

// AUTHOR is the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE is the software license (MIT License).
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "mini-lisp> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
 ███▄ ▄███▓ ██▓ ███▄    █  ██▓     ██▓ ██████  ██▓███
▓██▒▀█▀ ██▒▓██▒ ██ ▀█   █ ▓██▒    ▓██▒▒██    ▒ ▓██░  ██▒
▓██    ▓██░▒██▒▓██  ▀█ ██▒▒██░    ▒██▒░ ▓██▄   ▓██░ ██▓▒
▒██    ▒██ ░██░▓██▒  ▐▌██▒▒██░    ░██░  ▒   ██▒▒██▄█▓▒ ▒
▒██▒   ░██▒░██░▒██░   ▓██░░██████▒░██░▒██████▒▒▒██▒ ░  ░
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

// Color definitions for file execution output.
var (
	redColor   = color.New(color.FgRed)
	cyanColor  = color.New(color.FgCyan)
	greenColor = color.New(color.FgGreen)
)

// main is the entry point of the mini-lisp interpreter.
//
// Usage:
//
//	minilisp              - start in REPL (interactive) mode
//	minilisp <filename>   - execute the specified mini-lisp source file
//	minilisp server <port> - start a REPL server
//	minilisp --help       - display help information
//	minilisp --version    - display version information
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

		if arg == "server" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: minilisp server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

// showHelp displays the help information for the mini-lisp interpreter.
func showHelp() {
	cyanColor.Println("mini-lisp - A Statically-Typed Lisp Dialect")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println("  minilisp                  Start interactive REPL mode")
	cyanColor.Println("  minilisp <path-to-file>    Execute a mini-lisp file (.lisp)")
	cyanColor.Println("  minilisp server <port>     Start REPL server on specified port")
	cyanColor.Println("  minilisp --help            Display this help message")
	cyanColor.Println("  minilisp --version         Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	cyanColor.Println("  /exit                      Exit the REPL")
	cyanColor.Println("  /env                       List current top-level bindings")
}

// showVersion displays the version information for the mini-lisp interpreter.
func showVersion() {
	cyanColor.Println("mini-lisp - A Statically-Typed Lisp Dialect")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a mini-lisp source file.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}
	executeFileWithRecovery(string(fileContent))
}

// startServer listens on the given TCP port, handing each accepted
// connection its own goroutine and its own REPL session (and therefore its
// own independent global environment).
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("mini-lisp REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

// handleClient runs one REPL session over a single client connection, using
// the connection itself as both the session's reader and writer.
func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}

// executeFileWithRecovery parses and evaluates a whole source file against
// one fresh global environment. Unlike the REPL, any error here is fatal:
// it is displayed and the process exits 1, matching spec §6.3's "an error
// aborts the whole file" behavior.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	par := parser.NewParser(source)
	prog, err := par.Parse()
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetParser(par)
	globalEnv := evaluator.NewGlobalEnv()

	results, evalErr := evaluator.Run(prog, globalEnv)
	if evalErr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", evalErr)
		os.Exit(1)
	}

	for _, v := range results {
		greenColor.Fprintf(os.Stdout, "%s\n", v.String())
	}
}
