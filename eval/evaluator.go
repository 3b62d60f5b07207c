/*
File    : minilisp/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the mini-lisp tree-walking evaluator: given an
// AST and an environment, it walks the tree under a chain of lexical
// scopes, applies built-ins and user-defined closures, and enforces the
// two-kind (integer/boolean) runtime type discipline of spec §4.3. The
// evaluator is stateless per call aside from (a) the mutations `Define`
// performs on the current frame and (b) the print side effects of
// print-num/print-bool; there is no other interpreter-global mutable state.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/minilisp/env"
	"github.com/akashmaji946/minilisp/function"
	"github.com/akashmaji946/minilisp/parser"
	"github.com/akashmaji946/minilisp/value"
)

// Evaluator holds cross-cutting evaluation state: a parser reference for
// position-tagged diagnostics, and the writer print-num/print-bool output
// to.
type Evaluator struct {
	Par    *parser.Parser
	Writer io.Writer
}

// NewEvaluator creates an Evaluator that writes built-in print output to
// os.Stdout by default.
func NewEvaluator() *Evaluator {
	return &Evaluator{Writer: os.Stdout}
}

// SetWriter redirects print-num/print-bool output, primarily for tests
// that need to capture it.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetParser attaches the parser that produced the AST being evaluated, so
// CreateError-style diagnostics can include source position.
func (e *Evaluator) SetParser(p *parser.Parser) {
	e.Par = p
}

// NewGlobalEnv creates a fresh, empty global (root) environment. Built-in
// operators are not represented as environment bindings — spec §6.1's
// grammar distinguishes num_op/logical_op/print_stmt from a general
// fun_call at the parser level (captured here as parser.Builtin vs.
// parser.Call), so they are resolved by AST node kind rather than by name
// lookup. The environment holds only user `define`d bindings and function
// parameters.
func (e *Evaluator) NewGlobalEnv() *env.Environment {
	return env.New(nil)
}

// Run evaluates every top-level statement of prog against en in order,
// returning the ordered sequence of non-void results (spec §4.3) with any
// print-num/print-bool side effects performed eagerly at their point in
// that sequence. Define statements perform their binding and contribute no
// entry to the returned sequence. Any error aborts immediately: no partial
// result sequence is ever returned.
func (e *Evaluator) Run(prog *parser.Program, en *env.Environment) ([]value.Value, *value.Error) {
	var results []value.Value
	for _, stmt := range prog.Statements {
		if def, ok := stmt.(*parser.Define); ok {
			if err := e.evalDefine(def, en); err != nil {
				return nil, err
			}
			continue
		}
		v := e.Eval(stmt, en)
		if ev, ok := v.(*value.Error); ok {
			return nil, ev
		}
		if isPrintStatement(stmt) {
			// print-num/print-bool produce no result value (spec §6.2);
			// their side effect has already happened inside Eval.
			continue
		}
		results = append(results, v)
	}
	return results, nil
}

// isPrintStatement reports whether stmt is a top-level print-num/print-bool
// application, which the grammar (§6.1) treats as its own `print_stmt`
// alternative distinct from a plain `exp` statement.
func isPrintStatement(stmt parser.Node) bool {
	b, ok := stmt.(*parser.Builtin)
	return ok && (b.Op == "print-num" || b.Op == "print-bool")
}

// Eval is the central dispatcher: it type-switches on the AST node kind and
// routes to the matching handler. Every path returns a value.Value — a
// genuine result, or a *value.Error that the caller must check with
// value.IsError before using.
func (e *Evaluator) Eval(node parser.Node, en *env.Environment) value.Value {
	switch n := node.(type) {
	case *parser.IntLiteral:
		return &value.Integer{Val: n.Value}
	case *parser.BoolLiteral:
		return &value.Boolean{Val: n.Value}
	case *parser.Symbol:
		return e.evalSymbol(n, en)
	case *parser.If:
		return e.evalIf(n, en)
	case *parser.Fun:
		return &function.Function{Params: n.Params, Defines: n.Defines, Result: n.Result, Env: en}
	case *parser.Call:
		return e.evalCall(n, en)
	case *parser.Builtin:
		return e.evalBuiltin(n, en)
	default:
		return errorAt(node, value.RuntimeError, "unhandled AST node %T", node)
	}
}

// evalSymbol resolves an identifier by walking the environment chain.
func (e *Evaluator) evalSymbol(n *parser.Symbol, en *env.Environment) value.Value {
	v, ok := en.Lookup(n.Name)
	if !ok {
		return errorAt(n, value.NameError, "undefined symbol %q", n.Name)
	}
	return v
}

// evalDefine evaluates Expr in en, then binds Name to the result in en's
// own frame (never an outer frame). Redefining a name already bound in
// this frame overwrites it.
func (e *Evaluator) evalDefine(n *parser.Define, en *env.Environment) *value.Error {
	v := e.Eval(n.Expr, en)
	if err, ok := v.(*value.Error); ok {
		return err
	}
	en.Define(n.Name, v)
	return nil
}

// evalIf evaluates Test, requires it to be boolean, and evaluates only the
// taken branch — the untaken branch is never evaluated.
func (e *Evaluator) evalIf(n *parser.If, en *env.Environment) value.Value {
	test := e.Eval(n.Test, en)
	if value.IsError(test) {
		return test
	}
	if _, ok := test.(*value.Boolean); !ok {
		return errorAt(n.Test, value.TypeError, "'if' test must be boolean, got %s", test.Kind())
	}
	if value.Truthy(test) {
		return e.Eval(n.Then, en)
	}
	return e.Eval(n.Else, en)
}

// evalCall evaluates Callee, requires it to be a function, evaluates every
// argument left-to-right, checks arity, and applies the function in a new
// frame whose outer pointer is the function's captured environment — not
// the caller's frame (spec §3: lexical, not dynamic, scope).
func (e *Evaluator) evalCall(n *parser.Call, en *env.Environment) value.Value {
	calleeV := e.Eval(n.Callee, en)
	if value.IsError(calleeV) {
		return calleeV
	}
	fn, ok := calleeV.(*function.Function)
	if !ok {
		return errorAt(n, value.TypeError, "cannot call a non-function value (%s)", calleeV.Kind())
	}

	args := make([]value.Value, len(n.Args))
	for i, argNode := range n.Args {
		v := e.Eval(argNode, en)
		if value.IsError(v) {
			return v
		}
		args[i] = v
	}

	if len(args) != len(fn.Params) {
		return errorAt(n, value.TypeError, "wrong number of arguments: expected %d, got %d", len(fn.Params), len(args))
	}

	return e.applyFunction(fn, args)
}

// applyFunction creates the call frame, evaluates the function's local
// Defines in it (so later defines may refer back to earlier ones in the
// same frame), and evaluates the result expression in that frame.
func (e *Evaluator) applyFunction(fn *function.Function, args []value.Value) value.Value {
	frame := env.NewWithBindings(fn.Params, args, fn.Env)
	for _, def := range fn.Defines {
		if err := e.evalDefine(def, frame); err != nil {
			return err
		}
	}
	return e.Eval(fn.Result, frame)
}

// CreateError builds a runtime-kind error, stamped with the current
// parser's last-seen position when one is attached. Kept for parity with
// the teacher's CreateError convenience, for callers that don't have a
// specific AST node handy; nothing in this module calls it.
func (e *Evaluator) CreateError(format string, a ...interface{}) *value.Error {
	msg := fmt.Sprintf(format, a...)
	err := value.NewError(value.RuntimeError, "%s", msg)
	if e.Par != nil {
		err.Line, err.Column = e.Par.Lex.Line, e.Par.Lex.Column
	}
	return err
}
