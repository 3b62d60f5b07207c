/*
File    : minilisp/eval/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// This file implements the thirteen named built-in operators of spec §6.2:
// arithmetic (+ - * / mod), comparison (> < =), logical (and or not), and
// print (print-num print-bool). Every built-in evaluates all of its
// argument expressions left-to-right before applying its operand-kind
// check, so that a type error in any operand surfaces even when the
// result would not otherwise depend on that operand (spec §4.3, and the
// "and"/"or" Open Question resolved in DESIGN.md: no short-circuiting).
package eval

import (
	"fmt"

	"github.com/akashmaji946/minilisp/env"
	"github.com/akashmaji946/minilisp/parser"
	"github.com/akashmaji946/minilisp/value"
)

// evalBuiltin evaluates every argument, then dispatches on the operator
// name. Arity has already been enforced by the parser (spec §4.2: the
// parser performs zero semantic checks, but arity here is a concrete
// grammar shape, not a semantic check — `-`/`/`/`mod`/`>`/`<` are
// grammar-fixed at two operands, `not` at one).
func (e *Evaluator) evalBuiltin(n *parser.Builtin, en *env.Environment) value.Value {
	args := make([]value.Value, len(n.Args))
	for i, argNode := range n.Args {
		v := e.Eval(argNode, en)
		if value.IsError(v) {
			return v
		}
		args[i] = v
	}

	switch n.Op {
	case "+":
		return evalIntFold(n, args, 0, func(acc, x int64) int64 { return acc + x })
	case "*":
		return evalIntFold(n, args, 1, func(acc, x int64) int64 { return acc * x })
	case "-":
		ints, err := requireInts(n, args)
		if err != nil {
			return err
		}
		return &value.Integer{Val: ints[0] - ints[1]}
	case "/":
		ints, err := requireInts(n, args)
		if err != nil {
			return err
		}
		if ints[1] == 0 {
			return errorAt(n, value.RuntimeError, "division by zero")
		}
		return &value.Integer{Val: ints[0] / ints[1]} // Go's / truncates toward zero
	case "mod":
		ints, err := requireInts(n, args)
		if err != nil {
			return err
		}
		if ints[1] == 0 {
			return errorAt(n, value.RuntimeError, "division by zero")
		}
		return &value.Integer{Val: floorMod(ints[0], ints[1])}
	case ">":
		ints, err := requireInts(n, args)
		if err != nil {
			return err
		}
		return &value.Boolean{Val: ints[0] > ints[1]}
	case "<":
		ints, err := requireInts(n, args)
		if err != nil {
			return err
		}
		return &value.Boolean{Val: ints[0] < ints[1]}
	case "=":
		ints, err := requireInts(n, args)
		if err != nil {
			return err
		}
		for _, x := range ints[1:] {
			if x != ints[0] {
				return &value.Boolean{Val: false}
			}
		}
		return &value.Boolean{Val: true}
	case "and":
		bools, err := requireBools(n, args)
		if err != nil {
			return err
		}
		result := true
		for _, b := range bools {
			result = result && b
		}
		return &value.Boolean{Val: result}
	case "or":
		bools, err := requireBools(n, args)
		if err != nil {
			return err
		}
		result := false
		for _, b := range bools {
			result = result || b
		}
		return &value.Boolean{Val: result}
	case "not":
		bools, err := requireBools(n, args)
		if err != nil {
			return err
		}
		return &value.Boolean{Val: !bools[0]}
	case "print-num":
		return e.printNum(n, args[0])
	case "print-bool":
		return e.printBool(n, args[0])
	default:
		return errorAt(n, value.RuntimeError, "unknown builtin %q", n.Op)
	}
}

// floorMod computes Python-style floor modulo, matching original_source's
// `%` (ground truth for `mod`'s sign convention, which spec §4.3 leaves
// unspecified beyond truncation for `/`): the result's sign always matches
// the divisor's, unlike Go's truncated-toward-zero `%`.
func floorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// evalIntFold implements the variadic +/* pattern: it checks that every
// already-evaluated operand is an integer, then does an identity-seeded,
// left-to-right fold over them.
func evalIntFold(n *parser.Builtin, args []value.Value, identity int64, step func(acc, x int64) int64) value.Value {
	ints, err := requireInts(n, args)
	if err != nil {
		return err
	}
	acc := identity
	for _, x := range ints {
		acc = step(acc, x)
	}
	return &value.Integer{Val: acc}
}

// requireInts checks that every arg is an Integer and unwraps their values,
// or returns a type error naming the offending argument.
func requireInts(n *parser.Builtin, args []value.Value) ([]int64, *value.Error) {
	ints := make([]int64, len(args))
	for i, a := range args {
		iv, ok := a.(*value.Integer)
		if !ok {
			return nil, errorAt(n, value.TypeError, "'%s' requires integer operands, got %s at position %d", n.Op, a.Kind(), i+1)
		}
		ints[i] = iv.Val
	}
	return ints, nil
}

// requireBools checks that every arg is a Boolean and unwraps their values,
// or returns a type error naming the offending argument.
func requireBools(n *parser.Builtin, args []value.Value) ([]bool, *value.Error) {
	bools := make([]bool, len(args))
	for i, a := range args {
		bv, ok := a.(*value.Boolean)
		if !ok {
			return nil, errorAt(n, value.TypeError, "'%s' requires boolean operands, got %s at position %d", n.Op, a.Kind(), i+1)
		}
		bools[i] = bv.Val
	}
	return bools, nil
}

// printNum requires an integer operand, writes it as decimal + newline to
// e.Writer, and — since print-num has "no result value" (spec §6.2) at the
// top level — returns the printed value itself so that print-num remains
// usable as an ordinary Builtin expression if ever nested.
func (e *Evaluator) printNum(n *parser.Builtin, arg value.Value) value.Value {
	iv, ok := arg.(*value.Integer)
	if !ok {
		return errorAt(n, value.TypeError, "'print-num' requires an integer operand, got %s", arg.Kind())
	}
	fmt.Fprintf(e.Writer, "%d\n", iv.Val)
	return iv
}

// printBool requires a boolean operand, writes "#t"/"#f" + newline to
// e.Writer, and returns the printed value.
func (e *Evaluator) printBool(n *parser.Builtin, arg value.Value) value.Value {
	bv, ok := arg.(*value.Boolean)
	if !ok {
		return errorAt(n, value.TypeError, "'print-bool' requires a boolean operand, got %s", arg.Kind())
	}
	fmt.Fprintf(e.Writer, "%s\n", bv.String())
	return bv
}
