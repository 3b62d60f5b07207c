/*
File    : minilisp/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/minilisp/eval"
	"github.com/akashmaji946/minilisp/parser"
	"github.com/akashmaji946/minilisp/value"
)

// run parses src and evaluates it against a fresh global environment,
// returning the result sequence and any error.
func run(t *testing.T, src string) ([]value.Value, *value.Error) {
	t.Helper()
	p := parser.NewParser(src)
	prog, err := p.Parse()
	require.NoError(t, err)

	e := eval.NewEvaluator()
	e.SetParser(p)
	return e.Run(prog, e.NewGlobalEnv())
}

func TestEvaluator_Arithmetic(t *testing.T) {
	results, errv := run(t, "(+ 1 2 3)")
	require.Nil(t, errv)
	require.Len(t, results, 1)
	assert.Equal(t, &value.Integer{Val: 6}, results[0])
}

func TestEvaluator_PrintNum(t *testing.T) {
	p := parser.NewParser("(print-num (+ 1 (* 2 3) (/ 10 3) (mod 10 3)))")
	prog, err := p.Parse()
	require.NoError(t, err)

	var buf bytes.Buffer
	e := eval.NewEvaluator()
	e.SetWriter(&buf)
	results, errv := e.Run(prog, e.NewGlobalEnv())
	require.Nil(t, errv)
	assert.Empty(t, results, "print-num contributes no result value")
	assert.Equal(t, "10\n", buf.String())
}

func TestEvaluator_IfTakesOnlyTheTakenBranch(t *testing.T) {
	results, errv := run(t, "(if (< 1 2) (+ 1 2 3) (* 1 2 3 4 5))")
	require.Nil(t, errv)
	require.Len(t, results, 1)
	assert.Equal(t, &value.Integer{Val: 6}, results[0])
}

func TestEvaluator_SelfRecursiveFactorial(t *testing.T) {
	src := `
	(define fact (fun (n)
		(if (= n 0)
			1
			(* n (fact (- n 1))))))
	(fact 4)
	`
	results, errv := run(t, src)
	require.Nil(t, errv)
	require.Len(t, results, 1)
	assert.Equal(t, &value.Integer{Val: 24}, results[0])
}

func TestEvaluator_ClosureCapturesDefiningEnvironment(t *testing.T) {
	src := `
	(define x 10)
	(define add-x (fun (y) (+ x y)))
	(define z (fun (w) (add-x w)))
	(z 1)
	`
	results, errv := run(t, src)
	require.Nil(t, errv)
	require.Len(t, results, 1)
	assert.Equal(t, &value.Integer{Val: 11}, results[0])
}

func TestEvaluator_CallFrameShadowingDoesNotLeak(t *testing.T) {
	src := `
	(define x 0)
	(define shadow (fun (x) (* x x)))
	(shadow 10)
	x
	`
	results, errv := run(t, src)
	require.Nil(t, errv)
	require.Len(t, results, 2)
	assert.Equal(t, &value.Integer{Val: 100}, results[0])
	assert.Equal(t, &value.Integer{Val: 0}, results[1])
}

func TestEvaluator_NoShortCircuitSurfacesTypeErrorInEveryOperand(t *testing.T) {
	_, errv := run(t, "(+ 1 2 3 (or #t #f))")
	require.NotNil(t, errv)
	assert.Equal(t, value.TypeError, errv.ErrKind)
}

func TestEvaluator_CallingUndefinedNameIsNameError(t *testing.T) {
	_, errv := run(t, "(foo 1)")
	require.NotNil(t, errv)
	assert.Equal(t, value.NameError, errv.ErrKind)
}

func TestEvaluator_DivisionByZeroIsRuntimeError(t *testing.T) {
	_, errv := run(t, "(/ 1 0)")
	require.NotNil(t, errv)
	assert.Equal(t, value.RuntimeError, errv.ErrKind)
}

func TestEvaluator_DivisionTruncatesTowardZero(t *testing.T) {
	results, errv := run(t, "(/ -7 2)")
	require.Nil(t, errv)
	require.Len(t, results, 1)
	assert.Equal(t, &value.Integer{Val: -3}, results[0])
}

func TestEvaluator_ModUsesFloorConventionForMixedSigns(t *testing.T) {
	results, errv := run(t, "(mod -7 3)")
	require.Nil(t, errv)
	require.Len(t, results, 1)
	assert.Equal(t, &value.Integer{Val: 2}, results[0])
}

func TestEvaluator_CallingNonFunctionIsTypeError(t *testing.T) {
	src := `
	(define x 5)
	(x 1)
	`
	_, errv := run(t, src)
	require.NotNil(t, errv)
	assert.Equal(t, value.TypeError, errv.ErrKind)
}

func TestEvaluator_WrongArityIsTypeError(t *testing.T) {
	src := `
	(define f (fun (a b) (+ a b)))
	(f 1)
	`
	_, errv := run(t, src)
	require.NotNil(t, errv)
	assert.Equal(t, value.TypeError, errv.ErrKind)
}

func TestEvaluator_EqualityIsVariadic(t *testing.T) {
	results, errv := run(t, "(= 3 3 3)")
	require.Nil(t, errv)
	require.Len(t, results, 1)
	assert.Equal(t, &value.Boolean{Val: true}, results[0])
}

func TestEvaluator_PrintBool(t *testing.T) {
	p := parser.NewParser("(print-bool (and #t #f))")
	prog, err := p.Parse()
	require.NoError(t, err)

	var buf bytes.Buffer
	e := eval.NewEvaluator()
	e.SetWriter(&buf)
	results, errv := e.Run(prog, e.NewGlobalEnv())
	require.Nil(t, errv)
	assert.Empty(t, results)
	assert.Equal(t, "#f\n", buf.String())
}
