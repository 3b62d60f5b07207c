/*
File    : minilisp/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/minilisp/parser"
	"github.com/akashmaji946/minilisp/value"
)

func TestParser_SimpleArithmetic(t *testing.T) {
	prog, err := parser.NewParser("(+ 1 2 3)").Parse()
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)

	b, ok := prog.Statements[0].(*parser.Builtin)
	require.True(t, ok)
	assert.Equal(t, "+", b.Op)
	assert.Len(t, b.Args, 3)
}

func TestParser_Define(t *testing.T) {
	prog, err := parser.NewParser("(define x 10)").Parse()
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)

	d, ok := prog.Statements[0].(*parser.Define)
	require.True(t, ok)
	assert.Equal(t, "x", d.Name)
	lit, ok := d.Expr.(*parser.IntLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(10), lit.Value)
}

func TestParser_FunWithLocalDefines(t *testing.T) {
	src := "(fun (x y) (define z (+ x y)) (* z z))"
	prog, err := parser.NewParser(src).Parse()
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)

	f, ok := prog.Statements[0].(*parser.Fun)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, f.Params)
	require.Len(t, f.Defines, 1)
	assert.Equal(t, "z", f.Defines[0].Name)
	_, ok = f.Result.(*parser.Builtin)
	assert.True(t, ok)
}

func TestParser_IfSpecialForm(t *testing.T) {
	prog, err := parser.NewParser("(if #t 1 2)").Parse()
	require.NoError(t, err)
	iff, ok := prog.Statements[0].(*parser.If)
	require.True(t, ok)
	_, ok = iff.Test.(*parser.BoolLiteral)
	assert.True(t, ok)
}

func TestParser_CallWithImmediatelyInvokedFunLiteral(t *testing.T) {
	prog, err := parser.NewParser("((fun (x) x) 5)").Parse()
	require.NoError(t, err)
	call, ok := prog.Statements[0].(*parser.Call)
	require.True(t, ok)
	_, ok = call.Callee.(*parser.Fun)
	assert.True(t, ok)
	require.Len(t, call.Args, 1)
}

func TestParser_DuplicateParamNameIsSyntaxError(t *testing.T) {
	_, err := parser.NewParser("(fun (x x) x)").Parse()
	require.Error(t, err)
	ev, ok := err.(*value.Error)
	require.True(t, ok)
	assert.Equal(t, value.SyntaxError, ev.ErrKind)
}

func TestParser_BinaryOnlyOperatorRejectsWrongArity(t *testing.T) {
	_, err := parser.NewParser("(- 1 2 3)").Parse()
	require.Error(t, err)
}

func TestParser_VariadicPlusRejectsSingleOperand(t *testing.T) {
	_, err := parser.NewParser("(+ 1)").Parse()
	require.Error(t, err)
}

func TestParser_NotIsUnary(t *testing.T) {
	prog, err := parser.NewParser("(not #t)").Parse()
	require.NoError(t, err)
	b, ok := prog.Statements[0].(*parser.Builtin)
	require.True(t, ok)
	assert.Equal(t, "not", b.Op)
	assert.Len(t, b.Args, 1)
}

func TestParser_UnterminatedFormIsSyntaxError(t *testing.T) {
	_, err := parser.NewParser("(+ 1 2").Parse()
	require.Error(t, err)
}

func TestParser_ReservedWordCannotAppearAsBareSymbol(t *testing.T) {
	_, err := parser.NewParser("define").Parse()
	require.Error(t, err)
}
