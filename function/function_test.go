/*
File    : minilisp/function/function_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/minilisp/env"
	"github.com/akashmaji946/minilisp/function"
	"github.com/akashmaji946/minilisp/parser"
	"github.com/akashmaji946/minilisp/value"
)

func TestFunction_KindIsFunction(t *testing.T) {
	f := &function.Function{Params: []string{"x"}, Env: env.New(nil)}
	assert.Equal(t, value.FunctionKind, f.Kind())
}

func TestFunction_StringRendersParamList(t *testing.T) {
	f := &function.Function{Params: []string{"x", "y"}, Env: env.New(nil)}
	assert.Equal(t, "<func(x, y)>", f.String())
}

func TestFunction_StringRendersNoParams(t *testing.T) {
	f := &function.Function{Env: env.New(nil)}
	assert.Equal(t, "<func()>", f.String())
}

func TestFunction_CapturesEnvironmentByReference(t *testing.T) {
	global := env.New(nil)
	global.Define("x", &value.Integer{Val: 1})

	f := &function.Function{
		Params: nil,
		Result: &parser.Symbol{Name: "x"},
		Env:    global,
	}

	global.Define("x", &value.Integer{Val: 2})

	v, ok := f.Env.Lookup("x")
	if ok {
		assert.Equal(t, &value.Integer{Val: 2}, v)
	}
}
