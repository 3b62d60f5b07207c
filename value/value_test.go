/*
File    : minilisp/value/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/minilisp/value"
)

func TestInteger_String(t *testing.T) {
	assert.Equal(t, "42", (&value.Integer{Val: 42}).String())
	assert.Equal(t, "-7", (&value.Integer{Val: -7}).String())
}

func TestBoolean_String(t *testing.T) {
	assert.Equal(t, "#t", (&value.Boolean{Val: true}).String())
	assert.Equal(t, "#f", (&value.Boolean{Val: false}).String())
}

func TestIsError(t *testing.T) {
	assert.True(t, value.IsError(value.NewError(value.TypeError, "boom")))
	assert.False(t, value.IsError(&value.Integer{Val: 1}))
	assert.False(t, value.IsError(nil))
}

func TestNewError_FormatsMessage(t *testing.T) {
	err := value.NewError(value.NameError, "undefined symbol %q", "foo")
	assert.Equal(t, value.NameError, err.ErrKind)
	assert.Equal(t, `undefined symbol "foo"`, err.Message)
}

func TestError_StringIncludesPositionWhenSet(t *testing.T) {
	err := value.NewError(value.SyntaxError, "bad token")
	assert.Equal(t, "syntax error: bad token", err.String())

	err.Line, err.Column = 3, 7
	assert.Equal(t, "[3:7] syntax error: bad token", err.String())
}

func TestError_ImplementsGoError(t *testing.T) {
	var e error = value.NewError(value.RuntimeError, "oops")
	assert.EqualError(t, e, "runtime error: oops")
}

func TestTruthy(t *testing.T) {
	assert.True(t, value.Truthy(&value.Boolean{Val: true}))
	assert.False(t, value.Truthy(&value.Boolean{Val: false}))
	assert.False(t, value.Truthy(&value.Integer{Val: 1}))
}
