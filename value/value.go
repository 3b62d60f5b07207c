/*
File    : minilisp/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value defines the runtime value representation for mini-lisp: a
// closed, three-variant tagged union (Integer, Boolean, Function) plus an
// Error sentinel value used to thread evaluation failures back up through
// the evaluator without Go panics. Integer and Boolean are disjoint kinds;
// no implicit coercion ever occurs between them or with Function.
package value

import "fmt"

// Kind identifies which of the three runtime value variants a Value holds.
type Kind string

const (
	// IntegerKind marks a signed whole-number value.
	IntegerKind Kind = "int"
	// BooleanKind marks a true/false value.
	BooleanKind Kind = "bool"
	// FunctionKind marks a closure value.
	FunctionKind Kind = "func"
	// ErrorKind marks the error sentinel (not a language-level value kind;
	// it never appears as an operand, only as an evaluation result that
	// aborts the walk).
	ErrorKind Kind = "error"
)

// Value is the interface every runtime value implements.
type Value interface {
	// Kind reports which of Integer/Boolean/Function/Error this value is.
	Kind() Kind
	// String returns a human-readable rendering, used by print-num/
	// print-bool and REPL result display.
	String() string
}

// Integer is a signed 64-bit whole number.
type Integer struct {
	Val int64
}

func (i *Integer) Kind() Kind     { return IntegerKind }
func (i *Integer) String() string { return fmt.Sprintf("%d", i.Val) }

// Boolean is a true/false value, printed in mini-lisp's own #t/#f notation.
type Boolean struct {
	Val bool
}

func (b *Boolean) Kind() Kind { return BooleanKind }
func (b *Boolean) String() string {
	if b.Val {
		return "#t"
	}
	return "#f"
}

// ErrKind classifies why evaluation aborted, per spec §7: syntax, name,
// type, or runtime.
type ErrKind string

const (
	SyntaxError  ErrKind = "syntax error"
	NameError    ErrKind = "name error"
	TypeError    ErrKind = "type error"
	RuntimeError ErrKind = "runtime error"
)

// Error is the sentinel value returned by Eval to signal an aborted
// evaluation. It is a Value so it can flow through the same return path as
// every other result; IsError distinguishes it from real results.
type Error struct {
	ErrKind ErrKind
	Message string
	Line    int
	Column  int
}

func (e *Error) Kind() Kind { return ErrorKind }
func (e *Error) String() string {
	if e.Line == 0 && e.Column == 0 {
		return fmt.Sprintf("%s: %s", e.ErrKind, e.Message)
	}
	return fmt.Sprintf("[%d:%d] %s: %s", e.Line, e.Column, e.ErrKind, e.Message)
}

// Error implements the built-in Go error interface too, so an *Error can be
// returned or wrapped through ordinary Go error-handling paths at the
// process boundary (main/repl) without a second representation.
func (e *Error) Error() string { return e.String() }

// IsError reports whether v is the error sentinel.
func IsError(v Value) bool {
	if v == nil {
		return false
	}
	return v.Kind() == ErrorKind
}

// NewError builds an *Error with the given kind and formatted message.
func NewError(kind ErrKind, format string, args ...interface{}) *Error {
	return &Error{ErrKind: kind, Message: fmt.Sprintf(format, args...)}
}

// Truthy reports whether v is boolean #t. Callers must already have
// type-checked v as Boolean; Truthy does not itself enforce that.
func Truthy(v Value) bool {
	b, ok := v.(*Boolean)
	return ok && b.Val
}
