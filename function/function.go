/*
File    : minilisp/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function implements the closure value: a user-defined function
// that bundles its ordered parameter names, its body AST (zero or more
// local Defines followed by one result expression), and the environment
// active at the point the `fun` expression was evaluated. Capturing that
// environment by shared pointer — not a copy — is what makes lexical
// scoping and mutually-recursive top-level definitions work: a later
// `define` in the capturing frame is visible to every closure that
// captured it (spec §3, §5).
package function

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/minilisp/env"
	"github.com/akashmaji946/minilisp/parser"
	"github.com/akashmaji946/minilisp/value"
)

// Function is a closure value: it owns its parameter names and body AST,
// and shares its captured environment with whatever frame defined it.
type Function struct {
	Params  []string
	Defines []*parser.Define
	Result  parser.Node
	Env     *env.Environment
}

func (f *Function) Kind() value.Kind { return value.FunctionKind }

// String renders a compact debug form, e.g. "<func(x, y)>".
func (f *Function) String() string {
	return fmt.Sprintf("<func(%s)>", strings.Join(f.Params, ", "))
}
