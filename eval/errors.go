/*
File    : minilisp/eval/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/minilisp/parser"
	"github.com/akashmaji946/minilisp/value"
)

// errorAt builds a *value.Error of the given kind, stamped with node's
// source position when available. Position is advisory only — spec §4.2
// does not require message or position fidelity.
func errorAt(node parser.Node, kind value.ErrKind, format string, args ...interface{}) *value.Error {
	e := value.NewError(kind, format, args...)
	if node != nil {
		pos := node.Position()
		e.Line, e.Column = pos.Line, pos.Column
	}
	return e
}
