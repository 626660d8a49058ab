// Package ast defines the veriscript abstract syntax model.
//
// The model is deliberately flat: expressions are ordered term sequences,
// not precedence trees, and the only statement form is assignment. The
// builder lives in internal/parser; the shared symbol table in
// internal/symbols.
package ast

import (
	"veriscript/internal/source"
	"veriscript/internal/types"
)

// Variable is a declared name with its parsed type, either a global or
// a function parameter.
type Variable struct {
	Name string
	Type types.Descriptor
	Span source.Span
}

// Function is a declared hardware function. Identity is the name;
// redeclaration overwrites. DefaultSync applies to calls when no
// parameter type overrides it.
type Function struct {
	Name        string
	Params      []Variable
	Return      *types.Descriptor
	Body        []Stmt
	DefaultSync types.SyncMode
	Span        source.Span
}

// Unit is the result of building one source file: the ordered top-level
// statements. Declarations live in the shared symbol table.
type Unit struct {
	Stmts []Stmt
}
