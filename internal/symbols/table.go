// Package symbols holds the shared compilation context threaded through
// the pipeline: declared variables and functions, the pending sequential
// instances minted by the call resolver, and the instance counter.
//
// The namespace is flat and global: function parameters shadow nothing,
// declarations are visible to every later statement, and redeclaring a
// name overwrites the earlier entry while keeping its declaration-order
// position. One Table lives exactly as long as one compilation; the
// driver creates a fresh Table per compile call, keeping the pipeline
// reentrant.
package symbols

import (
	"fmt"

	"veriscript/internal/ast"
)

// PendingInstance records one sequential call awaiting instantiation:
// the callee, the minted instance name and the raw argument texts.
type PendingInstance struct {
	Fn   *ast.Function
	Name string
	Args []string
}

// Table is the mutable compilation context. Exactly one pipeline stage
// writes to it at a time; no locking is needed.
type Table struct {
	vars     map[string]*ast.Variable
	varOrder []string
	fns      map[string]*ast.Function
	fnOrder  []string

	// Pending holds sequential instances in resolution order; the code
	// generator consumes it as-is.
	Pending     []PendingInstance
	callCounter int

	// InClockedBlock tracks whether assignment rendering currently
	// targets a reset-synchronous always block.
	InClockedBlock bool
}

// NewTable creates an empty context for one compilation.
func NewTable() *Table {
	return &Table{
		vars: make(map[string]*ast.Variable),
		fns:  make(map[string]*ast.Function),
	}
}

// DeclareVar inserts or overwrites a variable. An overwrite keeps the
// original declaration-order position and the new type.
func (t *Table) DeclareVar(v *ast.Variable) {
	if _, exists := t.vars[v.Name]; !exists {
		t.varOrder = append(t.varOrder, v.Name)
	}
	t.vars[v.Name] = v
}

// Var looks up a declared variable.
func (t *Table) Var(name string) (*ast.Variable, bool) {
	v, ok := t.vars[name]
	return v, ok
}

// Variables returns the declared variables in declaration order.
func (t *Table) Variables() []*ast.Variable {
	out := make([]*ast.Variable, 0, len(t.varOrder))
	for _, name := range t.varOrder {
		out = append(out, t.vars[name])
	}
	return out
}

// DeclareFn inserts or overwrites a function, same ordering rule as
// DeclareVar.
func (t *Table) DeclareFn(fn *ast.Function) {
	if _, exists := t.fns[fn.Name]; !exists {
		t.fnOrder = append(t.fnOrder, fn.Name)
	}
	t.fns[fn.Name] = fn
}

// Fn looks up a declared function.
func (t *Table) Fn(name string) (*ast.Function, bool) {
	fn, ok := t.fns[name]
	return fn, ok
}

// Functions returns the declared functions in declaration order.
func (t *Table) Functions() []*ast.Function {
	out := make([]*ast.Function, 0, len(t.fnOrder))
	for _, name := range t.fnOrder {
		out = append(out, t.fns[name])
	}
	return out
}

// MintInstance reserves a globally unique instance name for a
// sequential call to fn and records the pending instantiation.
func (t *Table) MintInstance(fn *ast.Function, args []string) string {
	name := fmt.Sprintf("%s_inst_%d", fn.Name, t.callCounter)
	t.callCounter++
	t.Pending = append(t.Pending, PendingInstance{Fn: fn, Name: name, Args: args})
	return name
}
