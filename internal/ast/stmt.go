package ast

import (
	"veriscript/internal/source"
)

// StmtKind tags the statement variants. Assignment is currently the
// only form the builder recognizes; the tag exists so new statement
// forms extend the variant instead of adding open dispatch.
type StmtKind uint8

const (
	// StmtAssign is `target = expression ;`.
	StmtAssign StmtKind = iota
)

func (k StmtKind) String() string {
	switch k {
	case StmtAssign:
		return "assign"
	}
	return "unknown"
}

// Stmt is a tagged statement variant.
type Stmt struct {
	Kind   StmtKind
	Assign *AssignStmt
}

// AssignStmt assigns an expression to a named register.
type AssignStmt struct {
	Target string
	Expr   Expr
	Span   source.Span
}

// NewAssign wraps an assignment into the variant.
func NewAssign(target string, expr Expr, span source.Span) Stmt {
	return Stmt{
		Kind:   StmtAssign,
		Assign: &AssignStmt{Target: target, Expr: expr, Span: span},
	}
}
