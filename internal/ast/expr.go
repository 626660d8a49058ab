package ast

import (
	"strings"

	"veriscript/internal/source"
)

// TermKind tags one element of a flat expression sequence.
type TermKind uint8

const (
	// TermIdent is a bare identifier reference.
	TermIdent TermKind = iota
	// TermNumber is a decimal literal.
	TermNumber
	// TermOperator is a binary or comparison operator.
	TermOperator
	// TermOpenParen is a grouping '(' that is not part of a call.
	TermOpenParen
	// TermCloseParen is a grouping ')' that is not part of a call.
	TermCloseParen
	// TermCall is `callee(args)`; arguments are raw comma-split texts
	// and are never resolved recursively.
	TermCall
)

// Term is one element of an expression. Text carries the surface text
// for every kind except TermCall, which uses Call.
type Term struct {
	Kind TermKind
	Text string
	Call *CallTerm
}

// CallTerm captures a call site. Args keep the argument order from the
// source; each entry is the space-joined token text of one argument.
type CallTerm struct {
	Callee string
	Args   []string
	Span   source.Span
}

// Render formats the call back to its surface form.
func (c *CallTerm) Render() string {
	return c.Callee + "(" + strings.Join(c.Args, ", ") + ")"
}

// Expr is an ordered term sequence. No precedence, no nesting: the
// expression grammar of veriscript is a flat token list.
type Expr struct {
	Terms []Term
}

// Render joins the terms with single spaces, preserving source order.
func (e Expr) Render() string {
	parts := make([]string, 0, len(e.Terms))
	for _, term := range e.Terms {
		if term.Kind == TermCall {
			parts = append(parts, term.Call.Render())
			continue
		}
		parts = append(parts, term.Text)
	}
	return strings.Join(parts, " ")
}

// Calls returns pointers to the call terms in order, for in-place
// rewriting by the resolver.
func (e *Expr) Calls() []*Term {
	var out []*Term
	for i := range e.Terms {
		if e.Terms[i].Kind == TermCall {
			out = append(out, &e.Terms[i])
		}
	}
	return out
}
