// Package resolver rewrites call terms according to their sync mode.
//
// A call is sequential when any argument position maps onto a parameter
// whose type carries ::sequential, otherwise the function's own default
// mode decides. Sequential calls mint a hardware instance in the symbol
// table and the call term is replaced by a reference to the instance
// result register; concurrent calls stay inline. Calls to undeclared
// functions are left untouched.
//
// Аргументы вызова вглубь не резолвятся: вложенный вызов остаётся
// сырым текстом аргумента.
package resolver

import (
	"veriscript/internal/ast"
	"veriscript/internal/diag"
	"veriscript/internal/symbols"
	"veriscript/internal/types"
)

type Options struct {
	// Permissive silences informational diagnostics about resolved
	// calls.
	Permissive bool
	// Reporter может быть nil.
	Reporter diag.Reporter
}

// DefaultOptions returns the tolerant configuration used by the driver.
func DefaultOptions(reporter diag.Reporter) Options {
	return Options{Permissive: true, Reporter: reporter}
}

// ResolveUnit resolves every call in the unit: top-level statements
// first, then function bodies in declaration order. The order is
// observable through the minted instance counters.
func ResolveUnit(unit *ast.Unit, table *symbols.Table, opts Options) {
	for i := range unit.Stmts {
		resolveStmt(&unit.Stmts[i], table, opts)
	}
	for _, fn := range table.Functions() {
		for i := range fn.Body {
			resolveStmt(&fn.Body[i], table, opts)
		}
	}
}

func resolveStmt(stmt *ast.Stmt, table *symbols.Table, opts Options) {
	if stmt.Kind != ast.StmtAssign {
		return
	}
	ResolveExpr(&stmt.Assign.Expr, table, opts)
}

// ResolveExpr rewrites the sequential call terms of one expression in
// place.
func ResolveExpr(expr *ast.Expr, table *symbols.Table, opts Options) {
	for _, term := range expr.Calls() {
		call := term.Call
		fn, ok := table.Fn(call.Callee)
		if !ok {
			continue
		}

		if effectiveMode(fn, call.Args) != types.SyncSequential {
			if !opts.Permissive && opts.Reporter != nil {
				opts.Reporter.Report(diag.GenConcurrentCall, diag.SevInfo, call.Span,
					"call to "+call.Callee+" stays inline (concurrent)")
			}
			continue
		}

		inst := table.MintInstance(fn, call.Args)
		*term = ast.Term{Kind: ast.TermIdent, Text: inst + "_result"}
	}
}

// effectiveMode decides the sync mode of one call site. A ::sequential
// parameter at an occupied argument position overrides the function
// default.
func effectiveMode(fn *ast.Function, args []string) types.SyncMode {
	for i, p := range fn.Params {
		if i >= len(args) {
			break
		}
		if p.Type.Sync == types.SyncSequential {
			return types.SyncSequential
		}
	}
	return fn.DefaultSync
}
