package parser_test

import (
	"errors"
	"testing"

	"veriscript/internal/ast"
	"veriscript/internal/diag"
	"veriscript/internal/lexer"
	"veriscript/internal/parser"
	"veriscript/internal/source"
	"veriscript/internal/symbols"
	"veriscript/internal/types"
)

func buildSource(t *testing.T, input string, opts parser.Options) (*ast.Unit, *symbols.Table, error) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.vc", []byte(input)))
	lx := lexer.New(file, lexer.Options{})

	table := symbols.NewTable()
	unit, err := parser.Build(lx.Tokenize(), table, opts)
	return unit, table, err
}

func mustBuild(t *testing.T, input string) (*ast.Unit, *symbols.Table) {
	t.Helper()
	unit, table, err := buildSource(t, input, parser.DefaultOptions(nil))
	if err != nil {
		t.Fatalf("Build(%q): %v", input, err)
	}
	return unit, table
}

func TestVariableDeclarations(t *testing.T) {
	_, table := mustBuild(t, "int.32 a;\nsigned.16 b;\nint counter;\n")

	vars := table.Variables()
	if len(vars) != 3 {
		t.Fatalf("expected 3 variables, got %d", len(vars))
	}

	a := vars[0]
	if a.Name != "a" || a.Type.Width != 32 || a.Type.Signed() {
		t.Errorf("a = %+v", a)
	}
	b := vars[1]
	if b.Name != "b" || b.Type.Width != 16 || !b.Type.Signed() {
		t.Errorf("b = %+v", b)
	}
	counter := vars[2]
	if counter.Name != "counter" || counter.Type.Width != 32 {
		t.Errorf("counter = %+v", counter)
	}
}

func TestRedeclarationOverwrites(t *testing.T) {
	_, table := mustBuild(t, "int.32 a;\nsigned.8 a;\n")
	vars := table.Variables()
	if len(vars) != 1 {
		t.Fatalf("expected 1 variable, got %d", len(vars))
	}
	if vars[0].Type.Width != 8 || !vars[0].Type.Signed() {
		t.Errorf("second declaration must win: %+v", vars[0].Type)
	}
}

// Третий токен объявления не проверяется: курсор сдвигается на три
// позиции безусловно.
func TestDeclarationWithoutSemicolon(t *testing.T) {
	_, table := mustBuild(t, "int.8 x int.8 y;")
	vars := table.Variables()
	if len(vars) != 1 {
		t.Fatalf("expected 1 variable, got %d", len(vars))
	}
	// "int.8 x" съедает "int.8" третьим токеном; "y;" не образует
	// объявления и пропускается.
	if vars[0].Name != "x" {
		t.Errorf("declared %q, want x", vars[0].Name)
	}
}

func TestFunctionDeclaration(t *testing.T) {
	_, table := mustBuild(t,
		"function::concurrent int.32 add(int.32 x, int.32::sequential y) { result = x + y; }")

	fn, ok := table.Fn("add")
	if !ok {
		t.Fatal("function add not declared")
	}
	if fn.DefaultSync != types.SyncConcurrent {
		t.Errorf("DefaultSync = %v", fn.DefaultSync)
	}
	if fn.Return == nil || fn.Return.Width != 32 {
		t.Errorf("Return = %+v", fn.Return)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("params = %d, want 2", len(fn.Params))
	}
	if fn.Params[0].Name != "x" || fn.Params[0].Type.Sync != types.SyncUnspecified {
		t.Errorf("param x = %+v", fn.Params[0])
	}
	if fn.Params[1].Name != "y" || fn.Params[1].Type.Sync != types.SyncSequential {
		t.Errorf("param y = %+v", fn.Params[1])
	}
	if len(fn.Body) != 1 {
		t.Fatalf("body statements = %d, want 1", len(fn.Body))
	}
	stmt := fn.Body[0]
	if stmt.Kind != ast.StmtAssign || stmt.Assign.Target != "result" {
		t.Errorf("body[0] = %+v", stmt)
	}
	if got := stmt.Assign.Expr.Render(); got != "x + y" {
		t.Errorf("body expr = %q, want %q", got, "x + y")
	}
}

func TestFunctionDefaultsToConcurrent(t *testing.T) {
	_, table := mustBuild(t, "function int.8 inc(int.8 x) { result = x + 1; }")
	fn, ok := table.Fn("inc")
	if !ok {
		t.Fatal("function inc not declared")
	}
	if fn.DefaultSync != types.SyncConcurrent {
		t.Errorf("DefaultSync = %v, want concurrent", fn.DefaultSync)
	}
}

func TestFunctionWithoutReturnType(t *testing.T) {
	_, table := mustBuild(t, "function::sequential step() { state = state + 1; }")
	fn, ok := table.Fn("step")
	if !ok {
		t.Fatal("function step not declared")
	}
	if fn.Return != nil {
		t.Errorf("Return = %+v, want nil", fn.Return)
	}
	if fn.DefaultSync != types.SyncSequential {
		t.Errorf("DefaultSync = %v", fn.DefaultSync)
	}
}

func TestFunctionMissingName(t *testing.T) {
	_, _, err := buildSource(t, "function int.8 (int.8 x) { }", parser.DefaultOptions(nil))
	if err == nil {
		t.Fatal("expected error for function without a name")
	}
	if !errors.Is(err, parser.ErrStructure) {
		t.Errorf("error %v is not ErrStructure", err)
	}
}

func TestBadSyncModePropagates(t *testing.T) {
	_, _, err := buildSource(t, "function::clocked int.8 f(int.8 x) { }", parser.DefaultOptions(nil))
	if !errors.Is(err, types.ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestBadParamTypePropagates(t *testing.T) {
	_, _, err := buildSource(t, "function int.8 f(int.q x) { }", parser.DefaultOptions(nil))
	if !errors.Is(err, types.ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestParamWithoutNameDropped(t *testing.T) {
	_, table := mustBuild(t, "function int.8 f(int.8, int.8 b) { result = b; }")
	fn, ok := table.Fn("f")
	if !ok {
		t.Fatal("function f not declared")
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "b" {
		t.Errorf("params = %+v, want only b", fn.Params)
	}
}

func TestTopLevelAssignment(t *testing.T) {
	unit, _ := mustBuild(t, "int.8 a;\na = a + 1;\n")
	if len(unit.Stmts) != 1 {
		t.Fatalf("statements = %d, want 1", len(unit.Stmts))
	}
	s := unit.Stmts[0].Assign
	if s.Target != "a" {
		t.Errorf("target = %q", s.Target)
	}
	if got := s.Expr.Render(); got != "a + 1" {
		t.Errorf("expr = %q", got)
	}
}

func TestAssignmentWithCall(t *testing.T) {
	unit, _ := mustBuild(t, "a = add(b, counter);")
	if len(unit.Stmts) != 1 {
		t.Fatalf("statements = %d, want 1", len(unit.Stmts))
	}
	expr := unit.Stmts[0].Assign.Expr
	if len(expr.Terms) != 1 || expr.Terms[0].Kind != ast.TermCall {
		t.Fatalf("terms = %+v", expr.Terms)
	}
	call := expr.Terms[0].Call
	if call.Callee != "add" {
		t.Errorf("callee = %q", call.Callee)
	}
	if len(call.Args) != 2 || call.Args[0] != "b" || call.Args[1] != "counter" {
		t.Errorf("args = %v", call.Args)
	}
	if got := expr.Render(); got != "add(b, counter)" {
		t.Errorf("render = %q", got)
	}
}

// Вложенный вызов остаётся сырым текстом аргумента: вглубь не разбираем.
func TestNestedCallStaysRaw(t *testing.T) {
	unit, _ := mustBuild(t, "a = outer(inner(x), y);")
	call := unit.Stmts[0].Assign.Expr.Terms[0].Call
	if call.Callee != "outer" {
		t.Fatalf("callee = %q", call.Callee)
	}
	if len(call.Args) != 2 {
		t.Fatalf("args = %v", call.Args)
	}
	if call.Args[0] != "inner ( x )" || call.Args[1] != "y" {
		t.Errorf("args = %v", call.Args)
	}
}

func TestMixedExpression(t *testing.T) {
	unit, _ := mustBuild(t, "a = ( b + 1 ) * f(c);")
	if got := unit.Stmts[0].Assign.Expr.Render(); got != "( b + 1 ) * f(c)" {
		t.Errorf("render = %q", got)
	}
}

func TestControlFlowKeywordsSkipped(t *testing.T) {
	unit, table := mustBuild(t, "int.8 a;\nif ( a ) { }\na = 1;\nwhile ( a ) { }\n")
	if len(unit.Stmts) != 1 {
		t.Fatalf("statements = %d, want 1", len(unit.Stmts))
	}
	if _, ok := table.Var("a"); !ok {
		t.Error("variable a lost while skipping control flow")
	}
}

func TestNonPermissiveReportsSkips(t *testing.T) {
	bag := diag.NewBag(32)
	opts := parser.Options{Permissive: false, Reporter: diag.BagReporter{Bag: bag}}
	_, _, err := buildSource(t, "int.8 a;\nreturn a;\n", opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bag.HasWarnings() {
		t.Error("non-permissive mode must report skipped tokens")
	}
	if bag.HasErrors() {
		t.Error("skipped tokens are never errors")
	}
}

func TestPermissiveStaysSilent(t *testing.T) {
	bag := diag.NewBag(32)
	opts := parser.Options{Permissive: true, Reporter: diag.BagReporter{Bag: bag}}
	_, _, err := buildSource(t, "int.8 a;\nreturn a;\n", opts)
	if err != nil {
		t.Fatal(err)
	}
	if bag.Len() != 0 {
		t.Errorf("permissive mode produced %d diagnostics", bag.Len())
	}
}

func TestDeclarationsVisibleAcrossFunctions(t *testing.T) {
	_, table := mustBuild(t,
		"int.8 shared;\nfunction int.8 f(int.8 x) { result = shared; }\nshared = 1;\n")
	if _, ok := table.Var("shared"); !ok {
		t.Error("global must stay visible")
	}
	if _, ok := table.Fn("f"); !ok {
		t.Error("function must be declared")
	}
}
