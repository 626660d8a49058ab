package symbols_test

import (
	"testing"

	"veriscript/internal/ast"
	"veriscript/internal/symbols"
	"veriscript/internal/types"
)

func mustParse(t *testing.T, s string) types.Descriptor {
	t.Helper()
	d, err := types.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDeclareVarOverwriteKeepsPosition(t *testing.T) {
	table := symbols.NewTable()
	table.DeclareVar(&ast.Variable{Name: "a", Type: mustParse(t, "int.32")})
	table.DeclareVar(&ast.Variable{Name: "b", Type: mustParse(t, "int.8")})
	// Redeclaration: the second type wins, the position does not move.
	table.DeclareVar(&ast.Variable{Name: "a", Type: mustParse(t, "signed.16")})

	vars := table.Variables()
	if len(vars) != 2 {
		t.Fatalf("expected 2 variables, got %d", len(vars))
	}
	if vars[0].Name != "a" || vars[1].Name != "b" {
		t.Errorf("order = %s, %s; want a, b", vars[0].Name, vars[1].Name)
	}
	if vars[0].Type.Width != 16 || !vars[0].Type.Signed() {
		t.Errorf("redeclared type not kept: %+v", vars[0].Type)
	}
}

func TestDeclareFnOverwrite(t *testing.T) {
	table := symbols.NewTable()
	table.DeclareFn(&ast.Function{Name: "add", DefaultSync: types.SyncConcurrent})
	table.DeclareFn(&ast.Function{Name: "add", DefaultSync: types.SyncSequential})

	fns := table.Functions()
	if len(fns) != 1 {
		t.Fatalf("expected 1 function, got %d", len(fns))
	}
	if fns[0].DefaultSync != types.SyncSequential {
		t.Error("redeclaration must overwrite the function")
	}
}

func TestMintInstance(t *testing.T) {
	table := symbols.NewTable()
	inc := &ast.Function{Name: "inc"}
	mul := &ast.Function{Name: "multiply"}

	first := table.MintInstance(inc, []string{"y"})
	second := table.MintInstance(mul, []string{"3", "4"})
	third := table.MintInstance(inc, nil)

	if first != "inc_inst_0" || second != "multiply_inst_1" || third != "inc_inst_2" {
		t.Errorf("instance names = %s, %s, %s", first, second, third)
	}
	if len(table.Pending) != 3 {
		t.Fatalf("pending = %d, want 3", len(table.Pending))
	}
	if table.Pending[1].Fn != mul || table.Pending[1].Args[0] != "3" {
		t.Errorf("pending record mismatch: %+v", table.Pending[1])
	}
}

func TestLookupMiss(t *testing.T) {
	table := symbols.NewTable()
	if _, ok := table.Var("ghost"); ok {
		t.Error("Var on empty table must miss")
	}
	if _, ok := table.Fn("ghost"); ok {
		t.Error("Fn on empty table must miss")
	}
}
