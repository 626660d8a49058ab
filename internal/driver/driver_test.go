package driver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"veriscript/internal/driver"
	"veriscript/internal/parser"
	"veriscript/internal/token"
	"veriscript/internal/types"
)

const incExample = "function::sequential int.8 inc(int.8 x) { result = x + 1; }\n" +
	"int.8 y;\n" +
	"y = inc(y);\n"

func TestTokenizeSource(t *testing.T) {
	res := driver.TokenizeSource("test.vc", []byte("int.8 a;\n"), 16)

	kinds := make([]token.Kind, 0, len(res.Tokens))
	for _, tok := range res.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{token.Type, token.Ident, token.Delimiter, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
}

func TestCompileSourceEndToEnd(t *testing.T) {
	res, err := driver.CompileSource("test.vc", []byte(incExample), driver.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	for _, needle := range []string{
		"module main(",
		"    reg [7:0] y;",
		"            y <= inc_inst_0_result;",
		"module inc(",
		"    inc inc_inst_0 (",
		"        .x(y),",
		"endmodule",
	} {
		if !strings.Contains(res.Output, needle) {
			t.Errorf("output missing %q:\n%s", needle, res.Output)
		}
	}
	if res.CacheHit {
		t.Error("no cache configured, CacheHit must be false")
	}
}

func TestCompileFileMatchesSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.vc")
	if err := os.WriteFile(path, []byte(incExample), 0o644); err != nil {
		t.Fatal(err)
	}

	fromFile, err := driver.CompileFile(path, driver.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	fromMem, err := driver.CompileSource("main.vc", []byte(incExample), driver.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if fromFile.Output != fromMem.Output {
		t.Errorf("file and in-memory compilation differ:\n%s\n---\n%s", fromFile.Output, fromMem.Output)
	}
}

func TestCompileDeterministic(t *testing.T) {
	first, err := driver.CompileSource("test.vc", []byte(incExample), driver.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		res, err := driver.CompileSource("test.vc", []byte(incExample), driver.DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		if res.Output != first.Output {
			t.Fatalf("run %d differs", i+1)
		}
	}
}

func TestCompileHardErrors(t *testing.T) {
	_, err := driver.CompileSource("test.vc",
		[]byte("function int.8 (int.8 x) { }"), driver.DefaultOptions())
	if !errors.Is(err, parser.ErrStructure) {
		t.Errorf("missing name: got %v", err)
	}

	_, err = driver.CompileSource("test.vc",
		[]byte("int.q a;\n"), driver.DefaultOptions())
	if !errors.Is(err, types.ErrFormat) {
		t.Errorf("bad width: got %v", err)
	}

	_, err = driver.CompileSource("test.vc",
		[]byte("function::clocked int.8 f(int.8 x) { }"), driver.DefaultOptions())
	if !errors.Is(err, types.ErrFormat) {
		t.Errorf("bad sync mode: got %v", err)
	}
}

func TestCompileNonPermissiveCollectsWarnings(t *testing.T) {
	opts := driver.DefaultOptions()
	opts.Permissive = false

	res, err := driver.CompileSource("test.vc",
		[]byte("int.8 a\nif ( a ) { }\na = 1;\n"), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Bag.HasWarnings() {
		t.Error("expected warnings about skipped tokens")
	}
	if res.Bag.HasErrors() {
		t.Error("tolerated input must not produce errors")
	}
	if !strings.Contains(res.Output, "            a <= 1;") {
		t.Errorf("assignment lost:\n%s", res.Output)
	}
}

func TestCompileDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("b.vc", "int.8 b;\n")
	write("a.vc", incExample)
	write("notes.txt", "not a source file")

	results, err := driver.CompileDir(context.Background(), dir, driver.DefaultOptions(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	// Отсортированный порядок: a.vc раньше b.vc.
	if filepath.Base(results[0].Path) != "a.vc" || filepath.Base(results[1].Path) != "b.vc" {
		t.Errorf("order = %s, %s", results[0].Path, results[1].Path)
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("%s: %v", r.Path, r.Err)
		}
		if !strings.Contains(r.Result.Output, "module main(") {
			t.Errorf("%s: missing module header", r.Path)
		}
	}
}

func TestCompileDirHardErrorIsolated(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.vc"),
		[]byte("function int.8 (int.8 x) { }"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "good.vc"), []byte(incExample), 0o644); err != nil {
		t.Fatal(err)
	}

	results, err := driver.CompileDir(context.Background(), dir, driver.DefaultOptions(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if !errors.Is(results[0].Err, parser.ErrStructure) {
		t.Errorf("bad.vc: got %v", results[0].Err)
	}
	if results[1].Err != nil {
		t.Errorf("good.vc must compile: %v", results[1].Err)
	}
}
