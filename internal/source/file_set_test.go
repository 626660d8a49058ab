package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"veriscript/internal/source"
)

func TestAddVirtualAndGet(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vc", []byte("int.32 a;\n"))

	f := fs.Get(id)
	if f.Path != "test.vc" {
		t.Errorf("expected path %q, got %q", "test.vc", f.Path)
	}
	if f.Flags&source.FileVirtual == 0 {
		t.Error("expected FileVirtual flag to be set")
	}
	if string(f.Content) != "int.32 a;\n" {
		t.Errorf("unexpected content: %q", f.Content)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := source.NewFileSet()
	content := "int.32 a;\nsigned.16 b;\n\na = 5;\n"
	id := fs.AddVirtual("test.vc", []byte(content))

	tests := []struct {
		name     string
		off      uint32
		wantLine uint32
		wantCol  uint32
	}{
		{"start of file", 0, 1, 1},
		{"middle of first line", 7, 1, 8},
		{"start of second line", 10, 2, 1},
		{"after blank line", 24, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(source.Span{File: id, Start: tt.off, End: tt.off})
			if start.Line != tt.wantLine || start.Col != tt.wantCol {
				t.Errorf("Resolve(%d) = %d:%d, want %d:%d",
					tt.off, start.Line, start.Col, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vc", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "first" {
		t.Errorf("GetLine(1) = %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Errorf("GetLine(3) = %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("GetLine(4) = %q, want empty", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("GetLine(0) = %q, want empty", got)
	}
}

func TestNormalization(t *testing.T) {
	fs := source.NewFileSet()

	bom := []byte{0xEF, 0xBB, 0xBF}
	content := append(append([]byte{}, bom...), []byte("int a;\r\nint b;\r\n")...)

	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.vc")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Flags&source.FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
	if string(f.Content) != "int a;\nint b;\n" {
		t.Errorf("unexpected normalized content: %q", f.Content)
	}
}

func TestGetLatest(t *testing.T) {
	fs := source.NewFileSet()
	first := fs.AddVirtual("main.vc", []byte("int a;"))
	second := fs.AddVirtual("main.vc", []byte("int b;"))

	if first == second {
		t.Fatal("expected distinct FileIDs for re-added file")
	}
	id, ok := fs.GetLatest("main.vc")
	if !ok {
		t.Fatal("GetLatest: file not found")
	}
	if id != second {
		t.Errorf("GetLatest = %d, want %d", id, second)
	}
}
