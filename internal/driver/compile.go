package driver

import (
	"veriscript/internal/ast"
	"veriscript/internal/codegen"
	"veriscript/internal/diag"
	"veriscript/internal/lexer"
	"veriscript/internal/parser"
	"veriscript/internal/resolver"
	"veriscript/internal/source"
	"veriscript/internal/symbols"
)

// Options настраивает один вызов компиляции.
type Options struct {
	// Permissive отключает предупреждения о пропущенных токенах и
	// прочих тихо терпимых местах. Жёсткие ошибки не зависят от него.
	Permissive bool
	// MaxDiagnostics ограничивает размер Bag.
	MaxDiagnostics int
	// Cache, если не nil, используется для пропуска конвейера при
	// неизменном исходнике. Учитывается только в permissive режиме:
	// предупреждения в кэше не сохраняются.
	Cache *DiskCache
}

// DefaultOptions — конфигурация по умолчанию для CLI.
func DefaultOptions() Options {
	return Options{Permissive: true, MaxDiagnostics: 256}
}

// CompileResult несёт все артефакты одной компиляции.
type CompileResult struct {
	FileSet *source.FileSet
	File    *source.File
	Bag     *diag.Bag
	Unit    *ast.Unit
	Table   *symbols.Table
	Output  string
	// CacheHit выставляется, когда вывод взят из дискового кэша.
	CacheHit bool
}

// CompileFile загружает файл и компилирует его в текст Verilog.
func CompileFile(path string, opts Options) (*CompileResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return compileFile(fs, fileID, opts)
}

// CompileSource компилирует исходник из памяти.
func CompileSource(name string, src []byte, opts Options) (*CompileResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return compileFile(fs, fileID, opts)
}

// compileFile прогоняет один файл через весь конвейер: токены,
// построение AST, резолв вызовов, генерация. Контекст символов живёт
// ровно одну компиляцию, поэтому конвейер реентерабелен.
func compileFile(fs *source.FileSet, fileID source.FileID, opts Options) (*CompileResult, error) {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	res := &CompileResult{
		FileSet: fs,
		File:    file,
		Bag:     bag,
	}

	if opts.Permissive && opts.Cache != nil {
		var payload DiskPayload
		if ok, err := opts.Cache.Get(file.Hash, &payload); err == nil && ok {
			res.Output = payload.Output
			res.CacheHit = true
			return res, nil
		}
	}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	tokens := lx.Tokenize()

	table := symbols.NewTable()
	unit, err := parser.Build(tokens, table, parser.Options{
		Permissive: opts.Permissive,
		Reporter:   reporter,
	})
	if err != nil {
		return nil, err
	}

	resolver.ResolveUnit(unit, table, resolver.Options{
		Permissive: opts.Permissive,
		Reporter:   reporter,
	})

	output := codegen.Generate(unit, table, codegen.Options{
		Permissive: opts.Permissive,
		Reporter:   reporter,
	})

	bag.Sort()
	bag.Dedup()

	res.Unit = unit
	res.Table = table
	res.Output = output

	if opts.Permissive && opts.Cache != nil {
		// Ошибка записи кэша не портит компиляцию.
		_ = opts.Cache.Put(file.Hash, &DiskPayload{
			Schema: diskCacheSchemaVersion,
			Path:   file.Path,
			Output: output,
		})
	}
	return res, nil
}
