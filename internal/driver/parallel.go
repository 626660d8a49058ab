package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"veriscript/internal/diag"
	"veriscript/internal/source"
)

// CompileDirResult содержит результат компиляции одного файла.
type CompileDirResult struct {
	Path   string // путь к файлу, как он был найден
	Result *CompileResult
	Err    error // жёсткая ошибка компиляции или загрузки
}

// listVCFiles возвращает отсортированный список всех *.vc файлов в директории
func listVCFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".vc") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CompileDir компилирует все *.vc файлы в директории параллельно.
// Каждый файл — независимая компиляция со своим FileSet и контекстом;
// порядок результатов совпадает с отсортированным списком файлов.
// Жёсткие ошибки отдельных файлов не останавливают остальные.
func CompileDir(ctx context.Context, dir string, opts Options, jobs int) ([]CompileDirResult, error) {
	files, err := listVCFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]CompileDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := CompileFile(path, opts)
			if err != nil && res == nil {
				// Файл не загрузился или не скомпилировался: результат
				// с пустым Bag и ошибкой.
				res = &CompileResult{
					FileSet: source.NewFileSet(),
					Bag:     diag.NewBag(opts.MaxDiagnostics),
				}
			}
			results[i] = CompileDirResult{Path: path, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
