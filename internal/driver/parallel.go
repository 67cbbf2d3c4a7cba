package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"pancake/internal/ast"
	"pancake/internal/diag"
	"pancake/internal/pipeline"
	"pancake/internal/source"
	"pancake/internal/token"
	"pancake/internal/trace"
)

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path    string        // путь к файлу
	FileID  source.FileID // ID файла в FileSet
	Tokens  []token.Token
	Err     error // ошибка загрузки или лексера
	Bag     *diag.Bag
	Cached  bool
	Timings pipeline.Timings
}

// ParseDirResult содержит результат парсинга одного файла
type ParseDirResult struct {
	Path    string
	FileID  source.FileID
	Builder *ast.Builder // nil, если файл не загрузился или не прошёл лексер
	Stmts   []ast.StmtID
	Err     error
	Bag     *diag.Bag
	Timings pipeline.Timings
}

// ListSourceFiles returns the sorted paths under dir whose suffix is one of
// exts. Hidden directories and node_modules are skipped.
func ListSourceFiles(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (strings.HasPrefix(name, ".") || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(exts, filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	slices.Sort(files)
	return files, nil
}

// preload читает файлы последовательно: FileSet не потокобезопасен.
func preload(dir string, files []string) (*source.FileSet, map[string]source.FileID, map[string]error) {
	fileSet := source.NewFileSetWithBase(dir)
	ids := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		ids[path] = id
	}
	return fileSet, ids, loadErrors
}

func workers(jobs, files int) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(1, min(jobs, files))
}

// forEachFile runs fn for every file with bounded parallelism, each call in
// its own file span. Results are written by index, so no locking is needed.
func forEachFile(ctx context.Context, name string, files []string, jobs int, sink pipeline.ProgressSink, fn func(ctx context.Context, i int, path string) error) error {
	ctx, span := trace.BeginCtx(ctx, trace.ScopeDriver, name)
	defer span.End("")

	for _, path := range files {
		pipeline.Emit(sink, pipeline.Event{File: path, Status: pipeline.StatusQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := canceled(gctx); err != nil {
				return err
			}
			fctx, fspan := trace.BeginCtx(gctx, trace.ScopeFile, filepath.Base(path))
			fspan.WithExtra("path", path)
			err := fn(fctx, i, path)
			fspan.End("")
			return err
		})
	}
	return g.Wait()
}

// TokenizeDir токенизирует все исходники в директории параллельно.
// The error is only about walking the directory or cancellation.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListSourceFiles(dir, opts.extensions())
	if err != nil {
		return nil, nil, err
	}
	fileSet, ids, loadErrors := preload(dir, files)
	results := make([]TokenizeDirResult, len(files))

	err = forEachFile(ctx, "tokenize-dir", files, opts.Jobs, opts.Sink, func(ctx context.Context, i int, path string) error {
		res := &results[i]
		res.Path = path
		res.Bag = diag.NewBag(opts.MaxDiagnostics)
		clock := newStageClock(opts.Sink, path, &res.Timings)
		if loadErr, ok := loadErrors[path]; ok {
			res.Err = loadErr
			res.Bag.Add(loadErrorDiagnostic(loadErr))
			clock.finish(loadErr)
			return nil
		}
		file := fileSet.Get(ids[path])
		res.FileID = file.ID
		clock.enter(pipeline.StageLex)
		res.Tokens, res.Cached, res.Err = lexFile(ctx, file, res.Bag, opts)
		clock.finish(res.Err)
		return nil
	})
	return fileSet, results, err
}

// ParseDir парсит все исходники в директории параллельно; каждый файл
// получает свой ast.Builder.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []ParseDirResult, error) {
	files, err := ListSourceFiles(dir, opts.extensions())
	if err != nil {
		return nil, nil, err
	}
	fileSet, ids, loadErrors := preload(dir, files)
	results := make([]ParseDirResult, len(files))

	err = forEachFile(ctx, "parse-dir", files, opts.Jobs, opts.Sink, func(ctx context.Context, i int, path string) error {
		res := &results[i]
		res.Path = path
		res.Bag = diag.NewBag(opts.MaxDiagnostics)
		clock := newStageClock(opts.Sink, path, &res.Timings)
		if loadErr, ok := loadErrors[path]; ok {
			res.Err = loadErr
			res.Bag.Add(loadErrorDiagnostic(loadErr))
			clock.finish(loadErr)
			return nil
		}
		file := fileSet.Get(ids[path])
		res.FileID = file.ID
		clock.enter(pipeline.StageLex)
		toks, _, lexErr := lexFile(ctx, file, res.Bag, opts)
		if lexErr != nil {
			res.Err = lexErr
			clock.finish(lexErr)
			return nil
		}
		clock.enter(pipeline.StageParse)
		res.Builder, res.Stmts, res.Err = parseTokens(ctx, toks, opts.reporter(res.Bag))
		clock.finish(res.Err)
		return nil
	})
	return fileSet, results, err
}

// SumTimings merges the per-file timings of a directory run.
func SumTimings[R TokenizeDirResult | ParseDirResult](results []R) pipeline.Timings {
	var total pipeline.Timings
	for i := range results {
		switch r := any(results[i]).(type) {
		case TokenizeDirResult:
			total.Merge(r.Timings)
		case ParseDirResult:
			total.Merge(r.Timings)
		}
	}
	return total
}
