package driver

import (
	"context"

	"fortio.org/safecast"

	"pancake/internal/ast"
	"pancake/internal/bufiter"
	"pancake/internal/diag"
	"pancake/internal/parser"
	"pancake/internal/pipeline"
	"pancake/internal/source"
	"pancake/internal/token"
	"pancake/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	// Stmts — операторы верхнего уровня; при ошибке пуст.
	Stmts   []ast.StmtID
	Err     error
	Bag     *diag.Bag
	Timings pipeline.Timings
}

// Parse loads path, lexes it and parses the token stream.
// A lexical error skips parsing: it is the error the parser would report anyway.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	res := &ParseResult{Bag: diag.NewBag(opts.MaxDiagnostics)}
	clock := newStageClock(opts.Sink, path, &res.Timings)
	clock.enter(pipeline.StageLoad)
	fs, file, err := loadFile(path)
	if err != nil {
		clock.finish(err)
		return nil, err
	}
	res.FileSet, res.File = fs, file

	clock.enter(pipeline.StageLex)
	toks, _, lexErr := lexFile(ctx, file, res.Bag, opts)
	if lexErr != nil {
		res.Err = lexErr
		clock.finish(lexErr)
		return res, nil
	}

	clock.enter(pipeline.StageParse)
	res.Builder, res.Stmts, res.Err = parseTokens(ctx, toks, opts.reporter(res.Bag))
	clock.finish(res.Err)
	return res, nil
}

// parseTokens parses a complete token stream into a fresh builder.
func parseTokens(ctx context.Context, toks []token.Token, reporter diag.Reporter) (*ast.Builder, []ast.StmtID, error) {
	ctx, span := trace.BeginCtx(ctx, trace.ScopePass, "parse")
	n, err := safecast.Conv[uint](len(toks))
	if err != nil {
		n = 0
	}
	b := ast.NewBuilder(ast.Hints{Stmts: n / 4, Exprs: n / 2}, nil)
	p := parser.New(bufiter.FromSlice(toks), b, parser.Options{
		Reporter:    reporter,
		Tracer:      trace.FromContext(ctx),
		TraceParent: span.ID(),
	})
	stmts, err := p.All()
	if err != nil {
		span.End("error")
		return b, nil, err
	}
	span.End("")
	return b, stmts, nil
}
