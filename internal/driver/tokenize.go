package driver

import (
	"context"

	"pancake/internal/diag"
	"pancake/internal/lexer"
	"pancake/internal/pipeline"
	"pancake/internal/source"
	"pancake/internal/token"
	"pancake/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	// Tokens заканчивается EOF, если лексер дошёл до конца без ошибки.
	Tokens  []token.Token
	Err     error
	Bag     *diag.Bag
	Cached  bool
	Timings pipeline.Timings
}

// Tokenize loads path and lexes it. The returned error is only about loading.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	res := &TokenizeResult{Bag: diag.NewBag(opts.MaxDiagnostics)}
	clock := newStageClock(opts.Sink, path, &res.Timings)
	clock.enter(pipeline.StageLoad)
	fs, file, err := loadFile(path)
	if err != nil {
		clock.finish(err)
		return nil, err
	}
	res.FileSet, res.File = fs, file

	clock.enter(pipeline.StageLex)
	res.Tokens, res.Cached, res.Err = lexFile(ctx, file, res.Bag, opts)
	clock.finish(res.Err)
	return res, nil
}

// lexFile tokenizes a loaded file, trying the memory and disk caches first.
// Only complete token streams are cached; a lexical error is reported to bag.
func lexFile(ctx context.Context, file *source.File, bag *diag.Bag, opts Options) ([]token.Token, bool, error) {
	_, span := trace.BeginCtx(ctx, trace.ScopePass, "lex")
	span.WithExtra("file", file.Path)

	if toks, ok := opts.Memory.Get(file.Hash); ok {
		span.End("memory")
		return rebind(toks, file.ID), true, nil
	}
	// ошибка чтения кэша не фатальна: просто лексируем заново
	if toks, ok, err := opts.Disk.GetTokens(file.Hash); err == nil && ok {
		opts.Memory.Put(file.Hash, toks)
		span.End("disk")
		return rebind(toks, file.ID), true, nil
	}

	lx := lexer.New(file, lexer.Options{Reporter: opts.reporter(bag)})
	var toks []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			span.End("error")
			return toks, false, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	opts.Memory.Put(file.Hash, toks)
	if opts.Disk != nil {
		_ = opts.Disk.PutTokens(file.Hash, file.Path, toks)
	}
	span.End("")
	return toks, false, nil
}

// rebind возвращает копию токенов со спанами в файле id.
func rebind(toks []token.Token, id source.FileID) []token.Token {
	out := make([]token.Token, len(toks))
	for i, tok := range toks {
		tok.Span.File = id
		out[i] = tok
	}
	return out
}
