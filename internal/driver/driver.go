// Package driver runs the lexer and parser over files and directories.
//
// Single-file entry points (Tokenize, Parse) fail only when the file cannot
// be loaded; lexical and syntax errors are part of the result. Directory entry
// points process files in parallel and return results in path order.
package driver

import (
	"context"
	"fmt"
	"time"

	"pancake/internal/diag"
	"pancake/internal/pipeline"
	"pancake/internal/source"
)

// DefaultExtensions are the file suffixes picked up by directory runs.
var DefaultExtensions = []string{".js", ".mjs"}

// Options configures file and directory runs. The zero value is usable.
type Options struct {
	MaxDiagnostics int
	// Jobs ограничивает число воркеров; 0 — GOMAXPROCS.
	Jobs       int
	Extensions []string
	Disk       *DiskCache
	Memory     *MemoryCache
	Sink       pipeline.ProgressSink
	// Reporter дополнительно получает каждую диагностику; в режиме
	// каталога вызывается из нескольких воркеров.
	Reporter diag.Reporter
}

// reporter собирает цепочку: дедупликация, затем Bag и внешний Reporter.
func (o Options) reporter(bag *diag.Bag) diag.Reporter {
	var next diag.Reporter = diag.BagReporter{Bag: bag}
	if o.Reporter != nil {
		next = diag.MultiReporter{next, o.Reporter}
	}
	return diag.NewDedupReporter(next)
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}

// loadFile читает один файл в свежий FileSet.
func loadFile(path string) (*source.FileSet, *source.File, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", path, err)
	}
	return fs, fs.Get(id), nil
}

// loadErrorDiagnostic describes a file that could not be read.
func loadErrorDiagnostic(err error) diag.Diagnostic {
	return diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+err.Error())
}

// stageClock отправляет события прогресса и копит длительности стадий файла.
type stageClock struct {
	sink    pipeline.ProgressSink
	file    string
	timings *pipeline.Timings
	stage   pipeline.Stage
	started time.Time
	first   time.Time
}

func newStageClock(sink pipeline.ProgressSink, file string, timings *pipeline.Timings) *stageClock {
	now := time.Now()
	return &stageClock{sink: sink, file: file, timings: timings, started: now, first: now}
}

// enter closes the running stage and starts the next one.
func (c *stageClock) enter(stage pipeline.Stage) {
	c.close()
	c.stage = stage
	c.started = time.Now()
	pipeline.Emit(c.sink, pipeline.Event{File: c.file, Stage: stage, Status: pipeline.StatusWorking})
}

func (c *stageClock) close() {
	if c.stage == "" {
		return
	}
	c.timings.Add(c.stage, time.Since(c.started))
	c.stage = ""
}

// finish closes the last stage and reports the file as done or failed.
func (c *stageClock) finish(err error) {
	last := c.stage
	c.close()
	status := pipeline.StatusDone
	if err != nil {
		status = pipeline.StatusError
	}
	pipeline.Emit(c.sink, pipeline.Event{
		File:    c.file,
		Stage:   last,
		Status:  status,
		Err:     err,
		Elapsed: time.Since(c.first),
	})
}

func canceled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
