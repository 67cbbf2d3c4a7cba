package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pancake/internal/driver"
	"pancake/internal/pipeline"
	"pancake/internal/source"
	"pancake/internal/ui"
)

type parseDirOutcome struct {
	fs      *source.FileSet
	results []driver.ParseDirResult
	err     error
}

// parseDirWithUI runs driver.ParseDir in the background and shows its
// progress events until the run finishes. The UI draws on stderr.
func parseDirWithUI(ctx context.Context, dir string, files []string, opts driver.Options) (*source.FileSet, []driver.ParseDirResult, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan parseDirOutcome, 1)

	go func() {
		runOpts := opts
		runOpts.Sink = pipeline.ChannelSink{Ch: events}
		fs, results, err := driver.ParseDir(ctx, dir, runOpts)
		outcomeCh <- parseDirOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("parsing "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// если UI закрыли раньше, воркеры не должны встать на полном канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
