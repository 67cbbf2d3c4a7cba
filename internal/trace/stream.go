package trace

import (
	"bufio"
	"io"
	"os"
	"sync"
)

// StreamTracer writes each event as soon as it arrives.
// Write errors are dropped: tracing never fails a run.
type StreamTracer struct {
	mu     sync.Mutex
	w      *bufio.Writer
	out    io.Writer
	level  Level
	format Format
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	if format == FormatAuto {
		format = FormatText
	}
	return &StreamTracer{w: bufio.NewWriter(w), out: w, level: level, format: format}
}

func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	ev.Seq = NextSeq()
	data := FormatEvent(ev, t.format)

	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = t.w.Write(data)
	// конец прохода сбрасываем сразу, чтобы зависание было видно в файле
	if ev.Kind == KindSpanEnd && ev.Scope <= ScopePass {
		_ = t.w.Flush()
	}
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.w.Flush()
}

// Close flushes and closes the output unless it is stdout or stderr.
func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if t.out == os.Stdout || t.out == os.Stderr {
		return nil
	}
	if closer, ok := t.out.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
