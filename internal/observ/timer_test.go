package observ

import (
	"strings"
	"testing"
	"time"

	"pancake/internal/pipeline"
)

// fakeClock сдвигается на step при каждом вызове.
func fakeClock(step time.Duration) func() time.Time {
	cur := time.Unix(0, 0)
	return func() time.Time {
		cur = cur.Add(step)
		return cur
	}
}

func TestTimerBeginEnd(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(2 * time.Millisecond)

	lex := tm.Begin("lex")
	tm.End(lex, "12 tokens")
	parse := tm.Begin("parse")
	tm.End(parse, "")
	tm.End(42, "ignored")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(report.Phases))
	}
	if report.Phases[0].DurationMS != 2 || report.Phases[0].Note != "12 tokens" {
		t.Errorf("lex phase = %+v", report.Phases[0])
	}
	if report.TotalMS != 4 {
		t.Errorf("total = %v, want 4", report.TotalMS)
	}

	summary := tm.Summary()
	for _, want := range []string{"timings:", "lex", "// 12 tokens", "parse", "total"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary misses %q:\n%s", want, summary)
		}
	}
}

func TestTimerRecordStages(t *testing.T) {
	var timings pipeline.Timings
	timings.Add(pipeline.StageLex, 3*time.Millisecond)
	timings.Add(pipeline.StageParse, 5*time.Millisecond)

	tm := NewTimer()
	tm.RecordStages(timings, 2)

	phases := tm.Phases()
	if len(phases) != 2 {
		t.Fatalf("phases = %d, want 2 (load was never recorded)", len(phases))
	}
	if phases[0].Name != "lex" || phases[1].Name != "parse" {
		t.Errorf("order = %s, %s", phases[0].Name, phases[1].Name)
	}
	if phases[1].Note != "2 files" {
		t.Errorf("note = %q", phases[1].Note)
	}
	if got := tm.Report().TotalMS; got != 8 {
		t.Errorf("total = %v, want 8", got)
	}
}

func TestEmptyReport(t *testing.T) {
	if r := NewTimer().Report(); r.Phases != nil || r.TotalMS != 0 {
		t.Errorf("empty report = %+v", r)
	}
}
