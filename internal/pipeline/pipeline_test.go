package pipeline

import (
	"testing"
	"time"
)

func TestTimingsAccumulate(t *testing.T) {
	var tm Timings
	tm.Add(StageLex, 2*time.Millisecond)
	tm.Add(StageLex, 3*time.Millisecond)
	tm.Add(StageParse, time.Millisecond)

	if got := tm.Duration(StageLex); got != 5*time.Millisecond {
		t.Errorf("lex = %v, want 5ms", got)
	}
	if tm.Has(StageLoad) {
		t.Error("load stage was never recorded")
	}

	var total Timings
	total.Merge(tm)
	total.Merge(tm)
	if got := total.Sum(StageLex, StageParse); got != 12*time.Millisecond {
		t.Errorf("sum = %v, want 12ms", got)
	}
}

func TestSinks(t *testing.T) {
	ch := make(chan Event, 1)
	Emit(ChannelSink{Ch: ch}, Event{File: "a.js", Stage: StageParse, Status: StatusDone})
	if got := <-ch; got.File != "a.js" || got.Status != StatusDone {
		t.Errorf("channel got %+v", got)
	}

	Emit(nil, Event{}) // nil sink is allowed
	ChannelSink{}.OnEvent(Event{})

	var rec Recorder
	Emit(&rec, Event{File: "b.js"})
	if events := rec.Events(); len(events) != 1 || events[0].File != "b.js" {
		t.Errorf("recorder got %+v", events)
	}
}
