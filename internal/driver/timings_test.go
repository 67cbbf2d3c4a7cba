package driver

import (
	"strings"
	"testing"

	"pancake/internal/diag"
	"pancake/internal/observ"
)

func TestTimingDiagnostic(t *testing.T) {
	report := observ.Report{TotalMS: 1.5, Phases: []observ.PhaseReport{{Name: "lex", DurationMS: 1.5}}}
	d := TimingDiagnostic("", "main.js", report)
	if d.Code != diag.ObsTimings || d.Severity != diag.SevInfo {
		t.Errorf("diagnostic = %+v", d)
	}
	if !strings.Contains(d.Message, "pipeline") || !strings.Contains(d.Message, "main.js") {
		t.Errorf("message = %q", d.Message)
	}
	if len(d.Notes) != 1 || !strings.Contains(d.Notes[0].Msg, `"name":"lex"`) {
		t.Errorf("notes = %+v", d.Notes)
	}

	// переполненный bag всё равно получает тайминги
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, d.Primary, "x"))
	AppendTiming(bag, d)
	if bag.Len() != 2 {
		t.Errorf("bag len = %d, want 2", bag.Len())
	}
}
