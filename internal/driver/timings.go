package driver

import (
	"encoding/json"
	"fmt"

	"pancake/internal/diag"
	"pancake/internal/observ"
	"pancake/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// TimingDiagnostic packs a timer report into an info diagnostic so that JSON
// output carries it next to the regular diagnostics. The note holds the JSON form.
func TimingDiagnostic(kind, path string, report observ.Report) diag.Diagnostic {
	if kind == "" {
		kind = "pipeline"
	}
	payload := timingPayload{Kind: kind, Path: path, TotalMS: report.TotalMS, Phases: report.Phases}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", kind, report.TotalMS)
	if path != "" {
		msg = fmt.Sprintf("%s, %s", msg, path)
	}
	d := diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, msg)
	if data, err := json.Marshal(payload); err == nil {
		d = d.WithNote(source.Span{}, string(data))
	}
	return d
}

// AppendTiming adds the timing diagnostic to bag even when bag is full.
func AppendTiming(bag *diag.Bag, d diag.Diagnostic) {
	if bag == nil || bag.Add(d) {
		return
	}
	overflow := diag.NewBag(0)
	overflow.Add(d)
	bag.Merge(overflow)
}
