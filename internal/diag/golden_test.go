package diag

import (
	"testing"

	"pancake/internal/source"
)

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSetWithBase("/workspace")
	userFile := fs.Add("/workspace/testdata/sample.js", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: 42, Start: 0, End: 0}, Msg: "unknown file"},
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			Code:     LexBadNumber,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
	}

	expected := "error SYN2001 testdata/sample.js:1:1 first line second\n" +
		"warning LEX1004 testdata/sample.js:2:1 another\n" +
		"note SYN2001 testdata/sample.js:2:1 note line"

	if got := FormatShort(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestCodeIDs(t *testing.T) {
	tests := []struct {
		code Code
		id   string
	}{
		{LexUnterminatedTemplate, "LEX1008"},
		{SynExpectSemicolon, "SYN2012"},
		{IOLoadFileError, "IO4001"},
		{ObsTimings, "OBS6001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("%d: expected %s, got %s", tt.code, tt.id, got)
		}
	}
	if Code(1999).Title() != "Unknown error" {
		t.Errorf("unknown codes must fall back to the generic title")
	}
}

func TestBagLimitAndDedup(t *testing.T) {
	bag := NewBag(2)
	sp := source.Span{Start: 1, End: 2}
	for range 3 {
		bag.Add(NewError(LexUnknownChar, sp, "unknown character"))
	}
	if bag.Len() != 2 {
		t.Fatalf("expected limit 2, got %d", bag.Len())
	}
	bag.Dedup()
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic after dedup, got %d", bag.Len())
	}
	if !bag.HasErrors() {
		t.Fatal("expected HasErrors")
	}

	unlimited := NewBag(0)
	for range 100 {
		unlimited.Add(NewError(LexUnknownChar, sp, "x"))
	}
	if unlimited.Len() != 100 {
		t.Fatalf("zero limit must not cap diagnostics, got %d", unlimited.Len())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 3, End: 4}
	ReportError(r, SynExpectSemicolon, sp, "expected ;").Emit()
	ReportError(r, SynExpectSemicolon, sp, "expected ;").Emit()
	ReportError(r, SynExpectSemicolon, sp, "expected ; again").Emit()
	if bag.Len() != 2 {
		t.Fatalf("expected 2 unique diagnostics, got %d", bag.Len())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(10)
	b := ReportError(BagReporter{Bag: bag}, SynUnsupported, source.Span{}, "import is not supported").
		WithNote(source.Span{Start: 1}, "here")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("expected single emit, got %d", bag.Len())
	}
	if len(bag.Items()[0].Notes) != 1 {
		t.Fatalf("note lost: %+v", bag.Items()[0])
	}
}
