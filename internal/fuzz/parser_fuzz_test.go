package fuzztests

import (
	"testing"
	"time"

	"pancake/internal/parser"
	"pancake/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserSpans(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		p := parser.Parse(string(input))
		stmts, err := p.All()
		if err != nil {
			return
		}
		if err := testkit.CheckSpanInvariants(p.Builder(), stmts, input); err != nil {
			t.Fatalf("input %q: %v", truncateForLog(input, 200), err)
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("for (;;) {}"))
	f.Add([]byte("a = (((((((((((b)))))))))))"))
	f.Add([]byte("x = {a: {b: {c: [[[[1]]]]}}}"))
	f.Add([]byte("`${`${`${1}`}`}`"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = parser.Parse(string(input)).All()
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
