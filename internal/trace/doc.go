// Package trace records what the front end is doing while it runs.
//
// Events are spans (begin/end pairs) and points. Each carries a scope:
// driver commands, lexing and parsing passes, single files, or parsed
// statements. The tracer level decides which scopes are kept:
//
//	off < error < phase (driver, pass) < detail (+file) < debug (+node)
//
// A stream tracer writes every event as it arrives (text or NDJSON), a ring
// tracer keeps the last N events in memory for a dump on failure, and
// MultiTracer combines both.
//
//	t, _ := trace.New(trace.Config{Level: trace.LevelPhase, Mode: trace.ModeStream, OutputPath: "-"})
//	ctx = trace.WithTracer(ctx, t)
//
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
