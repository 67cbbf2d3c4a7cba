// Package testkit holds checks shared by parser tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"pancake/internal/ast"
	"pancake/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on parsed top-level statements:
// 1) every statement span is non-empty and within content bounds
// 2) statements follow each other without overlapping
// 3) an expression statement covers its expression
func CheckSpanInvariants(b *ast.Builder, stmts []ast.StmtID, content []byte) error {
	if b == nil {
		return fmt.Errorf("nil builder")
	}
	lenContent, err := safecast.Conv[uint32](len(content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prev source.Span
	for i, id := range stmts {
		stmt := b.Stmts.Get(id)
		if stmt == nil {
			return fmt.Errorf("nil statement for id=%d", id)
		}
		sp := stmt.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty statement span: %v", sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("statement span end beyond content: %d > %d", sp.End, lenContent)
		}
		if i > 0 && sp.Start < prev.End {
			return fmt.Errorf("statement span %v overlaps previous %v", sp, prev)
		}
		prev = sp

		data, ok := b.Stmts.Expr(id)
		if !ok {
			continue
		}
		expr := b.Exprs.Get(data.Expr)
		if expr == nil {
			return fmt.Errorf("expression statement %d has no expression", id)
		}
		if expr.Span.Start < sp.Start || expr.Span.End > sp.End {
			return fmt.Errorf("expression span %v is outside statement span %v", expr.Span, sp)
		}
	}
	return nil
}
