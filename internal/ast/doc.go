// Package ast holds the arena-backed syntax tree produced by the parser.
//
// Nodes live in per-kind arenas inside a Builder and are addressed by
// 1-based IDs; the zero ID (NoExprID, NoStmtID) means "absent". Every
// child is referenced from exactly one parent. Names and literal texts
// are interned in the Builder's source.Interner.
//
// Expressions carry an ExprKind and a payload in the matching arena, read
// through typed accessors (Exprs.Binary, Exprs.Call, ...). Statements
// follow the same scheme through Stmts.
package ast
