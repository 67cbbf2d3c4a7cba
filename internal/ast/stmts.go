package ast

import (
	"pancake/internal/source"
)

type Stmts struct {
	Arena    *Arena[Stmt]
	Exprs    *Arena[StmtExprData]
	VarDecls *Arena[StmtVarDeclData]
	Blocks   *Arena[StmtBlockData]
	Values   *Arena[StmtValueData]
	Jumps    *Arena[StmtJumpData]
	Tries    *Arena[StmtTryData]
	Ifs      *Arena[StmtIfData]
	Loops    *Arena[StmtLoopData]
	Fors     *Arena[StmtForData]
	Withs    *Arena[StmtWithData]
	Decls    *Arena[StmtDeclData]
	Switches *Arena[StmtSwitchData]
	Labels   *Arena[StmtLabelData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/8 + 1
	return &Stmts{
		Arena:    NewArena[Stmt](capHint),
		Exprs:    NewArena[StmtExprData](capHint),
		VarDecls: NewArena[StmtVarDeclData](small),
		Blocks:   NewArena[StmtBlockData](small),
		Values:   NewArena[StmtValueData](small),
		Jumps:    NewArena[StmtJumpData](small),
		Tries:    NewArena[StmtTryData](small),
		Ifs:      NewArena[StmtIfData](small),
		Loops:    NewArena[StmtLoopData](small),
		Fors:     NewArena[StmtForData](small),
		Withs:    NewArena[StmtWithData](small),
		Decls:    NewArena[StmtDeclData](small),
		Switches: NewArena[StmtSwitchData](small),
		Labels:   NewArena[StmtLabelData](small),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload uint32) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) payloadOf(id StmtID, kinds ...StmtKind) (uint32, bool) {
	stmt := s.Get(id)
	if stmt == nil {
		return 0, false
	}
	for _, k := range kinds {
		if stmt.Kind == k {
			return uint32(stmt.Payload), true
		}
	}
	return 0, false
}

// NewBare creates statements without payload: debugger and empty.
func (s *Stmts) NewBare(kind StmtKind, span source.Span) StmtID {
	return s.new(kind, span, 0)
}

func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	return s.new(StmtExpr, span, s.Exprs.Allocate(StmtExprData{Expr: expr}))
}

func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	p, ok := s.payloadOf(id, StmtExpr)
	if !ok {
		return nil, false
	}
	return s.Exprs.Get(p), true
}

func (s *Stmts) NewVarDecl(span source.Span, kind VarKind, bindings []VarBinding) StmtID {
	return s.new(StmtVarDecl, span, s.VarDecls.Allocate(StmtVarDeclData{Kind: kind, Bindings: bindings}))
}

func (s *Stmts) VarDecl(id StmtID) (*StmtVarDeclData, bool) {
	p, ok := s.payloadOf(id, StmtVarDecl)
	if !ok {
		return nil, false
	}
	return s.VarDecls.Get(p), true
}

func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	return s.new(StmtBlock, span, s.Blocks.Allocate(StmtBlockData{Stmts: stmts}))
}

func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	p, ok := s.payloadOf(id, StmtBlock)
	if !ok {
		return nil, false
	}
	return s.Blocks.Get(p), true
}

// NewValue creates return or throw.
func (s *Stmts) NewValue(kind StmtKind, span source.Span, value ExprID) StmtID {
	return s.new(kind, span, s.Values.Allocate(StmtValueData{Value: value}))
}

func (s *Stmts) Value(id StmtID) (*StmtValueData, bool) {
	p, ok := s.payloadOf(id, StmtReturn, StmtThrow)
	if !ok {
		return nil, false
	}
	return s.Values.Get(p), true
}

// NewJump creates break or continue.
func (s *Stmts) NewJump(kind StmtKind, span source.Span, label source.StringID) StmtID {
	return s.new(kind, span, s.Jumps.Allocate(StmtJumpData{Label: label}))
}

func (s *Stmts) Jump(id StmtID) (*StmtJumpData, bool) {
	p, ok := s.payloadOf(id, StmtBreak, StmtContinue)
	if !ok {
		return nil, false
	}
	return s.Jumps.Get(p), true
}

func (s *Stmts) NewTry(span source.Span, data StmtTryData) StmtID {
	return s.new(StmtTry, span, s.Tries.Allocate(data))
}

func (s *Stmts) Try(id StmtID) (*StmtTryData, bool) {
	p, ok := s.payloadOf(id, StmtTry)
	if !ok {
		return nil, false
	}
	return s.Tries.Get(p), true
}

func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els StmtID) StmtID {
	return s.new(StmtIf, span, s.Ifs.Allocate(StmtIfData{Cond: cond, Then: then, Else: els}))
}

func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	p, ok := s.payloadOf(id, StmtIf)
	if !ok {
		return nil, false
	}
	return s.Ifs.Get(p), true
}

// NewLoop creates while or do-while.
func (s *Stmts) NewLoop(kind StmtKind, span source.Span, cond ExprID, body StmtID) StmtID {
	return s.new(kind, span, s.Loops.Allocate(StmtLoopData{Cond: cond, Body: body}))
}

func (s *Stmts) Loop(id StmtID) (*StmtLoopData, bool) {
	p, ok := s.payloadOf(id, StmtWhile, StmtDoWhile)
	if !ok {
		return nil, false
	}
	return s.Loops.Get(p), true
}

func (s *Stmts) NewFor(span source.Span, data StmtForData) StmtID {
	return s.new(StmtFor, span, s.Fors.Allocate(data))
}

func (s *Stmts) For(id StmtID) (*StmtForData, bool) {
	p, ok := s.payloadOf(id, StmtFor)
	if !ok {
		return nil, false
	}
	return s.Fors.Get(p), true
}

func (s *Stmts) NewWith(span source.Span, object ExprID, body StmtID) StmtID {
	return s.new(StmtWith, span, s.Withs.Allocate(StmtWithData{Object: object, Body: body}))
}

func (s *Stmts) With(id StmtID) (*StmtWithData, bool) {
	p, ok := s.payloadOf(id, StmtWith)
	if !ok {
		return nil, false
	}
	return s.Withs.Get(p), true
}

// NewDecl creates function, async function or class declarations.
func (s *Stmts) NewDecl(kind StmtKind, span source.Span, decl ExprID) StmtID {
	return s.new(kind, span, s.Decls.Allocate(StmtDeclData{Decl: decl}))
}

func (s *Stmts) Decl(id StmtID) (*StmtDeclData, bool) {
	p, ok := s.payloadOf(id, StmtFunction, StmtAsyncFunction, StmtClass)
	if !ok {
		return nil, false
	}
	return s.Decls.Get(p), true
}

func (s *Stmts) NewSwitch(span source.Span, discriminant ExprID, cases []SwitchCase) StmtID {
	return s.new(StmtSwitch, span, s.Switches.Allocate(StmtSwitchData{Discriminant: discriminant, Cases: cases}))
}

func (s *Stmts) Switch(id StmtID) (*StmtSwitchData, bool) {
	p, ok := s.payloadOf(id, StmtSwitch)
	if !ok {
		return nil, false
	}
	return s.Switches.Get(p), true
}

func (s *Stmts) NewLabel(span source.Span, label source.StringID, body StmtID) StmtID {
	return s.new(StmtLabel, span, s.Labels.Allocate(StmtLabelData{Label: label, Body: body}))
}

func (s *Stmts) Label(id StmtID) (*StmtLabelData, bool) {
	p, ok := s.payloadOf(id, StmtLabel)
	if !ok {
		return nil, false
	}
	return s.Labels.Get(p), true
}
