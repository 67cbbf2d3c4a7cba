package ast

import (
	"pancake/internal/source"
)

type StmtKind uint8

const (
	StmtExpr StmtKind = iota
	StmtVarDecl
	StmtBlock
	StmtReturn
	StmtThrow
	StmtDebugger
	StmtEmpty
	StmtBreak
	StmtContinue
	StmtTry
	StmtIf
	StmtWhile
	StmtDoWhile
	StmtFor
	StmtWith
	StmtFunction
	StmtAsyncFunction
	StmtClass
	StmtSwitch
	StmtLabel
)

var stmtKindNames = [...]string{
	StmtExpr:          "ExpressionStatement",
	StmtVarDecl:       "VariableDeclaration",
	StmtBlock:         "Block",
	StmtReturn:        "Return",
	StmtThrow:         "Throw",
	StmtDebugger:      "Debugger",
	StmtEmpty:         "Empty",
	StmtBreak:         "Break",
	StmtContinue:      "Continue",
	StmtTry:           "Try",
	StmtIf:            "If",
	StmtWhile:         "While",
	StmtDoWhile:       "DoWhile",
	StmtFor:           "For",
	StmtWith:          "With",
	StmtFunction:      "FunctionDeclaration",
	StmtAsyncFunction: "AsyncFunctionDeclaration",
	StmtClass:         "ClassDeclaration",
	StmtSwitch:        "Switch",
	StmtLabel:         "Label",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "Stmt?"
}

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// VarKind — var, let или const.
type VarKind uint8

const (
	VarVar VarKind = iota
	VarLet
	VarConst
)

func (k VarKind) String() string {
	switch k {
	case VarLet:
		return "let"
	case VarConst:
		return "const"
	default:
		return "var"
	}
}

// VarBinding: Init is NoExprID when there is no initializer.
type VarBinding struct {
	Target ExprID
	Init   ExprID
}

type StmtExprData struct {
	Expr ExprID
}

type StmtVarDeclData struct {
	Kind     VarKind
	Bindings []VarBinding
}

type StmtBlockData struct {
	Stmts []StmtID
}

// StmtValueData is shared by return and throw; Value may be NoExprID for return.
type StmtValueData struct {
	Value ExprID
}

// StmtJumpData is shared by break and continue; Label is NoStringID when absent.
type StmtJumpData struct {
	Label source.StringID
}

// StmtTryData: Catch and Finally are NoStmtID when absent, at least one is set.
type StmtTryData struct {
	Block   StmtID
	Params  []ExprID
	Catch   StmtID
	Finally StmtID
}

type StmtIfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID
}

// StmtLoopData is shared by while and do-while.
type StmtLoopData struct {
	Cond ExprID
	Body StmtID
}

// StmtForData: Init is a statement (declaration, expression or empty),
// Cond and Post may be NoExprID.
type StmtForData struct {
	Init StmtID
	Cond ExprID
	Post ExprID
	Body StmtID
}

type StmtWithData struct {
	Object ExprID
	Body   StmtID
}

// StmtDeclData wraps a function, async function or class expression.
type StmtDeclData struct {
	Decl ExprID
}

// SwitchCase: Test is NoExprID for default.
type SwitchCase struct {
	Test ExprID
	Body []StmtID
	Span source.Span
}

type StmtSwitchData struct {
	Discriminant ExprID
	Cases        []SwitchCase
}

type StmtLabelData struct {
	Label source.StringID
	Body  StmtID
}
