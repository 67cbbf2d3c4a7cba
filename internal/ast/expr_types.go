package ast

import (
	"pancake/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprIdent represents an identifier expression.
	ExprIdent ExprKind = iota
	// ExprNumber, ExprString and ExprRegex are literals; their payload is ExprLiteralData.
	ExprNumber
	ExprString
	ExprRegex
	// ExprArray represents an array literal; holes are NoExprID.
	ExprArray
	// ExprObject represents an object literal.
	ExprObject
	// ExprBinary represents a binary expression, including the comma operator.
	ExprBinary
	// ExprAssign represents plain and compound assignment.
	ExprAssign
	// ExprPrefix represents a prefix operator application.
	ExprPrefix
	// ExprPostfix represents x++ and x--.
	ExprPostfix
	// ExprConditional represents cond ? then : else.
	ExprConditional
	ExprCall
	ExprMember
	ExprComputedMember
	ExprArrowFunction
	ExprAsyncArrowFunction
	ExprTemplateLiteral
	ExprFunction
	ExprAsyncFunction
	ExprClass
)

var exprKindNames = [...]string{
	ExprIdent:              "Identifier",
	ExprNumber:             "Number",
	ExprString:             "String",
	ExprRegex:              "Regex",
	ExprArray:              "Array",
	ExprObject:             "Object",
	ExprBinary:             "Binary",
	ExprAssign:             "Assign",
	ExprPrefix:             "Prefix",
	ExprPostfix:            "Postfix",
	ExprConditional:        "Conditional",
	ExprCall:               "Call",
	ExprMember:             "Member",
	ExprComputedMember:     "ComputedMember",
	ExprArrowFunction:      "ArrowFunction",
	ExprAsyncArrowFunction: "AsyncArrowFunction",
	ExprTemplateLiteral:    "TemplateLiteral",
	ExprFunction:           "Function",
	ExprAsyncFunction:      "AsyncFunction",
	ExprClass:              "Class",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Expr?"
}

// Expr represents an expression node in the AST.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprBinaryOp enumerates binary and assignment operators.
type ExprBinaryOp uint8

const (
	ExprBinaryInvalid ExprBinaryOp = iota

	// ExprBinaryComma represents the comma operator (,).
	ExprBinaryComma

	// Арифметические
	ExprBinaryAdd
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	ExprBinaryMod
	ExprBinaryPow

	// Битовые
	ExprBinaryBitAnd
	ExprBinaryBitOr
	ExprBinaryBitXor
	ExprBinaryShiftLeft
	ExprBinaryShiftRight
	ExprBinaryShiftRightUnsigned

	// Логические
	ExprBinaryLogicalAnd
	ExprBinaryLogicalOr

	// Сравнения
	ExprBinaryEq
	ExprBinaryNotEq
	ExprBinaryStrictEq
	ExprBinaryStrictNotEq
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq
	ExprBinaryIn
	ExprBinaryInstanceof

	// Присваивание
	ExprBinaryAssign
	ExprBinaryAddAssign
	ExprBinarySubAssign
	ExprBinaryMulAssign
	ExprBinaryDivAssign
	ExprBinaryModAssign
	ExprBinaryPowAssign
	ExprBinaryShlAssign
	ExprBinaryShrAssign
	ExprBinaryShrUnsignedAssign
	ExprBinaryBitAndAssign
	ExprBinaryBitXorAssign
	ExprBinaryBitOrAssign
)

var binaryOpSymbols = [...]string{
	ExprBinaryInvalid:            "?",
	ExprBinaryComma:              ",",
	ExprBinaryAdd:                "+",
	ExprBinarySub:                "-",
	ExprBinaryMul:                "*",
	ExprBinaryDiv:                "/",
	ExprBinaryMod:                "%",
	ExprBinaryPow:                "**",
	ExprBinaryBitAnd:             "&",
	ExprBinaryBitOr:              "|",
	ExprBinaryBitXor:             "^",
	ExprBinaryShiftLeft:          "<<",
	ExprBinaryShiftRight:         ">>",
	ExprBinaryShiftRightUnsigned: ">>>",
	ExprBinaryLogicalAnd:         "&&",
	ExprBinaryLogicalOr:          "||",
	ExprBinaryEq:                 "==",
	ExprBinaryNotEq:              "!=",
	ExprBinaryStrictEq:           "===",
	ExprBinaryStrictNotEq:        "!==",
	ExprBinaryLess:               "<",
	ExprBinaryLessEq:             "<=",
	ExprBinaryGreater:            ">",
	ExprBinaryGreaterEq:          ">=",
	ExprBinaryIn:                 "in",
	ExprBinaryInstanceof:         "instanceof",
	ExprBinaryAssign:             "=",
	ExprBinaryAddAssign:          "+=",
	ExprBinarySubAssign:          "-=",
	ExprBinaryMulAssign:          "*=",
	ExprBinaryDivAssign:          "/=",
	ExprBinaryModAssign:          "%=",
	ExprBinaryPowAssign:          "**=",
	ExprBinaryShlAssign:          "<<=",
	ExprBinaryShrAssign:          ">>=",
	ExprBinaryShrUnsignedAssign:  ">>>=",
	ExprBinaryBitAndAssign:       "&=",
	ExprBinaryBitXorAssign:       "^=",
	ExprBinaryBitOrAssign:        "|=",
}

// String returns the source spelling of the operator.
func (op ExprBinaryOp) String() string {
	if int(op) < len(binaryOpSymbols) {
		return binaryOpSymbols[op]
	}
	return "?"
}

// IsAssignment reports whether op is = or a compound assignment.
func (op ExprBinaryOp) IsAssignment() bool {
	return op >= ExprBinaryAssign && op <= ExprBinaryBitOrAssign
}

// LookupBinaryOp maps an operator spelling to its ExprBinaryOp.
func LookupBinaryOp(sym string) (ExprBinaryOp, bool) {
	for op, s := range binaryOpSymbols {
		if op != int(ExprBinaryInvalid) && s == sym {
			return ExprBinaryOp(op), true
		}
	}
	return ExprBinaryInvalid, false
}

// ExprUnaryOp enumerates prefix and postfix operators.
type ExprUnaryOp uint8

const (
	ExprUnaryInvalid ExprUnaryOp = iota
	ExprUnaryNot
	ExprUnaryPlus
	ExprUnaryMinus
	ExprUnaryInc
	ExprUnaryDec
	ExprUnaryBitNot
	ExprUnaryNew
	ExprUnaryAwait
	ExprUnaryTypeof
	ExprUnaryVoid
	ExprUnaryDelete
	ExprUnarySpread
	ExprUnaryYield
)

var unaryOpSymbols = [...]string{
	ExprUnaryInvalid: "?",
	ExprUnaryNot:     "!",
	ExprUnaryPlus:    "+",
	ExprUnaryMinus:   "-",
	ExprUnaryInc:     "++",
	ExprUnaryDec:     "--",
	ExprUnaryBitNot:  "~",
	ExprUnaryNew:     "new",
	ExprUnaryAwait:   "await",
	ExprUnaryTypeof:  "typeof",
	ExprUnaryVoid:    "void",
	ExprUnaryDelete:  "delete",
	ExprUnarySpread:  "...",
	ExprUnaryYield:   "yield",
}

func (op ExprUnaryOp) String() string {
	if int(op) < len(unaryOpSymbols) {
		return unaryOpSymbols[op]
	}
	return "?"
}

// LookupUnaryOp maps an operator spelling or keyword to its ExprUnaryOp.
func LookupUnaryOp(sym string) (ExprUnaryOp, bool) {
	for op, s := range unaryOpSymbols {
		if op != int(ExprUnaryInvalid) && s == sym {
			return ExprUnaryOp(op), true
		}
	}
	return ExprUnaryInvalid, false
}

// ExprIdentData holds the interned name.
type ExprIdentData struct {
	Name source.StringID
}

// ExprLiteralData holds the decoded literal text (regex keeps slashes and flags).
type ExprLiteralData struct {
	Value source.StringID
}

type ExprArrayData struct {
	Elems []ExprID
}

// PropKind classifies object literal members.
type PropKind uint8

const (
	PropInit PropKind = iota // key: value
	PropShorthand            // key
	PropMethod               // key(params) { ... }
	PropGetter               // get key() { ... }
	PropSetter               // set key(v) { ... }
)

var propKindNames = [...]string{
	PropInit:      "init",
	PropShorthand: "shorthand",
	PropMethod:    "method",
	PropGetter:    "get",
	PropSetter:    "set",
}

func (k PropKind) String() string {
	if int(k) < len(propKindNames) {
		return propKindNames[k]
	}
	return "?"
}

// ObjectProp is one member of an object literal. Key is an identifier,
// string or number expression, or any expression when Computed.
// For methods, getters and setters Value is a function expression.
type ObjectProp struct {
	Kind     PropKind
	Key      ExprID
	Computed bool
	Async    bool
	Value    ExprID
}

type ExprObjectData struct {
	Props []ObjectProp
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

type ExprAssignData struct {
	Op     ExprBinaryOp
	Target ExprID
	Value  ExprID
}

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

type ExprConditionalData struct {
	Cond ExprID
	Then ExprID
	Else ExprID
}

type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

type ExprMemberData struct {
	Object   ExprID
	Property source.StringID
}

type ExprComputedMemberData struct {
	Object ExprID
	Index  ExprID
}

// ExprArrowData: ровно одно из Body/Block задано.
type ExprArrowData struct {
	Params []ExprID
	Body   ExprID
	Block  StmtID
}

// ExprTemplateData keeps len(Texts) == len(Exprs)+1: text, expr, text, ... text.
// Empty text chunks are kept.
type ExprTemplateData struct {
	Texts []source.StringID
	Exprs []ExprID
}

// ExprFunctionData describes function, async function and method bodies.
// Name is NoStringID for anonymous functions.
type ExprFunctionData struct {
	Name   source.StringID
	Params []ExprID
	Body   StmtID
}

type ClassMethod struct {
	Name source.StringID
	Func ExprID
	Span source.Span
}

type ExprClassData struct {
	Name    source.StringID
	Extends ExprID
	Methods []ClassMethod
}
