package ast

import (
	"pancake/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena     *Arena[Expr]
	Idents    *Arena[ExprIdentData]
	Literals  *Arena[ExprLiteralData]
	Arrays    *Arena[ExprArrayData]
	Objects   *Arena[ExprObjectData]
	Binaries  *Arena[ExprBinaryData]
	Assigns   *Arena[ExprAssignData]
	Unaries   *Arena[ExprUnaryData]
	Conds     *Arena[ExprConditionalData]
	Calls     *Arena[ExprCallData]
	Members   *Arena[ExprMemberData]
	Computed  *Arena[ExprComputedMemberData]
	Arrows    *Arena[ExprArrowData]
	Templates *Arena[ExprTemplateData]
	Functions *Arena[ExprFunctionData]
	Classes   *Arena[ExprClassData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using capHint.
// If capHint is 0, a default capacity of 1<<8 is used.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/8 + 1
	return &Exprs{
		Arena:     NewArena[Expr](capHint),
		Idents:    NewArena[ExprIdentData](capHint),
		Literals:  NewArena[ExprLiteralData](capHint),
		Arrays:    NewArena[ExprArrayData](small),
		Objects:   NewArena[ExprObjectData](small),
		Binaries:  NewArena[ExprBinaryData](capHint),
		Assigns:   NewArena[ExprAssignData](small),
		Unaries:   NewArena[ExprUnaryData](small),
		Conds:     NewArena[ExprConditionalData](small),
		Calls:     NewArena[ExprCallData](capHint),
		Members:   NewArena[ExprMemberData](capHint),
		Computed:  NewArena[ExprComputedMemberData](small),
		Arrows:    NewArena[ExprArrowData](small),
		Templates: NewArena[ExprTemplateData](small),
		Functions: NewArena[ExprFunctionData](small),
		Classes:   NewArena[ExprClassData](small),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

// Get returns the expression with the given ID, or nil for NoExprID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// payloadOf возвращает payload, если вид выражения входит в kinds.
func (e *Exprs) payloadOf(id ExprID, kinds ...ExprKind) (uint32, bool) {
	expr := e.Get(id)
	if expr == nil {
		return 0, false
	}
	for _, k := range kinds {
		if expr.Kind == k {
			return uint32(expr.Payload), true
		}
	}
	return 0, false
}

// NewIdent creates a new identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, payload)
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	p, ok := e.payloadOf(id, ExprIdent)
	if !ok {
		return nil, false
	}
	return e.Idents.Get(p), true
}

// NewLiteral creates a number, string or regex literal.
func (e *Exprs) NewLiteral(kind ExprKind, span source.Span, value source.StringID) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{Value: value})
	return e.new(kind, span, payload)
}

// Literal returns the literal data of a number, string or regex expression.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	p, ok := e.payloadOf(id, ExprNumber, ExprString, ExprRegex)
	if !ok {
		return nil, false
	}
	return e.Literals.Get(p), true
}

func (e *Exprs) NewArray(span source.Span, elems []ExprID) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{Elems: elems})
	return e.new(ExprArray, span, payload)
}

func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	p, ok := e.payloadOf(id, ExprArray)
	if !ok {
		return nil, false
	}
	return e.Arrays.Get(p), true
}

func (e *Exprs) NewObject(span source.Span, props []ObjectProp) ExprID {
	payload := e.Objects.Allocate(ExprObjectData{Props: props})
	return e.new(ExprObject, span, payload)
}

func (e *Exprs) Object(id ExprID) (*ExprObjectData, bool) {
	p, ok := e.payloadOf(id, ExprObject)
	if !ok {
		return nil, false
	}
	return e.Objects.Get(p), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, payload)
}

// Binary returns the binary expression data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	p, ok := e.payloadOf(id, ExprBinary)
	if !ok {
		return nil, false
	}
	return e.Binaries.Get(p), true
}

func (e *Exprs) NewAssign(span source.Span, op ExprBinaryOp, target, value ExprID) ExprID {
	payload := e.Assigns.Allocate(ExprAssignData{Op: op, Target: target, Value: value})
	return e.new(ExprAssign, span, payload)
}

func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	p, ok := e.payloadOf(id, ExprAssign)
	if !ok {
		return nil, false
	}
	return e.Assigns.Get(p), true
}

// NewPrefix creates a prefix operator application.
func (e *Exprs) NewPrefix(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprPrefix, span, payload)
}

// NewPostfix creates x++ or x--.
func (e *Exprs) NewPostfix(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprPostfix, span, payload)
}

// Unary returns operator data of a prefix or postfix expression.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	p, ok := e.payloadOf(id, ExprPrefix, ExprPostfix)
	if !ok {
		return nil, false
	}
	return e.Unaries.Get(p), true
}

func (e *Exprs) NewConditional(span source.Span, cond, then, els ExprID) ExprID {
	payload := e.Conds.Allocate(ExprConditionalData{Cond: cond, Then: then, Else: els})
	return e.new(ExprConditional, span, payload)
}

func (e *Exprs) Conditional(id ExprID) (*ExprConditionalData, bool) {
	p, ok := e.payloadOf(id, ExprConditional)
	if !ok {
		return nil, false
	}
	return e.Conds.Get(p), true
}

// NewCall creates a new call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Args: args})
	return e.new(ExprCall, span, payload)
}

// Call returns the call data for the given expression ID.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	p, ok := e.payloadOf(id, ExprCall)
	if !ok {
		return nil, false
	}
	return e.Calls.Get(p), true
}

// NewMember creates obj.name.
func (e *Exprs) NewMember(span source.Span, object ExprID, property source.StringID) ExprID {
	payload := e.Members.Allocate(ExprMemberData{Object: object, Property: property})
	return e.new(ExprMember, span, payload)
}

func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	p, ok := e.payloadOf(id, ExprMember)
	if !ok {
		return nil, false
	}
	return e.Members.Get(p), true
}

// NewComputedMember creates obj[index].
func (e *Exprs) NewComputedMember(span source.Span, object, index ExprID) ExprID {
	payload := e.Computed.Allocate(ExprComputedMemberData{Object: object, Index: index})
	return e.new(ExprComputedMember, span, payload)
}

func (e *Exprs) ComputedMember(id ExprID) (*ExprComputedMemberData, bool) {
	p, ok := e.payloadOf(id, ExprComputedMember)
	if !ok {
		return nil, false
	}
	return e.Computed.Get(p), true
}

// NewArrow creates an arrow function; async selects ExprAsyncArrowFunction.
func (e *Exprs) NewArrow(span source.Span, async bool, data ExprArrowData) ExprID {
	kind := ExprArrowFunction
	if async {
		kind = ExprAsyncArrowFunction
	}
	payload := e.Arrows.Allocate(data)
	return e.new(kind, span, payload)
}

func (e *Exprs) Arrow(id ExprID) (*ExprArrowData, bool) {
	p, ok := e.payloadOf(id, ExprArrowFunction, ExprAsyncArrowFunction)
	if !ok {
		return nil, false
	}
	return e.Arrows.Get(p), true
}

func (e *Exprs) NewTemplate(span source.Span, texts []source.StringID, exprs []ExprID) ExprID {
	payload := e.Templates.Allocate(ExprTemplateData{Texts: texts, Exprs: exprs})
	return e.new(ExprTemplateLiteral, span, payload)
}

func (e *Exprs) Template(id ExprID) (*ExprTemplateData, bool) {
	p, ok := e.payloadOf(id, ExprTemplateLiteral)
	if !ok {
		return nil, false
	}
	return e.Templates.Get(p), true
}

// NewFunction creates a function expression; async selects ExprAsyncFunction.
func (e *Exprs) NewFunction(span source.Span, async bool, data ExprFunctionData) ExprID {
	kind := ExprFunction
	if async {
		kind = ExprAsyncFunction
	}
	payload := e.Functions.Allocate(data)
	return e.new(kind, span, payload)
}

func (e *Exprs) Function(id ExprID) (*ExprFunctionData, bool) {
	p, ok := e.payloadOf(id, ExprFunction, ExprAsyncFunction)
	if !ok {
		return nil, false
	}
	return e.Functions.Get(p), true
}

func (e *Exprs) NewClass(span source.Span, data ExprClassData) ExprID {
	payload := e.Classes.Allocate(data)
	return e.new(ExprClass, span, payload)
}

func (e *Exprs) Class(id ExprID) (*ExprClassData, bool) {
	p, ok := e.payloadOf(id, ExprClass)
	if !ok {
		return nil, false
	}
	return e.Classes.Get(p), true
}

// MakeAsync re-tags a function or arrow expression as its async variant.
// Other kinds are left unchanged and reported with false.
func (e *Exprs) MakeAsync(id ExprID) bool {
	expr := e.Get(id)
	if expr == nil {
		return false
	}
	switch expr.Kind {
	case ExprFunction, ExprAsyncFunction:
		expr.Kind = ExprAsyncFunction
		return true
	case ExprArrowFunction, ExprAsyncArrowFunction:
		expr.Kind = ExprAsyncArrowFunction
		return true
	}
	return false
}
