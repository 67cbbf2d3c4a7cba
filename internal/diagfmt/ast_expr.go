package diagfmt

import (
	"pancake/internal/ast"
)

func buildExprNode(b *ast.Builder, id ast.ExprID) *ASTNodeOutput {
	expr := b.Exprs.Get(id)
	if expr == nil {
		return &ASTNodeOutput{Type: "Expr", Kind: "Hole"}
	}
	node := &ASTNodeOutput{Type: "Expr", Kind: expr.Kind.String(), Span: expr.Span}

	switch expr.Kind {
	case ast.ExprIdent:
		if data, ok := b.Exprs.Ident(id); ok {
			node.Text = b.Name(data.Name)
		}
	case ast.ExprNumber, ast.ExprString, ast.ExprRegex:
		if data, ok := b.Exprs.Literal(id); ok {
			node.Text = b.Name(data.Value)
		}
	case ast.ExprArray:
		if data, ok := b.Exprs.Array(id); ok {
			for _, elem := range data.Elems {
				node.add(buildExprNode(b, elem))
			}
		}
	case ast.ExprObject:
		if data, ok := b.Exprs.Object(id); ok {
			for _, prop := range data.Props {
				node.add(buildPropNode(b, prop))
			}
		}
	case ast.ExprBinary:
		if data, ok := b.Exprs.Binary(id); ok {
			node.Text = data.Op.String()
			node.add(role("left", buildExprNode(b, data.Left)))
			node.add(role("right", buildExprNode(b, data.Right)))
		}
	case ast.ExprAssign:
		if data, ok := b.Exprs.Assign(id); ok {
			node.Text = data.Op.String()
			node.add(role("target", buildExprNode(b, data.Target)))
			node.add(role("value", buildExprNode(b, data.Value)))
		}
	case ast.ExprPrefix, ast.ExprPostfix:
		if data, ok := b.Exprs.Unary(id); ok {
			node.Text = data.Op.String()
			node.add(buildExprNode(b, data.Operand))
		}
	case ast.ExprConditional:
		if data, ok := b.Exprs.Conditional(id); ok {
			node.add(role("cond", buildExprNode(b, data.Cond)))
			node.add(role("then", buildExprNode(b, data.Then)))
			node.add(role("else", buildExprNode(b, data.Else)))
		}
	case ast.ExprCall:
		if data, ok := b.Exprs.Call(id); ok {
			node.add(role("callee", buildExprNode(b, data.Callee)))
			for _, arg := range data.Args {
				node.add(role("arg", buildExprNode(b, arg)))
			}
		}
	case ast.ExprMember:
		if data, ok := b.Exprs.Member(id); ok {
			node.Text = b.Name(data.Property)
			node.add(role("object", buildExprNode(b, data.Object)))
		}
	case ast.ExprComputedMember:
		if data, ok := b.Exprs.ComputedMember(id); ok {
			node.add(role("object", buildExprNode(b, data.Object)))
			node.add(role("index", buildExprNode(b, data.Index)))
		}
	case ast.ExprArrowFunction, ast.ExprAsyncArrowFunction:
		if data, ok := b.Exprs.Arrow(id); ok {
			for _, param := range data.Params {
				node.add(role("param", buildExprNode(b, param)))
			}
			if data.Block.IsValid() {
				node.add(role("body", buildStmtNode(b, data.Block)))
			} else {
				node.add(role("body", buildExprNode(b, data.Body)))
			}
		}
	case ast.ExprTemplateLiteral:
		if data, ok := b.Exprs.Template(id); ok {
			for i, text := range data.Texts {
				node.add(&ASTNodeOutput{Type: "Chunk", Kind: "Text", Text: b.Name(text)})
				if i < len(data.Exprs) {
					node.add(buildExprNode(b, data.Exprs[i]))
				}
			}
		}
	case ast.ExprFunction, ast.ExprAsyncFunction:
		if data, ok := b.Exprs.Function(id); ok {
			node.Text = b.Name(data.Name)
			for _, param := range data.Params {
				node.add(role("param", buildExprNode(b, param)))
			}
			node.add(role("body", buildStmtNode(b, data.Body)))
		}
	case ast.ExprClass:
		if data, ok := b.Exprs.Class(id); ok {
			node.Text = b.Name(data.Name)
			if data.Extends.IsValid() {
				node.add(role("extends", buildExprNode(b, data.Extends)))
			}
			for _, m := range data.Methods {
				method := &ASTNodeOutput{Type: "Member", Kind: "Method", Text: b.Name(m.Name), Span: m.Span}
				method.add(buildExprNode(b, m.Func))
				node.add(method)
			}
		}
	}
	return node
}

// buildPropNode: вид свойства идёт в Kind, async и computed — в Text.
func buildPropNode(b *ast.Builder, prop ast.ObjectProp) *ASTNodeOutput {
	node := &ASTNodeOutput{Type: "Property", Kind: prop.Kind.String()}
	switch {
	case prop.Async && prop.Computed:
		node.Text = "async computed"
	case prop.Async:
		node.Text = "async"
	case prop.Computed:
		node.Text = "computed"
	}
	key := buildExprNode(b, prop.Key)
	node.Span = key.Span
	node.add(role("key", key))
	if prop.Kind != ast.PropShorthand && prop.Value.IsValid() {
		value := buildExprNode(b, prop.Value)
		node.Span = node.Span.Cover(value.Span)
		node.add(role("value", value))
	}
	return node
}
