package diagfmt

import (
	"pancake/internal/ast"
)

func buildStmtNode(b *ast.Builder, id ast.StmtID) *ASTNodeOutput {
	stmt := b.Stmts.Get(id)
	if stmt == nil {
		return &ASTNodeOutput{Type: "Stmt", Kind: "<nil>"}
	}
	node := &ASTNodeOutput{Type: "Stmt", Kind: stmt.Kind.String(), Span: stmt.Span}

	switch stmt.Kind {
	case ast.StmtExpr:
		if data, ok := b.Stmts.Expr(id); ok {
			node.add(buildExprNode(b, data.Expr))
		}
	case ast.StmtVarDecl:
		if data, ok := b.Stmts.VarDecl(id); ok {
			node.Text = data.Kind.String()
			for _, binding := range data.Bindings {
				target := buildExprNode(b, binding.Target)
				bn := &ASTNodeOutput{Type: "Binding", Kind: "Binding", Span: target.Span}
				bn.add(role("target", target))
				if binding.Init.IsValid() {
					initNode := buildExprNode(b, binding.Init)
					bn.Span = bn.Span.Cover(initNode.Span)
					bn.add(role("init", initNode))
				}
				node.add(bn)
			}
		}
	case ast.StmtBlock:
		if data, ok := b.Stmts.Block(id); ok {
			for _, child := range data.Stmts {
				node.add(buildStmtNode(b, child))
			}
		}
	case ast.StmtReturn, ast.StmtThrow:
		if data, ok := b.Stmts.Value(id); ok && data.Value.IsValid() {
			node.add(buildExprNode(b, data.Value))
		}
	case ast.StmtBreak, ast.StmtContinue:
		if data, ok := b.Stmts.Jump(id); ok {
			node.Text = b.Name(data.Label)
		}
	case ast.StmtTry:
		if data, ok := b.Stmts.Try(id); ok {
			node.add(role("block", buildStmtNode(b, data.Block)))
			for _, param := range data.Params {
				node.add(role("param", buildExprNode(b, param)))
			}
			if data.Catch.IsValid() {
				node.add(role("catch", buildStmtNode(b, data.Catch)))
			}
			if data.Finally.IsValid() {
				node.add(role("finally", buildStmtNode(b, data.Finally)))
			}
		}
	case ast.StmtIf:
		if data, ok := b.Stmts.If(id); ok {
			node.add(role("cond", buildExprNode(b, data.Cond)))
			node.add(role("then", buildStmtNode(b, data.Then)))
			if data.Else.IsValid() {
				node.add(role("else", buildStmtNode(b, data.Else)))
			}
		}
	case ast.StmtWhile, ast.StmtDoWhile:
		if data, ok := b.Stmts.Loop(id); ok {
			node.add(role("cond", buildExprNode(b, data.Cond)))
			node.add(role("body", buildStmtNode(b, data.Body)))
		}
	case ast.StmtFor:
		if data, ok := b.Stmts.For(id); ok {
			node.add(role("init", buildStmtNode(b, data.Init)))
			if data.Cond.IsValid() {
				node.add(role("cond", buildExprNode(b, data.Cond)))
			}
			if data.Post.IsValid() {
				node.add(role("post", buildExprNode(b, data.Post)))
			}
			node.add(role("body", buildStmtNode(b, data.Body)))
		}
	case ast.StmtWith:
		if data, ok := b.Stmts.With(id); ok {
			node.add(role("object", buildExprNode(b, data.Object)))
			node.add(role("body", buildStmtNode(b, data.Body)))
		}
	case ast.StmtFunction, ast.StmtAsyncFunction, ast.StmtClass:
		if data, ok := b.Stmts.Decl(id); ok {
			node.add(buildExprNode(b, data.Decl))
		}
	case ast.StmtSwitch:
		if data, ok := b.Stmts.Switch(id); ok {
			node.add(role("discriminant", buildExprNode(b, data.Discriminant)))
			for _, c := range data.Cases {
				cn := &ASTNodeOutput{Type: "Case", Kind: "Case", Span: c.Span}
				if c.Test.IsValid() {
					cn.add(role("test", buildExprNode(b, c.Test)))
				} else {
					cn.Kind = "Default"
				}
				for _, child := range c.Body {
					cn.add(buildStmtNode(b, child))
				}
				node.add(cn)
			}
		}
	case ast.StmtLabel:
		if data, ok := b.Stmts.Label(id); ok {
			node.Text = b.Name(data.Label)
			node.add(buildStmtNode(b, data.Body))
		}
	}
	return node
}
