package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"pancake/internal/ast"
	"pancake/internal/source"
)

// ASTNodeOutput is the shared shape behind the pretty, JSON and tree AST
// renderers. Role names the slot the node fills in its parent (cond, body, ...).
type ASTNodeOutput struct {
	Type     string           `json:"type"`
	Kind     string           `json:"kind"`
	Role     string           `json:"role,omitempty"`
	Span     source.Span      `json:"span"`
	Text     string           `json:"text,omitempty"`
	Children []*ASTNodeOutput `json:"children,omitempty"`
}

func (n *ASTNodeOutput) add(child *ASTNodeOutput) {
	n.Children = append(n.Children, child)
}

func role(name string, n *ASTNodeOutput) *ASTNodeOutput {
	n.Role = name
	return n
}

// BuildProgram collects the top-level statements into one Program node.
func BuildProgram(b *ast.Builder, stmts []ast.StmtID) *ASTNodeOutput {
	root := &ASTNodeOutput{Type: "Program", Kind: "Program"}
	for i, id := range stmts {
		child := buildStmtNode(b, id)
		if i == 0 {
			root.Span = child.Span
		} else {
			root.Span = root.Span.Cover(child.Span)
		}
		root.add(child)
	}
	return root
}

// label: "role: Kind text"; строковые литералы в кавычках.
func (n *ASTNodeOutput) label() string {
	out := n.Kind
	if n.Role != "" {
		out = n.Role + ": " + out
	}
	switch {
	case n.Kind == "String" || n.Kind == "Text":
		out += " " + strconv.Quote(n.Text)
	case n.Text != "":
		out += " " + n.Text
	}
	return out
}

// FormatASTPretty prints the program as an indented tree with resolved spans.
func FormatASTPretty(w io.Writer, b *ast.Builder, stmts []ast.StmtID, fs *source.FileSet) error {
	root := BuildProgram(b, stmts)
	if _, err := fmt.Fprintf(w, "%s (span: %s)\n", root.label(), formatSpan(root.Span, fs)); err != nil {
		return err
	}
	return writePrettyChildren(w, root, "", fs)
}

func writePrettyChildren(w io.Writer, node *ASTNodeOutput, prefix string, fs *source.FileSet) error {
	for i, child := range node.Children {
		branch, next := "├─ ", "│  "
		if i == len(node.Children)-1 {
			branch, next = "└─ ", "   "
		}
		line := prefix + branch + child.label()
		if child.Type != "Chunk" {
			line += fmt.Sprintf(" (span: %s)", formatSpan(child.Span, fs))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if err := writePrettyChildren(w, child, prefix+next, fs); err != nil {
			return err
		}
	}
	return nil
}

// FormatASTJSON writes the Program node as indented JSON.
func FormatASTJSON(w io.Writer, b *ast.Builder, stmts []ast.StmtID) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildProgram(b, stmts))
}
