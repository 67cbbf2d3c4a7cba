package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"pancake/internal/ast"
)

// treeBlock — отрисованное поддерево: строки одинаковой ширины и колонка корня.
type treeBlock struct {
	lines []string
	width int
	root  int
}

// FormatASTTree draws every top-level statement as a top-down ASCII tree.
func FormatASTTree(w io.Writer, b *ast.Builder, stmts []ast.StmtID) error {
	for i, id := range stmts {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		block := renderTree(buildStmtNode(b, id))
		for _, line := range block.lines {
			if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}

// padRight дополняет s пробелами до width ячеек терминала.
func padRight(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// renderTree places children side by side under the node label and joins
// them with a connector line of '/', '|' and '\'. Widths are measured in
// terminal cells, so wide runes in identifiers keep the columns aligned.
func renderTree(node *ASTNodeOutput) treeBlock {
	label := node.label()
	labelWidth := runewidth.StringWidth(label)

	if len(node.Children) == 0 {
		return treeBlock{
			lines: []string{label},
			width: labelWidth,
			root:  labelWidth / 2,
		}
	}

	const spacing = 3
	childBlocks := make([]treeBlock, len(node.Children))
	positions := make([]int, len(node.Children))
	maxChildHeight := 0
	childrenWidth := 0
	for i, child := range node.Children {
		childBlocks[i] = renderTree(child)
		maxChildHeight = max(maxChildHeight, len(childBlocks[i].lines))
		if i > 0 {
			childrenWidth += spacing
		}
		positions[i] = childrenWidth + childBlocks[i].root
		childrenWidth += childBlocks[i].width
	}

	// корень над серединой между крайними детьми
	center := (positions[0] + positions[len(positions)-1]) / 2
	labelStart := center - labelWidth/2
	childShift := 0
	if labelStart < 0 {
		childShift = -labelStart
		labelStart = 0
	}
	rootPos := labelStart + labelWidth/2
	for i := range positions {
		positions[i] += childShift
	}
	width := max(labelStart+labelWidth, childShift+childrenWidth)

	connector := []rune(strings.Repeat(" ", width))
	connector[rootPos] = '|'
	for _, pos := range positions {
		switch {
		case pos < rootPos:
			connector[pos] = '/'
		case pos > rootPos:
			connector[pos] = '\\'
		default:
			connector[pos] = '|'
		}
	}

	lines := make([]string, 0, 2+maxChildHeight)
	lines = append(lines, padRight(strings.Repeat(" ", labelStart)+label, width), string(connector))
	for row := range maxChildHeight {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", childShift))
		for i, block := range childBlocks {
			if i > 0 {
				sb.WriteString(strings.Repeat(" ", spacing))
			}
			line := ""
			if row < len(block.lines) {
				line = block.lines[row]
			}
			sb.WriteString(padRight(line, block.width))
		}
		lines = append(lines, padRight(sb.String(), width))
	}

	return treeBlock{lines: lines, width: width, root: rootPos}
}
