// Package typecheck validates the structure of block trees before
// serialization is attempted.
//
// The checks are advisory: they return diagnostics rather than errors
// so the editor can flag incomplete blocks while the user keeps
// editing, blocking only the save action. The serializer enforces its
// own fixed-arity contract independently as a last line of defense.
package typecheck

import (
	"fmt"

	"github.com/rulekit/rulekit/ast"
	"github.com/rulekit/rulekit/diag"
	"github.com/rulekit/rulekit/scanner"
)

// CheckAll validates every root block of a tree list.
func CheckAll(blocks []*ast.Block) diag.Diagnostics {
	var diags diag.Diagnostics
	for i, b := range blocks {
		path := ""
		if i > 0 {
			path = fmt.Sprintf("roots[%d]", i)
		}
		diags.Merge(check(b, path))
	}
	return diags
}

// Check validates a single block and its descendants.
func Check(b *ast.Block) diag.Diagnostics {
	return check(b, "")
}

func check(b *ast.Block, path string) diag.Diagnostics {
	if b == nil {
		return nil
	}

	var diags diag.Diagnostics
	diags.Merge(checkNode(b, path))

	for i, child := range b.Children {
		if child == nil {
			continue
		}
		diags.Merge(check(child, childPath(path, i)))
	}

	return diags
}

// checkNode applies the per-operator structural rule to one block,
// ignoring its descendants.
func checkNode(b *ast.Block, path string) diag.Diagnostics {
	switch b.Operator {
	case ast.OpLiteral:
		return nil

	case ast.OpVar:
		return checkVariable(b, path)

	case ast.OpNot:
		if countPresent(b.Children) != 1 {
			return errorAt(b, path, "NOT operator requires a child")
		}
		return nil

	case ast.OpAnd, ast.OpOr:
		if countPresent(b.Children) == 0 {
			return errorAt(b, path, fmt.Sprintf("%s operator requires at least one operand", b.Operator.Name()))
		}
		return nil

	case ast.OpEq, ast.OpNeq, ast.OpStrictEq, ast.OpStrictNeq,
		ast.OpGt, ast.OpGte, ast.OpLt, ast.OpLte:
		// Missing operands are unfilled slots in a fixed-length
		// children array; order is load-bearing (left vs right).
		if !present(b.Children, 0) {
			return errorAt(b, path, fmt.Sprintf("%s operator is missing its left-hand operand", b.Operator.Name()))
		}
		if !present(b.Children, 1) {
			return errorAt(b, path, fmt.Sprintf("%s operator is missing its right-hand operand", b.Operator.Name()))
		}
		return nil

	case ast.OpIf:
		// Report the first missing slot only, checked in order
		// condition, then, else.
		switch {
		case !present(b.Children, 0):
			return errorAt(b, path, "IF operator is missing its condition")
		case !present(b.Children, 1):
			return errorAt(b, path, "IF operator is missing its then branch")
		case !present(b.Children, 2):
			return errorAt(b, path, "IF operator is missing its else branch")
		}
		return nil

	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		// A uniform floor of two operands for the whole arithmetic
		// family, including the n-ary + and *.
		if countPresent(b.Children) < 2 {
			return errorAt(b, path, fmt.Sprintf("%s operator requires at least two operands", b.Operator.Name()))
		}
		return nil

	default:
		return errorAt(b, path, fmt.Sprintf("unrecognized operator %q", string(b.Operator)))
	}
}

func checkVariable(b *ast.Block, path string) diag.Diagnostics {
	varPath, _ := b.Value.(string)
	if varPath == "" {
		return diag.Diagnostics{{
			Severity: diag.SeverityLevelWarn,
			BlockID:  b.ID,
			Path:     path,
			Message:  "variable has an empty path",
		}}
	}
	if !scanner.IsValidPath(varPath) {
		return diag.Diagnostics{{
			Severity: diag.SeverityLevelWarn,
			BlockID:  b.ID,
			Path:     path,
			Message:  fmt.Sprintf("malformed variable path %q", varPath),
		}}
	}
	return nil
}

func errorAt(b *ast.Block, path, msg string) diag.Diagnostics {
	return diag.Diagnostics{{
		Severity: diag.SeverityLevelError,
		BlockID:  b.ID,
		Path:     path,
		Message:  msg,
	}}
}

func childPath(parent string, i int) string {
	if parent == "" {
		return fmt.Sprintf("children[%d]", i)
	}
	return fmt.Sprintf("%s.children[%d]", parent, i)
}

func present(children []*ast.Block, i int) bool {
	return i < len(children) && children[i] != nil
}

func countPresent(children []*ast.Block) int {
	n := 0
	for _, c := range children {
		if c != nil {
			n++
		}
	}
	return n
}
