// Package parser converts JSONLogic values into block trees.
//
// Parsing is a purely structural recursive descent with no
// backtracking: each recognized expression shape maps to exactly one
// block shape, and operand order is preserved. Every synthesized block
// gets a fresh id, since the JSON source carries no identity.
package parser

import (
	"fmt"

	"github.com/ohler55/ojg/oj"

	"github.com/rulekit/rulekit/ast"
	"github.com/rulekit/rulekit/expr"
)

// UnknownExpressionError is returned when an input value matches no
// recognized expression shape. Callers parsing persisted or untrusted
// data must be prepared to recover from it, e.g. by falling back to a
// raw-JSON view of the rule.
type UnknownExpressionError struct {
	Value expr.Expr
}

// Error implements error.
func (e *UnknownExpressionError) Error() string {
	return fmt.Sprintf("unknown expression type: %s", oj.JSON(e.Value))
}

// Parse converts a JSONLogic value into a block tree. The single root
// block is wrapped in a one-element slice: the editor's top-level
// canvas holds a list of roots, even though the current grammar only
// ever produces one.
func Parse(e expr.Expr) ([]*ast.Block, error) {
	root, err := toBlock(e)
	if err != nil {
		return nil, err
	}
	return []*ast.Block{root}, nil
}

// ParseJSON decodes src as JSON and parses the result.
func ParseJSON(src []byte) ([]*ast.Block, error) {
	v, err := oj.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return Parse(v)
}

func toBlock(e expr.Expr) (*ast.Block, error) {
	if expr.IsLiteral(e) || expr.IsStringArray(e) {
		return ast.NewLiteral(e), nil
	}

	if expr.IsVar(e) {
		path, ok := expr.Operand(e).(string)
		if !ok {
			return nil, &UnknownExpressionError{Value: e}
		}
		return ast.NewVariable(path), nil
	}

	op, ok := expr.OperatorOf(e)
	if !ok {
		return nil, &UnknownExpressionError{Value: e}
	}

	// NOT takes a single expression operand rather than an operand
	// list.
	if op == ast.OpNot {
		child, err := toBlock(expr.Operand(e))
		if err != nil {
			return nil, err
		}
		return ast.NewOperator(op, child), nil
	}

	items, ok := expr.Operand(e).([]any)
	if !ok {
		return nil, &UnknownExpressionError{Value: e}
	}

	children := make([]*ast.Block, 0, len(items))
	for _, item := range items {
		child, err := toBlock(item)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return ast.NewOperator(op, children...), nil
}
