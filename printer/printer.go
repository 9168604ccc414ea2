// Package printer serializes block trees back into JSONLogic values.
//
// Serialization is the inverse of parsing: for any tree the parser
// produced, Serialize returns a value deep-equal to the original
// input. Fixed-arity operators are enforced here as a last line of
// defense; the typecheck package is the advisory layer the editor is
// expected to consult first, so reaching an ArityError indicates a bug
// in the caller rather than a user data problem.
package printer

import (
	"fmt"

	"github.com/ohler55/ojg/oj"

	"github.com/rulekit/rulekit/ast"
	"github.com/rulekit/rulekit/expr"
)

// ArityError is returned when a block's children violate its
// operator's arity contract.
type ArityError struct {
	Operator ast.Operator
	Message  string
}

// Error implements error.
func (e *ArityError) Error() string { return e.Message }

// UnknownOperatorError is returned when a block carries an operator
// symbol outside the recognized set. It should be unreachable given
// the closed operator vocabulary, but exists for defense in depth.
type UnknownOperatorError struct {
	Operator ast.Operator
}

// Error implements error.
func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator: %q", string(e.Operator))
}

// Serialize converts a list of root blocks into a JSONLogic value.
// Only the first root is serialized; an empty list serializes to nil.
func Serialize(blocks []*ast.Block) (expr.Expr, error) {
	if len(blocks) == 0 {
		return nil, nil
	}
	return toExpression(blocks[0])
}

// SerializeJSON serializes blocks and renders the result as indented
// JSON text.
func SerializeJSON(blocks []*ast.Block) ([]byte, error) {
	v, err := Serialize(blocks)
	if err != nil {
		return nil, err
	}
	return []byte(oj.JSON(v, 2)), nil
}

func toExpression(b *ast.Block) (expr.Expr, error) {
	switch b.Operator {
	case ast.OpLiteral:
		return b.Value, nil

	case ast.OpVar:
		path, _ := b.Value.(string)
		return map[string]any{string(ast.OpVar): path}, nil

	case ast.OpAnd, ast.OpOr:
		// An empty operand list is permitted here, though
		// semantically vacuous; the typecheck layer flags it.
		items, err := operandList(b)
		if err != nil {
			return nil, err
		}
		return map[string]any{string(b.Operator): items}, nil

	case ast.OpNot:
		if len(b.Children) != 1 || b.Children[0] == nil {
			return nil, &ArityError{Operator: b.Operator, Message: "NOT operator requires a child"}
		}
		child, err := toExpression(b.Children[0])
		if err != nil {
			return nil, err
		}
		return map[string]any{string(ast.OpNot): child}, nil

	case ast.OpIf:
		if countPresent(b.Children) != 3 || len(b.Children) != 3 {
			return nil, &ArityError{
				Operator: b.Operator,
				Message:  "IF operator requires condition, then and else operands",
			}
		}
		items, err := operandList(b)
		if err != nil {
			return nil, err
		}
		return map[string]any{string(ast.OpIf): items}, nil

	case ast.OpEq, ast.OpNeq, ast.OpStrictEq, ast.OpStrictNeq,
		ast.OpGt, ast.OpGte, ast.OpLt, ast.OpLte:
		if countPresent(b.Children) != 2 || len(b.Children) != 2 {
			return nil, &ArityError{
				Operator: b.Operator,
				Message:  fmt.Sprintf("%s operator requires exactly two operands", b.Operator.Name()),
			}
		}
		items, err := operandList(b)
		if err != nil {
			return nil, err
		}
		return map[string]any{string(b.Operator): items}, nil

	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		// No arity floor at serialization time: the "at least two
		// operands" rule lives in the typecheck layer only.
		items, err := operandList(b)
		if err != nil {
			return nil, err
		}
		return map[string]any{string(b.Operator): items}, nil

	default:
		return nil, &UnknownOperatorError{Operator: b.Operator}
	}
}

// operandList serializes every child of b, in order. Unfilled operand
// slots are an arity violation for every list-shaped operator.
func operandList(b *ast.Block) ([]any, error) {
	items := make([]any, 0, len(b.Children))
	for _, child := range b.Children {
		if child == nil {
			return nil, &ArityError{
				Operator: b.Operator,
				Message:  fmt.Sprintf("%s operator has an unfilled operand", b.Operator.Name()),
			}
		}
		item, err := toExpression(child)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
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
