// Package expr classifies raw JSONLogic values.
//
// A JSONLogic expression is either a literal (string, number, bool or
// null) or a single-key object whose key is an operator symbol. The
// predicates in this package take a decoded JSON value and report
// whether it is shaped as a particular operator application. For any
// well-formed expression exactly one predicate is true; malformed
// values, including objects with more than one key, fail every
// predicate and are surfaced downstream as an unknown expression.
//
// None of the predicates panic or allocate.
package expr

import "github.com/rulekit/rulekit/ast"

// Expr is a decoded JSONLogic value: nil, a scalar, a []any, or a
// map[string]any keyed by an operator symbol.
type Expr = any

// IsLiteral reports whether e is a literal value: a string, number,
// bool or null. Arrays are not literals to this predicate even though
// string arrays may be stored as literal Block values; see
// IsStringArray.
func IsLiteral(e Expr) bool {
	switch e.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// IsStringArray reports whether e is an array whose elements are all
// strings. Such arrays are membership lists and are carried verbatim
// as literal Block values.
func IsStringArray(e Expr) bool {
	switch v := e.(type) {
	case []string:
		return true
	case []any:
		for _, el := range v {
			if _, ok := el.(string); !ok {
				return false
			}
		}
		return true
	}
	return false
}

// is reports whether e is a single-key object keyed by op.
func is(e Expr, op ast.Operator) bool {
	m, ok := e.(map[string]any)
	if !ok || len(m) != 1 {
		return false
	}
	_, ok = m[string(op)]
	return ok
}

// IsVar reports whether e is a variable reference.
func IsVar(e Expr) bool { return is(e, ast.OpVar) }

// IsAnd reports whether e is a logical AND.
func IsAnd(e Expr) bool { return is(e, ast.OpAnd) }

// IsOr reports whether e is a logical OR.
func IsOr(e Expr) bool { return is(e, ast.OpOr) }

// IsNot reports whether e is a logical NOT.
func IsNot(e Expr) bool { return is(e, ast.OpNot) }

// IsIf reports whether e is a conditional.
func IsIf(e Expr) bool { return is(e, ast.OpIf) }

// IsLogicalExpression reports whether e is an AND, OR or NOT.
func IsLogicalExpression(e Expr) bool {
	return IsAnd(e) || IsOr(e) || IsNot(e)
}

// IsComparisonExpression reports whether e is keyed by any operator of
// the comparison family.
func IsComparisonExpression(e Expr) bool {
	for _, op := range ast.ComparisonOperators {
		if is(e, op) {
			return true
		}
	}
	return false
}

// IsArithmeticExpression reports whether e is keyed by any operator of
// the arithmetic family.
func IsArithmeticExpression(e Expr) bool {
	for _, op := range ast.ArithmeticOperators {
		if is(e, op) {
			return true
		}
	}
	return false
}

// IsConditionalExpression reports whether e is a conditional.
func IsConditionalExpression(e Expr) bool { return IsIf(e) }

// OperatorOf returns the recognized operator symbol keying e. It
// returns false when e is not a single-key object or its key is not a
// recognized operator.
func OperatorOf(e Expr) (ast.Operator, bool) {
	m, ok := e.(map[string]any)
	if !ok || len(m) != 1 {
		return "", false
	}
	for k := range m {
		op := ast.Operator(k)
		if op != ast.OpLiteral && ast.KindOf(op) != ast.KindInvalid {
			return op, true
		}
	}
	return "", false
}

// Operand returns the value under e's single operator key, or nil when
// e is not a single-key object.
func Operand(e Expr) Expr {
	m, ok := e.(map[string]any)
	if !ok || len(m) != 1 {
		return nil
	}
	for _, v := range m {
		return v
	}
	return nil
}
