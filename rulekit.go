// Package rulekit implements a high-level API for the rule-builder
// expression engine: parsing JSONLogic values into editable block
// trees, serializing the trees back losslessly, validating block
// structure, and evaluating expressions against a context.
//
// Lower-level APIs which give more control are available in the inner
// packages. The implementation of this package is minimal and serves
// as a reference for how to consume them.
package rulekit

import (
	"github.com/rulekit/rulekit/ast"
	"github.com/rulekit/rulekit/diag"
	"github.com/rulekit/rulekit/eval"
	"github.com/rulekit/rulekit/expr"
	"github.com/rulekit/rulekit/parser"
	"github.com/rulekit/rulekit/printer"
	"github.com/rulekit/rulekit/typecheck"
)

// Parse converts a JSONLogic value into a block tree. Every block in
// the result carries a fresh id. For any value Parse accepts,
// Serialize of the result is deep-equal to the input.
func Parse(e expr.Expr) ([]*ast.Block, error) {
	return parser.Parse(e)
}

// ParseJSON decodes src as JSON and parses the result.
func ParseJSON(src []byte) ([]*ast.Block, error) {
	return parser.ParseJSON(src)
}

// Serialize converts a block tree back into a JSONLogic value,
// enforcing each operator's arity contract. An empty tree list
// serializes to nil.
func Serialize(blocks []*ast.Block) (expr.Expr, error) {
	return printer.Serialize(blocks)
}

// SerializeJSON serializes blocks and renders the result as indented
// JSON text.
func SerializeJSON(blocks []*ast.Block) ([]byte, error) {
	return printer.SerializeJSON(blocks)
}

// Validate runs the advisory structural checks the editor consults
// before allowing a save. The returned diagnostics never include the
// serializer's hard errors; an empty result means Serialize will not
// fail on arity.
func Validate(blocks []*ast.Block) diag.Diagnostics {
	return typecheck.CheckAll(blocks)
}

// Evaluate runs e against ctx through the JSONLogic runtime. The
// second return value is false when the expression is empty and no
// evaluation happened.
func Evaluate(e expr.Expr, ctx map[string]any) (eval.Result, bool) {
	return eval.Apply(e, ctx)
}
