// Package eval implements the evaluation and preview contract for rule
// expressions.
//
// Operator runtime semantics (coercion, short-circuiting) belong to
// the external JSONLogic runtime this package wraps; eval only adds
// the empty-expression guard, the never-throw error boundary, and the
// debounced auto-evaluation used by interactive previews.
package eval

import (
	"fmt"

	jsonlogic "github.com/diegoholiveira/jsonlogic/v3"

	"github.com/rulekit/rulekit/expr"
)

// Result is the outcome of a single evaluation. When Err is set the
// runtime rejected the expression and Value is nil.
type Result struct {
	Value any
	Err   error
}

// applyFn is the underlying runtime entry point, swappable in tests.
var applyFn = jsonlogic.ApplyInterface

// IsEmpty reports whether e is an editor-in-progress state that should
// not reach the runtime: null, an object with no keys, an empty array,
// or any bare scalar.
func IsEmpty(e expr.Expr) bool {
	switch v := e.(type) {
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return true
	}
}

// Apply evaluates e against ctx. The second return value is false when
// the expression is empty and no evaluation happened; this "no result"
// state is distinct from evaluating to null.
//
// Errors and panics from the runtime are converted into the Result's
// Err field; Apply never panics across this boundary.
func Apply(e expr.Expr, ctx map[string]any) (res Result, evaluated bool) {
	if IsEmpty(e) {
		return Result{}, false
	}

	defer func() {
		if r := recover(); r != nil {
			res = Result{Err: fmt.Errorf("evaluation failed: %v", r)}
			evaluated = true
		}
	}()

	if ctx == nil {
		ctx = map[string]any{}
	}

	out, err := applyFn(e, ctx)
	if err != nil {
		return Result{Err: fmt.Errorf("evaluation failed: %w", err)}, true
	}
	return Result{Value: out}, true
}
