// Package ast declares the node types used to represent rule
// expressions as editable trees.
//
// A Block is one node of the tree shown by the visual rule builder: a
// literal value, a variable reference, or an operator application
// whose operands are child Blocks. The operator fully determines the
// node's kind; KindOf is the total mapping between the two.
package ast

import (
	"fmt"

	"github.com/rulekit/rulekit/internal/blockid"
)

// Kind is the syntactic category of a Block. The zero value is
// invalid.
type Kind int

// Supported block kinds.
const (
	KindInvalid Kind = iota
	KindLiteral
	KindVariable
	KindLogical
	KindComparison
	KindArithmetic
	KindConditional
)

var kindNames = map[Kind]string{
	KindLiteral:     "literal",
	KindVariable:    "variable",
	KindLogical:     "logical",
	KindComparison:  "comparison",
	KindArithmetic:  "arithmetic",
	KindConditional: "conditional",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler so Blocks encode their
// kind under the "type" key the editor expects.
func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid kind %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown block kind %q", string(text))
}

// Operator is the symbol identifying what a Block does. Literal and
// variable Blocks use the OpLiteral and OpVar pseudo-operators; all
// other operators match their JSONLogic symbol.
type Operator string

// Recognized operator symbols.
const (
	OpLiteral Operator = "literal"
	OpVar     Operator = "var"

	OpAnd Operator = "and"
	OpOr  Operator = "or"
	OpNot Operator = "!"

	OpEq        Operator = "=="
	OpNeq       Operator = "!="
	OpStrictEq  Operator = "==="
	OpStrictNeq Operator = "!=="
	OpGt        Operator = ">"
	OpGte       Operator = ">="
	OpLt        Operator = "<"
	OpLte       Operator = "<="

	OpIf Operator = "if"

	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"
	OpMod Operator = "%"
)

// Operator groups, in a fixed order used for deterministic iteration.
var (
	LogicalOperators    = []Operator{OpAnd, OpOr, OpNot}
	ComparisonOperators = []Operator{OpEq, OpNeq, OpStrictEq, OpStrictNeq, OpGt, OpGte, OpLt, OpLte}
	ArithmeticOperators = []Operator{OpAdd, OpSub, OpMul, OpDiv, OpMod}
)

var kindByOperator = map[Operator]Kind{
	OpLiteral: KindLiteral,
	OpVar:     KindVariable,

	OpAnd: KindLogical,
	OpOr:  KindLogical,
	OpNot: KindLogical,

	OpEq:        KindComparison,
	OpNeq:       KindComparison,
	OpStrictEq:  KindComparison,
	OpStrictNeq: KindComparison,
	OpGt:        KindComparison,
	OpGte:       KindComparison,
	OpLt:        KindComparison,
	OpLte:       KindComparison,

	OpIf: KindConditional,

	OpAdd: KindArithmetic,
	OpSub: KindArithmetic,
	OpMul: KindArithmetic,
	OpDiv: KindArithmetic,
	OpMod: KindArithmetic,
}

// KindOf returns the kind implied by op. Unrecognized operators map to
// KindInvalid.
func KindOf(op Operator) Kind {
	return kindByOperator[op]
}

// Name returns a human-readable name for op, used in diagnostics and
// error messages.
func (op Operator) Name() string {
	switch op {
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	case OpNot:
		return "NOT"
	case OpIf:
		return "IF"
	default:
		return fmt.Sprintf("%q", string(op))
	}
}

// Block is one node of an expression tree.
//
// Invariants:
//   - Kind == KindOf(Operator).
//   - Literal and variable Blocks have Value set and no Children.
//   - Operator Blocks have Children set (possibly empty) and no Value.
//   - A child is owned exclusively by its parent's Children slice;
//     trees never share nodes or contain cycles.
//
// A nil element inside Children marks an operand slot that has not
// been filled in yet. The slots are positional: for comparisons the
// first slot is the left-hand side, for conditionals the slots are
// condition, then, else.
type Block struct {
	ID       string   `json:"id"`
	Kind     Kind     `json:"type"`
	Operator Operator `json:"operator"`
	Value    any      `json:"value,omitempty"`
	Children []*Block `json:"children,omitempty"`
}

// NewLiteral returns a literal Block holding v, with a fresh id.
func NewLiteral(v any) *Block {
	return &Block{
		ID:       blockid.New(),
		Kind:     KindLiteral,
		Operator: OpLiteral,
		Value:    v,
	}
}

// NewVariable returns a variable-reference Block for the given dot
// path, with a fresh id.
func NewVariable(path string) *Block {
	return &Block{
		ID:       blockid.New(),
		Kind:     KindVariable,
		Operator: OpVar,
		Value:    path,
	}
}

// NewOperator returns an operator Block with the given children, in
// order, and a fresh id. The children slice is always non-nil so the
// value/children invariant holds even for zero operands.
func NewOperator(op Operator, children ...*Block) *Block {
	if children == nil {
		children = []*Block{}
	}
	return &Block{
		ID:       blockid.New(),
		Kind:     KindOf(op),
		Operator: op,
		Children: children,
	}
}
