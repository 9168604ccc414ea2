// Package ruleyaml provides conversion between YAML rule documents and
// JSONLogic expressions.
//
// A rule document is a small YAML envelope around a logic tree:
//
//	version: "1.0.0"
//	rule:
//	  and:
//	    - "==": [{var: type}, settlement]
//	    - ">": [{var: level}, 3]
//
// The version field is a semantic version of the document format;
// readers accept any document whose major version matches
// SupportedMajor. The rule field decodes to exactly the value shapes
// the expression packages consume, so the result can be fed straight
// into the parser.
package ruleyaml

import (
	"fmt"

	"github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"

	"github.com/rulekit/rulekit/expr"
)

// SupportedMajor is the rule document format major version this
// package can read.
const SupportedMajor = 1

// Version is the format version new documents are written with.
const Version = "1.0.0"

type document struct {
	Version string `yaml:"version"`
	Rule    any    `yaml:"rule"`
}

// ToExpression parses a YAML rule document and returns its logic tree
// as a JSONLogic expression value.
func ToExpression(src []byte) (expr.Expr, error) {
	var doc document
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	if doc.Version == "" {
		return nil, fmt.Errorf("rule document is missing a version")
	}
	v, err := semver.Parse(doc.Version)
	if err != nil {
		return nil, fmt.Errorf("invalid document version %q: %w", doc.Version, err)
	}
	if v.Major != SupportedMajor {
		return nil, fmt.Errorf("unsupported document version %s: this reader supports major version %d", v, SupportedMajor)
	}

	return normalize(doc.Rule), nil
}

// FromExpression renders e as a YAML rule document carrying the
// current format version.
func FromExpression(e expr.Expr) ([]byte, error) {
	return yaml.Marshal(document{Version: Version, Rule: e})
}

// normalize rewrites the YAML decoding of a logic tree into the value
// shapes the expression packages expect: string-keyed maps and []any
// slices all the way down.
func normalize(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i := range v {
			v[i] = normalize(v[i])
		}
		return v
	default:
		return v
	}
}
