package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ohler55/ojg/oj"

	"github.com/rulekit/rulekit/encoding/ruleyaml"
	"github.com/rulekit/rulekit/expr"
)

// loadExpression reads a rule expression from path. YAML rule
// documents (.yaml/.yml) go through the ruleyaml reader; everything
// else is parsed as raw JSON.
func loadExpression(path string) (expr.Expr, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ruleyaml.ToExpression(src)
	default:
		v, err := oj.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
		}
		return v, nil
	}
}
