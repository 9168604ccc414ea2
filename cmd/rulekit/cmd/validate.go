package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rulekit/rulekit/diag"
	"github.com/rulekit/rulekit/parser"
	"github.com/rulekit/rulekit/typecheck"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Parse a rule file and report structural problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadExpression(args[0])
		if err != nil {
			return err
		}

		blocks, err := parser.Parse(e)
		if err != nil {
			return err
		}
		logger.Debug("parsed rule", zap.String("file", args[0]))

		diags := typecheck.CheckAll(blocks)
		if len(diags) > 0 {
			diag.Fprint(cmd.OutOrStdout(), diags)
		}
		if diags.HasErrors() {
			return errors.New("rule is structurally invalid")
		}

		fmt.Fprintln(cmd.OutOrStdout(), "rule is valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
