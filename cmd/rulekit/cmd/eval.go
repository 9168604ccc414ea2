package cmd

import (
	"fmt"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rulekit/rulekit/eval"
)

var contextJSON string

var evalCmd = &cobra.Command{
	Use:   "eval <file>",
	Short: "Evaluate a rule file against a context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadExpression(args[0])
		if err != nil {
			return err
		}

		raw, err := oj.ParseString(contextJSON)
		if err != nil {
			return fmt.Errorf("invalid context JSON: %w", err)
		}
		ctx, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("context must be a JSON object")
		}

		res, evaluated := eval.Apply(e, ctx)
		logger.Debug("evaluated rule",
			zap.String("file", args[0]),
			zap.Bool("evaluated", evaluated),
		)

		if !evaluated {
			fmt.Fprintln(cmd.OutOrStdout(), "no result")
			return nil
		}
		if res.Err != nil {
			return res.Err
		}

		fmt.Fprintln(cmd.OutOrStdout(), oj.JSON(res.Value, 2))
		return nil
	},
}

func init() {
	evalCmd.Flags().StringVarP(&contextJSON, "context", "c", "{}", "evaluation context as a JSON object")
	rootCmd.AddCommand(evalCmd)
}
