package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulekit/rulekit/parser"
	"github.com/rulekit/rulekit/printer"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Round-trip a rule file through the block tree and pretty-print it",
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

		out, err := printer.SerializeJSON(blocks)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
