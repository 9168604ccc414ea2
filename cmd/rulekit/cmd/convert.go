package cmd

import (
	"fmt"
	"os"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/rulekit/rulekit/encoding/ruleyaml"
)

var toYAML bool

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert between YAML rule documents and JSON expressions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if toYAML {
			e, err := loadExpression(args[0])
			if err != nil {
				return err
			}
			out, err := ruleyaml.FromExpression(e)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		}

		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		e, err := ruleyaml.ToExpression(src)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), oj.JSON(e, 2))
		return nil
	},
}

func init() {
	convertCmd.Flags().BoolVar(&toYAML, "to-yaml", false, "convert a JSON expression to a YAML rule document")
	rootCmd.AddCommand(convertCmd)
}
