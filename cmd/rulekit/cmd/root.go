// Package cmd implements the rulekit command line interface.
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "rulekit",
	Short: "rulekit validates, formats and evaluates JSONLogic rule expressions",
	Long: `rulekit works with the JSONLogic rule expressions produced by the visual
rule builder: it parses them into block trees, reports structural
problems, pretty-prints them, evaluates them against a context, and
converts YAML rule documents to JSON.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
