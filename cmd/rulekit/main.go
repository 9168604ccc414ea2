package main

import (
	"os"

	"github.com/rulekit/rulekit/cmd/rulekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
