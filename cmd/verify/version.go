package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/levcheck/verifier/internal/currency"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and the fixed conversion rate",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("verify %s (%s)\n", version, runtime.Version())
		fmt.Printf("fixed rate: 1 EUR = %s BGN\n", currency.BGNPerEUR)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
