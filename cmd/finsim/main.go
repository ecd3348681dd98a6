// finsim runs financial simulations from YAML scenario files or serves
// them over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "finsim",
	Short:   "Financial projection and amortization simulator",
	Long:    "finsim projects compound growth, dividend reinvestment, loan amortization,\nrent-vs-buy outcomes, debt payoff, FIRE targets and ROI from simple scenario files.",
	Version: version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
