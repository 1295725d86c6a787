// Package cmd implements the radix CLI commands.
package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "radix",
	Short: "Scalar root finding with automatic differentiation",
	Long: `radix finds roots of scalar functions with Newton-Raphson iteration,
obtaining derivatives through automatic differentiation.

Functions are given as polynomial coefficients; the derivative at each
iterate comes from the selected differentiation engine, never from a
hand-coded formula.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
