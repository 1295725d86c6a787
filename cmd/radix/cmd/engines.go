package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List the available differentiation engines",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Available engines:")
		fmt.Println("  taped  reverse-mode automatic differentiation (gradient tape)")
		fmt.Println("  dual   forward-mode automatic differentiation (dual numbers)")
		fmt.Println("  fd     central finite-difference approximation")
	},
}

func init() {
	rootCmd.AddCommand(enginesCmd)
}
