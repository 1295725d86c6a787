package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/radix-num/radix/engine"
	"github.com/radix-num/radix/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find a root of a polynomial",
	Long: `Find a root of a polynomial with Newton-Raphson iteration.

The polynomial is given as comma-separated coefficients, highest degree
first. For example, x³ - 6x² + 11x - 6:

  radix solve --poly "1,-6,11,-6" --guess 0.5

Solver settings may also come from a YAML file (--config); flags set on
the command line win over file values.`,
	RunE: runSolve,
}

var (
	solvePoly       string
	solveGuess      float64
	solveTolerance  float64
	solveMaxIters   int
	solveEngineName string
	solveConfigFile string
)

func init() {
	solveCmd.Flags().StringVar(&solvePoly, "poly", "", "polynomial coefficients, highest degree first (required)")
	solveCmd.Flags().Float64Var(&solveGuess, "guess", 0, "initial guess for the iterate")
	solveCmd.Flags().Float64Var(&solveTolerance, "tolerance", 0, "convergence threshold on |f(x)| (default 1e-6)")
	solveCmd.Flags().IntVar(&solveMaxIters, "max-iters", 0, "iteration budget (default 100)")
	solveCmd.Flags().StringVar(&solveEngineName, "engine", "taped", "differentiation engine: taped, dual, or fd")
	solveCmd.Flags().StringVar(&solveConfigFile, "config", "", "YAML file with solver settings")
	_ = solveCmd.MarkFlagRequired("poly")

	rootCmd.AddCommand(solveCmd)
}

// fileConfig is the YAML shape of a solver settings file.
type fileConfig struct {
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	Engine        string  `yaml:"engine"`
}

// loadConfig merges a YAML settings file under the command-line flags.
// Flags explicitly set by the user always win.
func loadConfig(cmd *cobra.Command) error {
	if solveConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(solveConfigFile)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", solveConfigFile, err)
	}

	if !cmd.Flags().Changed("tolerance") && fc.Tolerance != 0 {
		solveTolerance = fc.Tolerance
	}
	if !cmd.Flags().Changed("max-iters") && fc.MaxIterations != 0 {
		solveMaxIters = fc.MaxIterations
	}
	if !cmd.Flags().Changed("engine") && fc.Engine != "" {
		solveEngineName = fc.Engine
	}
	return nil
}

// buildEngine constructs the selected differentiation engine for the
// polynomial.
func buildEngine(name string, coeffs []float64) (solver.Engine, error) {
	switch name {
	case "taped":
		return engine.NewTaped(polyTaped(coeffs)), nil
	case "dual":
		return engine.NewDual(polyDual(coeffs)), nil
	case "fd":
		return engine.NewFinite(polyPlain(coeffs), 0), nil
	default:
		return nil, fmt.Errorf("unknown engine %q (want taped, dual, or fd)", name)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}

	coeffs, err := parseCoefficients(solvePoly)
	if err != nil {
		return err
	}

	e, err := buildEngine(solveEngineName, coeffs)
	if err != nil {
		return err
	}

	cfg := solver.Config{
		Tolerance:     solveTolerance,
		MaxIterations: solveMaxIters,
	}

	res, err := solver.Solve(e, solveGuess, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("f(x) = %s\n", formatPoly(coeffs))
	if !res.Converged() {
		return fmt.Errorf("no root found: %s after %d iterations (try another guess, a looser tolerance, or a larger budget)", res.Status, res.Iterations)
	}

	fmt.Printf("root = %.12g (%d iterations, %s engine)\n", res.Root, res.Iterations, solveEngineName)
	return nil
}
