package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/num/dual"

	"github.com/radix-num/radix/autodiff"
)

// parseCoefficients parses a comma-separated coefficient list, highest
// degree first: "1,-6,11,-6" is x³ − 6x² + 11x − 6.
func parseCoefficients(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	coeffs := make([]float64, 0, len(parts))
	for _, p := range parts {
		c, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad coefficient %q: %w", p, err)
		}
		coeffs = append(coeffs, c)
	}
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("empty coefficient list")
	}
	return coeffs, nil
}

// polyTaped builds the polynomial as an autodiff function via Horner's
// scheme.
func polyTaped(coeffs []float64) autodiff.Func {
	return func(x *autodiff.Var) *autodiff.Var {
		acc := x.Graph().Const(coeffs[0])
		for _, c := range coeffs[1:] {
			acc = acc.Mul(x).AddScalar(c)
		}
		return acc
	}
}

// polyDual builds the polynomial over dual numbers via Horner's scheme.
func polyDual(coeffs []float64) func(dual.Number) dual.Number {
	return func(x dual.Number) dual.Number {
		acc := dual.Number{Real: coeffs[0]}
		for _, c := range coeffs[1:] {
			acc = dual.Add(dual.Mul(acc, x), dual.Number{Real: c})
		}
		return acc
	}
}

// polyPlain builds the polynomial as a plain function via Horner's scheme.
func polyPlain(coeffs []float64) func(float64) float64 {
	return func(x float64) float64 {
		acc := coeffs[0]
		for _, c := range coeffs[1:] {
			acc = acc*x + c
		}
		return acc
	}
}

// formatPoly renders the coefficient list as a readable polynomial.
func formatPoly(coeffs []float64) string {
	var b strings.Builder
	degree := len(coeffs) - 1
	first := true
	for i, c := range coeffs {
		if c == 0 && len(coeffs) > 1 {
			continue
		}
		d := degree - i
		if first {
			if c < 0 {
				b.WriteString("-")
			}
			first = false
		} else if c < 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		abs := c
		if abs < 0 {
			abs = -abs
		}
		switch {
		case d == 0:
			fmt.Fprintf(&b, "%g", abs)
		case abs == 1 && d == 1:
			b.WriteString("x")
		case abs == 1:
			fmt.Fprintf(&b, "x^%d", d)
		case d == 1:
			fmt.Fprintf(&b, "%gx", abs)
		default:
			fmt.Fprintf(&b, "%gx^%d", abs, d)
		}
	}
	if first {
		return "0"
	}
	return b.String()
}
