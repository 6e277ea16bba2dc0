package main

import (
	"fmt"
	"io"
	"strings"

	"sss/app"
)

var divider = strings.Repeat("=", 60)

func printReport(w io.Writer, res *app.Result, trace bool) {
	fmt.Fprintln(w, "\n=== TEST CASE SUMMARY ===")
	fmt.Fprintf(w, "Number of roots (n): %d\n", res.Keys.N)
	fmt.Fprintf(w, "Minimum required roots (k): %d\n", res.Keys.K)
	fmt.Fprintf(w, "Polynomial degree: %d\n", res.Keys.K-1)

	fmt.Fprintln(w, "\n=== DECODING ROOTS ===")
	for i, s := range res.Shares {
		fmt.Fprintf(w, "Root %s: base=%d, value=%q -> decimal=%s\n", s.Key, s.Base, s.Digits, res.Points[i].Y)
	}

	fmt.Fprintln(w, "\n=== FINDING SECRET USING LAGRANGE INTERPOLATION ===")
	if res.Field != "" {
		fmt.Fprintf(w, "Working modulo the %s group order\n", res.Field)
	}
	fmt.Fprintf(w, "Using the following %d points to find the secret:\n", len(res.Points))
	for _, p := range res.Points {
		fmt.Fprintf(w, "  (x: %s, y: %s)\n", p.X, p.Y)
	}

	if trace && len(res.Terms) > 0 {
		fmt.Fprintln(w, "\nf(0) = Σ[y_i * L_i(0)] where L_i(0) is the Lagrange coefficient")
		for _, t := range res.Terms {
			fmt.Fprintf(w, "For point (%s, %s):\n", t.X, t.Y)
			fmt.Fprintf(w, "  L_%d(0) = %s (≈ %s)\n", t.Index, t.Coefficient, t.Approx)
			fmt.Fprintf(w, "  Contribution: %s × %s = %s\n", t.Y, t.Coefficient, t.Contribution)
		}
		fmt.Fprintf(w, "\nTotal: f(0) = %s\n", res.Secret)
	}
	if res.Cached {
		fmt.Fprintln(w, "(result taken from the ledger)")
	}

	fmt.Fprintf(w, "\n%s\n", divider)
	fmt.Fprintln(w, "🔑 SECRET FOUND!")
	fmt.Fprintf(w, "The constant term c = %s\n", res.Secret)
	fmt.Fprintln(w, divider)
}
