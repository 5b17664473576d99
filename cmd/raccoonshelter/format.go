package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/ChicagoDave/raccoonshelter/pkg/cost"
	"github.com/ChicagoDave/raccoonshelter/pkg/validation"
)

const totalsSeparator = "# TOTALS #################"

// printCostReport writes one "<name> <value>" line per category in name
// order, then the totals block.
func printCostReport(w io.Writer, m *cost.Model) error {
	bw := bufio.NewWriter(w)

	for _, e := range m.Sorted() {
		fmt.Fprintf(bw, "%s %s\n", e.Name, formatAmount(e.Value))
	}

	s := m.Summary()
	fmt.Fprintln(bw, totalsSeparator)
	fmt.Fprintf(bw, "Total cost %s\n", formatAmount(s.Total))
	fmt.Fprintf(bw, "Yearly cost %s\n", formatAmount(s.Yearly))
	fmt.Fprintf(bw, "One-time cost %s\n", formatAmount(s.OneTime))
	fmt.Fprintf(bw, "Land area %s\n", formatAmount(s.LandAreaM2))

	return bw.Flush()
}

// formatAmount renders v as the shortest decimal that round-trips to the
// same float64, without exponent. v must be finite.
func formatAmount(v float64) string {
	return decimal.NewFromFloat(v).String()
}

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, e := range r.Warnings {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(w io.Writer, e validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
	if e.Path != "" {
		fmt.Fprintf(w, "    -> %s = %v\n", e.Path, e.ActualValue)
	}
	if e.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", e.Expected)
	}
	for _, s := range e.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}
