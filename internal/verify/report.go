package verify

import (
	"fmt"
	"io"
	"strings"
)

const reportRule = "============================================================"

// WriteReport renders the deterministic text report for a suite run.
// The same result always produces the same bytes, which lets golden
// snapshots pin the report format.
func WriteReport(w io.Writer, res *Result) {
	fmt.Fprintln(w, reportRule)
	fmt.Fprintf(w, "Theorem suite: %s\n", res.Suite)
	fmt.Fprintln(w, reportRule)
	writeSection(w, "Discriminant formula: disc = 2^12 * p^6 * q^6 * (N-p)^4 * N^4", res.Discriminant)
	writeSection(w, "Valuation identity: ord_r(disc) = 4*ord_r(N)", res.Valuation)
	writeSection(w, "Conduit uniformity: ord_r(disc) constant over admissible p", res.Uniformity)
	fmt.Fprintln(w)
	fmt.Fprintln(w, reportRule)
	verdict := "PASS"
	if !res.Pass {
		verdict = "FAIL"
	}
	fmt.Fprintf(w, "%s: %d passed, %d failed, %d skipped\n", verdict, res.Passed, res.Failed, res.Skipped)
	fmt.Fprintln(w, reportRule)
}

func writeSection(w io.Writer, title string, checks []CaseOutcome) {
	if len(checks) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	for _, c := range checks {
		fmt.Fprintf(w, "  %s\n", formatOutcome(c))
	}
}

func formatOutcome(c CaseOutcome) string {
	status := "ok"
	switch {
	case c.Skipped:
		status = "skip"
	case !c.Pass:
		status = "MISMATCH"
	}
	parts := []string{c.Label}
	if c.Detail != "" {
		parts = append(parts, c.Detail)
	}
	parts = append(parts, status)
	return strings.Join(parts, ": ")
}
