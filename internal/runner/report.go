package runner

import (
	"fmt"
	"text/tabwriter"

	"github.com/htx-audio/backend-probe/internal/probe"
)

// printSummary writes the per-round pass/fail table in endpoint order.
func (r *Runner) printSummary(results map[string]probe.Result) {
	fmt.Fprintln(r.out, "\n=== CONNECTION TEST SUMMARY ===")

	tw := tabwriter.NewWriter(r.out, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "NAME\tSTATUS\tCODE\tTIME\tDETAIL\n")

	for _, ep := range r.endpoints {
		result, ok := results[ep.Name()]
		if !ok {
			continue
		}

		status := "FAIL"
		if result.Succeeded() {
			status = "PASS"
		}

		code := "-"
		if result.Code != 0 {
			code = fmt.Sprintf("%d", result.Code)
		}

		elapsed := "-"
		if result.Elapsed != 0 {
			elapsed = fmt.Sprintf("%.3fs", result.Elapsed.Seconds())
		}

		detail := result.Err
		if result.Warning != "" {
			detail = result.Warning
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", ep.Name(), status, code, elapsed, detail)
	}

	if err := tw.Flush(); err != nil {
		r.logger.Warn("Could not flush summary table")
	}
}
