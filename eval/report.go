package eval

import (
	"fmt"
	"strings"
	"time"
)

const reportRule = "================================================================================"

// FormatReport renders the evaluation results as a plain-text report.
func FormatReport(mode string, results []CategoryResult) string {
	var b strings.Builder

	b.WriteString(reportRule + "\n")
	b.WriteString("ROUTER EVALUATION REPORT\n")
	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "Mode: %s\n", mode)
	fmt.Fprintf(&b, "Date: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString(reportRule + "\n\n")

	var total, correct, fallbacks int
	var elapsed time.Duration
	for _, r := range results {
		total += r.Total
		correct += r.Correct
		fallbacks += r.Fallbacks
		elapsed += r.Elapsed

		fmt.Fprintf(&b, "Category: %s\n", r.Category)
		fmt.Fprintf(&b, "  Cases:     %d\n", r.Total)
		fmt.Fprintf(&b, "  Correct:   %d (%.1f%%)\n", r.Correct, r.Accuracy()*100)
		fmt.Fprintf(&b, "  Fallbacks: %d\n", r.Fallbacks)
		if r.Total > 0 {
			fmt.Fprintf(&b, "  Avg time:  %s\n", (r.Elapsed / time.Duration(r.Total)).Round(time.Microsecond))
		}
		for _, m := range r.Mistakes {
			fmt.Fprintf(&b, "  MISS #%d: %q expected=%s got=%s\n", m.Case.ID, m.Case.Query, m.Case.Expected, m.Actual)
		}
		b.WriteString("\n")
	}

	b.WriteString(reportRule + "\n")
	if total > 0 {
		fmt.Fprintf(&b, "Overall: %d/%d correct (%.1f%%), %d fallbacks, %s total\n",
			correct, total, float64(correct)/float64(total)*100, fallbacks, elapsed.Round(time.Millisecond))
	} else {
		b.WriteString("Overall: no test cases found\n")
	}
	b.WriteString(reportRule + "\n")

	return b.String()
}
