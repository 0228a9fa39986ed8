package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/okane"
)

// AffordabilityMarkdown renders the result of a what-if expense check.
func AffordabilityMarkdown(r okane.Affordability) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Spending %s on %s\n\n", Yen(r.Amount), r.Date)

	status := "✅ affordable"
	switch {
	case !r.CanAfford:
		status = "❌ not affordable"
	case r.Warning:
		status = "⚠️ affordable, thin margin"
	}
	fmt.Fprintf(&b, "**Verdict: %s**\n\n", status)

	b.WriteString("| | Amount |\n")
	b.WriteString("|---|--------|\n")
	fmt.Fprintf(&b, "| Balance before | %s |\n", Yen(r.BalanceBefore))
	fmt.Fprintf(&b, "| Expense | %s |\n", Yen(r.Amount))
	fmt.Fprintf(&b, "| Balance after | %s |\n", Yen(r.BalanceAfter))

	if len(r.Upcoming) > 0 {
		b.WriteString("\n### Upcoming expenses\n\n")
		b.WriteString("| Date | Description | Amount |\n")
		b.WriteString("|------|-------------|--------|\n")
		for _, tx := range r.Upcoming {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", tx.Date, tx.Description, Yen(tx.Amount))
		}
		fmt.Fprintf(&b, "\nNext %d upcoming expenses total %s.\n", len(r.Upcoming), Yen(r.UpcomingTotal))
	}
	return b.String()
}
