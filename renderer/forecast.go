package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/okane"
)

// ForecastMarkdown renders the month-by-month balance projection as a
// markdown table. Negative balances are emphasized, thin ones flagged.
func ForecastMarkdown(entries []okane.ForecastEntry) string {
	var b strings.Builder
	b.WriteString("## Balance forecast\n\n")
	b.WriteString("| Month | Balance | Large items |\n")
	b.WriteString("|-------|---------|-------------|\n")

	for _, e := range entries {
		balance := Yen(e.Balance)
		switch {
		case e.Balance < 0:
			balance = fmt.Sprintf("**%s** ⚠️", balance)
		case e.Balance < okane.LowMarginThreshold:
			balance = fmt.Sprintf("%s ⚠️", balance)
		}

		items := make([]string, 0, len(e.LargeItems))
		for _, tx := range e.LargeItems {
			items = append(items, fmt.Sprintf("%s(%s)", tx.Description, SignedYen(tx.Amount, tx.Type == okane.Income)))
		}

		fmt.Fprintf(&b, "| %s | %s | %s |\n", e.Month, balance, strings.Join(items, ", "))
	}
	return b.String()
}
