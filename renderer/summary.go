package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/okane"
	"github.com/shopspring/decimal"
)

// SummaryMarkdown renders the ledger totals footer.
func SummaryMarkdown(s okane.Summary) string {
	var b strings.Builder
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Transactions: %d\n", s.Count)
	fmt.Fprintf(&b, "- Income total: %s\n", Yen(s.IncomeTotal))
	fmt.Fprintf(&b, "- Expense total: %s\n", Yen(s.ExpenseTotal))
	fmt.Fprintf(&b, "- Net: %s\n", Yen(s.Net))
	if !s.SavingsRate.IsZero() {
		fmt.Fprintf(&b, "- Savings rate: %s%%\n", s.SavingsRate.Mul(decimal.NewFromInt(100)))
	}
	return b.String()
}
