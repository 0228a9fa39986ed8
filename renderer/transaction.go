package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/okane"
)

// shortIDLen is how much of an id the table shows unless the full id
// was requested.
const shortIDLen = 15

// Transaction renders a transaction to a one-line string.
func Transaction(tx okane.Transaction) string {
	return fmt.Sprintf("%s %s %s (%s)", tx.Date, tx.Description, SignedYen(tx.Amount, tx.Type == okane.Income), tx.ID)
}

// TransactionsMarkdown renders a transaction table. Ids are abbreviated
// unless fullID is set; the caller controls the order of the slice.
func TransactionsMarkdown(txs []okane.Transaction, fullID bool) string {
	var b strings.Builder
	if len(txs) == 0 {
		b.WriteString("No transactions found.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "## Transactions (%d)\n\n", len(txs))
	b.WriteString("| ID | Date | Type | Amount | Description |\n")
	b.WriteString("|----|------|------|--------|-------------|\n")
	for _, tx := range txs {
		id := tx.ID
		if !fullID && len(id) > shortIDLen {
			id = id[:shortIDLen] + "..."
		}
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s | %s |\n", id, tx.Date, tx.Type, Yen(tx.Amount), tx.Description)
	}
	return b.String()
}
