package okane

import (
	"github.com/etnz/okane/date"
)

// LargeItemThreshold is the amount from which a transaction is surfaced
// as a "large item" in forecasts, in yen.
const LargeItemThreshold = 100_000

// ForecastEntry is the projected balance for one month, annotated with
// that month's large transactions.
type ForecastEntry struct {
	Month      date.Month    `json:"-"`
	Date       date.Date     `json:"date"`
	Balance    int64         `json:"balance"`
	LargeItems []Transaction `json:"largeItems,omitempty"`
}

// Forecast projects month-end balances up to months ahead of today,
// using only transactions already present in the ledger. Entry 0 is
// today's balance; entry i>0 is the balance at the last calendar day of
// the month i months from today. Large items are informational
// annotations, they are never added to the balance a second time.
func (l *Ledger) Forecast(months int, today date.Date) []ForecastEntry {
	entries := make([]ForecastEntry, 0, months+1)
	for i := 0; i <= months; i++ {
		month := today.AddMonths(i).Month()
		target := today
		if i > 0 {
			target = month.Last()
		}

		var large []Transaction
		for _, tx := range l.Transactions {
			if month.Contains(tx.Date) && tx.Amount >= LargeItemThreshold {
				large = append(large, tx)
			}
		}

		entries = append(entries, ForecastEntry{
			Month:      month,
			Date:       target,
			Balance:    l.BalanceAt(target),
			LargeItems: large,
		})
	}
	return entries
}
