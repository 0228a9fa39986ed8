package okane

import (
	"github.com/etnz/okane/date"
)

// LowMarginThreshold is the remaining balance under which an
// affordability check raises a warning, in yen.
const LowMarginThreshold = 100_000

// upcomingExpenseCount bounds how many scheduled expenses after the
// target date are reported for context.
const upcomingExpenseCount = 5

// Affordability is the what-if result of spending a hypothetical amount
// on a given date. It never mutates the ledger.
type Affordability struct {
	Date          date.Date
	Amount        int64
	BalanceBefore int64
	BalanceAfter  int64
	CanAfford     bool // balance stays at or above zero
	Warning       bool // balance falls under LowMarginThreshold, even when affordable
	Upcoming      []Transaction
	UpcomingTotal int64
}

// CheckAffordability reports the balance impact of a hypothetical
// expense, along with the next few scheduled expenses strictly after
// the target date (in storage order, which is date-ascending after
// normalization).
func (l *Ledger) CheckAffordability(amount int64, on date.Date) Affordability {
	before := l.BalanceAt(on)
	after := before - amount

	var upcoming []Transaction
	for _, tx := range l.Transactions {
		if tx.Type == Expense && tx.Date.After(on) {
			upcoming = append(upcoming, tx)
			if len(upcoming) == upcomingExpenseCount {
				break
			}
		}
	}
	var total int64
	for _, tx := range upcoming {
		total += tx.Amount
	}

	return Affordability{
		Date:          on,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		CanAfford:     after >= 0,
		Warning:       after < LowMarginThreshold,
		Upcoming:      upcoming,
		UpcomingTotal: total,
	}
}
