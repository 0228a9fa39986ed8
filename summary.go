package okane

import (
	"github.com/shopspring/decimal"
)

// Summary is the aggregate view of a ledger printed under transaction
// listings.
type Summary struct {
	Count        int
	IncomeTotal  int64
	ExpenseTotal int64
	Net          int64           // income minus expense, ignoring the initial balance
	SavingsRate  decimal.Decimal // net over income, zero when there is no income
}

// Summarize computes the ledger totals. The savings rate is an exact
// decimal ratio so round yen totals never pick up float noise.
func (l *Ledger) Summarize() Summary {
	income, expense := l.Totals()
	s := Summary{
		Count:        len(l.Transactions),
		IncomeTotal:  income,
		ExpenseTotal: expense,
		Net:          income - expense,
	}
	if income > 0 {
		s.SavingsRate = decimal.NewFromInt(s.Net).DivRound(decimal.NewFromInt(income), 4)
	}
	return s
}
