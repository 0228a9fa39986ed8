// Package chart renders balance-over-time charts. The domain package
// only supplies the (date, balance) series and the big transactions;
// everything visual lives here behind the Renderer capability.
package chart

import (
	"github.com/etnz/okane"
	"github.com/etnz/okane/date"
)

// BigTransactionThreshold is the amount from which a transaction gets
// its own marker on the chart, in yen.
const BigTransactionThreshold = 200_000

// BigTransaction is a marker point: a large transaction and the balance
// at its occurrence.
type BigTransaction struct {
	Date        date.Date `json:"date"`
	Balance     int64     `json:"balance"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	Type        string    `json:"type"`
}

// Series is the daily-resolution balance line with its annotations.
type Series struct {
	Dates    []date.Date
	Balances []int64
	Big      []BigTransaction
	Today    date.Date
}

// BuildSeries computes the daily balance from the first transaction
// through the end of the horizon, months ahead of today. It returns nil
// when the ledger has no transactions to plot.
func BuildSeries(l *okane.Ledger, months int, today date.Date) *Series {
	history := l.BalanceHistory()
	if len(history) == 0 {
		return nil
	}

	start := history[0].Date
	end := today.AddMonths(months)

	s := &Series{Today: today}
	for d, i := start, 0; !d.After(end); d = d.Add(1) {
		for i < len(history) && !history[i].Date.After(d) {
			i++
		}
		balance := l.InitialBalance
		if i > 0 {
			balance = history[i-1].Balance
		}
		s.Dates = append(s.Dates, d)
		s.Balances = append(s.Balances, balance)
	}

	for _, tx := range l.Transactions {
		if tx.Amount >= BigTransactionThreshold && !tx.Date.Before(start) && !tx.Date.After(end) {
			s.Big = append(s.Big, BigTransaction{
				Date:        tx.Date,
				Balance:     l.BalanceAt(tx.Date),
				Description: tx.Description,
				Amount:      tx.Amount,
				Type:        string(tx.Type),
			})
		}
	}
	return s
}
