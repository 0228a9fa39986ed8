package okane

import (
	"slices"

	"github.com/etnz/okane/date"
)

// BalanceAt computes the balance at the end of the given day: the
// initial balance plus every signed amount dated on or before it.
// O(n) per call, which is fine for the ledger sizes this tool targets.
func (l *Ledger) BalanceAt(on date.Date) int64 {
	balance := l.InitialBalance
	for _, tx := range l.Transactions {
		if !tx.Date.After(on) {
			balance += tx.Signed()
		}
	}
	return balance
}

// BalancePoint is the end-of-day balance for one distinct transaction date.
type BalancePoint struct {
	Date    date.Date `json:"date"`
	Balance int64     `json:"balance"`
}

// BalanceHistory walks the transactions in date order and emits one
// point per distinct date, holding the balance after the last
// transaction of that day. Intra-day running values are never emitted.
func (l *Ledger) BalanceHistory() []BalancePoint {
	txs := slices.Clone(l.Transactions)
	slices.SortStableFunc(txs, func(a, b Transaction) int { return a.Date.Compare(b.Date) })

	balance := l.InitialBalance
	history := make([]BalancePoint, 0, len(txs))

	var current date.Date
	daily := balance
	for _, tx := range txs {
		if !current.IsZero() && tx.Date != current {
			history = append(history, BalancePoint{Date: current, Balance: daily})
		}
		balance += tx.Signed()
		daily = balance
		current = tx.Date
	}
	// Flush the last seen date.
	if !current.IsZero() {
		history = append(history, BalancePoint{Date: current, Balance: daily})
	}
	return history
}

// DangerPoint is a date whose end-of-day balance is at or below a
// configured threshold.
type DangerPoint struct {
	Date      date.Date `json:"date"`
	Balance   int64     `json:"balance"`
	Shortfall int64     `json:"shortfall"` // threshold - balance, always >= 0
}

// DangerPoints scans the balance history for days where the balance is
// at or below the threshold. The returned slice is in date order and
// possibly empty.
func (l *Ledger) DangerPoints(threshold int64) []DangerPoint {
	var points []DangerPoint
	for _, p := range l.BalanceHistory() {
		if p.Balance <= threshold {
			points = append(points, DangerPoint{
				Date:      p.Date,
				Balance:   p.Balance,
				Shortfall: threshold - p.Balance,
			})
		}
	}
	return points
}
