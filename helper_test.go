package okane

import (
	"math/rand"
	"time"

	"github.com/etnz/okane/date"
)

// tx is a test helper to build a transaction from literals.
func tx(id, day string, t TxType, amount int64, desc string) Transaction {
	return Transaction{ID: id, Date: date.MustParse(day), Type: t, Amount: amount, Description: desc}
}

// testLedger is the concrete scenario ledger used across the package
// tests: 1000 initial, +5000 on Jan 1, -3000 on Jan 10.
func testLedger() *Ledger {
	return &Ledger{
		InitialBalance: 1000,
		Transactions: []Transaction{
			tx("a", "2026-01-01", Income, 5000, "salary"),
			tx("b", "2026-01-10", Expense, 3000, "rent"),
		},
	}
}

// mustMonth is a test helper to build a calendar month from a literal.
func mustMonth(s string) date.Month { return date.MustParseMonth(s) }

// fixedIDSource returns a deterministic IDSource pinned to a fixed clock.
func fixedIDSource(at time.Time, seed int64) *IDSource {
	return &IDSource{now: func() time.Time { return at }, rand: rand.New(rand.NewSource(seed))}
}
