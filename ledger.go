package okane

import (
	"fmt"
	"slices"
	"time"

	"github.com/etnz/okane/date"
)

// TxType is the category of a transaction. The sign of a transaction is
// carried by its type, never by the stored amount.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q (want %q or %q)", s, Income, Expense)
	}
}

// Transaction is one dated income or expense entry.
type Transaction struct {
	ID          string    `json:"id"`
	Date        date.Date `json:"date"`
	Type        TxType    `json:"type"`
	Amount      int64     `json:"amount"` // whole yen, always >= 0
	Description string    `json:"description"`
}

// Signed returns the amount with the sign carried by the type: positive
// for income, negative for expense.
func (t Transaction) Signed() int64 {
	if t.Type == Income {
		return t.Amount
	}
	return -t.Amount
}

// Validate checks a transaction for correctness.
func (t Transaction) Validate() error {
	if t.Amount < 0 {
		return fmt.Errorf("amount must not be negative, got %d", t.Amount)
	}
	if _, err := ParseTxType(string(t.Type)); err != nil {
		return err
	}
	if t.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}

// Ledger is the full transaction log plus starting balance.
//
// Transactions are kept in date-ascending order: Normalize is invoked
// after every mutation, and the sort is stable so same-date entries keep
// their relative order.
type Ledger struct {
	InitialBalance int64
	Transactions   []Transaction
	Compressed     bool
	CompressedAt   time.Time
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{Transactions: make([]Transaction, 0)}
}

// Normalize restores the date-ascending invariant with a stable sort.
func (l *Ledger) Normalize() {
	slices.SortStableFunc(l.Transactions, func(a, b Transaction) int {
		return a.Date.Compare(b.Date)
	})
}

// Get returns the first transaction with the given id, or false if absent.
func (l *Ledger) Get(id string) (Transaction, bool) {
	for _, tx := range l.Transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Totals returns the income and expense sums over the whole ledger.
func (l *Ledger) Totals() (income, expense int64) {
	for _, tx := range l.Transactions {
		if tx.Type == Income {
			income += tx.Amount
		} else {
			expense += tx.Amount
		}
	}
	return income, expense
}
