package okane

import (
	"errors"
	"slices"
	"strings"

	"github.com/etnz/okane/date"
)

// ErrNotFound is returned by Edit and Delete when no transaction has
// the requested id. The caller reports it and leaves the file untouched.
var ErrNotFound = errors.New("transaction not found")

// Add constructs a transaction with a freshly generated id, appends it
// and re-sorts the ledger. The created transaction is returned.
func (l *Ledger) Add(ids *IDSource, on date.Date, t TxType, amount int64, description string) (Transaction, error) {
	tx := Transaction{
		ID:          ids.NewID(),
		Date:        on,
		Type:        t,
		Amount:      amount,
		Description: description,
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	l.Transactions = append(l.Transactions, tx)
	l.Normalize()
	return tx, nil
}

// TxPatch is a partial update of a transaction. Only non-nil fields are
// applied, so an explicit zero amount or empty description is honored.
type TxPatch struct {
	Date        *date.Date
	Type        *TxType
	Amount      *int64
	Description *string
}

// IsZero reports whether the patch changes nothing.
func (p TxPatch) IsZero() bool {
	return p.Date == nil && p.Type == nil && p.Amount == nil && p.Description == nil
}

// Edit applies a partial update to the first transaction with the given
// id, then re-sorts the ledger. It returns the updated transaction, or
// ErrNotFound.
func (l *Ledger) Edit(id string, patch TxPatch) (Transaction, error) {
	for i := range l.Transactions {
		if l.Transactions[i].ID != id {
			continue
		}
		tx := l.Transactions[i]
		if patch.Date != nil {
			tx.Date = *patch.Date
		}
		if patch.Type != nil {
			tx.Type = *patch.Type
		}
		if patch.Amount != nil {
			tx.Amount = *patch.Amount
		}
		if patch.Description != nil {
			tx.Description = *patch.Description
		}
		if err := tx.Validate(); err != nil {
			return Transaction{}, err
		}
		l.Transactions[i] = tx
		l.Normalize()
		return tx, nil
	}
	return Transaction{}, ErrNotFound
}

// Delete removes the first transaction with the given id and returns
// the removed record, or ErrNotFound.
func (l *Ledger) Delete(id string) (Transaction, error) {
	for i, tx := range l.Transactions {
		if tx.ID == id {
			l.Transactions = slices.Delete(l.Transactions, i, i+1)
			return tx, nil
		}
	}
	return Transaction{}, ErrNotFound
}

// Filter selects transactions for Search. Filters combine as
// independent ANDed predicates; nil bounds are inactive, so a zero
// minimum amount is a real filter, not an absent one.
type Filter struct {
	Type    TxType // empty matches both categories
	From    *date.Date
	To      *date.Date
	Min     *int64
	Max     *int64
	Keyword string // case-insensitive substring of the description
}

func (f Filter) matches(tx Transaction) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.From != nil && tx.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && tx.Date.After(*f.To) {
		return false
	}
	if f.Min != nil && tx.Amount < *f.Min {
		return false
	}
	if f.Max != nil && tx.Amount > *f.Max {
		return false
	}
	if f.Keyword != "" && !strings.Contains(strings.ToLower(tx.Description), strings.ToLower(f.Keyword)) {
		return false
	}
	return true
}

// Search returns the transactions matching the filter, newest first.
// This is the one place transactions are ordered date-descending.
func (l *Ledger) Search(f Filter) []Transaction {
	var out []Transaction
	for _, tx := range l.Transactions {
		if f.matches(tx) {
			out = append(out, tx)
		}
	}
	slices.SortStableFunc(out, func(a, b Transaction) int { return b.Date.Compare(a.Date) })
	return out
}
