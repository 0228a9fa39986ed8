package okane

import (
	"fmt"
	"slices"
	"time"

	"github.com/etnz/okane/date"
)

// monthTotals accumulates the per-category sums of one archived month.
type monthTotals struct {
	income  int64
	expense int64
}

// CompressedID returns the synthetic id of an aggregate row. The id is
// a pure function of month and category, so re-aggregating a synthetic
// row into its own month reproduces the identical row: compression is
// idempotent under any later cutoff.
func CompressedID(m date.Month, t TxType) string {
	return fmt.Sprintf("compressed-%s-%s", m, t)
}

// Compress returns a new ledger where transactions older than
// keepMonths calendar months (counted from now, day of month ignored)
// are collapsed into at most two synthetic rows per month: one income
// total and one expense total, dated the 1st of that month. A category
// contributes a row only when its sum is nonzero. Kept transactions are
// carried over verbatim, in their original relative order, after the
// synthetic rows. This is a lossy, one-way archival transform; category
// totals are preserved.
func (l *Ledger) Compress(keepMonths int, now time.Time) *Ledger {
	cutoff := date.New(now.Date()).AddMonths(-keepMonths).Month()

	totals := make(map[date.Month]*monthTotals)
	kept := make([]Transaction, 0, len(l.Transactions))
	for _, tx := range l.Transactions {
		m := tx.Date.Month()
		if !m.Before(cutoff) {
			kept = append(kept, tx)
			continue
		}
		t, ok := totals[m]
		if !ok {
			t = &monthTotals{}
			totals[m] = t
		}
		if tx.Type == Income {
			t.income += tx.Amount
		} else {
			t.expense += tx.Amount
		}
	}

	months := make([]date.Month, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	slices.SortFunc(months, date.Month.Compare)

	compressed := make([]Transaction, 0, 2*len(months))
	for _, m := range months {
		t := totals[m]
		if t.income > 0 {
			compressed = append(compressed, Transaction{
				ID:          CompressedID(m, Income),
				Date:        m.First(),
				Type:        Income,
				Amount:      t.income,
				Description: fmt.Sprintf("%s income total (compressed)", m),
			})
		}
		if t.expense > 0 {
			compressed = append(compressed, Transaction{
				ID:          CompressedID(m, Expense),
				Date:        m.First(),
				Type:        Expense,
				Amount:      t.expense,
				Description: fmt.Sprintf("%s expense total (compressed)", m),
			})
		}
	}

	return &Ledger{
		InitialBalance: l.InitialBalance,
		Transactions:   append(compressed, kept...),
		Compressed:     true,
		CompressedAt:   now,
	}
}
