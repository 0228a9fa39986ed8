package okane

import (
	"testing"
)

func TestLedger_Normalize_Stable(t *testing.T) {
	l := &Ledger{
		Transactions: []Transaction{
			tx("late", "2026-02-01", Income, 1, ""),
			tx("first", "2026-01-01", Income, 1, ""),
			tx("second", "2026-01-01", Expense, 1, ""),
		},
	}
	l.Normalize()

	got := []string{l.Transactions[0].ID, l.Transactions[1].ID, l.Transactions[2].ID}
	want := []string{"first", "second", "late"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order after Normalize = %v, want %v", got, want)
		}
	}

	// Normalizing again keeps same-date ties in place.
	l.Normalize()
	if l.Transactions[0].ID != "first" || l.Transactions[1].ID != "second" {
		t.Errorf("second Normalize reordered same-date entries: %v", l.Transactions)
	}
}

func TestTransaction_Signed(t *testing.T) {
	if got := tx("", "2026-01-01", Income, 70, "").Signed(); got != 70 {
		t.Errorf("income Signed() = %d, want 70", got)
	}
	if got := tx("", "2026-01-01", Expense, 70, "").Signed(); got != -70 {
		t.Errorf("expense Signed() = %d, want -70", got)
	}
}

func TestParseTxType(t *testing.T) {
	if v, err := ParseTxType("income"); err != nil || v != Income {
		t.Errorf("ParseTxType(income) = %v, %v", v, err)
	}
	if v, err := ParseTxType("expense"); err != nil || v != Expense {
		t.Errorf("ParseTxType(expense) = %v, %v", v, err)
	}
	if _, err := ParseTxType("transfer"); err == nil {
		t.Error("ParseTxType(transfer) should fail")
	}
}

func TestLedger_Get(t *testing.T) {
	l := testLedger()
	if got, ok := l.Get("b"); !ok || got.Description != "rent" {
		t.Errorf("Get(b) = %v, %v", got, ok)
	}
	if _, ok := l.Get("zz"); ok {
		t.Error("Get(zz) should report absence")
	}
}
