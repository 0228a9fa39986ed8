package okane

import (
	"reflect"
	"testing"
	"time"
)

var compressNow = time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC)

func TestLedger_Compress(t *testing.T) {
	l := &Ledger{
		InitialBalance: 1000,
		Transactions: []Transaction{
			// January: both categories.
			tx("1", "2026-01-05", Income, 300, "old salary"),
			tx("2", "2026-01-20", Expense, 100, "old rent"),
			tx("3", "2026-01-25", Expense, 50, "old food"),
			// February: expense only.
			tx("4", "2026-02-10", Expense, 70, "old rent"),
			// March and later: inside the keep window (cutoff 2026-03).
			tx("5", "2026-03-01", Income, 10, "kept"),
			tx("6", "2026-05-02", Expense, 20, "kept"),
		},
	}

	got := l.Compress(3, compressNow)

	want := []Transaction{
		tx(CompressedID(mustMonth("2026-01"), Income), "2026-01-01", Income, 300, "2026-01 income total (compressed)"),
		tx(CompressedID(mustMonth("2026-01"), Expense), "2026-01-01", Expense, 150, "2026-01 expense total (compressed)"),
		tx(CompressedID(mustMonth("2026-02"), Expense), "2026-02-01", Expense, 70, "2026-02 expense total (compressed)"),
		tx("5", "2026-03-01", Income, 10, "kept"),
		tx("6", "2026-05-02", Expense, 20, "kept"),
	}
	if !reflect.DeepEqual(got.Transactions, want) {
		t.Errorf("Compress() transactions = %v, want %v", got.Transactions, want)
	}
	if !got.Compressed || !got.CompressedAt.Equal(compressNow) {
		t.Errorf("Compressed=%v CompressedAt=%v, want flagged at %v", got.Compressed, got.CompressedAt, compressNow)
	}
	if got.InitialBalance != 1000 {
		t.Errorf("InitialBalance = %d, want 1000", got.InitialBalance)
	}

	// The source ledger is untouched.
	if len(l.Transactions) != 6 || l.Compressed {
		t.Error("Compress must not mutate its receiver")
	}
}

// Compression changes granularity, never the aggregate category totals.
func TestLedger_Compress_PreservesTotals(t *testing.T) {
	l := &Ledger{
		Transactions: []Transaction{
			tx("1", "2025-08-01", Income, 111, ""),
			tx("2", "2025-09-02", Expense, 222, ""),
			tx("3", "2025-10-03", Income, 333, ""),
			tx("4", "2026-06-01", Expense, 444, ""),
		},
	}
	income, expense := l.Totals()

	got := l.Compress(3, compressNow)
	gotIncome, gotExpense := got.Totals()
	if gotIncome != income || gotExpense != expense {
		t.Errorf("totals after compression = (%d, %d), want (%d, %d)", gotIncome, gotExpense, income, expense)
	}
	// The balance at any date past the archive is unchanged too.
	if l.BalanceAt(mustMonth("2026-06").Last()) != got.BalanceAt(mustMonth("2026-06").Last()) {
		t.Error("final balance changed across compression")
	}
}

// Synthetic ids are a pure function of month and category, so a second
// compression with the same window is a no-op.
func TestLedger_Compress_Idempotent(t *testing.T) {
	l := &Ledger{
		Transactions: []Transaction{
			tx("1", "2025-08-01", Income, 100, ""),
			tx("2", "2025-08-15", Expense, 60, ""),
			tx("3", "2026-06-01", Expense, 5, "kept"),
		},
	}
	once := l.Compress(3, compressNow)
	twice := once.Compress(3, compressNow)
	if !reflect.DeepEqual(once.Transactions, twice.Transactions) {
		t.Errorf("second compression changed transactions:\n%v\n%v", once.Transactions, twice.Transactions)
	}
}

// A shorter keep window re-aggregates previous synthetic rows into the
// same months without double counting.
func TestLedger_Compress_ShrinkingWindow(t *testing.T) {
	l := &Ledger{
		Transactions: []Transaction{
			tx("1", "2025-11-01", Income, 100, ""),
			tx("2", "2026-02-10", Expense, 30, ""),
			tx("3", "2026-06-01", Income, 1, "kept"),
		},
	}
	income, expense := l.Totals()

	wide := l.Compress(6, compressNow)      // cutoff 2025-12: archives November only
	narrow := wide.Compress(3, compressNow) // cutoff 2026-03: re-archives the synthetic row plus February

	gotIncome, gotExpense := narrow.Totals()
	if gotIncome != income || gotExpense != expense {
		t.Errorf("totals after re-compression = (%d, %d), want (%d, %d)", gotIncome, gotExpense, income, expense)
	}
}

func TestLedger_Compress_CutoffBoundary(t *testing.T) {
	// now is 2026-06-15, keep 3 months: the cutoff month is 2026-03 and
	// March itself is kept.
	l := &Ledger{
		Transactions: []Transaction{
			tx("feb", "2026-02-28", Expense, 10, ""),
			tx("mar", "2026-03-01", Expense, 20, ""),
		},
	}
	got := l.Compress(3, compressNow)
	if len(got.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(got.Transactions))
	}
	if got.Transactions[0].ID != CompressedID(mustMonth("2026-02"), Expense) {
		t.Errorf("february should be archived, got %v", got.Transactions[0])
	}
	if got.Transactions[1].ID != "mar" {
		t.Errorf("march should be kept verbatim, got %v", got.Transactions[1])
	}
}
