package okane

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

const sampleDoc = `{
  "initialBalance": 1000,
  "transactions": [
    {"id": "a", "date": "2026-01-01", "type": "income", "amount": 5000, "description": "salary"},
    {"id": "b", "date": "2026-01-10", "type": "expense", "amount": 3000, "description": "rent"}
  ]
}`

func TestDecodeLedger(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}
	if l.InitialBalance != 1000 {
		t.Errorf("InitialBalance = %d, want 1000", l.InitialBalance)
	}
	if len(l.Transactions) != 2 {
		t.Fatalf("len(Transactions) = %d, want 2", len(l.Transactions))
	}
	if l.Transactions[0] != tx("a", "2026-01-01", Income, 5000, "salary") {
		t.Errorf("unexpected first transaction: %v", l.Transactions[0])
	}
	if l.Compressed || !l.CompressedAt.IsZero() {
		t.Error("compression flags should default to unset")
	}
}

func TestDecodeLedger_Defaults(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(`{"transactions": []}`))
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}
	if l.InitialBalance != 0 {
		t.Errorf("absent initialBalance = %d, want 0", l.InitialBalance)
	}
}

func TestDecodeLedger_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"malformed json", `{"transactions": [`},
		{"negative amount", `{"transactions": [{"id":"x","date":"2026-01-01","type":"income","amount":-1,"description":""}]}`},
		{"unknown type", `{"transactions": [{"id":"x","date":"2026-01-01","type":"transfer","amount":1,"description":""}]}`},
		{"bad date", `{"transactions": [{"id":"x","date":"01/02/2026","type":"income","amount":1,"description":""}]}`},
		{"bad compressedAt", `{"transactions": [], "compressedAt": "yesterday"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.doc)); err == nil {
				t.Error("DecodeLedger should fail")
			}
		})
	}
}

func TestEncodeLedger_RoundTrip(t *testing.T) {
	l := testLedger()
	l.Compressed = true
	l.CompressedAt = time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger: %v", err)
	}

	got, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}
	if got.InitialBalance != l.InitialBalance {
		t.Errorf("InitialBalance = %d, want %d", got.InitialBalance, l.InitialBalance)
	}
	if len(got.Transactions) != len(l.Transactions) || got.Transactions[0] != l.Transactions[0] {
		t.Errorf("Transactions = %v, want %v", got.Transactions, l.Transactions)
	}
	if !got.Compressed || !got.CompressedAt.Equal(l.CompressedAt) {
		t.Errorf("compression flags = (%v, %v), want (%v, %v)", got.Compressed, got.CompressedAt, l.Compressed, l.CompressedAt)
	}
}

// The document field order is stable: initialBalance first, then
// transactions, then the optional compression flags.
func TestEncodeLedger_FieldOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, testLedger()); err != nil {
		t.Fatalf("EncodeLedger: %v", err)
	}
	out := buf.String()
	i := strings.Index(out, `"initialBalance"`)
	j := strings.Index(out, `"transactions"`)
	if i < 0 || j < 0 || i > j {
		t.Errorf("unexpected field order in output:\n%s", out)
	}
	if strings.Contains(out, `"compressed"`) {
		t.Errorf("unset compression flag should be omitted:\n%s", out)
	}
}

func TestLoadSaveLedger(t *testing.T) {
	path := t.TempDir() + "/ledger.json"
	if err := SaveLedger(path, testLedger()); err != nil {
		t.Fatalf("SaveLedger: %v", err)
	}
	got, err := LoadLedger(path)
	if err != nil {
		t.Fatalf("LoadLedger: %v", err)
	}
	if got.BalanceAt(mustMonth("2026-01").Last()) != 3000 {
		t.Error("reloaded ledger does not reproduce balances")
	}

	if _, err := LoadLedger(t.TempDir() + "/missing.json"); err == nil {
		t.Error("LoadLedger on a missing file should fail")
	}
}
