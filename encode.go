package okane

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// ledgerDoc mirrors the on-disk shape of a ledger file: a single JSON
// object holding the starting balance and the full transaction log.
type ledgerDoc struct {
	InitialBalance int64         `json:"initialBalance"`
	Transactions   []Transaction `json:"transactions"`
	Compressed     bool          `json:"compressed,omitempty"`
	CompressedAt   string        `json:"compressedAt,omitempty"`
}

// DecodeLedger decodes a whole ledger document from r.
// An absent initialBalance defaults to 0.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var doc ledgerDoc
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode ledger document: %w", err)
	}

	l := NewLedger()
	l.InitialBalance = doc.InitialBalance
	l.Compressed = doc.Compressed
	if doc.Transactions != nil {
		l.Transactions = doc.Transactions
	}
	for _, tx := range l.Transactions {
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("invalid transaction %q: %w", tx.ID, err)
		}
	}
	if doc.CompressedAt != "" {
		at, err := time.Parse(time.RFC3339, doc.CompressedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid compressedAt timestamp %q: %w", doc.CompressedAt, err)
		}
		l.CompressedAt = at
	}
	return l, nil
}

// EncodeLedger writes the whole ledger document to w, with a stable
// field order and indented for hand inspection.
func EncodeLedger(w io.Writer, l *Ledger) error {
	obj := &jsonObjectWriter{}
	obj.Append("initialBalance", l.InitialBalance)
	obj.Append("transactions", l.Transactions)
	obj.Optional("compressed", l.Compressed)
	if !l.CompressedAt.IsZero() {
		obj.Append("compressedAt", l.CompressedAt.Format(time.RFC3339))
	}

	raw, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("could not encode ledger document: %w", err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		return fmt.Errorf("could not indent ledger document: %w", err)
	}
	indented.WriteByte('\n')
	_, err = w.Write(indented.Bytes())
	return err
}

// LoadLedger reads a ledger wholesale from a file. A missing or
// malformed file is a fatal condition for the invocation.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	l, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not read ledger file %q: %w", path, err)
	}
	return l, nil
}

// SaveLedger writes the ledger wholesale to a file, overwriting it.
// There is no locking and no crash safety; the whole-file overwrite is
// the only guarantee.
func SaveLedger(path string, l *Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create ledger file %q: %w", path, err)
	}
	defer f.Close()

	if err := EncodeLedger(f, l); err != nil {
		return fmt.Errorf("could not write ledger file %q: %w", path, err)
	}
	return f.Close()
}
