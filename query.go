package okane

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the raw ledger
// document, for ad-hoc inspection without a dedicated subcommand per
// question ("$.transactions[*].amount", "$.initialBalance", ...).
func Query(r io.Reader, path string) (any, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode ledger document: %w", err)
	}
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate %q: %w", path, err)
	}
	return val, nil
}
