package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/okane"
	"github.com/etnz/okane/date"
)

// filterFlags is the filter surface shared by list and search. Amount
// bounds become active only when their flag was actually set, so a zero
// minimum is a real filter.
type filterFlags struct {
	txType string
	from   string
	to     string
	min    int64
	max    int64
	limit  int
	fullID bool
}

func (c *filterFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "type", "", "Only this category (income or expense).")
	f.StringVar(&c.from, "from", "", "Earliest date to include (YYYY-MM-DD, inclusive).")
	f.StringVar(&c.to, "to", "", "Latest date to include (YYYY-MM-DD, inclusive).")
	f.Int64Var(&c.min, "min", 0, "Smallest amount to include, in yen (inclusive).")
	f.Int64Var(&c.max, "max", 0, "Largest amount to include, in yen (inclusive).")
	f.IntVar(&c.limit, "limit", 50, "How many transactions to show.")
	f.BoolVar(&c.fullID, "full-id", false, "Show full transaction ids.")
}

// Filter builds the domain filter from the flags the user actually set
// on f.
func (c *filterFlags) Filter(f *flag.FlagSet, keyword string) (okane.Filter, error) {
	filter := okane.Filter{Keyword: keyword}

	if c.txType != "" {
		t, err := okane.ParseTxType(c.txType)
		if err != nil {
			return filter, err
		}
		filter.Type = t
	}
	if c.from != "" {
		d, err := date.Parse(c.from)
		if err != nil {
			return filter, fmt.Errorf("invalid -from: %w", err)
		}
		filter.From = &d
	}
	if c.to != "" {
		d, err := date.Parse(c.to)
		if err != nil {
			return filter, fmt.Errorf("invalid -to: %w", err)
		}
		filter.To = &d
	}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "min":
			filter.Min = &c.min
		case "max":
			filter.Max = &c.max
		}
	})
	return filter, nil
}

// cap truncates the search result to the display limit.
func (c *filterFlags) cap(txs []okane.Transaction) []okane.Transaction {
	if c.limit > 0 && len(txs) > c.limit {
		return txs[:c.limit]
	}
	return txs
}
