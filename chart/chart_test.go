package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/okane"
	"github.com/etnz/okane/date"
)

func plotLedger() *okane.Ledger {
	return &okane.Ledger{
		InitialBalance: 100_000,
		Transactions: []okane.Transaction{
			{ID: "1", Date: date.MustParse("2026-01-05"), Type: okane.Income, Amount: 300_000, Description: "salary"},
			{ID: "2", Date: date.MustParse("2026-01-10"), Type: okane.Expense, Amount: 50_000, Description: "rent"},
			{ID: "3", Date: date.MustParse("2026-02-10"), Type: okane.Expense, Amount: 250_000, Description: "trip"},
		},
	}
}

func TestBuildSeries(t *testing.T) {
	today := date.MustParse("2026-01-15")
	s := BuildSeries(plotLedger(), 1, today)
	if s == nil {
		t.Fatal("BuildSeries returned nil for a populated ledger")
	}

	// One sample per day from the first transaction to the end of the
	// horizon (Jan 5 .. Feb 15 inclusive).
	if got, want := len(s.Dates), 27+15; got != want {
		t.Fatalf("len(Dates) = %d, want %d", got, want)
	}
	if s.Dates[0] != date.MustParse("2026-01-05") || s.Dates[len(s.Dates)-1] != date.MustParse("2026-02-15") {
		t.Errorf("series range = %s..%s", s.Dates[0], s.Dates[len(s.Dates)-1])
	}

	at := func(day string) int64 {
		for i, d := range s.Dates {
			if d == date.MustParse(day) {
				return s.Balances[i]
			}
		}
		t.Fatalf("day %s not in series", day)
		return 0
	}
	if got := at("2026-01-05"); got != 400_000 {
		t.Errorf("balance on income day = %d, want 400000", got)
	}
	if got := at("2026-01-07"); got != 400_000 {
		t.Errorf("balance between transactions = %d, want 400000", got)
	}
	if got := at("2026-01-10"); got != 350_000 {
		t.Errorf("balance on expense day = %d, want 350000", got)
	}

	// Big markers: salary and trip are over the threshold, rent is not.
	if len(s.Big) != 2 {
		t.Fatalf("len(Big) = %d, want 2", len(s.Big))
	}
	if s.Big[0].Description != "salary" || s.Big[0].Balance != 400_000 {
		t.Errorf("first big marker = %+v", s.Big[0])
	}
	if s.Big[1].Description != "trip" {
		t.Errorf("second big marker = %+v", s.Big[1])
	}
}

func TestBuildSeries_Empty(t *testing.T) {
	if s := BuildSeries(okane.NewLedger(), 3, date.MustParse("2026-01-01")); s != nil {
		t.Errorf("BuildSeries on empty ledger = %v, want nil", s)
	}
}

func TestHTMLRenderer(t *testing.T) {
	s := BuildSeries(plotLedger(), 1, date.MustParse("2026-01-15"))

	var buf bytes.Buffer
	if err := (htmlRenderer{}).Render(&buf, s); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"cdn.plot.ly",
		`"2026-01-05"`,        // inline dates
		`"description":"trip"`, // inline big transactions
		`today = "2026-01-15"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestPNGRenderer(t *testing.T) {
	s := BuildSeries(plotLedger(), 1, date.MustParse("2026-01-15"))

	var buf bytes.Buffer
	if err := (pngRenderer{}).Render(&buf, s); err != nil {
		t.Fatalf("Render: %v", err)
	}
	// PNG signature.
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("output does not start with a PNG signature")
	}
}

func TestUnavailable(t *testing.T) {
	err := Unavailable{}.Render(&bytes.Buffer{}, &Series{})
	if err != ErrUnavailable {
		t.Errorf("Unavailable.Render error = %v, want ErrUnavailable", err)
	}
}

func TestNew(t *testing.T) {
	if ext := New(true).Ext(); ext != ".html" {
		t.Errorf("interactive renderer ext = %q, want .html", ext)
	}
	if ext := New(false).Ext(); ext != ".png" {
		t.Errorf("static renderer ext = %q, want .png", ext)
	}
}
