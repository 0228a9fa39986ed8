package date

import (
	"fmt"
	"time"
)

// MonthFormat is the format used to represent calendar months as strings.
const MonthFormat = "2006-01"

// Month represents a whole calendar month, the unit used by forecasts
// and log compression.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	d := New(year, month, 1)
	return Month{d.y, d.m}
}

// ThisMonth returns the calendar month containing today.
func ThisMonth() Month { return Today().Month() }

// Add returns the month i calendar months away.
func (m Month) Add(i int) Month { return NewMonth(m.y, m.m+time.Month(i)) }

// First returns the first day of the month.
func (m Month) First() Date { return New(m.y, m.m, 1) }

// Last returns the last day of the month. It is leap-year safe: day 28
// is pushed 4 days into the next month and walked back to its final day.
func (m Month) Last() Date {
	overshoot := New(m.y, m.m, 28).Add(4)
	return overshoot.Add(-overshoot.Day())
}

// Contains reports whether the day d falls within the month.
func (m Month) Contains(d Date) bool { return d.Month() == m }

// Before reports whether the month m is strictly before x.
func (m Month) Before(x Month) bool {
	return m.y < x.y || (m.y == x.y && m.m < x.m)
}

// Compare returns -1, 0 or 1 when m is before, equal to, or after x.
func (m Month) Compare(x Month) int {
	switch {
	case m.Before(x):
		return -1
	case x.Before(m):
		return 1
	default:
		return 0
	}
}

// String formats the month in its standard "YYYY-MM" format.
func (m Month) String() string { return m.First().time().Format(MonthFormat) }

// ParseMonth parses a Month from a "YYYY-MM" string.
func ParseMonth(str string) (Month, error) {
	t, err := time.Parse(MonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return NewMonth(t.Year(), t.Month()), nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	m, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}
