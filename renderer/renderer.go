// Package renderer turns okane reports into markdown strings.
//
// Rendering is kept apart from the domain package so the CLI can pipe
// every report through the same terminal markdown pipeline.
package renderer

import (
	"github.com/Rhymond/go-money"
)

// Yen formats a whole-yen amount ("¥1,234", "-¥1,234").
func Yen(amount int64) string {
	return money.New(amount, money.JPY).Display()
}

// SignedYen formats an amount with the sign carried by the transaction
// category ("+¥1,234" for income, "-¥1,234" for expense).
func SignedYen(amount int64, income bool) string {
	if income {
		return "+" + money.New(amount, money.JPY).Display()
	}
	return money.New(-amount, money.JPY).Display()
}
