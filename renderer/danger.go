package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/okane"
)

// DangerMarkdown renders the days where the balance is at or below the
// danger threshold.
func DangerMarkdown(points []okane.DangerPoint) string {
	var b strings.Builder
	b.WriteString("## ⚠️ Balance shortfalls\n\n")

	if len(points) == 0 {
		b.WriteString("No danger points found ✅\n")
		return b.String()
	}

	b.WriteString("| Date | Balance | Shortfall |\n")
	b.WriteString("|------|---------|-----------|\n")
	for _, p := range points {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", p.Date, Yen(p.Balance), Yen(p.Shortfall))
	}
	return b.String()
}
