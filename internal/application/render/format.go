package render

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// formatMoney renders an amount as "Rs. 1,23,456.78" with Indian digit
// grouping (last three digits, then pairs). The rupee glyph is avoided on
// purpose: the base PDF fonts cannot encode it.
func formatMoney(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	grouped := intPart
	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		grouped = strings.Join(append(parts, tail), ",")
	}

	out := "Rs. " + grouped + "." + fracPart
	if neg {
		out = "Rs. -" + grouped + "." + fracPart
	}
	return out
}

// formatDate renders a business date as "02 Jan 2006".
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02 Jan 2006")
}
