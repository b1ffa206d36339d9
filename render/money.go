package render

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/warp/statement-engine/billing"
)

// FormatAmount renders cents as a plain decimal with two fractional digits,
// e.g. 164000 -> "1640.00".
func FormatAmount(c billing.Cents) string {
	return c.Decimal().StringFixed(2)
}

// FormatCurrency renders cents in the fixed statement currency format,
// e.g. 164000 -> "$1,640.00".
func FormatCurrency(c billing.Cents) string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(v/100), v%100)
}

// Pluralize returns "1 credit", "2 credits" and so on.
func Pluralize(n int, word string) string {
	if n == 1 {
		return strconv.Itoa(n) + " " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
