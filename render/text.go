package render

import (
	"fmt"
	"strings"

	"github.com/warp/statement-engine/billing"
)

// TextRenderer produces the plain text statement:
//
//	Statement for BigCo
//	  Hamlet: $650.00 (55 seats)
//	Amount owed is $650.00
//	You earned 25 credits
type TextRenderer struct{}

func (TextRenderer) Render(result *billing.StatementResult) (string, error) {
	if result == nil {
		return "", ErrNilStatement
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Statement for %s\n", result.Customer)
	for _, item := range result.LineItems {
		fmt.Fprintf(&b, "  %s: %s (%s)\n", item.PlayName, FormatCurrency(item.Amount), Pluralize(item.Audience, "seat"))
	}
	fmt.Fprintf(&b, "Amount owed is %s\n", FormatCurrency(result.TotalAmount))
	fmt.Fprintf(&b, "You earned %s\n", Pluralize(result.TotalCredits, "credit"))
	return b.String(), nil
}
