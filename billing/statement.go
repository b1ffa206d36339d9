/*
statement.go - Folding an invoice into a statement

PURPOSE:
  ComputeStatement walks the invoice's performances in order, prices each
  one against the catalog and accumulates the totals in the same pass.

ALGORITHM:
  For each performance (input order, never sorted):
  1. Reject audience <= 0
  2. Resolve the play from the catalog
  3. Price amount and credits through the genre rules
  4. Append the line item and add it to the running totals

  The first failure aborts the run and no result is returned.
*/
package billing

import (
	"fmt"
)

// ComputeStatement prices every performance of the invoice. The invoice and
// catalog are only read.
func ComputeStatement(invoice Invoice, catalog *PlayCatalog) (*StatementResult, error) {
	if catalog == nil {
		return nil, ErrCatalogRequired
	}

	result := &StatementResult{
		Customer:  invoice.Customer,
		LineItems: make([]LineItem, 0, len(invoice.Performances)),
	}

	for i, perf := range invoice.Performances {
		item, err := priceLineItem(perf, catalog)
		if err != nil {
			return nil, fmt.Errorf("performance %d (%s): %w", i, perf.PlayID, err)
		}
		result.LineItems = append(result.LineItems, item)
		result.TotalAmount = result.TotalAmount.Add(item.Amount)
		result.TotalCredits += item.Credits
	}

	return result, nil
}

func priceLineItem(perf Performance, catalog *PlayCatalog) (LineItem, error) {
	if perf.Audience <= 0 {
		return LineItem{}, &InvalidAudienceError{PlayID: perf.PlayID, Audience: perf.Audience}
	}

	play, err := catalog.Resolve(perf.PlayID)
	if err != nil {
		return LineItem{}, err
	}

	amount, err := CalculateAmount(play.Genre, play.BaseAudience, perf.Audience)
	if err != nil {
		return LineItem{}, err
	}
	credits, err := CalculateCredits(play.Genre, play.BaseAudience, perf.Audience)
	if err != nil {
		return LineItem{}, err
	}

	return LineItem{
		PlayID:   perf.PlayID,
		PlayName: play.Name,
		Genre:    play.Genre,
		Audience: perf.Audience,
		Amount:   amount,
		Credits:  credits,
	}, nil
}
