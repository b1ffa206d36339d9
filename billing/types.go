/*
Package billing provides the statement calculation engine.

PURPOSE:
  This package turns an invoice of theatrical performances into a priced
  statement. It owns the data model, the per-genre pricing and credit rules,
  the play catalog and the aggregation that folds performances into line
  items and totals. Rendering lives in the render package.

KEY CONCEPTS IN THIS FILE (types.go):
  - Cents: Money in the smallest currency unit (never floating point)
  - Play / Performance / Invoice: Caller-supplied, read-only inputs
  - LineItem / StatementResult: Derived per run, never mutated afterwards

DESIGN PRINCIPLES:
  1. Integer money: every amount is Cents; decimal only appears at formatting
  2. Immutability: inputs are snapshots, results are built once
  3. Explicit inputs: the catalog is passed in, never looked up globally

USAGE:
  catalog, _ := billing.NewPlayCatalog(map[billing.PlayID]billing.Play{
      "hamlet": {Name: "Hamlet", BaseAudience: 4024, Genre: billing.GenreTragedy},
  })
  result, err := billing.ComputeStatement(billing.Invoice{
      Customer:     "BigCo",
      Performances: []billing.Performance{{PlayID: "hamlet", Audience: 55}},
  }, catalog)

SEE ALSO:
  - genre.go: Genre rules registry
  - pricing.go: Amount and credit rules
  - statement.go: Aggregation
*/
package billing

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY
// =============================================================================

// Cents is an amount of money in the smallest currency unit.
type Cents int64

// Decimal returns the amount in whole currency units. The conversion is exact.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

func (c Cents) Add(o Cents) Cents { return c + o }
func (c Cents) IsZero() bool      { return c == 0 }

// =============================================================================
// IDENTIFIERS
// =============================================================================

type PlayID string

// =============================================================================
// INPUTS
// =============================================================================

// Play is the catalog metadata for one play.
type Play struct {
	Name         string
	BaseAudience int
	Genre        Genre
}

// Performance is one staging of a play in front of an audience.
type Performance struct {
	PlayID   PlayID
	Audience int
}

// Invoice lists the performances billed to one customer. Performance order
// determines line item order in every rendered statement.
type Invoice struct {
	Customer     string
	Performances []Performance
}

// =============================================================================
// DERIVED
// =============================================================================

// LineItem is the priced result for a single performance.
type LineItem struct {
	PlayID   PlayID
	PlayName string
	Genre    Genre
	Audience int
	Amount   Cents
	Credits  int
}

// StatementResult is the format-agnostic outcome of one statement run.
type StatementResult struct {
	Customer     string
	LineItems    []LineItem
	TotalAmount  Cents
	TotalCredits int
}

// Recount sums the line items again. It always agrees with TotalAmount and
// TotalCredits for a result produced by ComputeStatement.
func (r *StatementResult) Recount() (Cents, int) {
	var amount Cents
	var credits int
	for _, item := range r.LineItems {
		amount = amount.Add(item.Amount)
		credits += item.Credits
	}
	return amount, credits
}
