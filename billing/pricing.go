/*
pricing.go - Per-performance amount and credit rules

PURPOSE:
  Pure functions computing the charge and the loyalty credits for one
  performance. Amount and credits are separate entry points so each rule
  can be tested on its own.

RULES (amounts in cents):
  Tragedy: 40000, plus 1000 per attendee above 30
  Comedy:  30000 + 300 per attendee, plus 1000 + 500 per attendee above 20
  History: same as tragedy

  Credits: max(audience - 30, 0) for every genre, plus audience/5 for comedy

The base audience is accepted by every rule but none of the built-ins use it.
*/
package billing

import (
	"fmt"
)

// CalculateAmount returns the charge for one performance. A rule that
// yields a negative charge fails with ErrNegativeAmount.
func CalculateAmount(genre Genre, baseAudience, audience int) (Cents, error) {
	rules, err := LookupGenre(genre)
	if err != nil {
		return 0, err
	}
	amount := rules.Amount(baseAudience, audience)
	if amount < 0 {
		return 0, fmt.Errorf("%w: genre %q priced %d cents", ErrNegativeAmount, string(genre), int64(amount))
	}
	return amount, nil
}

// CalculateCredits returns the loyalty credits for one performance, never
// less than zero.
func CalculateCredits(genre Genre, baseAudience, audience int) (int, error) {
	rules, err := LookupGenre(genre)
	if err != nil {
		return 0, err
	}
	return max(rules.Credits(baseAudience, audience), 0), nil
}

// =============================================================================
// SHARED TERMS
// =============================================================================

const (
	capacityThreshold = 30
	comedyThreshold   = 20
)

// overCapacitySurcharge applies to tragedy and history.
func overCapacitySurcharge(audience int) Cents {
	if audience <= capacityThreshold {
		return 0
	}
	return Cents(1000 * (audience - capacityThreshold))
}

// baseCredits must stay floored at zero so small houses cannot cancel out
// credits earned elsewhere on the statement.
func baseCredits(audience int) int {
	return max(audience-capacityThreshold, 0)
}

// =============================================================================
// BUILT-IN GENRES
// =============================================================================

type tragedyRules struct{}

func (tragedyRules) Amount(_, audience int) Cents {
	return 40000 + overCapacitySurcharge(audience)
}

func (tragedyRules) Credits(_, audience int) int {
	return baseCredits(audience)
}

type comedyRules struct{}

func (comedyRules) Amount(_, audience int) Cents {
	amount := Cents(30000 + 300*audience)
	if audience > comedyThreshold {
		amount += Cents(1000 + 500*(audience-comedyThreshold))
	}
	return amount
}

func (comedyRules) Credits(_, audience int) int {
	return baseCredits(audience) + audience/5
}

type historyRules struct{}

func (historyRules) Amount(_, audience int) Cents {
	return 40000 + overCapacitySurcharge(audience)
}

func (historyRules) Credits(_, audience int) int {
	return baseCredits(audience)
}
