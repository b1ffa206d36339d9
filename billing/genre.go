/*
genre.go - Genre tags and rules registration

PURPOSE:
  A genre selects which pricing and credit rule applies to a play. Each
  genre is a tag bound to a GenreRules value in a lookup table. The three
  built-in genres are registered at package init; new genres are one
  RegisterGenre call away.

HOW IT WORKS:
  1. Genre is a string tag (tragedy, comedy, history)
  2. The registry maps each tag to a GenreRules pair of pure functions
  3. CalculateAmount / CalculateCredits dispatch through the registry
  4. A tag with no entry fails with UnknownGenreError, never a default price
  5. A tag is bound once; re-registering fails with GenreExistsError, so
     the built-in rules cannot be swapped out from under a running statement

USAGE:
  err := billing.RegisterGenre("pastoral", billing.GenreRulesFunc{
      AmountFunc:  func(base, audience int) billing.Cents { return 25000 },
      CreditsFunc: func(base, audience int) int { return audience / 10 },
  })

SEE ALSO:
  - pricing.go: Built-in rules
*/
package billing

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Genre classifies a play for pricing and credits.
type Genre string

const (
	GenreTragedy Genre = "tragedy"
	GenreComedy  Genre = "comedy"
	GenreHistory Genre = "history"
)

func (g Genre) String() string { return string(g) }

// GenreRules is the capability pair every genre provides. Both functions
// must be pure. Negative amounts are rejected and negative credits are
// floored at zero by CalculateAmount / CalculateCredits.
type GenreRules interface {
	Amount(baseAudience, audience int) Cents
	Credits(baseAudience, audience int) int
}

// GenreRulesFunc adapts two plain functions to GenreRules.
type GenreRulesFunc struct {
	AmountFunc  func(baseAudience, audience int) Cents
	CreditsFunc func(baseAudience, audience int) int
}

func (f GenreRulesFunc) Amount(baseAudience, audience int) Cents {
	return f.AmountFunc(baseAudience, audience)
}

func (f GenreRulesFunc) Credits(baseAudience, audience int) int {
	return f.CreditsFunc(baseAudience, audience)
}

// =============================================================================
// GENRE REGISTRY
// =============================================================================

var (
	genreRegistry = map[Genre]GenreRules{
		GenreTragedy: tragedyRules{},
		GenreComedy:  comedyRules{},
		GenreHistory: historyRules{},
	}
	genreMu sync.RWMutex
)

// RegisterGenre binds rules to a new genre. Genres that are already bound,
// including the built-ins, cannot be rebound.
func RegisterGenre(g Genre, rules GenreRules) error {
	if rules == nil {
		return fmt.Errorf("register genre %q: nil rules", string(g))
	}
	genreMu.Lock()
	defer genreMu.Unlock()
	if _, ok := genreRegistry[g]; ok {
		return &GenreExistsError{Genre: g}
	}
	genreRegistry[g] = rules
	return nil
}

// LookupGenre returns the rules for a genre.
func LookupGenre(g Genre) (GenreRules, error) {
	genreMu.RLock()
	defer genreMu.RUnlock()
	rules, ok := genreRegistry[g]
	if !ok {
		return nil, &UnknownGenreError{Genre: g}
	}
	return rules, nil
}

// ListGenres returns every registered genre in lexical order.
func ListGenres() []Genre {
	genreMu.RLock()
	defer genreMu.RUnlock()
	result := make([]Genre, 0, len(genreRegistry))
	for g := range genreRegistry {
		result = append(result, g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// ParseGenre normalizes s and checks that rules exist for it.
func ParseGenre(s string) (Genre, error) {
	g := NormalizeGenre(s)
	if _, err := LookupGenre(g); err != nil {
		return "", err
	}
	return g, nil
}

// NormalizeGenre trims and lowercases a genre name without validating it.
func NormalizeGenre(s string) Genre {
	return Genre(strings.ToLower(strings.TrimSpace(s)))
}
