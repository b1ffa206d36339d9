/*
Package theater provides ready-made catalogs and invoices.

PURPOSE:
  Sample data for demos, the CLI's -scenario flag and tests. The plays and
  invoices are the classic BigCo touring company examples.

SCENARIOS:
  bigco-legacy: Hamlet, As You Like It, Othello (three performances)
  bigco:        The legacy tour plus two history plays (six performances)

USAGE:
  sc, err := theater.LookupScenario("bigco")
  result, err := billing.ComputeStatement(sc.Invoice, sc.Catalog)

SEE ALSO:
  - billing/statement.go: Computation
  - cmd/statement: -scenario flag
*/
package theater

import (
	"fmt"
	"sort"

	"github.com/warp/statement-engine/billing"
)

// Scenario bundles a catalog with an invoice priced against it.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Catalog     *billing.PlayCatalog
	Invoice     billing.Invoice
}

// =============================================================================
// CATALOG
// =============================================================================

// ShakespearePlays returns the touring repertoire. The returned map is a
// fresh copy on every call.
func ShakespearePlays() map[billing.PlayID]billing.Play {
	return map[billing.PlayID]billing.Play{
		"hamlet":      {Name: "Hamlet", BaseAudience: 4024, Genre: billing.GenreTragedy},
		"as-like":     {Name: "As You Like It", BaseAudience: 2670, Genre: billing.GenreComedy},
		"othello":     {Name: "Othello", BaseAudience: 3560, Genre: billing.GenreTragedy},
		"henry-v":     {Name: "Henry V", BaseAudience: 3227, Genre: billing.GenreHistory},
		"john":        {Name: "King John", BaseAudience: 2648, Genre: billing.GenreHistory},
		"richard-iii": {Name: "Richard III", BaseAudience: 3718, Genre: billing.GenreHistory},
	}
}

// ShakespeareCatalog builds a catalog from ShakespearePlays.
func ShakespeareCatalog() *billing.PlayCatalog {
	catalog, err := billing.NewPlayCatalog(ShakespearePlays())
	if err != nil {
		// The fixture is static; a failure here is a programming error.
		panic(fmt.Sprintf("theater: invalid built-in catalog: %v", err))
	}
	return catalog
}

// =============================================================================
// INVOICES
// =============================================================================

// BigCoLegacyInvoice is the original three-performance tour.
func BigCoLegacyInvoice() billing.Invoice {
	return billing.Invoice{
		Customer: "BigCo",
		Performances: []billing.Performance{
			{PlayID: "hamlet", Audience: 55},
			{PlayID: "as-like", Audience: 35},
			{PlayID: "othello", Audience: 40},
		},
	}
}

// BigCoInvoice extends the legacy tour with history plays.
func BigCoInvoice() billing.Invoice {
	inv := BigCoLegacyInvoice()
	inv.Performances = append(inv.Performances,
		billing.Performance{PlayID: "henry-v", Audience: 20},
		billing.Performance{PlayID: "john", Audience: 39},
		billing.Performance{PlayID: "henry-v", Audience: 20},
	)
	return inv
}

// =============================================================================
// SCENARIO REGISTRY
// =============================================================================

var scenarios = map[string]func() Scenario{
	"bigco-legacy": func() Scenario {
		return Scenario{
			ID:          "bigco-legacy",
			Name:        "BigCo (legacy tour)",
			Description: "Two tragedies and a comedy",
			Catalog:     ShakespeareCatalog(),
			Invoice:     BigCoLegacyInvoice(),
		}
	},
	"bigco": func() Scenario {
		return Scenario{
			ID:          "bigco",
			Name:        "BigCo",
			Description: "Legacy tour plus Henry V twice and King John",
			Catalog:     ShakespeareCatalog(),
			Invoice:     BigCoInvoice(),
		}
	},
}

// LookupScenario returns a freshly built scenario by ID.
func LookupScenario(id string) (Scenario, error) {
	build, ok := scenarios[id]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown scenario %q (available: %v)", id, ScenarioIDs())
	}
	return build(), nil
}

// ScenarioIDs lists the available scenario IDs in lexical order.
func ScenarioIDs() []string {
	ids := make([]string, 0, len(scenarios))
	for id := range scenarios {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
