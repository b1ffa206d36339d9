package factory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/statement-engine/billing"
	"github.com/warp/statement-engine/factory"
	"github.com/warp/statement-engine/theater"
)

const catalogYAML = `
plays:
  hamlet:
    name: Hamlet
    base_audience: 4024
    genre: tragedy
  as-like:
    name: As You Like It
    base_audience: 2670
    genre: Comedy
  othello:
    name: Othello
    base_audience: 3560
    genre: tragedy
`

const invoiceJSON = `{
  "customer": "BigCo",
  "performances": [
    {"play_id": "hamlet", "audience": 55},
    {"play_id": "as-like", "audience": 35},
    {"play_id": "othello", "audience": 40}
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// =============================================================================
// CATALOG
// =============================================================================

func TestParseCatalog_YAML(t *testing.T) {
	catalog, err := factory.ParseCatalog([]byte(catalogYAML), factory.EncodingYAML)
	require.NoError(t, err)

	assert.Equal(t, 3, catalog.Len())
	play, ok := catalog.Lookup("as-like")
	require.True(t, ok)
	assert.Equal(t, billing.Play{Name: "As You Like It", BaseAudience: 2670, Genre: billing.GenreComedy}, play)
}

func TestParseCatalog_UnknownGenreKept(t *testing.T) {
	// GIVEN: A catalog with a genre that has no rules
	// THEN: Parsing succeeds; pricing is where it fails
	doc := `{"plays": {"cats": {"name": "Cats", "base_audience": 2000, "genre": "Musical"}}}`
	catalog, err := factory.ParseCatalog([]byte(doc), factory.EncodingJSON)
	require.NoError(t, err)

	play, _ := catalog.Lookup("cats")
	assert.Equal(t, billing.Genre("musical"), play.Genre)

	_, err = billing.ComputeStatement(billing.Invoice{
		Customer:     "X",
		Performances: []billing.Performance{{PlayID: "cats", Audience: 10}},
	}, catalog)
	assert.ErrorIs(t, err, billing.ErrUnknownGenre)
}

func TestParseCatalog_Errors(t *testing.T) {
	_, err := factory.ParseCatalog([]byte(`{not json`), factory.EncodingJSON)
	assert.Error(t, err)

	_, err = factory.ParseCatalog([]byte(`{"plays": {"x": {"name": "X", "base_audience": 0, "genre": "tragedy"}}}`), factory.EncodingJSON)
	assert.ErrorIs(t, err, billing.ErrInvalidPlay)

	_, err = factory.ParseCatalog([]byte(`plays: {}`), "toml")
	assert.ErrorIs(t, err, factory.ErrUnsupportedEncoding)
}

func TestCatalogRoundTrip(t *testing.T) {
	original := theater.ShakespeareCatalog()

	doc, err := factory.CatalogToJSON(original)
	require.NoError(t, err)
	parsed, err := factory.ParseCatalog([]byte(doc), factory.EncodingJSON)
	require.NoError(t, err)

	assert.Equal(t, original.IDs(), parsed.IDs())
	for _, id := range original.IDs() {
		want, _ := original.Lookup(id)
		got, _ := parsed.Lookup(id)
		assert.Equal(t, want, got)
	}
}

// =============================================================================
// INVOICE
// =============================================================================

func TestParseInvoice_KeepsOrder(t *testing.T) {
	inv, err := factory.ParseInvoice([]byte(invoiceJSON), factory.EncodingJSON)
	require.NoError(t, err)
	assert.Equal(t, theater.BigCoLegacyInvoice(), inv)
}

func TestParseInvoice_YAML(t *testing.T) {
	doc := "customer: BigCo\nperformances:\n  - play_id: john\n    audience: 39\n"
	inv, err := factory.ParseInvoice([]byte(doc), factory.EncodingYAML)
	require.NoError(t, err)
	assert.Equal(t, "BigCo", inv.Customer)
	assert.Equal(t, []billing.Performance{{PlayID: "john", Audience: 39}}, inv.Performances)
}

// =============================================================================
// FILES
// =============================================================================

func TestLoadFiles_EndToEnd(t *testing.T) {
	catalogPath := writeFile(t, "plays.yml", catalogYAML)
	invoicePath := writeFile(t, "invoice.json", invoiceJSON)

	catalog, err := factory.LoadCatalog(catalogPath)
	require.NoError(t, err)
	inv, err := factory.LoadInvoice(invoicePath)
	require.NoError(t, err)

	result, err := billing.ComputeStatement(inv, catalog)
	require.NoError(t, err)
	assert.Equal(t, billing.Cents(164000), result.TotalAmount)
	assert.Equal(t, 47, result.TotalCredits)
}

func TestLoadFiles_Errors(t *testing.T) {
	_, err := factory.LoadCatalog(writeFile(t, "plays.txt", catalogYAML))
	assert.ErrorIs(t, err, factory.ErrUnsupportedEncoding)

	_, err = factory.LoadInvoice(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
