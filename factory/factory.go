/*
Package factory converts catalog and invoice documents into billing types.

PURPOSE:
  Catalogs and invoices arrive as JSON or YAML files. The factory decodes
  them into billing.PlayCatalog and billing.Invoice values so the rest of
  the system only ever sees validated, typed inputs.

DOCUMENT SCHEMA:
  Catalog:
    plays:
      hamlet:
        name: Hamlet
        base_audience: 4024
        genre: tragedy

  Invoice:
    customer: BigCo
    performances:
      - play_id: hamlet
        audience: 55

KEY FEATURES:
  - JSON and YAML share one schema (same field names)
  - Genre names are normalized (trimmed, lowercased) but NOT validated;
    a play with an unknown genre fails when the statement is computed
  - Encoding chosen from the file extension in LoadCatalog / LoadInvoice

USAGE:
  catalog, err := factory.LoadCatalog("plays.yaml")
  invoice, err := factory.LoadInvoice("invoice.json")
  result, err := billing.ComputeStatement(invoice, catalog)

SEE ALSO:
  - billing/catalog.go: Catalog validation rules
  - theater/scenarios.go: Built-in catalogs
*/
package factory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/warp/statement-engine/billing"
)

// =============================================================================
// DOCUMENT SCHEMA TYPES
// =============================================================================

// CatalogJSON is the document form of a play catalog.
type CatalogJSON struct {
	Plays map[string]PlayJSON `json:"plays" yaml:"plays"`
}

// PlayJSON is the document form of one play.
type PlayJSON struct {
	Name         string `json:"name" yaml:"name"`
	BaseAudience int    `json:"base_audience" yaml:"base_audience"`
	Genre        string `json:"genre" yaml:"genre"`
}

// InvoiceJSON is the document form of an invoice.
type InvoiceJSON struct {
	Customer     string            `json:"customer" yaml:"customer"`
	Performances []PerformanceJSON `json:"performances" yaml:"performances"`
}

// PerformanceJSON is the document form of one performance.
type PerformanceJSON struct {
	PlayID   string `json:"play_id" yaml:"play_id"`
	Audience int    `json:"audience" yaml:"audience"`
}

// =============================================================================
// ENCODINGS
// =============================================================================

type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// ErrUnsupportedEncoding is returned for files that are neither JSON nor YAML.
var ErrUnsupportedEncoding = errors.New("unsupported document encoding")

// EncodingForPath picks the encoding from a file extension.
func EncodingForPath(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return EncodingJSON, nil
	case ".yaml", ".yml":
		return EncodingYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, path)
	}
}

func decode(data []byte, enc Encoding, v interface{}) error {
	switch enc {
	case EncodingJSON:
		return json.Unmarshal(data, v)
	case EncodingYAML:
		return yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
	}
}

// =============================================================================
// CATALOG
// =============================================================================

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(data []byte, enc Encoding) (*billing.PlayCatalog, error) {
	var cj CatalogJSON
	if err := decode(data, enc, &cj); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", enc, err)
	}
	return FromCatalogJSON(cj)
}

// FromCatalogJSON converts a decoded catalog document.
func FromCatalogJSON(cj CatalogJSON) (*billing.PlayCatalog, error) {
	plays := make(map[billing.PlayID]billing.Play, len(cj.Plays))
	for id, pj := range cj.Plays {
		plays[billing.PlayID(id)] = billing.Play{
			Name:         pj.Name,
			BaseAudience: pj.BaseAudience,
			Genre:        billing.NormalizeGenre(pj.Genre),
		}
	}
	return billing.NewPlayCatalog(plays)
}

// ToCatalogJSON converts a catalog back to its document form.
func ToCatalogJSON(catalog *billing.PlayCatalog) CatalogJSON {
	cj := CatalogJSON{Plays: make(map[string]PlayJSON, catalog.Len())}
	for _, id := range catalog.IDs() {
		play, _ := catalog.Lookup(id)
		cj.Plays[string(id)] = PlayJSON{
			Name:         play.Name,
			BaseAudience: play.BaseAudience,
			Genre:        string(play.Genre),
		}
	}
	return cj
}

// CatalogToJSON renders a catalog as indented JSON.
func CatalogToJSON(catalog *billing.PlayCatalog) (string, error) {
	b, err := json.MarshalIndent(ToCatalogJSON(catalog), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// LoadCatalog reads a catalog file, choosing the encoding by extension.
func LoadCatalog(path string) (*billing.PlayCatalog, error) {
	enc, err := EncodingForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data, enc)
}

// =============================================================================
// INVOICE
// =============================================================================

// ParseInvoice decodes an invoice document. Audience and play references
// are checked later, when the statement is computed against a catalog.
func ParseInvoice(data []byte, enc Encoding) (billing.Invoice, error) {
	var ij InvoiceJSON
	if err := decode(data, enc, &ij); err != nil {
		return billing.Invoice{}, fmt.Errorf("failed to parse invoice %s: %w", enc, err)
	}
	return FromInvoiceJSON(ij), nil
}

// FromInvoiceJSON converts a decoded invoice document, keeping performance order.
func FromInvoiceJSON(ij InvoiceJSON) billing.Invoice {
	inv := billing.Invoice{
		Customer:     ij.Customer,
		Performances: make([]billing.Performance, 0, len(ij.Performances)),
	}
	for _, pj := range ij.Performances {
		inv.Performances = append(inv.Performances, billing.Performance{
			PlayID:   billing.PlayID(pj.PlayID),
			Audience: pj.Audience,
		})
	}
	return inv
}

// LoadInvoice reads an invoice file, choosing the encoding by extension.
func LoadInvoice(path string) (billing.Invoice, error) {
	enc, err := EncodingForPath(path)
	if err != nil {
		return billing.Invoice{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return billing.Invoice{}, fmt.Errorf("read invoice: %w", err)
	}
	return ParseInvoice(data, enc)
}
