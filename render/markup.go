package render

import (
	"encoding/xml"
	"fmt"

	"github.com/warp/statement-engine/billing"
)

// =============================================================================
// DOCUMENT SHAPE
// =============================================================================

// MarkupStatement is the XML document shape. Element names are part of the
// output contract.
type MarkupStatement struct {
	XMLName  xml.Name      `xml:"statement"`
	Customer string        `xml:"customer,attr"`
	Items    []MarkupItem  `xml:"item"`
	Summary  MarkupSummary `xml:"summary"`
}

type MarkupItem struct {
	PlayName string `xml:"playName"`
	Audience int    `xml:"audience"`
	Amount   string `xml:"amount"`
	Credits  int    `xml:"credits"`
}

type MarkupSummary struct {
	TotalAmount  string `xml:"totalAmount"`
	TotalCredits int    `xml:"totalCredits"`
}

// =============================================================================
// RENDERER
// =============================================================================

// MarkupRenderer produces an indented XML statement.
type MarkupRenderer struct{}

func (MarkupRenderer) Render(result *billing.StatementResult) (string, error) {
	if result == nil {
		return "", ErrNilStatement
	}

	doc := MarkupStatement{
		Customer: result.Customer,
		Items:    make([]MarkupItem, 0, len(result.LineItems)),
		Summary: MarkupSummary{
			TotalAmount:  FormatAmount(result.TotalAmount),
			TotalCredits: result.TotalCredits,
		},
	}
	for _, item := range result.LineItems {
		doc.Items = append(doc.Items, MarkupItem{
			PlayName: item.PlayName,
			Audience: item.Audience,
			Amount:   FormatAmount(item.Amount),
			Credits:  item.Credits,
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal statement: %w", err)
	}
	return xml.Header + string(out) + "\n", nil
}
