/*
Package render turns a computed statement into customer-facing output.

PURPOSE:
  One StatementResult, several layouts. Renderers never recompute prices;
  they only format the numbers the billing package produced, so every
  format agrees on every amount by construction.

FORMATS:
  text: Plain text statement (one line per performance)
  xml:  Structured markup document
  pdf:  Printable document (binary, via Exporter)
  xlsx: Spreadsheet with summary and items sheets (binary, via Exporter)

USAGE:
  out, err := render.RenderStatement(result, render.FormatText)

  doc, err := render.ExportStatement(result, render.FormatPDF)

  // Either kind, as bytes (what the CLI uses)
  b, err := render.Encode(result, format)

SEE ALSO:
  - money.go: Currency formatting shared by all formats
  - text.go, markup.go, export.go: Format implementations
*/
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/warp/statement-engine/billing"
)

// =============================================================================
// FORMATS
// =============================================================================

type Format string

const (
	FormatText   Format = "text"
	FormatMarkup Format = "xml"
	FormatPDF    Format = "pdf"
	FormatXLSX   Format = "xlsx"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatMarkup, FormatPDF, FormatXLSX}
}

// IsBinary reports whether the format produces a binary document.
func (f Format) IsBinary() bool {
	return f == FormatPDF || f == FormatXLSX
}

// ParseFormat accepts a format name case-insensitively. "markup" is an
// alias for xml and "plain" for text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "plain", "txt":
		return FormatText, nil
	case "xml", "markup":
		return FormatMarkup, nil
	case "pdf":
		return FormatPDF, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	default:
		return "", &UnknownFormatError{Format: s}
	}
}

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrUnknownFormat = errors.New("unknown format")
	ErrNilStatement  = errors.New("nil statement")
)

type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format: %q", e.Format)
}

func (e *UnknownFormatError) Unwrap() error {
	return ErrUnknownFormat
}

// =============================================================================
// RENDERER / EXPORTER
// =============================================================================

// Renderer produces a textual statement.
type Renderer interface {
	Render(result *billing.StatementResult) (string, error)
}

// Exporter produces a binary document.
type Exporter interface {
	Export(result *billing.StatementResult) ([]byte, error)
}

// ForFormat returns the renderer for a textual format.
func ForFormat(f Format) (Renderer, error) {
	switch f {
	case FormatText:
		return TextRenderer{}, nil
	case FormatMarkup:
		return MarkupRenderer{}, nil
	default:
		return nil, &UnknownFormatError{Format: string(f)}
	}
}

// ExporterFor returns the exporter for a binary format.
func ExporterFor(f Format) (Exporter, error) {
	switch f {
	case FormatPDF:
		return PDFExporter{}, nil
	case FormatXLSX:
		return XLSXExporter{}, nil
	default:
		return nil, &UnknownFormatError{Format: string(f)}
	}
}

// RenderStatement renders result in a textual format.
func RenderStatement(result *billing.StatementResult, f Format) (string, error) {
	r, err := ForFormat(f)
	if err != nil {
		return "", err
	}
	return r.Render(result)
}

// ExportStatement renders result as a binary document.
func ExportStatement(result *billing.StatementResult, f Format) ([]byte, error) {
	e, err := ExporterFor(f)
	if err != nil {
		return nil, err
	}
	return e.Export(result)
}

// Encode renders any supported format to bytes.
func Encode(result *billing.StatementResult, f Format) ([]byte, error) {
	if f.IsBinary() {
		return ExportStatement(result, f)
	}
	s, err := RenderStatement(result, f)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
