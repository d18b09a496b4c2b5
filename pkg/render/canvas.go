// Package render draws the five table archetypes and the surrounding
// document chrome onto a PDF canvas, capturing per-cell metadata as it
// draws. All coordinates on the Canvas interface are drawing-space
// (origin bottom-left, y up); the PDF adapter owns the flip into the
// underlying library's top-left system.
package render

import (
	"fmt"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/finrender/cirasynth/pkg/geometry"
	"github.com/finrender/cirasynth/pkg/style"
)

// pdfMetadataDate pins the creation and modification dates embedded in
// every PDF; with the wall clock out of the file, a fixed seed
// reproduces identical bytes.
var pdfMetadataDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// Canvas is the drawing surface. Text draws at a baseline point; Rect
// fills from a lower-left corner.
type Canvas interface {
	AddPage()
	SetFont(family, styleFlag string, size float64)
	SetTextColor(c style.RGB)
	SetFillColor(c style.RGB)
	SetDrawColor(c style.RGB)
	SetLineWidth(w float64)
	Text(x, y float64, s string)
	Line(x1, y1, x2, y2 float64)
	FillRect(x, y, w, h float64)
	StringWidth(s string) float64
	Save(path string) error
}

// pdfCanvas adapts fpdf, which places the origin at the top-left, to
// drawing-space by flipping y against the page height.
type pdfCanvas struct {
	pdf        *fpdf.Fpdf
	pageHeight float64
}

// NewPDFCanvas creates a Letter-sized canvas in points for the given
// orientation. The first page is added immediately.
func NewPDFCanvas(page geometry.PageGeometry) Canvas {
	orient := "P"
	if page.Orientation == geometry.Landscape {
		orient = "L"
	}
	pdf := fpdf.New(orient, "pt", "Letter", "")
	pdf.SetCreationDate(pdfMetadataDate)
	pdf.SetModificationDate(pdfMetadataDate)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return &pdfCanvas{pdf: pdf, pageHeight: page.Height}
}

func (c *pdfCanvas) flip(y float64) float64 { return c.pageHeight - y }

func (c *pdfCanvas) AddPage() { c.pdf.AddPage() }

func (c *pdfCanvas) SetFont(family, styleFlag string, size float64) {
	c.pdf.SetFont(family, styleFlag, size)
}

func (c *pdfCanvas) SetTextColor(col style.RGB) { c.pdf.SetTextColor(col.R, col.G, col.B) }
func (c *pdfCanvas) SetFillColor(col style.RGB) { c.pdf.SetFillColor(col.R, col.G, col.B) }
func (c *pdfCanvas) SetDrawColor(col style.RGB) { c.pdf.SetDrawColor(col.R, col.G, col.B) }
func (c *pdfCanvas) SetLineWidth(w float64)     { c.pdf.SetLineWidth(w) }

func (c *pdfCanvas) Text(x, y float64, s string) {
	// ISO-8859-1 keeps fpdf's core fonts happy; fall back to the raw
	// string on unmappable runes.
	latin1, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		latin1 = s
	}
	c.pdf.Text(x, c.flip(y), latin1)
}

func (c *pdfCanvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, c.flip(y1), x2, c.flip(y2))
}

func (c *pdfCanvas) FillRect(x, y, w, h float64) {
	c.pdf.Rect(x, c.flip(y+h), w, h, "F")
}

func (c *pdfCanvas) StringWidth(s string) float64 {
	latin1, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		latin1 = s
	}
	return c.pdf.GetStringWidth(latin1)
}

func (c *pdfCanvas) Save(path string) error {
	if err := c.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF %s: %w", path, err)
	}
	return nil
}

// truncateText shortens text with a trailing ellipsis so it fits
// maxWidth under the canvas's current font.
func truncateText(c Canvas, text string, maxWidth float64) string {
	if text == "" || c.StringWidth(text) <= maxWidth {
		return text
	}
	const ellipsis = "..."
	available := maxWidth - c.StringWidth(ellipsis)
	if available <= 0 {
		return "."
	}
	runes := []rune(text)
	for i := len(runes); i > 0; i-- {
		if s := string(runes[:i]); c.StringWidth(s) <= available {
			return s + ellipsis
		}
	}
	return ellipsis
}
