// Package layout is the placement engine: pure geometry that turns
// template column ratios into absolute widths, computes table heights,
// paginates, and records row/cell positions in drawing-space.
//
// The engine owns the only mutable placement state in a document run:
// the vertical cursor, the page counter (monotonic), and a per-page
// flag tracking whether the repeating template header was drawn.
package layout

import (
	"github.com/finrender/cirasynth/pkg/geometry"
	"github.com/finrender/cirasynth/pkg/template"
)

const (
	// SplitGutter separates the two panels of a split pair.
	SplitGutter = 20.0
	// InterTableGap is the vertical gap after a placed table.
	InterTableGap = 20.0
	// TableBottomPadding pads the computed table height.
	TableBottomPadding = 10.0

	titleHeightFactor  = 1.5
	headerHeightFactor = 1.2
)

// Placement locates one table on a page. StartY is the table's top
// edge in drawing-space (origin bottom-left, y grows upward).
type Placement struct {
	TableIndex   int
	PageIndex    int
	StartX       float64
	StartY       float64
	Width        float64
	Height       float64
	Template     *template.TableTemplate
	Title        string
	Layout       template.LayoutType
	IsSplitRight bool
}

// RowPlacement is one row's vertical extent. YTop > YBottom in
// drawing-space.
type RowPlacement struct {
	RowIndex  int
	YTop      float64
	YBottom   float64
	RowHeight float64
}

// CellPlacement is one cell's position and text.
type CellPlacement struct {
	RowIndex int
	ColIndex int
	X        float64
	YTop     float64
	YBottom  float64
	Width    float64
	Text     string
}

// Engine computes placements on a fixed page geometry.
type Engine struct {
	Page geometry.PageGeometry

	currentPage   int
	currentY      float64
	templateDrawn bool
}

// NewEngine builds a placement engine with its cursor at the top of
// the content area of page 0.
func NewEngine(page geometry.PageGeometry) *Engine {
	e := &Engine{Page: page}
	e.Reset()
	return e
}

// Reset restores the cursor and page counter for a new document.
func (e *Engine) Reset() {
	e.currentPage = 0
	e.currentY = e.Page.ContentStartY()
	e.templateDrawn = false
}

// CurrentPage returns the zero-based page index.
func (e *Engine) CurrentPage() int { return e.currentPage }

// CurrentY returns the cursor position.
func (e *Engine) CurrentY() float64 { return e.currentY }

// TemplateDrawn reports whether the per-page template header has been
// drawn on the current page.
func (e *Engine) TemplateDrawn() bool { return e.templateDrawn }

// MarkTemplateDrawn sets the per-page flag. It resets on page turn.
func (e *Engine) MarkTemplateDrawn() { e.templateDrawn = true }

// ColumnWidths converts the template's ratios into absolute widths for
// a target total width. Zero totalWidth means full content width.
func (e *Engine) ColumnWidths(t *template.TableTemplate, totalWidth float64) []float64 {
	if totalWidth == 0 {
		totalWidth = e.Page.ContentWidth()
	}
	widths := make([]float64, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = c.WidthRatio * totalWidth
	}
	return widths
}

// TableHeight computes the vertical extent of a table: title, optional
// super-header, header, data rows, bottom padding.
func (e *Engine) TableHeight(t *template.TableTemplate, numRows int, superHeader bool) float64 {
	h := t.RowHeight * titleHeightFactor
	if superHeader {
		h += t.RowHeight * headerHeightFactor
	}
	h += t.RowHeight * headerHeightFactor
	h += float64(numRows) * t.RowHeight
	return h + TableBottomPadding
}

// FitsOnPage reports whether a block of the given height fits above
// the bottom margin at the current cursor.
func (e *Engine) FitsOnPage(height float64) bool {
	return e.currentY-height >= e.Page.MarginBottom
}

// NewPage advances to the next page, resets the cursor to the top of
// the content area, and clears the template-drawn flag. The page
// counter never decreases.
func (e *Engine) NewPage() int {
	e.currentPage++
	e.currentY = e.Page.ContentStartY()
	e.templateDrawn = false
	return e.currentPage
}

// AdvanceCursor moves the cursor down by dy. Used when per-page chrome
// consumes space after a placement was already computed.
func (e *Engine) AdvanceCursor(dy float64) { e.currentY -= dy }

// SetCursor positions the cursor directly. The free-form archetypes
// that walk the page themselves report their final y through this.
func (e *Engine) SetCursor(y float64) { e.currentY = y }

// MaxDataRows returns how many data rows of a table fit in one full
// content area. Capacity floors at zero.
func (e *Engine) MaxDataRows(t *template.TableTemplate, superHeader bool) int {
	fixed := e.TableHeight(t, 0, superHeader)
	avail := e.Page.ContentHeight() - fixed
	if avail <= 0 {
		return 0
	}
	return int(avail / t.RowHeight)
}

// PlaceTable computes a placement, paginating first when the table
// does not fit. The right panel of a split pair is never paginated
// independently: it lands on its partner's page, and only its
// placement advances the shared cursor.
func (e *Engine) PlaceTable(t *template.TableTemplate, numRows int, title string,
	tableIndex int, lt template.LayoutType, isSplitRight, superHeader bool) Placement {

	height := e.TableHeight(t, numRows, superHeader)

	width := e.Page.ContentWidth()
	if lt == template.SplitLedger {
		width = (e.Page.ContentWidth() - SplitGutter) / 2
	}

	if !isSplitRight && !e.FitsOnPage(height) {
		e.NewPage()
	}

	startX := e.Page.ContentStartX()
	if lt == template.SplitLedger && isSplitRight {
		startX += width + SplitGutter
	}

	p := Placement{
		TableIndex:   tableIndex,
		PageIndex:    e.currentPage,
		StartX:       startX,
		StartY:       e.currentY,
		Width:        width,
		Height:       height,
		Template:     t,
		Title:        title,
		Layout:       lt,
		IsSplitRight: isSplitRight,
	}

	// The left split panel holds the cursor for its partner.
	if lt != template.SplitLedger || isSplitRight {
		e.currentY -= height + InterTableGap
	}

	return p
}

// RowPositions records the [y_top, y_bottom] extent of the header row
// (index 0) and each data row, walking downward from the table's top
// past the title and optional super-header.
func (e *Engine) RowPositions(p Placement, numRows int, superHeader bool) []RowPlacement {
	t := p.Template
	y := p.StartY
	y -= t.RowHeight * titleHeightFactor
	if superHeader {
		y -= t.RowHeight * headerHeightFactor
	}

	positions := make([]RowPlacement, 0, numRows+1)
	headerHeight := t.RowHeight * headerHeightFactor
	positions = append(positions, RowPlacement{
		RowIndex: 0, YTop: y, YBottom: y - headerHeight, RowHeight: headerHeight,
	})
	y -= headerHeight

	for i := 0; i < numRows; i++ {
		positions = append(positions, RowPlacement{
			RowIndex: i + 1, YTop: y, YBottom: y - t.RowHeight, RowHeight: t.RowHeight,
		})
		y -= t.RowHeight
	}
	return positions
}

// CellPositions walks each row left to right, accumulating column
// widths. Rows shorter than the column count leave trailing cells out.
func (e *Engine) CellPositions(p Placement, rows []RowPlacement, rowData [][]string) []CellPlacement {
	widths := e.ColumnWidths(p.Template, p.Width)

	var cells []CellPlacement
	n := len(rows)
	if len(rowData) < n {
		n = len(rowData)
	}
	for ri := 0; ri < n; ri++ {
		x := p.StartX
		texts := rowData[ri]
		for ci := 0; ci < len(texts) && ci < len(widths); ci++ {
			cells = append(cells, CellPlacement{
				RowIndex: ri,
				ColIndex: ci,
				X:        x,
				YTop:     rows[ri].YTop,
				YBottom:  rows[ri].YBottom,
				Width:    widths[ci],
				Text:     texts[ci],
			})
			x += widths[ci]
		}
	}
	return cells
}

// ShiftDown applies the template-header correction: every computed
// y-position of the placement and its rows/cells moves down by dy in
// one atomic pass. Call before any primitive is drawn, once per page.
func ShiftDown(p *Placement, rows []RowPlacement, cells []CellPlacement, dy float64) {
	p.StartY -= dy
	for i := range rows {
		rows[i].YTop -= dy
		rows[i].YBottom -= dy
	}
	for i := range cells {
		cells[i].YTop -= dy
		cells[i].YBottom -= dy
	}
}

// CellBBox returns a cell's drawing-space box.
func CellBBox(c CellPlacement) geometry.BBox {
	return geometry.DrawingBox(c.X, c.YBottom, c.X+c.Width, c.YTop)
}

// RowBBox returns a row's drawing-space box spanning the table width.
func RowBBox(p Placement, r RowPlacement) geometry.BBox {
	return geometry.DrawingBox(p.StartX, r.YBottom, p.StartX+p.Width, r.YTop)
}

// TableBBox returns the table's full drawing-space box.
func TableBBox(p Placement) geometry.BBox {
	return geometry.DrawingBox(p.StartX, p.StartY-p.Height, p.StartX+p.Width, p.StartY)
}
