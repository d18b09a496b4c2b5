package render

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finrender/cirasynth/pkg/geometry"
	"github.com/finrender/cirasynth/pkg/ledger"
	"github.com/finrender/cirasynth/pkg/style"
	"github.com/finrender/cirasynth/pkg/template"
)

// maxRaggedTxns caps the ragged pseudo-table's row count.
const maxRaggedTxns = 8

var raggedHeaders = []string{"Date", "Vendor", "GL Code", "Description", "Amount"}

var raggedWidthRatios = []float64{0.12, 0.25, 0.15, 0.28, 0.20}

// renderRagged draws an intentionally degraded pseudo-table: per-cell
// position jitter, partial header background, row-to-row height
// variation, and only fragmentary rules.
func (r *Renderer) renderRagged(tableIdx int, tpl *template.TableTemplate,
	title string, txns []ledger.CashTransaction) RenderedTable {

	rc := r.rc
	st := rc.Style

	if len(txns) > maxRaggedTxns {
		txns = txns[:maxRaggedTxns]
	}

	rowHeight := tpl.RowHeight
	numRows := len(txns) + 2
	totalHeight := rowHeight*2 + float64(numRows)*rowHeight*1.3

	r.ensureTemplateHeader()
	if !r.engine.FitsOnPage(totalHeight) {
		r.engine.NewPage()
		r.syncPage(r.engine.CurrentPage())
		r.ensureTemplateHeader()
	}

	pageIndex := r.engine.CurrentPage()
	tableID := fmt.Sprintf("%s__p%d_t%d", rc.DocID, pageIndex, tableIdx)
	startX := rc.Page.ContentStartX()
	startY := r.engine.CurrentY()
	// Ragged reports run narrower than the content area.
	tableWidth := rc.Page.ContentWidth() * 0.85

	deg := rc.Degrade
	widths := make([]float64, len(raggedWidthRatios))
	for i, ratio := range raggedWidthRatios {
		widths[i] = deg.ColumnWidth(tableWidth * ratio)
	}

	family, bold := style.BoldFont(st.FontFamily)
	padding := st.CellPadding
	uniform := func(lo, hi float64) float64 { return lo + rc.Rng.Float64()*(hi-lo) }

	titleOffset := uniform(-5, 10)
	r.canvas.SetFont(family, bold, st.TitleFontSize)
	r.canvas.SetTextColor(style.Black)
	y := startY - rowHeight*1.5
	r.canvas.Text(startX+titleOffset, y+4, title)
	y -= rowHeight * 0.5

	headerTop := y
	y -= rowHeight * 1.1
	headerBottom := y

	// Header background covers only part of the width.
	r.canvas.SetFillColor(st.HeaderBG)
	r.canvas.FillRect(startX, headerBottom, tableWidth*0.6, headerTop-headerBottom)

	r.canvas.SetTextColor(st.HeaderText)
	r.canvas.SetFont(family, bold, st.HeaderFontSize)

	var renderedRows []RenderedRow
	headerCells := make([]RenderedCell, 0, len(raggedHeaders))
	x := startX
	for ci, header := range raggedHeaders {
		jitter := uniform(-3, 3)
		r.canvas.Text(x+padding+jitter, headerBottom+3, header)
		headerCells = append(headerCells, RenderedCell{
			Text: header, PageIndex: pageIndex, RowIndex: 0, ColIndex: ci,
			BBox:     geometry.DrawingBox(x, headerBottom, x+widths[ci], headerTop),
			Semantic: template.SemOther, RowType: template.RowHeader,
		})
		x += widths[ci]
	}
	renderedRows = append(renderedRows, RenderedRow{
		RowID: fmt.Sprintf("%s_r0", tableID), TableID: tableID,
		PageIndex: pageIndex, RowIndex: 0,
		BBox:    geometry.DrawingBox(startX, headerBottom, startX+tableWidth, headerTop),
		RowType: template.RowHeader, Cells: headerCells,
	})

	rowIdx := 1
	r.canvas.SetFont(st.FontFamily, "", st.FontSize)
	r.canvas.SetTextColor(style.Black)

	for _, txn := range txns {
		extra := uniform(-2, 4)
		yTop := y
		y -= deg.RowHeight(rowHeight) + extra
		yBottom := y

		desc := txn.Description
		if runes := []rune(desc); len(runes) > 25 {
			desc = string(runes[:25])
		}
		texts := []string{
			txn.Date.Format(dateLayout),
			txn.Vendor,
			txn.GLCode,
			desc,
			ledger.FormatMoney(txn.Amount),
		}
		semantics := []template.SemanticType{
			template.SemDate, template.SemVendor, template.SemAccount,
			template.SemOther, template.SemAmount,
		}

		cells := make([]RenderedCell, 0, len(texts))
		x = startX
		for ci, text := range texts {
			jitter := uniform(-2, 2)
			display := truncateText(r.canvas, text, widths[ci]-2*padding)
			r.canvas.Text(x+padding+jitter, yBottom+3, display)
			cells = append(cells, RenderedCell{
				Text: text, PageIndex: pageIndex, RowIndex: rowIdx, ColIndex: ci,
				BBox:     geometry.DrawingBox(x, yBottom, x+widths[ci], yTop),
				Semantic: semantics[ci], RowType: template.RowBody,
			})
			x += widths[ci]
		}

		renderedRows = append(renderedRows, RenderedRow{
			RowID: fmt.Sprintf("%s_r%d", tableID, rowIdx), TableID: tableID,
			PageIndex: pageIndex, RowIndex: rowIdx,
			BBox:    geometry.DrawingBox(startX, yBottom, startX+tableWidth, yTop),
			RowType: template.RowBody, Cells: cells,
		})
		rowIdx++
	}

	// Total row, amounts only.
	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.Amount)
	}
	yTop := y
	y -= rowHeight
	yBottom := y

	r.canvas.SetFont(family, bold, st.FontSize)
	labelX := startX
	for _, w := range widths[:len(widths)-1] {
		labelX += w
	}
	r.canvas.Text(labelX-50, yBottom+3, "Total:")
	r.canvas.Text(labelX+padding, yBottom+3, ledger.FormatMoney(total))

	totalCells := make([]RenderedCell, 0, len(raggedHeaders))
	x = startX
	for ci := range raggedHeaders {
		text := ""
		semantic := template.SemOther
		switch ci {
		case 3:
			text = "Total:"
		case 4:
			text = ledger.FormatMoney(total)
			semantic = template.SemAmount
		}
		totalCells = append(totalCells, RenderedCell{
			Text: text, PageIndex: pageIndex, RowIndex: rowIdx, ColIndex: ci,
			BBox:     geometry.DrawingBox(x, yBottom, x+widths[ci], yTop),
			Semantic: semantic, RowType: template.RowSubtotal,
		})
		x += widths[ci]
	}
	renderedRows = append(renderedRows, RenderedRow{
		RowID: fmt.Sprintf("%s_r%d", tableID, rowIdx), TableID: tableID,
		PageIndex: pageIndex, RowIndex: rowIdx,
		BBox:    geometry.DrawingBox(startX, yBottom, startX+tableWidth, yTop),
		RowType: template.RowSubtotal, Cells: totalCells,
	})

	// Fragmentary rules, top and bottom only.
	r.canvas.SetDrawColor(style.Gray)
	r.canvas.SetLineWidth(0.5)
	r.canvas.Line(startX, headerTop, startX+tableWidth*0.9, headerTop)
	r.canvas.Line(startX, yBottom, startX+tableWidth*0.7, yBottom)

	r.engine.SetCursor(y - 20)
	r.pageHasContent = true

	return RenderedTable{
		TableID:       tableID,
		DocID:         rc.DocID,
		PageIndex:     pageIndex,
		BBox:          geometry.DrawingBox(startX, yBottom, startX+tableWidth, startY),
		TableType:     tpl.Type,
		LayoutType:    template.Ragged,
		IsTableRegion: true,
		VendorSystem:  rc.Vendor,
		TitleText:     title,
		Fund:          "OPERATING",
		NRows:         len(renderedRows),
		NCols:         len(raggedHeaders),
		ColumnHeaders: raggedHeaders,
		Rows:          renderedRows,
		Orientation:   rc.Orientation,
	}
}
