package render

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finrender/cirasynth/pkg/geometry"
	"github.com/finrender/cirasynth/pkg/ledger"
	"github.com/finrender/cirasynth/pkg/style"
	"github.com/finrender/cirasynth/pkg/template"
)

var matrixHeaders = []string{"Account", "Current", "YTD", "Budget", "Variance"}

var matrixWidthRatios = []float64{0.30, 0.175, 0.175, 0.175, 0.175}

// matrixRowsFromTxns aggregates transactions by GL code into one row
// per account, simulating YTD and budget figures from the current
// activity.
func matrixRowsFromTxns(rc RenderContext, txns []ledger.CashTransaction) ([][]string, decimal.Decimal) {
	totals := map[string]decimal.Decimal{}
	var codes []string
	for _, txn := range txns {
		if _, ok := totals[txn.GLCode]; !ok {
			codes = append(codes, txn.GLCode)
		}
		totals[txn.GLCode] = totals[txn.GLCode].Add(txn.Amount)
	}
	sort.Strings(codes)

	var rows [][]string
	totalCurrent := decimal.Zero
	for _, code := range codes {
		current := totals[code]
		ytd := current.Mul(decimal.NewFromFloat(2.5 + rc.Rng.Float64()*1.5)).Round(2)
		budget := ytd.Mul(decimal.NewFromFloat(0.9 + rc.Rng.Float64()*0.3)).Round(2)
		variance := budget.Sub(ytd)
		rows = append(rows, []string{
			code,
			ledger.FormatMoney(current),
			ledger.FormatMoney(ytd),
			ledger.FormatMoney(budget),
			ledger.FormatSignedMoney(variance),
		})
		totalCurrent = totalCurrent.Add(current)
	}
	return rows, totalCurrent
}

// matrixRowsFromGeneric uses pre-aggregated budget values directly.
func matrixRowsFromGeneric(data []ledger.GenericRow) ([][]string, decimal.Decimal) {
	var rows [][]string
	totalCurrent := decimal.Zero
	for _, item := range data {
		rows = append(rows, []string{
			item.Cells["account"],
			item.Cells["current"],
			item.Cells["ytd_actual"],
			item.Cells["ytd_budget"],
			item.Cells["variance"],
		})
		totalCurrent = totalCurrent.Add(item.Amounts["current"])
	}
	return rows, totalCurrent
}

// renderMatrix draws a budget cross-tab: one row per account with a
// computed grand-total row.
func (r *Renderer) renderMatrix(tableIdx int, tpl *template.TableTemplate,
	title string, txns []ledger.CashTransaction, generic []ledger.GenericRow) RenderedTable {

	rc := r.rc
	st := rc.Style

	var matrixRows [][]string
	var totalCurrent decimal.Decimal
	if len(generic) > 0 {
		matrixRows, totalCurrent = matrixRowsFromGeneric(generic)
	} else {
		matrixRows, totalCurrent = matrixRowsFromTxns(rc, txns)
	}

	totalYTD := totalCurrent.Mul(decimal.NewFromInt(3))
	totalBudget := totalYTD.Mul(decimal.NewFromFloat(1.05)).Round(2)
	totalVariance := totalBudget.Sub(totalYTD)
	matrixRows = append(matrixRows, []string{
		"TOTAL",
		ledger.FormatMoney(totalCurrent),
		ledger.FormatMoney(totalYTD),
		ledger.FormatMoney(totalBudget),
		ledger.FormatSignedMoney(totalVariance),
	})

	rowHeight := tpl.RowHeight
	totalHeight := rowHeight*2 + float64(len(matrixRows)+1)*rowHeight

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
	tableWidth := rc.Page.ContentWidth()

	widths := make([]float64, len(matrixWidthRatios))
	for i, ratio := range matrixWidthRatios {
		widths[i] = tableWidth * ratio
	}

	family, bold := style.BoldFont(st.FontFamily)
	padding := st.CellPadding

	r.canvas.SetFont(family, bold, st.TitleFontSize)
	r.canvas.SetTextColor(style.Black)
	y := startY - rowHeight*1.5
	r.canvas.Text(startX, y+4, title)
	y -= rowHeight * 0.3

	// Header band
	headerTop := y
	y -= rowHeight * 1.2
	headerBottom := y

	r.canvas.SetFillColor(st.HeaderBG)
	r.canvas.FillRect(startX, headerBottom, tableWidth, headerTop-headerBottom)

	r.canvas.SetTextColor(st.HeaderText)
	r.canvas.SetFont(family, bold, st.HeaderFontSize)
	x := startX
	for ci, header := range matrixHeaders {
		if ci == 0 {
			r.canvas.Text(x+padding, headerBottom+3, header)
		} else {
			r.canvas.Text(x+widths[ci]-r.canvas.StringWidth(header)-padding, headerBottom+3, header)
		}
		x += widths[ci]
	}

	var renderedRows []RenderedRow
	rowIdx := 0

	headerCells := make([]RenderedCell, 0, len(matrixHeaders))
	x = startX
	for ci, header := range matrixHeaders {
		headerCells = append(headerCells, RenderedCell{
			Text: header, PageIndex: pageIndex, RowIndex: rowIdx, ColIndex: ci,
			BBox:     geometry.DrawingBox(x, headerBottom, x+widths[ci], headerTop),
			Semantic: template.SemOther, RowType: template.RowHeader,
		})
		x += widths[ci]
	}
	renderedRows = append(renderedRows, RenderedRow{
		RowID: fmt.Sprintf("%s_r%d", tableID, rowIdx), TableID: tableID,
		PageIndex: pageIndex, RowIndex: rowIdx,
		BBox:    geometry.DrawingBox(startX, headerBottom, startX+tableWidth, headerTop),
		RowType: template.RowHeader, Cells: headerCells,
	})
	rowIdx++

	r.canvas.SetFont(st.FontFamily, "", st.FontSize)
	r.canvas.SetTextColor(style.Black)
	for _, dataRow := range matrixRows {
		yTop := y
		y -= rowHeight
		yBottom := y

		isTotal := dataRow[0] == "TOTAL"
		if isTotal {
			r.canvas.SetFont(family, bold, st.FontSize)
		}

		rowType := template.RowBody
		if isTotal {
			rowType = template.RowSubtotal
		}

		cells := make([]RenderedCell, 0, len(dataRow))
		x = startX
		for ci, text := range dataRow {
			semantic := template.SemAmount
			if ci == 0 {
				semantic = template.SemAccount
				r.canvas.Text(x+padding, yBottom+3, text)
			} else {
				r.canvas.Text(x+widths[ci]-r.canvas.StringWidth(text)-padding, yBottom+3, text)
			}
			cells = append(cells, RenderedCell{
				Text: text, PageIndex: pageIndex, RowIndex: rowIdx, ColIndex: ci,
				BBox:     geometry.DrawingBox(x, yBottom, x+widths[ci], yTop),
				Semantic: semantic, RowType: rowType,
			})
			x += widths[ci]
		}

		renderedRows = append(renderedRows, RenderedRow{
			RowID: fmt.Sprintf("%s_r%d", tableID, rowIdx), TableID: tableID,
			PageIndex: pageIndex, RowIndex: rowIdx,
			BBox:    geometry.DrawingBox(startX, yBottom, startX+tableWidth, yTop),
			RowType: rowType, Cells: cells,
		})
		rowIdx++

		if isTotal {
			r.canvas.SetFont(st.FontFamily, "", st.FontSize)
		}
	}

	// Rules: full grid gets verticals, everything else gets the three
	// horizontals; box borders add the outer sides.
	r.canvas.SetDrawColor(st.GridColor)
	r.canvas.SetLineWidth(st.GridLineWidth)
	r.canvas.Line(startX, headerTop, startX+tableWidth, headerTop)
	r.canvas.Line(startX, headerBottom, startX+tableWidth, headerBottom)
	r.canvas.Line(startX, y, startX+tableWidth, y)
	switch st.Grid {
	case style.FullGrid:
		x = startX
		for _, w := range widths {
			r.canvas.Line(x, headerTop, x, y)
			x += w
		}
		r.canvas.Line(x, headerTop, x, y)
	case style.BoxBorders:
		r.canvas.Line(startX, headerTop, startX, y)
		r.canvas.Line(startX+tableWidth, headerTop, startX+tableWidth, y)
	}

	r.engine.SetCursor(y - 20)
	r.pageHasContent = true

	return RenderedTable{
		TableID:       tableID,
		DocID:         rc.DocID,
		PageIndex:     pageIndex,
		BBox:          geometry.DrawingBox(startX, y, startX+tableWidth, startY),
		TableType:     tpl.Type,
		LayoutType:    template.Matrix,
		IsTableRegion: true,
		VendorSystem:  rc.Vendor,
		TitleText:     title,
		Fund:          "OPERATING",
		NRows:         len(renderedRows),
		NCols:         len(matrixHeaders),
		ColumnHeaders: matrixHeaders,
		Rows:          renderedRows,
		Orientation:   rc.Orientation,
	}
}
