package render

import (
	"fmt"

	"github.com/finrender/cirasynth/pkg/layout"
	"github.com/finrender/cirasynth/pkg/style"
	"github.com/finrender/cirasynth/pkg/template"
)

// superHeaderProb gates the optional grouping row above the column
// headers, standard archetype only.
const superHeaderProb = 0.4

// renderLedgerTable draws a standard or split ledger table and returns
// its metadata. Data rows beyond one-page capacity are truncated, not
// paginated.
func (r *Renderer) renderLedgerTable(tableIdx int, tpl *template.TableTemplate,
	title string, headers []string, dataRows [][]string, rowTypes []template.RowType,
	lt template.LayoutType, isSplitRight bool) RenderedTable {

	rc := r.rc

	var superGroups []template.SuperHeaderGroup
	if lt == template.HorizontalLedger && rc.Rng.Float64() < superHeaderProb {
		superGroups = template.SuperHeaders(tpl)
	}
	hasSuper := len(superGroups) > 0

	// Clip to single-page capacity; overflow rows are dropped.
	if max := r.engine.MaxDataRows(tpl, hasSuper); len(dataRows) > max {
		dataRows = dataRows[:max]
		rowTypes = rowTypes[:max]
	}

	placement := r.engine.PlaceTable(tpl, len(dataRows), title, tableIdx, lt, isSplitRight, hasSuper)
	r.syncPage(placement.PageIndex)

	rows := r.engine.RowPositions(placement, len(dataRows), hasSuper)
	allRowData := append([][]string{headers}, dataRows...)
	cells := r.engine.CellPositions(placement, rows, allRowData)

	r.drawTemplateHeader(&placement, rows, cells)

	tableID := fmt.Sprintf("%s__p%d_t%d", rc.DocID, placement.PageIndex, tableIdx)

	r.drawTitle(placement, title)
	if hasSuper {
		r.drawSuperHeader(placement, superGroups, rows[0])
	}

	headerCells := cellsOfRow(cells, 0)
	r.drawHeaderRow(headerCells)

	for ri := 1; ri < len(allRowData); ri++ {
		rowCells := cellsOfRow(cells, ri)
		r.drawDataRow(tpl, rowCells, isSubtotalRow(dataRows[ri-1]), ri)
	}

	if tpl.HasGridLines {
		r.drawGridLines(placement, rows, hasLastSubtotal(rowTypes))
	}
	r.pageHasContent = true

	allTypes := append([]template.RowType{template.RowHeader}, rowTypes...)

	renderedRows := make([]RenderedRow, 0, len(rows))
	for ri, rp := range rows {
		rowType := template.RowBody
		if ri < len(allTypes) {
			rowType = allTypes[ri]
		}
		rowCells := cellsOfRow(cells, ri)
		texts := allRowData[ri]

		rcs := make([]RenderedCell, 0, len(rowCells))
		for ci, cp := range rowCells {
			if ci >= len(texts) {
				break
			}
			rcs = append(rcs, RenderedCell{
				Text:      texts[ci],
				PageIndex: placement.PageIndex,
				RowIndex:  ri,
				ColIndex:  ci,
				BBox:      layout.CellBBox(cp),
				Semantic:  tpl.Columns[ci].Semantic,
				RowType:   rowType,
			})
		}

		renderedRows = append(renderedRows, RenderedRow{
			RowID:     fmt.Sprintf("%s_r%d", tableID, ri),
			TableID:   tableID,
			PageIndex: placement.PageIndex,
			RowIndex:  ri,
			BBox:      layout.RowBBox(placement, rp),
			RowType:   rowType,
			Cells:     rcs,
		})
	}

	return RenderedTable{
		TableID:       tableID,
		DocID:         rc.DocID,
		PageIndex:     placement.PageIndex,
		BBox:          layout.TableBBox(placement),
		TableType:     tpl.Type,
		LayoutType:    lt,
		IsTableRegion: true,
		VendorSystem:  rc.Vendor,
		TitleText:     title,
		Fund:          "OPERATING",
		NRows:         len(renderedRows),
		NCols:         tpl.NCols(),
		ColumnHeaders: headers,
		Rows:          renderedRows,
		Orientation:   rc.Orientation,
	}
}

func cellsOfRow(cells []layout.CellPlacement, rowIndex int) []layout.CellPlacement {
	var out []layout.CellPlacement
	for _, c := range cells {
		if c.RowIndex == rowIndex {
			out = append(out, c)
		}
	}
	return out
}

func hasLastSubtotal(types []template.RowType) bool {
	return len(types) > 0 && types[len(types)-1] == template.RowSubtotal
}

func (r *Renderer) drawTitle(p layout.Placement, title string) {
	st := r.rc.Style
	y := p.StartY - st.RowHeight*1.5 + 4

	family, bold := style.BoldFont(st.FontFamily)
	r.canvas.SetFont(family, bold, st.TitleFontSize)
	r.canvas.SetTextColor(style.Black)
	r.canvas.Text(p.StartX, y, title)
}

// drawSuperHeader fills the band between title and header with
// spanning group labels.
func (r *Renderer) drawSuperHeader(p layout.Placement,
	groups []template.SuperHeaderGroup, headerRow layout.RowPlacement) {

	st := r.rc.Style
	widths := r.engine.ColumnWidths(p.Template, p.Width)

	bandHeight := p.Template.RowHeight * 1.2
	yBottom := headerRow.YTop
	yTop := yBottom + bandHeight

	r.canvas.SetFillColor(st.HeaderBG)
	r.canvas.FillRect(p.StartX, yBottom, p.Width, yTop-yBottom)

	family, bold := style.BoldFont(st.FontFamily)
	r.canvas.SetFont(family, bold, st.HeaderFontSize)
	r.canvas.SetTextColor(st.HeaderText)

	colX := make([]float64, len(widths)+1)
	colX[0] = p.StartX
	for i, w := range widths {
		colX[i+1] = colX[i] + w
	}

	padding := st.CellPadding
	for _, g := range groups {
		x0, x1 := colX[g.StartCol], colX[g.EndCol+1]
		label := truncateText(r.canvas, g.Label, x1-x0-2*padding)
		r.canvas.Text(x0+padding, yBottom+3, label)
		r.canvas.SetDrawColor(st.GridColor)
		r.canvas.Line(x1, yTop, x1, yBottom)
	}
}

func (r *Renderer) drawHeaderRow(cells []layout.CellPlacement) {
	if len(cells) == 0 {
		return
	}
	st := r.rc.Style

	yTop, yBottom := cells[0].YTop, cells[0].YBottom
	var totalWidth float64
	for _, c := range cells {
		totalWidth += c.Width
	}

	r.canvas.SetFillColor(st.HeaderBG)
	r.canvas.FillRect(cells[0].X, yBottom, totalWidth, yTop-yBottom)

	family, bold := style.BoldFont(st.FontFamily)
	r.canvas.SetFont(family, bold, st.HeaderFontSize)
	r.canvas.SetTextColor(st.HeaderText)

	padding := st.CellPadding
	for _, c := range cells {
		text := truncateText(r.canvas, c.Text, c.Width-2*padding)
		r.canvas.Text(c.X+padding, c.YBottom+3, text)
	}
}

func (r *Renderer) drawDataRow(tpl *template.TableTemplate,
	cells []layout.CellPlacement, isSubtotal bool, rowIndex int) {

	if len(cells) == 0 {
		return
	}
	st := r.rc.Style
	deg := r.rc.Degrade

	if st.Grid == style.AlternatingRows && rowIndex%2 == 1 {
		var totalWidth float64
		for _, c := range cells {
			totalWidth += c.Width
		}
		r.canvas.SetFillColor(st.AlternatingRowBG)
		r.canvas.FillRect(cells[0].X, cells[0].YBottom, totalWidth, cells[0].YTop-cells[0].YBottom)
	}

	fontSize := deg.FontSize(st.FontSize)
	if isSubtotal {
		family, bold := style.BoldFont(st.FontFamily)
		r.canvas.SetFont(family, bold, fontSize)
	} else {
		r.canvas.SetFont(st.FontFamily, "", fontSize)
	}
	r.canvas.SetTextColor(style.Black)

	padding := st.CellPadding
	for i, c := range cells {
		if i >= len(tpl.Columns) {
			break
		}
		align := tpl.Columns[i].Align
		if deg.Misalign() {
			align = deg.WrongAlignment(align)
		}

		text := deg.CharSpacing(c.Text)
		text = truncateText(r.canvas, text, c.Width-2*padding)

		var x float64
		switch align {
		case style.AlignRight:
			x = c.X + c.Width - r.canvas.StringWidth(text) - padding
		case style.AlignCenter:
			x = c.X + (c.Width-r.canvas.StringWidth(text))/2
		default:
			x = c.X + padding
		}
		r.canvas.Text(x, c.YBottom+3, text)
	}
}

// drawGridLines rules the table per the vendor grid style, with
// non-mandatory lines subject to the degradation gate.
func (r *Renderer) drawGridLines(p layout.Placement, rows []layout.RowPlacement,
	lastIsSubtotal bool) {

	if len(rows) == 0 {
		return
	}
	st := r.rc.Style
	deg := r.rc.Degrade

	r.canvas.SetDrawColor(st.GridColor)
	r.canvas.SetLineWidth(st.GridLineWidth)

	yTop := rows[0].YTop
	yBottom := rows[len(rows)-1].YBottom
	headerBottom := rows[0].YBottom
	widths := r.engine.ColumnWidths(p.Template, p.Width)
	right := p.StartX + p.Width

	maybeLine := func(x1, y1, x2, y2 float64, always bool) {
		if !always && !deg.DrawGridLine() {
			return
		}
		x1, y1 = deg.Jitter(x1, y1)
		x2, y2 = deg.Jitter(x2, y2)
		r.canvas.Line(x1, y1, x2, y2)
	}

	horizontalRules := func() {
		maybeLine(p.StartX, yTop, right, yTop, true)
		for i, rp := range rows {
			always := i == 0 || i == len(rows)-1
			maybeLine(p.StartX, rp.YBottom, right, rp.YBottom, always)
		}
	}

	switch st.Grid {
	case style.FullGrid:
		horizontalRules()
		x := p.StartX
		for i, w := range widths {
			maybeLine(x, yTop, x, yBottom, i == 0)
			x += w
		}
		maybeLine(x, yTop, x, yBottom, true)

	case style.HorizontalOnly:
		horizontalRules()

	case style.Minimal, style.AlternatingRows:
		maybeLine(p.StartX, yTop, right, yTop, true)
		maybeLine(p.StartX, headerBottom, right, headerBottom, true)
		maybeLine(p.StartX, yBottom, right, yBottom, true)

	case style.BoxBorders:
		maybeLine(p.StartX, yTop, right, yTop, true)
		maybeLine(p.StartX, headerBottom, right, headerBottom, true)
		maybeLine(p.StartX, yBottom, right, yBottom, true)
		maybeLine(p.StartX, yTop, p.StartX, yBottom, true)
		maybeLine(right, yTop, right, yBottom, true)

	case style.TwoSection:
		// Header block and subtotal block are ruled; the body is open.
		maybeLine(p.StartX, yTop, right, yTop, true)
		maybeLine(p.StartX, headerBottom, right, headerBottom, true)
		if lastIsSubtotal && len(rows) > 1 {
			subtotalTop := rows[len(rows)-1].YTop
			maybeLine(p.StartX, subtotalTop, right, subtotalTop, true)
		}
		maybeLine(p.StartX, yBottom, right, yBottom, true)
	}
}
