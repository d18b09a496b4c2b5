package render

import (
	"fmt"

	"github.com/finrender/cirasynth/pkg/geometry"
	"github.com/finrender/cirasynth/pkg/ledger"
	"github.com/finrender/cirasynth/pkg/style"
	"github.com/finrender/cirasynth/pkg/template"
)

// maxKVRecords caps how many records a vertical form renders. Fixed
// design cap, not configurable per call.
const maxKVRecords = 3

const (
	kvLabelWidth = 120.0
	kvValueWidth = 200.0
	kvFieldCount = 5
)

// renderVerticalKV draws each record as a stacked 5-field label/value
// block: date, vendor, account, reference, amount.
func (r *Renderer) renderVerticalKV(tableIdx int, tpl *template.TableTemplate,
	title string, txns []ledger.CashTransaction) RenderedTable {

	rc := r.rc
	st := rc.Style

	if len(txns) > maxKVRecords {
		txns = txns[:maxKVRecords]
	}

	rowHeight := tpl.RowHeight
	blockHeight := float64(kvFieldCount+1) * rowHeight
	totalHeight := rowHeight*2 + blockHeight*float64(len(txns))

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

	family, bold := style.BoldFont(st.FontFamily)

	r.canvas.SetFont(family, bold, st.TitleFontSize)
	r.canvas.SetTextColor(style.Black)
	y := startY - rowHeight*1.5
	r.canvas.Text(startX, y+4, title)
	y -= rowHeight * 0.5

	var renderedRows []RenderedRow
	rowIdx := 0

	for _, txn := range txns {
		pairs := []struct {
			label, value string
			semantic     template.SemanticType
		}{
			{"Date:", txn.Date.Format(dateLayout), template.SemDate},
			{"Vendor:", txn.Vendor, template.SemVendor},
			{"GL Code:", txn.GLCode, template.SemAccount},
			{"Check #:", txn.CheckNumber, template.SemOther},
			{"Amount:", "$" + ledger.FormatMoney(txn.Amount), template.SemAmount},
		}

		for _, kv := range pairs {
			y -= rowHeight

			r.canvas.SetFont(family, bold, st.FontSize)
			r.canvas.Text(startX+st.CellPadding, y+3, kv.label)

			r.canvas.SetFont(st.FontFamily, "", st.FontSize)
			display := truncateText(r.canvas, kv.value, kvValueWidth)
			r.canvas.Text(startX+kvLabelWidth, y+3, display)

			cells := []RenderedCell{
				{
					Text: kv.label, PageIndex: pageIndex,
					RowIndex: rowIdx, ColIndex: 0,
					BBox:     geometry.DrawingBox(startX, y, startX+kvLabelWidth, y+rowHeight),
					Semantic: template.SemOther, RowType: template.RowBody,
				},
				{
					Text: kv.value, PageIndex: pageIndex,
					RowIndex: rowIdx, ColIndex: 1,
					BBox:     geometry.DrawingBox(startX+kvLabelWidth, y, startX+kvLabelWidth+kvValueWidth, y+rowHeight),
					Semantic: kv.semantic, RowType: template.RowBody,
				},
			}

			renderedRows = append(renderedRows, RenderedRow{
				RowID:     fmt.Sprintf("%s_r%d", tableID, rowIdx),
				TableID:   tableID,
				PageIndex: pageIndex,
				RowIndex:  rowIdx,
				BBox:      geometry.DrawingBox(startX, y, startX+kvLabelWidth+kvValueWidth, y+rowHeight),
				RowType:   template.RowBody,
				Cells:     cells,
			})
			rowIdx++
		}

		// Separator between records
		y -= rowHeight * 0.5
		r.canvas.SetDrawColor(style.LightGray)
		r.canvas.SetLineWidth(0.5)
		r.canvas.Line(startX, y, startX+kvLabelWidth+kvValueWidth, y)
		y -= rowHeight * 0.3
	}

	r.engine.SetCursor(y - 10 - 20)
	r.pageHasContent = true

	return RenderedTable{
		TableID:       tableID,
		DocID:         rc.DocID,
		PageIndex:     pageIndex,
		BBox:          geometry.DrawingBox(startX, y, startX+kvLabelWidth+kvValueWidth, startY),
		TableType:     tpl.Type,
		LayoutType:    template.VerticalKV,
		IsTableRegion: true,
		VendorSystem:  rc.Vendor,
		TitleText:     title,
		Fund:          "OPERATING",
		NRows:         len(renderedRows),
		NCols:         2,
		ColumnHeaders: []string{"Label", "Value"},
		Rows:          renderedRows,
		Orientation:   rc.Orientation,
	}
}
