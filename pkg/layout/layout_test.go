package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finrender/cirasynth/pkg/geometry"
	"github.com/finrender/cirasynth/pkg/template"
)

func testTemplate(t *testing.T) *template.TableTemplate {
	t.Helper()
	tpl, err := template.Get(template.CashOut, "AKAM_NEW")
	require.NoError(t, err)
	return tpl
}

func TestColumnWidthsSumToContentWidth(t *testing.T) {
	e := NewEngine(geometry.PortraitPage())
	tpl := testTemplate(t)

	widths := e.ColumnWidths(tpl, 0)
	require.Len(t, widths, tpl.NCols())

	var sum float64
	for _, w := range widths {
		sum += w
	}
	assert.InDelta(t, e.Page.ContentWidth(), sum, e.Page.ContentWidth()*0.02)
}

func TestTableHeightComponents(t *testing.T) {
	e := NewEngine(geometry.PortraitPage())
	tpl := testTemplate(t)

	base := e.TableHeight(tpl, 10, false)
	want := tpl.RowHeight*1.5 + tpl.RowHeight*1.2 + 10*tpl.RowHeight + TableBottomPadding
	assert.InDelta(t, want, base, 1e-9)

	// Super-header adds one more header-height band.
	withSuper := e.TableHeight(tpl, 10, true)
	assert.InDelta(t, base+tpl.RowHeight*1.2, withSuper, 1e-9)
}

func TestPageBreakAdvancesMonotonically(t *testing.T) {
	e := NewEngine(geometry.PortraitPage())
	tpl := testTemplate(t)

	p0 := e.PlaceTable(tpl, 40, "Check Register", 0, template.HorizontalLedger, false, false)
	assert.Equal(t, 0, p0.PageIndex)

	p1 := e.PlaceTable(tpl, 40, "Check Register", 1, template.HorizontalLedger, false, false)
	assert.Equal(t, 1, p1.PageIndex, "second 40-row table should not fit on page 0")
	assert.Equal(t, e.Page.ContentStartY(), p1.StartY)
	assert.Greater(t, e.CurrentPage(), p0.PageIndex)
}

func TestSplitPairStaysTogether(t *testing.T) {
	e := NewEngine(geometry.PortraitPage())
	tpl := testTemplate(t)

	// Leave just enough room that the left panel forces a break; the
	// right panel must follow without its own break evaluation.
	e.PlaceTable(tpl, 35, "Filler", 0, template.HorizontalLedger, false, false)

	left := e.PlaceTable(tpl, 30, "Disbursements", 1, template.SplitLedger, false, false)
	right := e.PlaceTable(tpl, 30, "Receipts", 2, template.SplitLedger, true, false)

	assert.Equal(t, left.PageIndex, right.PageIndex)
	assert.Equal(t, left.StartY, right.StartY)
	assert.InDelta(t, left.Width, right.Width, 1e-9)
	assert.InDelta(t, left.StartX+left.Width+SplitGutter, right.StartX, 1e-9)
	// Cursor advanced once, after the right panel.
	assert.InDelta(t, left.StartY-left.Height-InterTableGap, e.CurrentY(), 1e-9)
}

func TestSplitWidthIsHalfMinusGutter(t *testing.T) {
	e := NewEngine(geometry.PortraitPage())
	tpl := testTemplate(t)

	p := e.PlaceTable(tpl, 5, "Left", 0, template.SplitLedger, false, false)
	assert.InDelta(t, (e.Page.ContentWidth()-SplitGutter)/2, p.Width, 1e-9)
}

func TestRowPositionsDescend(t *testing.T) {
	e := NewEngine(geometry.PortraitPage())
	tpl := testTemplate(t)

	p := e.PlaceTable(tpl, 5, "Check Register", 0, template.HorizontalLedger, false, false)
	rows := e.RowPositions(p, 5, false)
	require.Len(t, rows, 6) // header + 5 data rows

	assert.InDelta(t, p.StartY-tpl.RowHeight*1.5, rows[0].YTop, 1e-9)
	for i, r := range rows {
		assert.Greater(t, r.YTop, r.YBottom, "row %d", i)
		if i > 0 {
			assert.InDelta(t, rows[i-1].YBottom, r.YTop, 1e-9)
		}
	}
}

func TestSuperHeaderShiftsRowsDown(t *testing.T) {
	e := NewEngine(geometry.PortraitPage())
	tpl := testTemplate(t)

	p := e.PlaceTable(tpl, 3, "Check Register", 0, template.HorizontalLedger, false, true)
	plain := e.RowPositions(p, 3, false)
	super := e.RowPositions(p, 3, true)
	assert.InDelta(t, plain[0].YTop-tpl.RowHeight*1.2, super[0].YTop, 1e-9)
}

func TestCellPositionsWalkColumns(t *testing.T) {
	e := NewEngine(geometry.PortraitPage())
	tpl := testTemplate(t)

	p := e.PlaceTable(tpl, 1, "Check Register", 0, template.HorizontalLedger, false, false)
	rows := e.RowPositions(p, 1, false)

	data := [][]string{tpl.Headers(), make([]string, tpl.NCols())}
	cells := e.CellPositions(p, rows, data)
	require.Len(t, cells, tpl.NCols()*2)

	widths := e.ColumnWidths(tpl, p.Width)
	x := p.StartX
	for ci := 0; ci < tpl.NCols(); ci++ {
		assert.InDelta(t, x, cells[ci].X, 1e-9, "col %d", ci)
		x += widths[ci]
	}
	assert.Equal(t, tpl.Headers()[0], cells[0].Text)
}

func TestShiftDownIsAtomic(t *testing.T) {
	e := NewEngine(geometry.PortraitPage())
	tpl := testTemplate(t)

	p := e.PlaceTable(tpl, 2, "Check Register", 0, template.HorizontalLedger, false, false)
	rows := e.RowPositions(p, 2, false)
	cells := e.CellPositions(p, rows, [][]string{tpl.Headers()})

	beforeY := p.StartY
	beforeRow := rows[1].YTop
	beforeCell := cells[0].YBottom

	ShiftDown(&p, rows, cells, 30)

	assert.InDelta(t, beforeY-30, p.StartY, 1e-9)
	assert.InDelta(t, beforeRow-30, rows[1].YTop, 1e-9)
	assert.InDelta(t, beforeCell-30, cells[0].YBottom, 1e-9)
	// Relative structure preserved.
	assert.InDelta(t, rows[0].YBottom, rows[1].YTop, 1e-9)
}

func TestTemplateDrawnFlagResetsOnPageTurn(t *testing.T) {
	e := NewEngine(geometry.PortraitPage())
	assert.False(t, e.TemplateDrawn())
	e.MarkTemplateDrawn()
	assert.True(t, e.TemplateDrawn())
	e.NewPage()
	assert.False(t, e.TemplateDrawn())
}

func TestMaxDataRowsMatchesFit(t *testing.T) {
	e := NewEngine(geometry.PortraitPage())
	tpl := testTemplate(t)

	max := e.MaxDataRows(tpl, false)
	require.Greater(t, max, 0)
	assert.LessOrEqual(t, e.TableHeight(tpl, max, false), e.Page.ContentHeight())
	assert.Greater(t, e.TableHeight(tpl, max+1, false), e.Page.ContentHeight())
}

func TestTableBBoxMatchesPlacement(t *testing.T) {
	e := NewEngine(geometry.PortraitPage())
	tpl := testTemplate(t)

	p := e.PlaceTable(tpl, 4, "Check Register", 0, template.HorizontalLedger, false, false)
	b := TableBBox(p)
	assert.Equal(t, geometry.SpaceDrawing, b.Space)
	assert.InDelta(t, p.StartX, b.X0, 1e-9)
	assert.InDelta(t, p.StartY, b.Y1, 1e-9)
	assert.InDelta(t, p.Height, b.Height(), 1e-9)
}
