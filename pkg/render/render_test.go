package render

import (
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finrender/cirasynth/pkg/geometry"
	"github.com/finrender/cirasynth/pkg/layout"
	"github.com/finrender/cirasynth/pkg/ledger"
	"github.com/finrender/cirasynth/pkg/style"
	"github.com/finrender/cirasynth/pkg/template"
)

// fakeCanvas records draw calls without producing a PDF.
type fakeCanvas struct {
	pages int
	texts []string
	lines int
	rects int
}

func (c *fakeCanvas) AddPage()                       { c.pages++ }
func (c *fakeCanvas) SetFont(_, _ string, _ float64) {}
func (c *fakeCanvas) SetTextColor(style.RGB)         {}
func (c *fakeCanvas) SetFillColor(style.RGB)         {}
func (c *fakeCanvas) SetDrawColor(style.RGB)         {}
func (c *fakeCanvas) SetLineWidth(float64)           {}
func (c *fakeCanvas) Text(_, _ float64, s string)    { c.texts = append(c.texts, s) }
func (c *fakeCanvas) Line(_, _, _, _ float64)        { c.lines++ }
func (c *fakeCanvas) FillRect(_, _, _, _ float64)    { c.rects++ }
func (c *fakeCanvas) StringWidth(s string) float64   { return float64(len(s)) * 5 }
func (c *fakeCanvas) Save(string) error              { return nil }

func testTxns(t *testing.T, n int, seed int64) []ledger.CashTransaction {
	t.Helper()
	accounts, err := ledger.BuildChartOfAccounts("NNNN", ledger.FundOperating)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	return ledger.GenerateMonthlyLedger(accounts, start, end, rng, n, "CONDO")
}

func newTestRenderer(t *testing.T, vendor string, level int, seed int64) (*Renderer, *fakeCanvas) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	page := geometry.PortraitPage()
	rc := NewRenderContext("doc0001", vendor, level, page, rng)
	canvas := &fakeCanvas{}
	return NewRenderer(rc, canvas), canvas
}

func TestLedgerTableClipsToPageCapacity(t *testing.T) {
	tpl, err := template.Get(template.CashOut, "AKAM_NEW")
	require.NoError(t, err)

	r, _ := newTestRenderer(t, "AKAM_NEW", 1, 7)
	txns := testTxns(t, 200, 7)

	tables, _, pages := r.RenderDocument([]TableSpec{{
		Template:     tpl,
		Title:        "Schedule of Cash Disbursements",
		Transactions: txns,
		Layout:       template.HorizontalLedger,
	}}, nil, false, "")

	require.Len(t, tables, 1)
	tbl := tables[0]

	// Overflow truncates rather than paginating.
	assert.Equal(t, 0, tbl.PageIndex)
	assert.Equal(t, 1, pages)
	maxRows := layout.NewEngine(geometry.PortraitPage()).MaxDataRows(tpl, false)
	assert.LessOrEqual(t, tbl.NRows, maxRows+1, "header plus at most the capacity")

	// Every cell box must stay above the bottom margin.
	for _, row := range tbl.Rows {
		for _, cell := range row.Cells {
			assert.GreaterOrEqual(t, cell.BBox.Y0, 0.0)
		}
	}
}

func TestSplitPairStaysOnOnePage(t *testing.T) {
	tpl, err := template.Get(template.CashOut, "AKAM_NEW")
	require.NoError(t, err)

	r, _ := newTestRenderer(t, "AKAM_NEW", 1, 11)
	txns := testTxns(t, 20, 11)

	tables, _, _ := r.RenderDocument([]TableSpec{
		{Template: tpl, Title: "Disbursements A-L", Transactions: txns[:10], Layout: template.SplitLedger},
		{Template: tpl, Title: "Disbursements M-Z", Transactions: txns[10:], Layout: template.SplitLedger},
	}, nil, false, "")

	require.Len(t, tables, 2)
	left, right := tables[0], tables[1]

	assert.Equal(t, left.PageIndex, right.PageIndex)
	assert.InDelta(t, left.BBox.Y1, right.BBox.Y1, 0.001, "panels share the top edge")

	page := geometry.PortraitPage()
	panelWidth := (page.ContentWidth() - layout.SplitGutter) / 2
	assert.InDelta(t, panelWidth, left.BBox.Width(), 0.001)
	assert.InDelta(t, left.BBox.X1+layout.SplitGutter, right.BBox.X0, 0.001)
}

func TestUnpairedSplitDegradesToStandard(t *testing.T) {
	tpl, err := template.Get(template.CashOut, "AKAM_NEW")
	require.NoError(t, err)

	r, _ := newTestRenderer(t, "AKAM_NEW", 1, 13)
	txns := testTxns(t, 10, 13)

	tables, _, _ := r.RenderDocument([]TableSpec{
		{Template: tpl, Title: "Disbursements", Transactions: txns, Layout: template.SplitLedger},
	}, nil, false, "")

	require.Len(t, tables, 1)
	assert.Equal(t, template.HorizontalLedger, tables[0].LayoutType)
	assert.InDelta(t, geometry.PortraitPage().ContentWidth(), tables[0].BBox.Width(), 0.001)
}

func TestVerticalKVCapsRecords(t *testing.T) {
	tpl, err := template.Get(template.CashOut, "AKAM_NEW")
	require.NoError(t, err)

	r, _ := newTestRenderer(t, "AKAM_NEW", 1, 17)
	txns := testTxns(t, 10, 17)

	tbl := r.renderVerticalKV(0, tpl, "Disbursement Detail", txns)

	assert.Equal(t, template.VerticalKV, tbl.LayoutType)
	assert.Equal(t, maxKVRecords*kvFieldCount, tbl.NRows)
	assert.Equal(t, 2, tbl.NCols)
	for _, row := range tbl.Rows {
		assert.Len(t, row.Cells, 2)
	}
}

func TestRaggedCapsTransactions(t *testing.T) {
	tpl, err := template.Get(template.CashOut, "AKAM_NEW")
	require.NoError(t, err)

	r, _ := newTestRenderer(t, "AKAM_NEW", 3, 19)
	txns := testTxns(t, 20, 19)

	tbl := r.renderRagged(0, tpl, "Expense Summary", txns)

	assert.Equal(t, template.Ragged, tbl.LayoutType)
	// Header, capped body, total row.
	assert.Equal(t, maxRaggedTxns+2, tbl.NRows)
	assert.Equal(t, template.RowHeader, tbl.Rows[0].RowType)
	assert.Equal(t, template.RowSubtotal, tbl.Rows[len(tbl.Rows)-1].RowType)
	assert.Less(t, tbl.BBox.Width(), geometry.PortraitPage().ContentWidth())
}

func TestMatrixHasGrandTotalRow(t *testing.T) {
	tpl, err := template.Get(template.Budget, "AKAM_NEW")
	require.NoError(t, err)

	r, _ := newTestRenderer(t, "AKAM_NEW", 1, 23)
	txns := testTxns(t, 15, 23)

	tbl := r.renderMatrix(0, tpl, "Budget Comparison", txns, nil)

	assert.Equal(t, template.Matrix, tbl.LayoutType)
	assert.Equal(t, 5, tbl.NCols)

	last := tbl.Rows[len(tbl.Rows)-1]
	assert.Equal(t, template.RowSubtotal, last.RowType)
	assert.Equal(t, "TOTAL", last.Cells[0].Text)
}

func TestTemplateHeaderShiftsFirstTable(t *testing.T) {
	tpl, err := template.Get(template.CashOut, "AKAM_NEW")
	require.NoError(t, err)

	page := geometry.PortraitPage()
	lines := []string{"HARBORVIEW CONDOMINIUM", "Managed by Apex Management LLC", "Report Date: 03/31/25"}

	r, _ := newTestRenderer(t, "AKAM_NEW", 1, 29)
	txns := testTxns(t, 10, 29)

	tables, regions, _ := r.RenderDocument([]TableSpec{{
		Template:     tpl,
		Title:        "Schedule of Cash Disbursements",
		Transactions: txns,
		Layout:       template.HorizontalLedger,
	}}, lines, false, "")

	require.Len(t, tables, 1)

	var tmpl *NonTableRegion
	for i := range regions {
		if regions[i].Type == "TEMPLATE" {
			tmpl = &regions[i]
		}
	}
	require.NotNil(t, tmpl, "template header region recorded")

	// The table top must sit below the template header band.
	assert.Less(t, tables[0].BBox.Y1, page.ContentStartY())
	assert.LessOrEqual(t, tables[0].BBox.Y1, tmpl.BBox.Y0+0.001)
}

func TestTemplateHeaderDrawnOncePerPage(t *testing.T) {
	tpl, err := template.Get(template.CashOut, "AKAM_NEW")
	require.NoError(t, err)

	lines := []string{"HARBORVIEW CONDOMINIUM"}
	r, _ := newTestRenderer(t, "AKAM_NEW", 1, 31)

	specs := []TableSpec{
		{Template: tpl, Title: "Disbursements 1", Transactions: testTxns(t, 8, 31), Layout: template.HorizontalLedger},
		{Template: tpl, Title: "Disbursements 2", Transactions: testTxns(t, 8, 37), Layout: template.HorizontalLedger},
	}
	tables, regions, _ := r.RenderDocument(specs, lines, false, "")
	require.Len(t, tables, 2)

	perPage := map[int]int{}
	for _, reg := range regions {
		if reg.Type == "TEMPLATE" {
			perPage[reg.PageIndex]++
		}
	}
	for pageIdx, count := range perPage {
		assert.Equal(t, 1, count, "page %d", pageIdx)
	}
}

func TestTemplateHeaderPrecedesMatrixTable(t *testing.T) {
	budgetTpl, err := template.Get(template.Budget, "AKAM_NEW")
	require.NoError(t, err)
	cashTpl, err := template.Get(template.CashOut, "AKAM_NEW")
	require.NoError(t, err)

	lines := []string{"HARBORVIEW CONDOMINIUM", "Managed by Apex Management LLC"}
	r, _ := newTestRenderer(t, "AKAM_NEW", 1, 59)

	tables, regions, _ := r.RenderDocument([]TableSpec{
		{Template: budgetTpl, Title: "Budget Comparison", Transactions: testTxns(t, 12, 59), Layout: template.Matrix},
		{Template: cashTpl, Title: "Disbursements", Transactions: testTxns(t, 8, 61), Layout: template.HorizontalLedger},
	}, lines, false, "")
	require.Len(t, tables, 2)

	var tmpl *NonTableRegion
	perPage := map[int]int{}
	for i := range regions {
		if regions[i].Type == "TEMPLATE" {
			perPage[regions[i].PageIndex]++
			if regions[i].PageIndex == 0 {
				tmpl = &regions[i]
			}
		}
	}
	require.NotNil(t, tmpl, "page 0 carries the header even when a matrix table opens it")
	for pageIdx, count := range perPage {
		assert.Equal(t, 1, count, "page %d", pageIdx)
	}

	// The matrix table starts below the header band, never under it.
	assert.LessOrEqual(t, tables[0].BBox.Y1, tmpl.BBox.Y0+0.001)
	for _, cell := range tables[0].Rows[0].Cells {
		assert.LessOrEqual(t, cell.BBox.Y1, tmpl.BBox.Y0+0.001)
	}
}

func TestTemplateHeaderDrawnForNonLedgerDocument(t *testing.T) {
	tpl, err := template.Get(template.CashOut, "AKAM_NEW")
	require.NoError(t, err)

	lines := []string{"HARBORVIEW CONDOMINIUM"}
	r, _ := newTestRenderer(t, "AKAM_NEW", 1, 67)

	_, regions, _ := r.RenderDocument([]TableSpec{
		{Template: tpl, Title: "Expense Summary", Transactions: testTxns(t, 6, 67), Layout: template.Ragged},
	}, lines, false, "")

	found := false
	for _, reg := range regions {
		if reg.Type == "TEMPLATE" && reg.PageIndex == 0 {
			found = true
		}
	}
	assert.True(t, found, "ragged-only documents still record the header")
}

func TestRaggedColumnWidthsFollowDegradation(t *testing.T) {
	tpl, err := template.Get(template.CashOut, "AKAM_NEW")
	require.NoError(t, err)
	base := geometry.PortraitPage().ContentWidth() * 0.85

	r1, _ := newTestRenderer(t, "AKAM_NEW", 1, 71)
	clean := r1.renderRagged(0, tpl, "Expense Summary", testTxns(t, 5, 71))
	for ci, cell := range clean.Rows[0].Cells {
		assert.InDelta(t, base*raggedWidthRatios[ci], cell.BBox.Width(), 0.001)
	}

	r5, _ := newTestRenderer(t, "AKAM_NEW", 5, 71)
	rough := r5.renderRagged(0, tpl, "Expense Summary", testTxns(t, 5, 71))
	varied := false
	for ci, cell := range rough.Rows[0].Cells {
		if math.Abs(cell.BBox.Width()-base*raggedWidthRatios[ci]) > 0.5 {
			varied = true
		}
	}
	assert.True(t, varied, "level 5 varies at least one column width")
}

func TestRaggedDescriptionTruncatesOnRunes(t *testing.T) {
	tpl, err := template.Get(template.CashOut, "AKAM_NEW")
	require.NoError(t, err)

	txns := testTxns(t, 3, 73)
	txns[0].Description = strings.Repeat("é", 30)

	r, canvas := newTestRenderer(t, "AKAM_NEW", 1, 73)
	tbl := r.renderRagged(0, tpl, "Expense Summary", txns)

	assert.Equal(t, strings.Repeat("é", 25), tbl.Rows[1].Cells[3].Text)
	for _, s := range canvas.texts {
		assert.True(t, utf8.ValidString(s), "drawn text %q", s)
	}
}

func TestGenericRowsAlwaysCarrySubtotal(t *testing.T) {
	tpl, err := template.Get(template.Budget, "AKAM_NEW")
	require.NoError(t, err)
	require.True(t, tpl.SupportsSubtotal)

	accounts, err := ledger.BuildChartOfAccounts("NNNN", ledger.FundOperating)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(41))
	data := ledger.GenerateBudgetRows(accounts, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), rng, 25)
	require.NotEmpty(t, data)

	rc := NewRenderContext("doc0001", "AKAM_NEW", 1, geometry.PortraitPage(), rng)
	rows, types := prepareGenericRows(rc, tpl, data)

	require.Equal(t, len(data)+1, len(rows))
	assert.Equal(t, template.RowSubtotal, types[len(types)-1])
	assert.True(t, isSubtotalRow(rows[len(rows)-1]))

	found := false
	for _, cell := range rows[len(rows)-1] {
		for _, kw := range template.SubtotalKeywords {
			if cell == kw {
				found = true
			}
		}
	}
	assert.True(t, found, "subtotal row carries a recognized keyword")
}

func TestCashRowSubtotalUsesKeywordVocabulary(t *testing.T) {
	tpl, err := template.Get(template.CashOut, "AKAM_NEW")
	require.NoError(t, err)

	txns := testTxns(t, 30, 43)
	sawSubtotal := false
	for seed := int64(0); seed < 40 && !sawSubtotal; seed++ {
		rng := rand.New(rand.NewSource(seed))
		rc := NewRenderContext("doc0001", "AKAM_NEW", 1, geometry.PortraitPage(), rng)
		rows, types := prepareCashRows(rc, tpl, txns)
		if len(types) > 0 && types[len(types)-1] == template.RowSubtotal {
			sawSubtotal = true
			assert.True(t, isSubtotalRow(rows[len(rows)-1]))
		}
	}
	assert.True(t, sawSubtotal, "subtotal appears within 40 seeds at p=0.3")
}

func TestSyncPageSkipsBlankLeadingPage(t *testing.T) {
	r, canvas := newTestRenderer(t, "AKAM_NEW", 1, 47)

	// Force a page turn with nothing drawn yet; the canvas must not
	// emit a blank page.
	r.engine.NewPage()
	r.syncPage(r.engine.CurrentPage())
	assert.Equal(t, 0, canvas.pages)
	assert.Equal(t, 1, r.canvasPage)

	// With content on the page, the turn is real.
	r.pageHasContent = true
	r.engine.NewPage()
	r.syncPage(r.engine.CurrentPage())
	assert.Equal(t, 1, canvas.pages)
}

func TestRenderDocumentDrawsHeaderSynonyms(t *testing.T) {
	tpl, err := template.Get(template.CashOut, "AKAM_NEW")
	require.NoError(t, err)

	r, canvas := newTestRenderer(t, "AKAM_NEW", 1, 53)
	txns := testTxns(t, 5, 53)

	tables, _, _ := r.RenderDocument([]TableSpec{{
		Template:     tpl,
		Title:        "Schedule of Cash Disbursements",
		Transactions: txns,
		Layout:       template.HorizontalLedger,
	}}, nil, false, "")

	require.Len(t, tables, 1)
	assert.Len(t, tables[0].ColumnHeaders, tpl.NCols())
	assert.Contains(t, canvas.texts, "Schedule of Cash Disbursements")
}
