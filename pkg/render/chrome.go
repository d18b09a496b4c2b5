package render

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/finrender/cirasynth/pkg/geometry"
	"github.com/finrender/cirasynth/pkg/layout"
	"github.com/finrender/cirasynth/pkg/style"
)

// chromeGenerator draws the non-table regions: document headers,
// footers, section titles, note blocks, and signature blocks.
type chromeGenerator struct {
	fake *gofakeit.Faker
}

func newChromeGenerator(seed int64) *chromeGenerator {
	return &chromeGenerator{fake: gofakeit.New(seed)}
}

// paintTemplateHeader draws the repeating header block at the top of
// the current page, records its TEMPLATE region, and returns the
// height the band consumed.
func (r *Renderer) paintTemplateHeader() float64 {
	st := r.rc.Style
	startX := r.rc.Page.ContentStartX()
	topY := r.rc.Page.ContentStartY()

	family, bold := style.BoldFont(st.FontFamily)
	y := topY
	for i, line := range r.templateLines {
		if i == 0 {
			r.canvas.SetFont(family, bold, st.HeaderFontSize+1)
		} else {
			r.canvas.SetFont(st.FontFamily, "", st.FontSize-1)
		}
		r.canvas.SetTextColor(style.Gray)
		y -= st.RowHeight
		r.canvas.Text(startX, y+3, line)
	}
	height := topY - y + st.RowHeight*0.5

	r.regions = append(r.regions, NonTableRegion{
		RegionID:  fmt.Sprintf("%s__p%d_template", r.rc.DocID, r.engine.CurrentPage()),
		DocID:     r.rc.DocID,
		PageIndex: r.engine.CurrentPage(),
		BBox:      geometry.DrawingBox(startX, topY-height, startX+r.rc.Page.ContentWidth(), topY),
		Type:      "TEMPLATE",
		Text:      strings.Join(r.templateLines, "\n"),
	})
	return height
}

// ensureTemplateHeader draws the per-page repeating header before the
// first primitive of a page whose placement has not been computed yet.
// The cursor advances past the band; no shift is needed.
func (r *Renderer) ensureTemplateHeader() {
	if r.engine.TemplateDrawn() || len(r.templateLines) == 0 {
		return
	}
	height := r.paintTemplateHeader()
	r.engine.AdvanceCursor(height)
	r.engine.MarkTemplateDrawn()
	r.pageHasContent = true
}

// drawTemplateHeader is the ledger-path variant: the placement was
// computed before the header, so every recorded y-position shifts down
// by the band height in a single atomic pass. Must run before any
// table primitive is drawn.
func (r *Renderer) drawTemplateHeader(p *layout.Placement,
	rows []layout.RowPlacement, cells []layout.CellPlacement) {

	if r.engine.TemplateDrawn() || len(r.templateLines) == 0 {
		return
	}
	height := r.paintTemplateHeader()
	layout.ShiftDown(p, rows, cells, height)
	r.engine.AdvanceCursor(height)
	r.engine.MarkTemplateDrawn()
	r.pageHasContent = true
}

// documentHeader draws the property name and address block at the top
// of the first page. Returns the region and the y the cursor should
// drop to.
func (g *chromeGenerator) documentHeader(r *Renderer, pageIndex int) (NonTableRegion, float64) {
	rc := r.rc
	st := rc.Style
	startX := rc.Page.ContentStartX()
	startY := r.engine.CurrentY()

	propertyNames := []string{
		g.fake.City() + " Condominium Association",
		g.fake.City() + " Homeowners Association",
		"The " + g.fake.LastName() + " at " + g.fake.City(),
		fmt.Sprintf("%d %s Condo", 100+rc.Rng.Intn(900), g.fake.Street()),
		g.fake.Company() + " Management Co.",
	}
	propertyName := propertyNames[rc.Rng.Intn(len(propertyNames))]
	address := fmt.Sprintf("%s, %s, %s %s",
		g.fake.Street(), g.fake.City(), g.fake.StateAbr(), g.fake.Zip())

	family, bold := style.BoldFont(st.FontFamily)
	y := startY

	r.canvas.SetFont(family, bold, st.HeaderFontSize+2)
	r.canvas.SetTextColor(style.Black)
	r.canvas.Text(startX, y, propertyName)
	y -= st.RowHeight * 1.3

	r.canvas.SetFont(st.FontFamily, "", st.FontSize)
	r.canvas.Text(startX, y, address)
	y -= st.RowHeight * 1.5

	region := NonTableRegion{
		RegionID:  fmt.Sprintf("%s__p%d_header", rc.DocID, pageIndex),
		DocID:     rc.DocID,
		PageIndex: pageIndex,
		BBox:      geometry.DrawingBox(startX, y, startX+rc.Page.ContentWidth(), startY),
		Type:      "HEADER",
		Text:      propertyName + "\n" + address,
	}
	return region, y
}

// sectionHeader draws a bold section title between tables.
func (g *chromeGenerator) sectionHeader(r *Renderer, sectionIdx int, period string) (NonTableRegion, float64) {
	rc := r.rc
	st := rc.Style
	startX := rc.Page.ContentStartX()
	startY := r.engine.CurrentY() - 15

	texts := []string{
		"Financial Summary - " + period,
		"Statement Period: " + period,
		"Operating Fund Report",
		"Reserve Fund Activity",
		"For the Month Ending " + period,
	}
	text := texts[rc.Rng.Intn(len(texts))]

	family, bold := style.BoldFont(st.FontFamily)
	r.canvas.SetFont(family, bold, st.FontSize+1)
	r.canvas.SetTextColor(style.Black)
	r.canvas.Text(startX, startY, text)

	if rc.Rng.Float64() > 0.5 {
		r.canvas.SetDrawColor(style.Gray)
		r.canvas.SetLineWidth(0.5)
		r.canvas.Line(startX, startY-2, startX+r.canvas.StringWidth(text), startY-2)
	}
	y := startY - st.RowHeight*1.2

	region := NonTableRegion{
		RegionID:  fmt.Sprintf("%s__p%d_section%d", rc.DocID, r.engine.CurrentPage(), sectionIdx),
		DocID:     rc.DocID,
		PageIndex: r.engine.CurrentPage(),
		BBox:      geometry.DrawingBox(startX, y, startX+rc.Page.ContentWidth()*0.6, startY+st.RowHeight),
		Type:      "SECTION_HEADER",
		Text:      text,
	}
	return region, y
}

// noteBlock draws a gray disclaimer line between tables.
func (g *chromeGenerator) noteBlock(r *Renderer, noteIdx int) (NonTableRegion, float64) {
	rc := r.rc
	st := rc.Style
	startX := rc.Page.ContentStartX()
	startY := r.engine.CurrentY() - 15

	notes := []string{
		"Note: All figures are unaudited and subject to change.",
		"* Denotes estimated amounts pending final invoice.",
		"See attached schedule for detailed reserve fund analysis.",
		"Questions? Contact your property manager at the number listed above.",
		"This report was prepared using data as of the last business day of the month.",
		"Amounts may not sum due to rounding.",
		"Year-to-date figures include prior period adjustments.",
	}
	text := notes[rc.Rng.Intn(len(notes))]

	r.canvas.SetFont(st.FontFamily, "", st.FontSize-1)
	r.canvas.SetTextColor(style.Gray)
	r.canvas.Text(startX, startY, text)
	y := startY - st.RowHeight*1.3

	region := NonTableRegion{
		RegionID:  fmt.Sprintf("%s__p%d_note%d", rc.DocID, r.engine.CurrentPage(), noteIdx),
		DocID:     rc.DocID,
		PageIndex: r.engine.CurrentPage(),
		BBox:      geometry.DrawingBox(startX, y, startX+rc.Page.ContentWidth()*0.8, startY+st.RowHeight),
		Type:      "NOTE",
		Text:      text,
	}
	return region, y
}

// pageFooter draws a centered footer line above the bottom margin.
func (g *chromeGenerator) pageFooter(r *Renderer, pageNumber, totalPages int) NonTableRegion {
	rc := r.rc
	st := rc.Style
	startX := rc.Page.ContentStartX()
	bottomY := rc.Page.MarginBottom

	texts := []string{
		fmt.Sprintf("Page %d of %d", pageNumber, totalPages),
		fmt.Sprintf("Page %d", pageNumber),
		fmt.Sprintf("- %d -", pageNumber),
		"CONFIDENTIAL - For Owner Use Only",
		"This report is computer generated. Please contact management with questions.",
	}
	text := texts[rc.Rng.Intn(len(texts))]

	r.canvas.SetFont(st.FontFamily, "", st.FontSize-1)
	r.canvas.SetTextColor(style.Gray)
	width := rc.Page.ContentWidth()
	textX := startX + (width-r.canvas.StringWidth(text))/2
	r.canvas.Text(textX, bottomY+10, text)

	return NonTableRegion{
		RegionID:  fmt.Sprintf("%s__p%d_footer", rc.DocID, r.engine.CurrentPage()),
		DocID:     rc.DocID,
		PageIndex: r.engine.CurrentPage(),
		BBox:      geometry.DrawingBox(startX, bottomY, startX+width, bottomY+25),
		Type:      "FOOTER",
		Text:      text,
	}
}

// signatureBlock draws a signature line with name and date.
func (g *chromeGenerator) signatureBlock(r *Renderer) NonTableRegion {
	rc := r.rc
	st := rc.Style
	startX := rc.Page.ContentStartX()
	startY := r.engine.CurrentY() - 20

	titles := []string{"Prepared by:", "Reviewed by:", "Approved by:", "Property Manager:"}
	title := titles[rc.Rng.Intn(len(titles))]
	name := g.fake.Name()
	dateStr := fmt.Sprintf("%02d/%02d/%d", 1+rc.Rng.Intn(12), 1+rc.Rng.Intn(28), 2025)

	y := startY
	r.canvas.SetFont(st.FontFamily, "", st.FontSize)
	r.canvas.SetTextColor(style.Black)
	r.canvas.Text(startX, y, title)
	y -= st.RowHeight * 1.5

	const lineWidth = 150
	r.canvas.SetDrawColor(style.Black)
	r.canvas.SetLineWidth(0.5)
	r.canvas.Line(startX, y, startX+lineWidth, y)
	y -= st.RowHeight * 0.3

	r.canvas.SetFont(st.FontFamily, "", st.FontSize-1)
	r.canvas.Text(startX, y, name)
	y -= st.RowHeight
	r.canvas.Text(startX, y, "Date: "+dateStr)
	y -= st.RowHeight

	return NonTableRegion{
		RegionID:  fmt.Sprintf("%s__p%d_signature", rc.DocID, r.engine.CurrentPage()),
		DocID:     rc.DocID,
		PageIndex: r.engine.CurrentPage(),
		BBox:      geometry.DrawingBox(startX, y, startX+lineWidth+50, startY+st.RowHeight),
		Type:      "SIGNATURE",
		Text:      fmt.Sprintf("%s\n%s\nDate: %s", title, name, dateStr),
	}
}
