package render

import (
	"github.com/finrender/cirasynth/pkg/layout"
	"github.com/finrender/cirasynth/pkg/ledger"
	"github.com/finrender/cirasynth/pkg/template"
)

// TableSpec is one table request within a document: a template, a
// title, a data payload (transactions or pre-aggregated rows), and the
// layout archetype to draw it with.
type TableSpec struct {
	Template     *template.TableTemplate
	Title        string
	Transactions []ledger.CashTransaction
	Generic      []ledger.GenericRow
	Layout       template.LayoutType
}

// Renderer walks a document's table sequence, keeping the canvas page
// in sync with the placement engine and interleaving non-table chrome.
type Renderer struct {
	rc     RenderContext
	canvas Canvas
	engine *layout.Engine
	chrome *chromeGenerator

	canvasPage     int
	pageHasContent bool
	templateLines  []string
	regions        []NonTableRegion
}

// NewRenderer builds a renderer for one document.
func NewRenderer(rc RenderContext, canvas Canvas) *Renderer {
	return &Renderer{
		rc:     rc,
		canvas: canvas,
		engine: layout.NewEngine(rc.Page),
		chrome: newChromeGenerator(rc.Rng.Int63()),
	}
}

// syncPage advances the canvas until it matches the placement engine's
// page. A page turn only emits a canvas page if something was drawn on
// the current one, so oversized first tables don't leave blanks.
func (r *Renderer) syncPage(target int) {
	for r.canvasPage < target {
		if r.pageHasContent {
			r.canvas.AddPage()
		}
		r.canvasPage++
		r.pageHasContent = false
	}
}

// RenderDocument draws all tables plus chrome and returns the captured
// metadata and the total page count. templateLines, when non-empty, is
// the per-page repeating header re-drawn at the top of every page.
func (r *Renderer) RenderDocument(tables []TableSpec, templateLines []string,
	includeChrome bool, period string) ([]RenderedTable, []NonTableRegion, int) {

	rc := r.rc
	r.templateLines = templateLines
	r.regions = nil

	r.ensureTemplateHeader()

	if includeChrome && rc.Rng.Float64() > 0.3 {
		region, newY := r.chrome.documentHeader(r, 0)
		r.regions = append(r.regions, region)
		r.engine.SetCursor(newY)
		r.pageHasContent = true
	}

	var rendered []RenderedTable
	sectionIdx := 0
	tableIdx := 0

	for i := 0; i < len(tables); i++ {
		spec := tables[i]

		switch {
		case spec.Layout == template.SplitLedger && i+1 < len(tables):
			rendered = append(rendered, r.renderPrepared(tableIdx, spec, template.SplitLedger, false))
			i++
			tableIdx++
			rendered = append(rendered, r.renderPrepared(tableIdx, tables[i], template.SplitLedger, true))

		case spec.Layout == template.VerticalKV:
			rendered = append(rendered, r.renderVerticalKV(tableIdx, spec.Template, spec.Title, spec.Transactions))

		case spec.Layout == template.Matrix:
			rendered = append(rendered, r.renderMatrix(tableIdx, spec.Template, spec.Title, spec.Transactions, spec.Generic))

		case spec.Layout == template.Ragged:
			rendered = append(rendered, r.renderRagged(tableIdx, spec.Template, spec.Title, spec.Transactions))

		default:
			// A split without a partner degrades to a standard table.
			rendered = append(rendered, r.renderPrepared(tableIdx, spec, template.HorizontalLedger, false))
		}

		if includeChrome && i < len(tables)-1 && rc.Rng.Float64() > 0.6 {
			var region NonTableRegion
			var newY float64
			if rc.Rng.Float64() > 0.5 {
				region, newY = r.chrome.sectionHeader(r, sectionIdx, period)
			} else {
				region, newY = r.chrome.noteBlock(r, sectionIdx)
			}
			r.regions = append(r.regions, region)
			r.engine.SetCursor(newY)
			sectionIdx++
		}

		tableIdx++
	}

	if includeChrome && rc.Rng.Float64() > 0.5 {
		if rc.Rng.Float64() > 0.7 {
			r.regions = append(r.regions, r.chrome.signatureBlock(r))
		} else {
			pages := r.engine.CurrentPage() + 1
			r.regions = append(r.regions, r.chrome.pageFooter(r, pages, pages))
		}
	}

	return rendered, r.regions, r.engine.CurrentPage() + 1
}

// renderPrepared preps the row payload for a ledger-style table and
// hands it to the table renderer.
func (r *Renderer) renderPrepared(tableIdx int, spec TableSpec,
	lt template.LayoutType, isSplitRight bool) RenderedTable {

	headers := r.rc.Choose.Headers(spec.Template)

	var rows [][]string
	var types []template.RowType
	if len(spec.Generic) > 0 {
		rows, types = prepareGenericRows(r.rc, spec.Template, spec.Generic)
	} else {
		rows, types = prepareCashRows(r.rc, spec.Template, spec.Transactions)
	}

	return r.renderLedgerTable(tableIdx, spec.Template, spec.Title, headers, rows, types, lt, isSplitRight)
}

// Save finalizes the PDF.
func (r *Renderer) Save(path string) error {
	return r.canvas.Save(path)
}
