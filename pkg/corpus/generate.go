// Package corpus drives full-run generation: it samples per-document
// parameters from the configured distributions, assembles table data
// from the ledger generators, renders each PDF, projects ground truth,
// and writes the label files plus progress summaries.
package corpus

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/finrender/cirasynth/pkg/config"
	"github.com/finrender/cirasynth/pkg/geometry"
	"github.com/finrender/cirasynth/pkg/labels"
	"github.com/finrender/cirasynth/pkg/ledger"
	"github.com/finrender/cirasynth/pkg/render"
	"github.com/finrender/cirasynth/pkg/template"
)

// templateHeaderProb gates the per-page repeating management-company
// header block.
const templateHeaderProb = 0.5

// Summary aggregates one corpus run.
type Summary struct {
	RunID          string
	NumPDFs        int
	TotalTables    int
	TotalNonTables int
	TotalRows      int
	TotalTokens    int
	TotalPages     int
	Reconcile      labels.Stats
}

// DocResult reports one generated document.
type DocResult struct {
	DocID     string
	PDFPath   string
	Tables    int
	Pages     int
	Reconcile labels.Stats
}

// sampleWeighted picks a key from a weight map. Keys are visited in
// sorted order so a fixed seed always walks the same sequence.
func sampleWeighted(dist map[string]float64, rng *rand.Rand) string {
	keys := make([]string, 0, len(dist))
	var total float64
	for k, w := range dist {
		keys = append(keys, k)
		total += w
	}
	sort.Strings(keys)

	r := rng.Float64() * total
	for _, k := range keys {
		r -= dist[k]
		if r <= 0 {
			return k
		}
	}
	return keys[len(keys)-1]
}

// sampleLevel picks a degradation level from the level weight map.
func sampleLevel(dist map[int]float64, rng *rand.Rand) int {
	levels := make([]int, 0, len(dist))
	var total float64
	for level, w := range dist {
		levels = append(levels, level)
		total += w
	}
	sort.Ints(levels)

	r := rng.Float64() * total
	for _, level := range levels {
		r -= dist[level]
		if r <= 0 {
			return level
		}
	}
	return levels[len(levels)-1]
}

// sampleTableType samples from the table mix using range midpoints.
func sampleTableType(mix map[string]config.Range, rng *rand.Rand) template.TableType {
	weights := make(map[string]float64, len(mix))
	for name, r := range mix {
		weights[name] = (r.Min + r.Max) / 2
	}
	return template.TableType(sampleWeighted(weights, rng))
}

// Generate produces the whole corpus. Label files are cleared first so
// repeated runs do not accumulate stale records.
func Generate(cfg config.GeneratorConfig) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	log := cfg.GetLogger()

	periodStart, err := cfg.PeriodStartDate()
	if err != nil {
		return Summary{}, err
	}
	periodEnd, err := cfg.PeriodEndDate()
	if err != nil {
		return Summary{}, err
	}

	writer, err := labels.NewWriter(cfg.OutDir)
	if err != nil {
		return Summary{}, err
	}
	if err := writer.Clear(); err != nil {
		return Summary{}, err
	}

	pdfDir := filepath.Join(cfg.OutDir, "pdfs")
	if err := os.MkdirAll(pdfDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("failed to create pdf dir %s: %w", pdfDir, err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	summary := Summary{RunID: uuid.NewString(), NumPDFs: cfg.NumPDFs}

	fmt.Fprintf(log, "Generating %d documents...\n", cfg.NumPDFs)
	fmt.Fprintf(log, "Output directory: %s\n", cfg.OutDir)

	for docIdx := 0; docIdx < cfg.NumPDFs; docIdx++ {
		result, doc, err := generateDocument(docIdx, cfg, periodStart, periodEnd, rng, summary.RunID, writer)
		if err != nil {
			return summary, fmt.Errorf("document %d: %w", docIdx, err)
		}

		summary.TotalTables += result.Tables
		summary.TotalPages += result.Pages
		summary.Reconcile.Add(result.Reconcile)
		for _, region := range doc.Regions {
			if !region.IsTableRegion {
				summary.TotalNonTables++
			}
		}
		summary.TotalRows += len(doc.Rows)
		summary.TotalTokens += len(doc.Tokens)

		if docIdx == 0 || (docIdx+1)%10 == 0 {
			fmt.Fprintf(log, "  Generated %d/%d documents (clamped %d, dropped %d)\n",
				docIdx+1, cfg.NumPDFs, summary.Reconcile.Clamped, summary.Reconcile.Dropped)
		}
	}

	fmt.Fprintf(log, "\nGeneration complete!\n")
	fmt.Fprintf(log, "  PDFs: %d\n", summary.NumPDFs)
	fmt.Fprintf(log, "  TABLE regions: %d\n", summary.TotalTables)
	fmt.Fprintf(log, "  NON_TABLE regions: %d\n", summary.TotalNonTables)
	fmt.Fprintf(log, "  Rows: %d\n", summary.TotalRows)
	fmt.Fprintf(log, "  Tokens: %d\n", summary.TotalTokens)
	fmt.Fprintf(log, "  Pages: %d\n", summary.TotalPages)
	fmt.Fprintf(log, "  Boxes ok/clamped/dropped: %d/%d/%d (tables dropped: %d)\n",
		summary.Reconcile.OK, summary.Reconcile.Clamped, summary.Reconcile.Dropped,
		summary.Reconcile.DroppedTables)

	return summary, nil
}

// generateDocument renders one document and writes its labels.
func generateDocument(docIdx int, cfg config.GeneratorConfig,
	periodStart, periodEnd time.Time, rng *rand.Rand, runID string,
	writer *labels.Writer) (DocResult, labels.DocLabels, error) {

	vendor := sampleWeighted(cfg.VendorDistribution, rng)
	propertyType := sampleWeighted(cfg.PropertyTypeDistribution, rng)
	glMask := sampleWeighted(cfg.GLMaskDistribution, rng)
	level := sampleLevel(cfg.DegradationDistribution, rng)
	docLayout := template.LayoutType(sampleWeighted(cfg.LayoutDistribution, rng))
	orientation := geometry.Orientation(sampleWeighted(cfg.OrientationDistribution, rng))

	docID := fmt.Sprintf("%s__%05d__%s", vendor, docIdx, periodStart.Format("2006-01"))
	page := geometry.PageFor(orientation)

	accounts, err := ledger.BuildChartOfAccounts(glMask, ledger.FundOperating)
	if err != nil {
		return DocResult{}, labels.DocLabels{}, err
	}
	txns := ledger.GenerateMonthlyLedger(accounts, periodStart, periodEnd, rng,
		30+rng.Intn(50), propertyType)

	var disbursements, receipts []ledger.CashTransaction
	for _, txn := range txns {
		if txn.Disbursement {
			disbursements = append(disbursements, txn)
		} else {
			receipts = append(receipts, txn)
		}
	}

	rc := render.NewRenderContext(docID, vendor, level, page, rng)
	fake := gofakeit.New(rng.Int63())

	specs := buildTableSpecs(cfg, rc, docLayout, vendor, accounts,
		disbursements, receipts, periodStart, periodEnd, rng, fake)

	var templateLines []string
	if rng.Float64() < templateHeaderProb {
		company := ledger.RandomCompany(rng)
		building := ledger.RandomBuilding(company, rng)
		templateLines = ledger.TemplateHeaderLines(company, building, rng)
	}

	canvas := render.NewPDFCanvas(page)
	renderer := render.NewRenderer(rc, canvas)
	period := periodStart.Format("January 2006")
	tables, regions, pages := renderer.RenderDocument(specs, templateLines, true, period)

	pdfName := fmt.Sprintf("%s_L%d_%s_%s.pdf", docID, level, docLayout.Abbrev(), orientation.Abbrev())
	pdfPath := filepath.Join(cfg.OutDir, "pdfs", pdfName)
	if err := renderer.Save(pdfPath); err != nil {
		return DocResult{}, labels.DocLabels{}, err
	}

	doc, stats := labels.Project(tables, regions, page, runID)
	if _, err := writer.Append(doc); err != nil {
		return DocResult{}, labels.DocLabels{}, err
	}
	if err := writer.AppendDocument(labels.DocumentLabel{
		DocID:             docID,
		VendorSystem:      vendor,
		PropertyType:      propertyType,
		FiscalPeriodStart: periodStart.Format("2006-01-02"),
		FiscalPeriodEnd:   periodEnd.Format("2006-01-02"),
		GLMask:            glMask,
		DegradationLevel:  level,
		PDFPath:           pdfPath,
		RunID:             runID,
	}); err != nil {
		return DocResult{}, labels.DocLabels{}, err
	}

	result := DocResult{
		DocID:     docID,
		PDFPath:   pdfPath,
		Tables:    len(tables),
		Pages:     pages,
		Reconcile: stats,
	}
	return result, doc, nil
}

// buildTableSpecs samples 1-3 tables for a document, falling back to a
// cash schedule when every sampled type came up empty.
func buildTableSpecs(cfg config.GeneratorConfig, rc render.RenderContext,
	docLayout template.LayoutType, vendor string, accounts []ledger.GLAccount,
	disbursements, receipts []ledger.CashTransaction,
	periodStart, periodEnd time.Time, rng *rand.Rand,
	fake *gofakeit.Faker) []render.TableSpec {

	var specs []render.TableSpec
	numTables := 1 + rng.Intn(3)

	for i := 0; i < numTables; i++ {
		tableType := sampleTableType(cfg.TableMix, rng)

		layout := template.HorizontalLedger
		switch {
		case tableType.IsCash():
			layout = docLayout
		case tableType == template.Budget:
			// Budget tables mostly render as a cross-tab.
			if rng.Float64() < 0.6 {
				layout = template.Matrix
			}
		}

		tpl, err := template.Get(tableType, vendor)
		if err != nil {
			continue
		}
		title := rc.Choose.Title(tpl)

		switch tableType {
		case template.CashOut:
			if len(disbursements) > 0 {
				specs = append(specs, render.TableSpec{
					Template: tpl, Title: title, Transactions: disbursements, Layout: layout,
				})
			}
		case template.CashIn:
			if len(receipts) > 0 {
				specs = append(specs, render.TableSpec{
					Template: tpl, Title: title, Transactions: receipts, Layout: layout,
				})
			}
		case template.Budget:
			data := ledger.GenerateBudgetRows(accounts, periodStart, rng, 25)
			specs = append(specs, render.TableSpec{
				Template: tpl, Title: title, Generic: data, Layout: layout,
			})
		case template.Unpaid:
			data := ledger.GenerateUnpaidRows(accounts, periodEnd, rng, fake, 15)
			specs = append(specs, render.TableSpec{
				Template: tpl, Title: title, Generic: data, Layout: layout,
			})
		case template.Aging:
			data := ledger.GenerateAgingRows(rng, fake, 20)
			specs = append(specs, render.TableSpec{
				Template: tpl, Title: title, Generic: data, Layout: layout,
			})
		case template.GL:
			data := ledger.GenerateGLRows(accounts, periodStart, periodEnd, rng, fake, 30)
			specs = append(specs, render.TableSpec{
				Template: tpl, Title: title, Generic: data, Layout: layout,
			})
		}
	}

	if len(specs) == 0 {
		fallback := disbursements
		fallbackType := template.CashOut
		if len(fallback) == 0 {
			fallback = receipts
			fallbackType = template.CashIn
		}
		if len(fallback) > 0 {
			if tpl, err := template.Get(fallbackType, vendor); err == nil {
				specs = append(specs, render.TableSpec{
					Template:     tpl,
					Title:        rc.Choose.Title(tpl),
					Transactions: fallback,
					Layout:       docLayout,
				})
			}
		}
	}

	return specs
}
