// Package labels projects rendered drawing-space metadata into
// label-space ground truth and writes the JSONL label files consumed by
// the downstream extraction models.
//
// Projection runs every bounding box through the geometry reconciliation
// pipeline. A table's emitted bbox is the union of its validated child
// cell boxes, so drawn and labeled geometry can never disagree; tables
// with no valid cell are excluded from ground truth entirely.
package labels

import (
	"fmt"

	"github.com/finrender/cirasynth/pkg/geometry"
	"github.com/finrender/cirasynth/pkg/render"
	"github.com/finrender/cirasynth/pkg/template"
)

// RegionLabel is one model1_regions.jsonl record: a table or a
// non-table chrome region.
type RegionLabel struct {
	TableID       string    `json:"table_id,omitempty"`
	RegionID      string    `json:"region_id,omitempty"`
	DocID         string    `json:"doc_id"`
	PageIndex     int       `json:"page_index"`
	BBox          []float64 `json:"bbox"`
	TableType     string    `json:"table_type"`
	LayoutType    string    `json:"layout_type"`
	IsTableRegion bool      `json:"is_table_region"`
	VendorSystem  string    `json:"vendor_system"`
	TitleText     string    `json:"title_text"`
	Fund          string    `json:"fund"`
	NRows         int       `json:"n_rows"`
	NCols         int       `json:"n_cols"`
	ColumnHeaders []string  `json:"column_headers"`
	Orientation   string    `json:"orientation"`
	RegionType    string    `json:"region_type,omitempty"`
	TextContent   string    `json:"text_content,omitempty"`
}

// RowLabel is one model2_rows.jsonl record. Only rows of cash tables in
// the two ledger layouts are emitted.
type RowLabel struct {
	RowID       string    `json:"row_id"`
	TableID     string    `json:"table_id"`
	DocID       string    `json:"doc_id"`
	PageIndex   int       `json:"page_index"`
	RowIndex    int       `json:"row_index"`
	BBox        []float64 `json:"bbox"`
	RowType     string    `json:"row_type"`
	IsCashTable bool      `json:"is_cash_table"`
	LayoutType  string    `json:"layout_type"`
	TableType   string    `json:"table_type"`
	NCols       int       `json:"n_cols"`
}

// TokenLabel is one model3_tokens.jsonl record: a non-empty cell of an
// emitted row.
type TokenLabel struct {
	TokenID       string    `json:"token_id"`
	RowID         string    `json:"row_id"`
	TableID       string    `json:"table_id"`
	DocID         string    `json:"doc_id"`
	PageIndex     int       `json:"page_index"`
	RowIndex      int       `json:"row_index"`
	ColIndex      int       `json:"col_index"`
	Text          string    `json:"text"`
	BBox          []float64 `json:"bbox"`
	SemanticLabel string    `json:"semantic_label"`
	RowType       string    `json:"row_type"`
}

// CellLabel is one cells.jsonl record: full cell ground truth across
// all tables regardless of model2/3 eligibility.
type CellLabel struct {
	CellID      string    `json:"cell_id"`
	TableID     string    `json:"table_id"`
	DocID       string    `json:"doc_id"`
	PageIndex   int       `json:"page_index"`
	RowIndex    int       `json:"row_index"`
	ColIndex    int       `json:"col_index"`
	ColSemantic string    `json:"col_semantic"`
	RowType     string    `json:"row_type"`
	BBox        []float64 `json:"bbox"`
	Text        string    `json:"text"`
	TableType   string    `json:"table_type"`
	LayoutType  string    `json:"layout_type"`
}

// GTCellLabel is one synthetic_gt_cells.jsonl record for the reassembly
// consumer, which joins on string column ids instead of integer
// indices.
type GTCellLabel struct {
	CellID    string    `json:"cell_id"`
	TableID   string    `json:"table_id"`
	DocID     string    `json:"doc_id"`
	PageIndex int       `json:"page_index"`
	RowIndex  int       `json:"row_index"`
	ColID     string    `json:"col_id"`
	Text      string    `json:"text"`
	BBox      []float64 `json:"bbox"`
	RowType   string    `json:"row_type"`
}

// ManifestColumn names one column in a tables_manifest.jsonl record.
type ManifestColumn struct {
	ColID    string `json:"col_id"`
	Name     string `json:"name"`
	Semantic string `json:"semantic"`
}

// TableManifest is one tables_manifest.jsonl record.
type TableManifest struct {
	TableID    string           `json:"table_id"`
	DocID      string           `json:"doc_id"`
	RunID      string           `json:"run_id"`
	PageIndex  int              `json:"page_index"`
	TableType  string           `json:"table_type"`
	LayoutType string           `json:"layout_type"`
	NRows      int              `json:"n_rows"`
	Columns    []ManifestColumn `json:"columns"`
}

// DocumentLabel is one documents.jsonl record.
type DocumentLabel struct {
	DocID             string `json:"doc_id"`
	VendorSystem      string `json:"vendor_system"`
	PropertyType      string `json:"property_type"`
	FiscalPeriodStart string `json:"fiscal_period_start"`
	FiscalPeriodEnd   string `json:"fiscal_period_end"`
	GLMask            string `json:"gl_mask"`
	DegradationLevel  int    `json:"degradation_level"`
	PDFPath           string `json:"pdf_path"`
	RunID             string `json:"run_id"`
}

// DocLabels holds every label record projected from one document.
type DocLabels struct {
	Regions   []RegionLabel
	Rows      []RowLabel
	Tokens    []TokenLabel
	Cells     []CellLabel
	GTCells   []GTCellLabel
	Manifests []TableManifest
}

// Stats counts reconciliation outcomes across one document.
type Stats struct {
	OK            int
	Clamped       int
	Dropped       int
	DroppedTables int
}

// Add folds another document's stats in.
func (s *Stats) Add(o Stats) {
	s.OK += o.OK
	s.Clamped += o.Clamped
	s.Dropped += o.Dropped
	s.DroppedTables += o.DroppedTables
}

func (s *Stats) count(status geometry.Status) {
	switch status {
	case geometry.StatusOK:
		s.OK++
	case geometry.StatusClamped:
		s.Clamped++
	default:
		s.Dropped++
	}
}

func colID(index int) string { return fmt.Sprintf("col_%02d", index) }

// Project converts one document's rendered tree to label records.
//
// Per table, every cell box runs through Reconcile; the table's emitted
// bbox is the union of the surviving non-TEMPLATE cell boxes. A table
// with no surviving cell is dropped from ground truth. A dropped row
// suppresses its row and token records, but its independently valid
// cells still contribute to the union and to cells.jsonl.
func Project(tables []render.RenderedTable, regions []render.NonTableRegion,
	page geometry.PageGeometry, runID string) (DocLabels, Stats) {

	var out DocLabels
	var stats Stats

	for _, table := range tables {
		tableLabels, tableStats, ok := projectTable(table, page, runID)
		stats.Add(tableStats)
		if !ok {
			stats.DroppedTables++
			continue
		}
		out.Regions = append(out.Regions, tableLabels.Regions...)
		out.Rows = append(out.Rows, tableLabels.Rows...)
		out.Tokens = append(out.Tokens, tableLabels.Tokens...)
		out.Cells = append(out.Cells, tableLabels.Cells...)
		out.GTCells = append(out.GTCells, tableLabels.GTCells...)
		out.Manifests = append(out.Manifests, tableLabels.Manifests...)
	}

	for _, region := range regions {
		box, status := geometry.Reconcile(region.BBox, page.Width, page.Height)
		stats.count(status)
		if status == geometry.StatusDropped {
			continue
		}
		out.Regions = append(out.Regions, RegionLabel{
			RegionID:      region.RegionID,
			DocID:         region.DocID,
			PageIndex:     region.PageIndex,
			BBox:          box.Coords(),
			TableType:     string(template.NonTable),
			LayoutType:    "none",
			IsTableRegion: false,
			VendorSystem:  "N/A",
			ColumnHeaders: []string{},
			Orientation:   string(geometry.Portrait),
			RegionType:    region.Type,
			TextContent:   region.Text,
		})
	}

	return out, stats
}

func projectTable(table render.RenderedTable, page geometry.PageGeometry,
	runID string) (DocLabels, Stats, bool) {

	var out DocLabels
	var stats Stats

	eligible := table.TableType.IsCash() && table.LayoutType.EligibleForRowLabels()

	type projectedCell struct {
		cell render.RenderedCell
		row  render.RenderedRow
		box  geometry.BBox
	}
	var validCells []projectedCell
	var unionBoxes []geometry.BBox

	rowBoxes := make(map[string]geometry.BBox)
	for _, row := range table.Rows {
		box, status := geometry.Reconcile(row.BBox, page.Width, page.Height)
		stats.count(status)
		if status != geometry.StatusDropped {
			rowBoxes[row.RowID] = box
		}

		for _, cell := range row.Cells {
			cellBox, cellStatus := geometry.Reconcile(cell.BBox, page.Width, page.Height)
			stats.count(cellStatus)
			if cellStatus == geometry.StatusDropped {
				continue
			}
			validCells = append(validCells, projectedCell{cell: cell, row: row, box: cellBox})
			if cell.RowType != template.RowTemplate {
				unionBoxes = append(unionBoxes, cellBox)
			}
		}
	}

	tableBox, found := geometry.UnionAll(unionBoxes)
	if !found {
		return DocLabels{}, stats, false
	}

	out.Regions = append(out.Regions, RegionLabel{
		TableID:       table.TableID,
		DocID:         table.DocID,
		PageIndex:     table.PageIndex,
		BBox:          tableBox.Coords(),
		TableType:     string(table.TableType),
		LayoutType:    string(table.LayoutType),
		IsTableRegion: table.IsTableRegion,
		VendorSystem:  table.VendorSystem,
		TitleText:     table.TitleText,
		Fund:          table.Fund,
		NRows:         table.NRows,
		NCols:         table.NCols,
		ColumnHeaders: table.ColumnHeaders,
		Orientation:   string(table.Orientation),
	})

	if eligible {
		for _, row := range table.Rows {
			box, ok := rowBoxes[row.RowID]
			if !ok {
				continue
			}
			out.Rows = append(out.Rows, RowLabel{
				RowID:       row.RowID,
				TableID:     row.TableID,
				DocID:       table.DocID,
				PageIndex:   row.PageIndex,
				RowIndex:    row.RowIndex,
				BBox:        box.Coords(),
				RowType:     string(row.RowType),
				IsCashTable: true,
				LayoutType:  string(table.LayoutType),
				TableType:   string(table.TableType),
				NCols:       table.NCols,
			})
		}
	}

	for _, pc := range validCells {
		if pc.cell.Text == "" {
			continue
		}

		_, rowSurvived := rowBoxes[pc.row.RowID]
		if eligible && rowSurvived {
			out.Tokens = append(out.Tokens, TokenLabel{
				TokenID:       fmt.Sprintf("%s_tok%d", pc.row.RowID, pc.cell.ColIndex),
				RowID:         pc.row.RowID,
				TableID:       table.TableID,
				DocID:         table.DocID,
				PageIndex:     pc.cell.PageIndex,
				RowIndex:      pc.row.RowIndex,
				ColIndex:      pc.cell.ColIndex,
				Text:          pc.cell.Text,
				BBox:          pc.box.Coords(),
				SemanticLabel: string(pc.cell.Semantic),
				RowType:       string(pc.cell.RowType),
			})
		}

		cellID := fmt.Sprintf("%s_r%d_c%d", table.TableID, pc.row.RowIndex, pc.cell.ColIndex)
		out.Cells = append(out.Cells, CellLabel{
			CellID:      cellID,
			TableID:     table.TableID,
			DocID:       table.DocID,
			PageIndex:   pc.cell.PageIndex,
			RowIndex:    pc.row.RowIndex,
			ColIndex:    pc.cell.ColIndex,
			ColSemantic: string(pc.cell.Semantic),
			RowType:     string(pc.row.RowType),
			BBox:        pc.box.Coords(),
			Text:        pc.cell.Text,
			TableType:   string(table.TableType),
			LayoutType:  string(table.LayoutType),
		})
		out.GTCells = append(out.GTCells, GTCellLabel{
			CellID:    cellID,
			TableID:   table.TableID,
			DocID:     table.DocID,
			PageIndex: pc.cell.PageIndex,
			RowIndex:  pc.row.RowIndex,
			ColID:     colID(pc.cell.ColIndex),
			Text:      pc.cell.Text,
			BBox:      pc.box.Coords(),
			RowType:   string(pc.cell.RowType),
		})
	}

	// Column semantics come from the header row's cells, which carry
	// the template's per-column semantic tags.
	semantics := make(map[int]string)
	if len(table.Rows) > 0 {
		for _, cell := range table.Rows[0].Cells {
			semantics[cell.ColIndex] = string(cell.Semantic)
		}
	}
	columns := make([]ManifestColumn, 0, len(table.ColumnHeaders))
	for i, name := range table.ColumnHeaders {
		columns = append(columns, ManifestColumn{ColID: colID(i), Name: name, Semantic: semantics[i]})
	}
	out.Manifests = append(out.Manifests, TableManifest{
		TableID:    table.TableID,
		DocID:      table.DocID,
		RunID:      runID,
		PageIndex:  table.PageIndex,
		TableType:  string(table.TableType),
		LayoutType: string(table.LayoutType),
		NRows:      table.NRows,
		Columns:    columns,
	})

	return out, stats, true
}
