package render

import (
	"github.com/finrender/cirasynth/pkg/geometry"
	"github.com/finrender/cirasynth/pkg/template"
)

// RenderedCell is the captured metadata for one drawn cell. BBox is
// drawing-space; label projection happens later.
type RenderedCell struct {
	Text      string
	PageIndex int
	RowIndex  int
	ColIndex  int
	BBox      geometry.BBox
	Semantic  template.SemanticType
	RowType   template.RowType
}

// RenderedRow is one drawn row with its cells.
type RenderedRow struct {
	RowID     string
	TableID   string
	PageIndex int
	RowIndex  int
	BBox      geometry.BBox
	RowType   template.RowType
	Cells     []RenderedCell
}

// RenderedTable is one drawn table with full row/cell metadata.
type RenderedTable struct {
	TableID       string
	DocID         string
	PageIndex     int
	BBox          geometry.BBox
	TableType     template.TableType
	LayoutType    template.LayoutType
	IsTableRegion bool
	VendorSystem  string
	TitleText     string
	Fund          string
	NRows         int
	NCols         int
	ColumnHeaders []string
	Rows          []RenderedRow
	Orientation   geometry.Orientation
}

// NonTableRegion is a drawn non-table block: headers, footers, notes,
// section titles, signatures.
type NonTableRegion struct {
	RegionID  string
	DocID     string
	PageIndex int
	BBox      geometry.BBox
	Type      string // HEADER, FOOTER, NOTE, SECTION_HEADER, SIGNATURE, TEMPLATE
	Text      string
}
