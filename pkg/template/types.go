// Package template defines the table archetypes, column specifications,
// and per-vendor table templates for CIRA financial statements.
//
// A TableTemplate is immutable once constructed; many tables share one
// template. Construction validates the column-ratio invariant (widths
// sum to ~1.0) and fails rather than coercing a bad template.
package template

// TableType classifies tables in a CIRA financial package.
type TableType string

const (
	CashOut  TableType = "CASH_OUT" // cash disbursements / Schedule B
	CashIn   TableType = "CASH_IN"  // cash receipts / Schedule D
	Budget   TableType = "BUDGET"   // budget vs actual / income statement
	Unpaid   TableType = "UNPAID"   // unpaid bills / open payables
	Aging    TableType = "AGING"    // receivables aging / arrears
	GL       TableType = "GL"       // general ledger detail
	NonTable TableType = "NON_TABLE"
)

// IsCash reports whether the type is one of the two cash schedules,
// which are the only tables eligible for row/token label emission.
func (t TableType) IsCash() bool { return t == CashOut || t == CashIn }

// LayoutType is one of the five supported table layout archetypes.
type LayoutType string

const (
	HorizontalLedger LayoutType = "horizontal_ledger"  // classic row-based table
	SplitLedger      LayoutType = "split_ledger"       // two panels side by side
	VerticalKV       LayoutType = "vertical_key_value" // stacked label/value form
	Matrix           LayoutType = "matrix_budget"      // GL x period cross-tab
	Ragged           LayoutType = "ragged_pseudotable" // intentionally misaligned
)

// Abbrev returns the four-letter tag used in PDF filenames.
func (l LayoutType) Abbrev() string {
	s := string(l)
	if len(s) > 4 {
		s = s[:4]
	}
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

// EligibleForRowLabels reports whether rows of this layout feed the
// row/token label files. Only the two ledger layouts qualify; the other
// archetypes are detector-only.
func (l LayoutType) EligibleForRowLabels() bool {
	return l == HorizontalLedger || l == SplitLedger
}

// SemanticType labels what a column's cells contain.
type SemanticType string

const (
	SemDate       SemanticType = "DATE"
	SemVendor     SemanticType = "VENDOR"
	SemAccount    SemanticType = "ACCOUNT"
	SemAmount     SemanticType = "AMOUNT"
	SemOther      SemanticType = "OTHER"
	SemInvoiceNum SemanticType = "INVOICE_NUMBER"
	SemCheckNum   SemanticType = "CHECK_NUMBER"
	SemBalance    SemanticType = "BALANCE"
	SemStatus     SemanticType = "STATUS"
	SemVendorCode SemanticType = "VENDOR_CODE"
	SemUnitCode   SemanticType = "UNIT_CODE"
	SemChargeType SemanticType = "CHARGE_TYPE"
)

// RowType classifies a rendered row.
type RowType string

const (
	RowTemplate   RowType = "TEMPLATE"    // per-page design chrome
	RowPageHeader RowType = "PAGE_HEADER" // section/report title
	RowHeader     RowType = "HEADER"      // column headers
	RowBody       RowType = "BODY"
	RowSubtotal   RowType = "SUBTOTAL_TOTAL"
	RowNote       RowType = "NOTE"
)

// Alignment constants for cell text.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// ColumnSpec describes one table column.
type ColumnSpec struct {
	Name       string
	Semantic   SemanticType
	WidthRatio float64
	Align      string
}

// TableTemplate is the immutable layout recipe for one table type under
// one vendor's conventions.
type TableTemplate struct {
	VendorSystem     string
	Type             TableType
	TitleOptions     []string
	Columns          []ColumnSpec
	SupportsSubtotal bool
	RowCountMin      int
	RowCountMax      int
	HasGridLines     bool
	FontName         string
	FontSize         float64
	HeaderFontSize   float64
	RowHeight        float64
}

// NCols returns the column count.
func (t *TableTemplate) NCols() int { return len(t.Columns) }

// Headers returns the raw (pre-synonym) column names.
func (t *TableTemplate) Headers() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}
