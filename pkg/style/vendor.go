// Package style holds the per-vendor visual profiles and the
// degradation model that perturbs placement and appearance.
//
// A VendorStyle is pure data: fonts, grid style, colors, spacing for one
// accounting package's report look. The degradation Engine wraps a fixed
// parameter table (one row per level 1-5) and a random source; all of
// its operations are stateless functions of the two.
package style

// RGB is a color in the 0-255 channel range used by the PDF canvas.
type RGB struct {
	R, G, B int
}

var (
	Black     = RGB{0, 0, 0}
	White     = RGB{255, 255, 255}
	Gray      = RGB{128, 128, 128}
	LightGray = RGB{211, 211, 211}
)

// GridStyle selects how a vendor draws table rules.
type GridStyle string

const (
	// FullGrid draws every horizontal and vertical line.
	FullGrid GridStyle = "full_grid"
	// HorizontalOnly draws horizontal rules only.
	HorizontalOnly GridStyle = "horizontal"
	// Minimal draws just the top, header separator, and bottom rules.
	Minimal GridStyle = "minimal"
	// AlternatingRows shades every other body row instead of ruling.
	AlternatingRows GridStyle = "alternating"
	// BoxBorders draws the outer box plus the header separator.
	BoxBorders GridStyle = "box_borders"
	// TwoSection rules the header block and the subtotal block but
	// leaves the body unruled, a look common in legacy check registers.
	TwoSection GridStyle = "two_section"
)

// VendorStyle is the visual profile for one accounting package.
type VendorStyle struct {
	Name             string
	FontFamily       string // core PDF family: Helvetica, Times, Courier
	FontSize         float64
	HeaderFontSize   float64
	RowHeight        float64
	Grid             GridStyle
	GridLineWidth    float64
	GridColor        RGB
	HeaderBG         RGB
	HeaderText       RGB
	AlternatingRowBG RGB
	CellPadding      float64
	TitleFontSize    float64
	Compact          bool
}

// vendorStyles is the fixed profile table, one entry per vendor system.
var vendorStyles = map[string]VendorStyle{
	"AKAM_OLD": {
		Name: "AKAM_OLD", FontFamily: "Courier", FontSize: 8, HeaderFontSize: 9,
		RowHeight: 12, Grid: FullGrid, GridLineWidth: 0.75, GridColor: Black,
		HeaderBG: RGB{208, 208, 208}, HeaderText: Black, AlternatingRowBG: White,
		CellPadding: 2, TitleFontSize: 10, Compact: true,
	},
	"AKAM_NEW": {
		Name: "AKAM_NEW", FontFamily: "Helvetica", FontSize: 9, HeaderFontSize: 10,
		RowHeight: 14, Grid: HorizontalOnly, GridLineWidth: 0.5, GridColor: Gray,
		HeaderBG: RGB{232, 232, 232}, HeaderText: Black, AlternatingRowBG: White,
		CellPadding: 3, TitleFontSize: 12,
	},
	"DOUGLAS": {
		Name: "DOUGLAS", FontFamily: "Times", FontSize: 9, HeaderFontSize: 10,
		RowHeight: 14, Grid: BoxBorders, GridLineWidth: 1, GridColor: Black,
		HeaderBG: RGB{240, 240, 240}, HeaderText: Black, AlternatingRowBG: White,
		CellPadding: 3, TitleFontSize: 12,
	},
	"FIRSTSERVICE": {
		Name: "FIRSTSERVICE", FontFamily: "Helvetica", FontSize: 9, HeaderFontSize: 10,
		RowHeight: 16, Grid: AlternatingRows, GridLineWidth: 0.5, GridColor: Gray,
		HeaderBG: RGB{44, 82, 130}, HeaderText: White, AlternatingRowBG: RGB{240, 244, 248},
		CellPadding: 4, TitleFontSize: 14,
	},
	"LINDENWOOD": {
		Name: "LINDENWOOD", FontFamily: "Helvetica", FontSize: 9, HeaderFontSize: 10,
		RowHeight: 14, Grid: Minimal, GridLineWidth: 0.5, GridColor: RGB{204, 204, 204},
		HeaderBG: White, HeaderText: Black, AlternatingRowBG: White,
		CellPadding: 3, TitleFontSize: 12,
	},
	"YARDI": {
		Name: "YARDI", FontFamily: "Helvetica", FontSize: 8, HeaderFontSize: 9,
		RowHeight: 12, Grid: FullGrid, GridLineWidth: 0.5, GridColor: Gray,
		HeaderBG: RGB{238, 238, 238}, HeaderText: Black, AlternatingRowBG: White,
		CellPadding: 2, TitleFontSize: 10, Compact: true,
	},
	"APPFOLIO": {
		Name: "APPFOLIO", FontFamily: "Helvetica", FontSize: 10, HeaderFontSize: 11,
		RowHeight: 16, Grid: HorizontalOnly, GridLineWidth: 0.25, GridColor: RGB{224, 224, 224},
		HeaderBG: White, HeaderText: RGB{51, 51, 51}, AlternatingRowBG: White,
		CellPadding: 4, TitleFontSize: 14,
	},
	"BUILDIUM": {
		Name: "BUILDIUM", FontFamily: "Helvetica", FontSize: 9, HeaderFontSize: 10,
		RowHeight: 14, Grid: AlternatingRows, GridLineWidth: 0.5, GridColor: RGB{221, 221, 221},
		HeaderBG: RGB{74, 85, 104}, HeaderText: White, AlternatingRowBG: RGB{247, 250, 252},
		CellPadding: 3, TitleFontSize: 12,
	},
	"MDS": {
		Name: "MDS", FontFamily: "Courier", FontSize: 8, HeaderFontSize: 9,
		RowHeight: 11, Grid: TwoSection, GridLineWidth: 0.5, GridColor: Black,
		HeaderBG: RGB{204, 204, 204}, HeaderText: Black, AlternatingRowBG: White,
		CellPadding: 2, TitleFontSize: 10, Compact: true,
	},
	"CINC": {
		Name: "CINC", FontFamily: "Helvetica", FontSize: 9, HeaderFontSize: 10,
		RowHeight: 14, Grid: Minimal, GridLineWidth: 0.5, GridColor: RGB{176, 176, 176},
		HeaderBG: RGB{245, 245, 245}, HeaderText: Black, AlternatingRowBG: White,
		CellPadding: 3, TitleFontSize: 12,
	},
	"OTHER_1": {
		Name: "OTHER_1", FontFamily: "Times", FontSize: 10, HeaderFontSize: 11,
		RowHeight: 15, Grid: BoxBorders, GridLineWidth: 0.75, GridColor: Black,
		HeaderBG: RGB{224, 224, 224}, HeaderText: Black, AlternatingRowBG: White,
		CellPadding: 3, TitleFontSize: 13,
	},
	"OTHER_2": {
		Name: "OTHER_2", FontFamily: "Courier", FontSize: 9, HeaderFontSize: 10,
		RowHeight: 13, Grid: HorizontalOnly, GridLineWidth: 0.5, GridColor: Gray,
		HeaderBG: LightGray, HeaderText: Black, AlternatingRowBG: White,
		CellPadding: 2.5, TitleFontSize: 11,
	},
	"OTHER_3": {
		Name: "OTHER_3", FontFamily: "Helvetica", FontSize: 8, HeaderFontSize: 9,
		RowHeight: 12, Grid: AlternatingRows, GridLineWidth: 0.25, GridColor: RGB{221, 221, 221},
		HeaderBG: RGB{49, 130, 206}, HeaderText: White, AlternatingRowBG: RGB{235, 248, 255},
		CellPadding: 2, TitleFontSize: 10, Compact: true,
	},
	"OTHER_4": {
		Name: "OTHER_4", FontFamily: "Times", FontSize: 9, HeaderFontSize: 10,
		RowHeight: 14, Grid: FullGrid, GridLineWidth: 0.5, GridColor: RGB{153, 153, 153},
		HeaderBG: RGB{240, 240, 240}, HeaderText: Black, AlternatingRowBG: White,
		CellPadding: 3, TitleFontSize: 12,
	},
}

// ForVendor returns the style for a vendor system, falling back to
// OTHER_1 for the generic "OTHER" bucket and to AKAM_NEW for anything
// unrecognized.
func ForVendor(name string) VendorStyle {
	if s, ok := vendorStyles[name]; ok {
		return s
	}
	if name == "OTHER" {
		return vendorStyles["OTHER_1"]
	}
	return vendorStyles["AKAM_NEW"]
}

// VendorNames lists the known vendor style names.
func VendorNames() []string {
	names := make([]string, 0, len(vendorStyles))
	for n := range vendorStyles {
		names = append(names, n)
	}
	return names
}

// BoldFont returns the bold variant name for a core font family, in the
// form the PDF canvas expects.
func BoldFont(family string) (name, styleFlag string) {
	return family, "B"
}
