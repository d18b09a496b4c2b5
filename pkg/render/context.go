package render

import (
	"math/rand"

	"github.com/finrender/cirasynth/pkg/geometry"
	"github.com/finrender/cirasynth/pkg/style"
	"github.com/finrender/cirasynth/pkg/template"
)

// RenderContext carries the per-document render settings. It is built
// once per document and threaded through every draw call unchanged;
// the only mutable members are the shared random source and the
// degradation engine wrapping it.
type RenderContext struct {
	DocID       string
	Vendor      string
	Style       style.VendorStyle
	Degrade     *style.Engine
	Page        geometry.PageGeometry
	Orientation geometry.Orientation
	Rng         *rand.Rand
	Choose      *template.Chooser
}

// NewRenderContext assembles a context for one document.
func NewRenderContext(docID, vendor string, level int, page geometry.PageGeometry,
	rng *rand.Rand) RenderContext {

	return RenderContext{
		DocID:       docID,
		Vendor:      vendor,
		Style:       style.ForVendor(vendor),
		Degrade:     style.NewEngine(level, rng),
		Page:        page,
		Orientation: page.Orientation,
		Rng:         rng,
		Choose:      template.NewChooser(rng),
	}
}

// CellPadding is the vendor padding with degradation applied.
func (rc RenderContext) CellPadding() float64 {
	return rc.Degrade.Padding(rc.Style.CellPadding)
}
