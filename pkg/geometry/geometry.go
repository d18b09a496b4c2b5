// Package geometry defines the two coordinate systems used by the
// generator and the reconciliation pipeline between them.
//
// All drawing happens in drawing-space: origin at the bottom-left of the
// page, y increasing upward, matching the native PDF convention. Ground
// truth is emitted in label-space: origin at the top-left, y increasing
// downward, with boxes expressed as (left, top, right, bottom) and
// top < bottom, matching downstream table-extraction tooling.
//
// Every box carries its coordinate space as a tag so the two conventions
// cannot be mixed up silently. Reconcile is the single authority for the
// drawing-to-label translation and for geometric sanity: it clamps boxes
// to the page, drops degenerate geometry, and reports whether the input
// survived unchanged.
package geometry

import "fmt"

// Letter page dimensions in points.
const (
	LetterWidth  = 612.0
	LetterHeight = 792.0
)

// DefaultMargin is the page margin on all four sides (0.5 inch).
const DefaultMargin = 36.0

// Orientation of a page.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Abbrev returns the single-letter orientation flag used in PDF filenames.
func (o Orientation) Abbrev() string {
	if o == Landscape {
		return "L"
	}
	return "P"
}

// PageGeometry describes the physical page and its margins.
// The content area is the page minus margins and is always positive.
type PageGeometry struct {
	Width        float64
	Height       float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
	Orientation  Orientation
}

// PortraitPage returns a letter-size portrait page with default margins.
func PortraitPage() PageGeometry {
	return PageGeometry{
		Width:        LetterWidth,
		Height:       LetterHeight,
		MarginLeft:   DefaultMargin,
		MarginRight:  DefaultMargin,
		MarginTop:    DefaultMargin,
		MarginBottom: DefaultMargin,
		Orientation:  Portrait,
	}
}

// LandscapePage returns a letter-size landscape page with default margins.
func LandscapePage() PageGeometry {
	return PageGeometry{
		Width:        LetterHeight,
		Height:       LetterWidth,
		MarginLeft:   DefaultMargin,
		MarginRight:  DefaultMargin,
		MarginTop:    DefaultMargin,
		MarginBottom: DefaultMargin,
		Orientation:  Landscape,
	}
}

// PageFor returns the page geometry for an orientation.
func PageFor(o Orientation) PageGeometry {
	if o == Landscape {
		return LandscapePage()
	}
	return PortraitPage()
}

// ContentWidth is the usable horizontal extent inside the margins.
func (p PageGeometry) ContentWidth() float64 {
	return p.Width - p.MarginLeft - p.MarginRight
}

// ContentHeight is the usable vertical extent inside the margins.
func (p PageGeometry) ContentHeight() float64 {
	return p.Height - p.MarginTop - p.MarginBottom
}

// ContentStartX is the left edge of the content area.
func (p PageGeometry) ContentStartX() float64 {
	return p.MarginLeft
}

// ContentStartY is the top of the content area in drawing-space
// coordinates (y measured up from the bottom of the page).
func (p PageGeometry) ContentStartY() float64 {
	return p.Height - p.MarginTop
}

// Validate checks that the content area is positive.
func (p PageGeometry) Validate() error {
	if p.ContentWidth() <= 0 || p.ContentHeight() <= 0 {
		return fmt.Errorf("page %gx%g with margins leaves no content area", p.Width, p.Height)
	}
	return nil
}
