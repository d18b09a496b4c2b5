package geometry

// Space identifies the coordinate convention a box is expressed in.
type Space string

const (
	// SpaceDrawing is bottom-left origin, y increasing upward.
	// A box is (x0, y0, x1, y1) with y1 the top edge and y0 the bottom.
	SpaceDrawing Space = "drawing"
	// SpaceLabel is top-left origin, y increasing downward.
	// A box is (left, top, right, bottom) with top < bottom.
	SpaceLabel Space = "label"
)

// BBox is a rectangle tagged with its coordinate space.
//
// In SpaceDrawing, Y0 is the bottom edge and Y1 the top (Y1 > Y0).
// In SpaceLabel, Y0 is the top edge and Y1 the bottom (Y1 > Y0).
// Either way a valid box satisfies X1 > X0 and Y1 > Y0.
type BBox struct {
	X0, Y0, X1, Y1 float64
	Space          Space
}

// DrawingBox constructs a drawing-space box from bottom-left and
// top-right corners.
func DrawingBox(x0, y0, x1, y1 float64) BBox {
	return BBox{X0: x0, Y0: y0, X1: x1, Y1: y1, Space: SpaceDrawing}
}

// LabelBox constructs a label-space box from (left, top, right, bottom).
func LabelBox(x0, top, x1, bottom float64) BBox {
	return BBox{X0: x0, Y0: top, X1: x1, Y1: bottom, Space: SpaceLabel}
}

// Width of the box.
func (b BBox) Width() float64 { return b.X1 - b.X0 }

// Height of the box.
func (b BBox) Height() float64 { return b.Y1 - b.Y0 }

// Valid reports whether the box has positive area.
func (b BBox) Valid() bool { return b.X1 > b.X0 && b.Y1 > b.Y0 }

// Coords returns the box as the 4-float slice written to label files.
func (b BBox) Coords() []float64 { return []float64{b.X0, b.Y0, b.X1, b.Y1} }

// Union returns the smallest box containing both operands. Both boxes
// must share a coordinate space; a mismatch returns the zero box, which
// is never valid.
func (b BBox) Union(o BBox) BBox {
	if b.Space != o.Space {
		return BBox{}
	}
	return BBox{
		X0:    minf(b.X0, o.X0),
		Y0:    minf(b.Y0, o.Y0),
		X1:    maxf(b.X1, o.X1),
		Y1:    maxf(b.Y1, o.Y1),
		Space: b.Space,
	}
}

// Contains reports whether o lies fully inside b. Boxes in different
// spaces never contain one another.
func (b BBox) Contains(o BBox) bool {
	if b.Space != o.Space {
		return false
	}
	return o.X0 >= b.X0 && o.Y0 >= b.Y0 && o.X1 <= b.X1 && o.Y1 <= b.Y1
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
