package geometry

// Minimum size a label-space box must have to be emitted as ground
// truth. Anything smaller carries no trainable signal and is dropped.
const (
	MinLabelWidth  = 10.0
	MinLabelHeight = 5.0
)

// Status is the outcome of reconciling one bounding box.
type Status string

const (
	// StatusOK means the box survived conversion unchanged.
	StatusOK Status = "OK"
	// StatusClamped means the box was pulled back inside the page
	// bounds but retained enough area to be emitted.
	StatusClamped Status = "CLAMPED"
	// StatusDropped means the box collapsed or fell below the minimum
	// size; it must not appear in ground truth.
	StatusDropped Status = "DROPPED"
)

// Reconcile converts a drawing-space box to label-space for a page of
// the given dimensions, clamping out-of-bounds geometry and dropping
// degenerate boxes.
//
// The pipeline is, in order:
//  1. Clamp to [0,width]x[0,height] in drawing-space; a collapse drops.
//  2. Flip: top = height - y1, bottom = height - y0.
//  3. Re-clamp the converted box as a safety net; a collapse drops.
//  4. Enforce the minimum label size; undersized boxes drop.
//
// The result is CLAMPED when either clamp step changed the box, OK when
// neither did. A box already in label-space, or a zero-area input,
// drops immediately.
func Reconcile(b BBox, pageWidth, pageHeight float64) (BBox, Status) {
	if b.Space != SpaceDrawing {
		return BBox{}, StatusDropped
	}

	clamped, changed := clampBox(b, pageWidth, pageHeight)
	if !clamped.Valid() {
		return BBox{}, StatusDropped
	}

	converted := LabelBox(clamped.X0, pageHeight-clamped.Y1, clamped.X1, pageHeight-clamped.Y0)

	reclamped, changedAgain := clampBox(converted, pageWidth, pageHeight)
	if !reclamped.Valid() {
		return BBox{}, StatusDropped
	}

	if reclamped.Width() < MinLabelWidth || reclamped.Height() < MinLabelHeight {
		return BBox{}, StatusDropped
	}

	if changed || changedAgain {
		return reclamped, StatusClamped
	}
	return reclamped, StatusOK
}

// ToDrawing is the inverse flip, used for round-trip verification. It
// does not clamp; callers own the validity of the input.
func ToDrawing(b BBox, pageHeight float64) BBox {
	if b.Space != SpaceLabel {
		return b
	}
	return DrawingBox(b.X0, pageHeight-b.Y1, b.X1, pageHeight-b.Y0)
}

// clampBox restricts a box to [0,w]x[0,h] in its own space and reports
// whether any edge moved.
func clampBox(b BBox, w, h float64) (BBox, bool) {
	c := b
	c.X0 = clampf(b.X0, 0, w)
	c.X1 = clampf(b.X1, 0, w)
	c.Y0 = clampf(b.Y0, 0, h)
	c.Y1 = clampf(b.Y1, 0, h)
	return c, c != b
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// UnionAll folds a set of boxes into their union, skipping invalid
// entries. The second result is false when no valid box contributed.
func UnionAll(boxes []BBox) (BBox, bool) {
	var acc BBox
	found := false
	for _, b := range boxes {
		if !b.Valid() {
			continue
		}
		if !found {
			acc = b
			found = true
			continue
		}
		acc = acc.Union(b)
	}
	return acc, found
}
