package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileInBounds(t *testing.T) {
	// A box fully inside the page converts cleanly.
	b := DrawingBox(100, 600, 300, 700)
	got, status := Reconcile(b, LetterWidth, LetterHeight)

	assert.Equal(t, StatusOK, status)
	assert.Equal(t, SpaceLabel, got.Space)
	assert.InDelta(t, 100.0, got.X0, 1e-9)
	assert.InDelta(t, 792-700.0, got.Y0, 1e-9) // top
	assert.InDelta(t, 300.0, got.X1, 1e-9)
	assert.InDelta(t, 792-600.0, got.Y1, 1e-9) // bottom
	assert.Greater(t, got.Y1, got.Y0)
}

func TestReconcileClampsNegativeX(t *testing.T) {
	// (-5, 10, 50, 40) on a 612x792 page clamps rather than drops
	// because the surviving area exceeds the minimums.
	b := DrawingBox(-5, 10, 50, 40)
	got, status := Reconcile(b, 612, 792)

	require.Equal(t, StatusClamped, status)
	assert.InDelta(t, 0.0, got.X0, 1e-9)
	assert.InDelta(t, 50.0, got.X1, 1e-9)
	assert.InDelta(t, 792-40.0, got.Y0, 1e-9)
	assert.InDelta(t, 792-10.0, got.Y1, 1e-9)
}

func TestReconcileDropsUndersized(t *testing.T) {
	// 3x2pt violates the 10x5 minimum regardless of page size.
	b := DrawingBox(100, 100, 105, 102)
	_, status := Reconcile(b, 612, 792)
	assert.Equal(t, StatusDropped, status)

	_, status = Reconcile(b, 10000, 10000)
	assert.Equal(t, StatusDropped, status)
}

func TestReconcileDropsOffPage(t *testing.T) {
	// Entirely to the right of the page: clamping collapses the width.
	b := DrawingBox(700, 100, 800, 200)
	_, status := Reconcile(b, 612, 792)
	assert.Equal(t, StatusDropped, status)

	// Entirely below the page.
	b = DrawingBox(100, -50, 200, -10)
	_, status = Reconcile(b, 612, 792)
	assert.Equal(t, StatusDropped, status)
}

func TestReconcileRejectsLabelSpaceInput(t *testing.T) {
	b := LabelBox(10, 10, 100, 100)
	_, status := Reconcile(b, 612, 792)
	assert.Equal(t, StatusDropped, status)
}

func TestRoundTripFlip(t *testing.T) {
	// Converting and inverting returns the original for any box fully
	// inside the page.
	boxes := []BBox{
		DrawingBox(36, 36, 576, 756),
		DrawingBox(100.25, 411.75, 350.5, 500.125),
		DrawingBox(0, 0, 612, 792),
	}
	for _, b := range boxes {
		label, status := Reconcile(b, 612, 792)
		require.NotEqual(t, StatusDropped, status)
		back := ToDrawing(label, 792)
		assert.InDelta(t, b.X0, back.X0, 1e-9)
		assert.InDelta(t, b.Y0, back.Y0, 1e-9)
		assert.InDelta(t, b.X1, back.X1, 1e-9)
		assert.InDelta(t, b.Y1, back.Y1, 1e-9)
	}
}

func TestUnionContainment(t *testing.T) {
	cells := []BBox{
		LabelBox(36, 100, 200, 114),
		LabelBox(200, 100, 400, 114),
		LabelBox(36, 114, 400, 128),
	}
	u, ok := UnionAll(cells)
	require.True(t, ok)
	assert.Equal(t, LabelBox(36, 100, 400, 128), u)
	for _, c := range cells {
		assert.True(t, u.Contains(c))
	}
}

func TestUnionAllSkipsInvalid(t *testing.T) {
	_, ok := UnionAll([]BBox{{}, {}})
	assert.False(t, ok)

	u, ok := UnionAll([]BBox{{}, LabelBox(1, 2, 3, 4)})
	require.True(t, ok)
	assert.Equal(t, LabelBox(1, 2, 3, 4), u)
}

func TestUnionSpaceMismatch(t *testing.T) {
	u := LabelBox(0, 0, 10, 10).Union(DrawingBox(0, 0, 10, 10))
	assert.False(t, u.Valid())
}

func TestPageGeometry(t *testing.T) {
	p := PortraitPage()
	assert.NoError(t, p.Validate())
	assert.Equal(t, 612-72.0, p.ContentWidth())
	assert.Equal(t, 792-72.0, p.ContentHeight())
	assert.Equal(t, 792-36.0, p.ContentStartY())

	l := LandscapePage()
	assert.Equal(t, 792.0, l.Width)
	assert.Equal(t, 612.0, l.Height)

	bad := PageGeometry{Width: 50, Height: 50, MarginLeft: 30, MarginRight: 30}
	assert.Error(t, bad.Validate())
}
