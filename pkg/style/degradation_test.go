package style

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOneIsClean(t *testing.T) {
	e := NewEngine(1, rand.New(rand.NewSource(1)))

	assert.Equal(t, 0.0, e.Params.PositionJitter)
	assert.Equal(t, 1.0, e.Params.GridLineProb)

	for i := 0; i < 200; i++ {
		x, y := e.Jitter(100, 200)
		assert.Equal(t, 100.0, x)
		assert.Equal(t, 200.0, y)
		assert.True(t, e.DrawGridLine())
		assert.False(t, e.Misalign())
		assert.Equal(t, 9.0, e.FontSize(9))
		assert.Equal(t, 14.0, e.RowHeight(14))
		assert.Equal(t, "Con Edison", e.CharSpacing("Con Edison"))
	}
}

func TestLevelFiveBounds(t *testing.T) {
	p := ParamsForLevel(5)
	assert.Equal(t, 5.0, p.PositionJitter)
	assert.Equal(t, 0.50, p.GridLineProb)
	assert.Equal(t, 0.15, p.AlignJitter)

	e := NewEngine(5, rand.New(rand.NewSource(7)))
	for i := 0; i < 500; i++ {
		x, y := e.Jitter(100, 200)
		assert.InDelta(t, 100, x, 5.0)
		assert.InDelta(t, 200, y, 5.0)

		size := e.FontSize(8)
		assert.GreaterOrEqual(t, size, MinFontSize)
		assert.LessOrEqual(t, size, 8*1.25)
	}
}

func TestLevelClamping(t *testing.T) {
	assert.Equal(t, 1, ParamsForLevel(0).Level)
	assert.Equal(t, 1, ParamsForLevel(-3).Level)
	assert.Equal(t, 5, ParamsForLevel(9).Level)
	assert.Equal(t, 3, ParamsForLevel(3).Level)
}

func TestFontSizeFloor(t *testing.T) {
	e := NewEngine(5, rand.New(rand.NewSource(2)))
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, e.FontSize(6), MinFontSize)
	}
}

func TestWrongAlignmentDiffers(t *testing.T) {
	e := NewEngine(4, rand.New(rand.NewSource(3)))
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		a := e.WrongAlignment(AlignRight)
		require.NotEqual(t, AlignRight, a)
		seen[a] = true
	}
	// Both alternatives show up over enough draws.
	assert.True(t, seen[AlignLeft])
	assert.True(t, seen[AlignCenter])
}

func TestCharSpacingInsertsSingleSpace(t *testing.T) {
	e := NewEngine(5, rand.New(rand.NewSource(4)))
	changed := false
	for i := 0; i < 200; i++ {
		out := e.CharSpacing("Maintenance")
		if out != "Maintenance" {
			changed = true
			assert.Equal(t, len("Maintenance")+1, len(out))
		}
	}
	assert.True(t, changed, "level 5 should inject spaces over 200 draws")

	assert.Equal(t, "ab", e.CharSpacing("ab"))
}

func TestForVendorFallbacks(t *testing.T) {
	assert.Equal(t, "AKAM_OLD", ForVendor("AKAM_OLD").Name)
	assert.Equal(t, "OTHER_1", ForVendor("OTHER").Name)
	assert.Equal(t, "AKAM_NEW", ForVendor("NO_SUCH_VENDOR").Name)
}

func TestVendorStyleTable(t *testing.T) {
	require.Len(t, VendorNames(), 14)
	for _, name := range VendorNames() {
		s := ForVendor(name)
		assert.NotEmpty(t, s.FontFamily, name)
		assert.Greater(t, s.RowHeight, 0.0, name)
		assert.Greater(t, s.FontSize, 0.0, name)
	}
}
