package style

import (
	"math/rand"
	"strings"
)

// Alignment values shared with the table templates. Misalignment picks
// one of the two alignments that differ from the original.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// MinFontSize is the floor applied after font-size perturbation.
const MinFontSize = 6.0

// DegradationParams is the immutable perturbation table row for one
// degradation level.
type DegradationParams struct {
	Level          int
	Name           string
	PositionJitter float64 // max offset in points, each axis
	FontSizeMin    float64 // multiplier range
	FontSizeMax    float64
	GridLineProb   float64 // probability a non-mandatory rule is drawn
	RowHeightMin   float64
	RowHeightMax   float64
	PaddingMin     float64
	PaddingMax     float64
	ColWidthVar    float64 // relative width variation
	AlignJitter    float64 // probability of wrong alignment
	CharSpacingVar float64 // drives extra-space injection
}

// degradationLevels is the fixed five-level table, clean to extreme.
var degradationLevels = [6]DegradationParams{
	{}, // unused; levels are 1-based
	{Level: 1, Name: "Clean", FontSizeMin: 1, FontSizeMax: 1, GridLineProb: 1,
		RowHeightMin: 1, RowHeightMax: 1, PaddingMin: 1, PaddingMax: 1},
	{Level: 2, Name: "Mild", PositionJitter: 1, FontSizeMin: 0.95, FontSizeMax: 1.05,
		GridLineProb: 0.95, RowHeightMin: 0.95, RowHeightMax: 1.05,
		PaddingMin: 0.9, PaddingMax: 1.1, ColWidthVar: 0.03, AlignJitter: 0.02, CharSpacingVar: 0.01},
	{Level: 3, Name: "Moderate", PositionJitter: 2, FontSizeMin: 0.90, FontSizeMax: 1.10,
		GridLineProb: 0.85, RowHeightMin: 0.90, RowHeightMax: 1.10,
		PaddingMin: 0.8, PaddingMax: 1.2, ColWidthVar: 0.08, AlignJitter: 0.05, CharSpacingVar: 0.02},
	{Level: 4, Name: "Heavy", PositionJitter: 3.5, FontSizeMin: 0.85, FontSizeMax: 1.15,
		GridLineProb: 0.70, RowHeightMin: 0.85, RowHeightMax: 1.20,
		PaddingMin: 0.6, PaddingMax: 1.4, ColWidthVar: 0.12, AlignJitter: 0.10, CharSpacingVar: 0.03},
	{Level: 5, Name: "Extreme", PositionJitter: 5, FontSizeMin: 0.80, FontSizeMax: 1.25,
		GridLineProb: 0.50, RowHeightMin: 0.75, RowHeightMax: 1.30,
		PaddingMin: 0.4, PaddingMax: 1.6, ColWidthVar: 0.18, AlignJitter: 0.15, CharSpacingVar: 0.05},
}

// ParamsForLevel returns the perturbation table row for a level,
// clamping out-of-range levels to [1,5] rather than rejecting them.
func ParamsForLevel(level int) DegradationParams {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	return degradationLevels[level]
}

// Engine applies degradation effects during rendering. It holds the
// selected level's params plus the document random source and lives for
// one document.
type Engine struct {
	Params DegradationParams
	rng    *rand.Rand
}

// NewEngine builds a degradation engine for a level (clamped to [1,5]).
func NewEngine(level int, rng *rand.Rand) *Engine {
	return &Engine{Params: ParamsForLevel(level), rng: rng}
}

// Jitter offsets a point by up to PositionJitter in each axis. Level 1
// is a no-op that consumes no randomness.
func (e *Engine) Jitter(x, y float64) (float64, float64) {
	j := e.Params.PositionJitter
	if j == 0 {
		return x, y
	}
	return x + uniform(e.rng, -j, j), y + uniform(e.rng, -j, j)
}

// FontSize scales a base size by the level's multiplier range, floored
// at MinFontSize.
func (e *Engine) FontSize(base float64) float64 {
	size := base * uniform(e.rng, e.Params.FontSizeMin, e.Params.FontSizeMax)
	if size < MinFontSize {
		return MinFontSize
	}
	return size
}

// DrawGridLine decides whether a non-mandatory grid line is drawn.
func (e *Engine) DrawGridLine() bool {
	return e.rng.Float64() < e.Params.GridLineProb
}

// RowHeight scales a base row height.
func (e *Engine) RowHeight(base float64) float64 {
	return base * uniform(e.rng, e.Params.RowHeightMin, e.Params.RowHeightMax)
}

// Padding scales a base cell padding, with a 1pt floor.
func (e *Engine) Padding(base float64) float64 {
	p := base * uniform(e.rng, e.Params.PaddingMin, e.Params.PaddingMax)
	if p < 1 {
		return 1
	}
	return p
}

// ColumnWidth scales a base column width by the level's variation.
func (e *Engine) ColumnWidth(base float64) float64 {
	v := e.Params.ColWidthVar
	if v == 0 {
		return base
	}
	return base * (1 + uniform(e.rng, -v, v))
}

// Misalign decides whether a cell's alignment is intentionally wrong.
func (e *Engine) Misalign() bool {
	return e.rng.Float64() < e.Params.AlignJitter
}

// WrongAlignment returns one of the two alignments that differ from the
// original, chosen uniformly.
func (e *Engine) WrongAlignment(original string) string {
	options := make([]string, 0, 2)
	for _, a := range []string{AlignLeft, AlignCenter, AlignRight} {
		if a != original {
			options = append(options, a)
		}
	}
	return options[e.rng.Intn(len(options))]
}

// CharSpacing occasionally injects an extra space into text to simulate
// character-spacing drift. Short strings pass through untouched.
func (e *Engine) CharSpacing(text string) string {
	if e.Params.CharSpacingVar == 0 || len(text) < 3 {
		return text
	}
	if e.rng.Float64() < e.Params.CharSpacingVar*5 {
		pos := 1 + e.rng.Intn(len(text)-1)
		var b strings.Builder
		b.WriteString(text[:pos])
		b.WriteByte(' ')
		b.WriteString(text[pos:])
		return b.String()
	}
	return text
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if lo == hi {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
