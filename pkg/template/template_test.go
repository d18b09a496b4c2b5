package template

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTypes = []TableType{CashOut, CashIn, Budget, Unpaid, Aging, GL}

var allVendors = []string{
	"AKAM_OLD", "AKAM_NEW", "DOUGLAS", "FIRSTSERVICE", "LINDENWOOD",
	"YARDI", "APPFOLIO", "BUILDIUM", "MDS", "CINC",
	"OTHER_1", "OTHER_2", "OTHER_3", "OTHER_4", "COOP",
}

func TestRatioInvariantAcrossAllTemplates(t *testing.T) {
	for _, tt := range allTypes {
		for _, v := range allVendors {
			tpl, err := Get(tt, v)
			require.NoError(t, err, "%s/%s", tt, v)

			var sum float64
			for _, c := range tpl.Columns {
				sum += c.WidthRatio
			}
			assert.InDelta(t, 1.0, sum, 0.02, "%s/%s", tt, v)
			assert.NotEmpty(t, tpl.TitleOptions, "%s/%s", tt, v)
			assert.Greater(t, tpl.RowHeight, 0.0, "%s/%s", tt, v)
			assert.Greater(t, tpl.RowCountMax, tpl.RowCountMin, "%s/%s", tt, v)
		}
	}
}

func TestBadRatioFailsConstruction(t *testing.T) {
	_, err := validate(&TableTemplate{
		VendorSystem: "X",
		Type:         CashOut,
		Columns: []ColumnSpec{
			{"A", SemDate, 0.5, AlignLeft},
			{"B", SemAmount, 0.3, AlignRight},
		},
	})
	require.Error(t, err)

	_, err = validate(&TableTemplate{VendorSystem: "X", Type: CashOut})
	require.Error(t, err)
}

func TestUnknownTypeFallsBackToCashOut(t *testing.T) {
	tpl, err := Get(TableType("MYSTERY"), "YARDI")
	require.NoError(t, err)
	assert.Equal(t, CashOut, tpl.Type)
}

func TestHeaderSynonymsStayInPool(t *testing.T) {
	tpl, err := Get(CashOut, "AKAM_NEW")
	require.NoError(t, err)

	c := NewChooser(rand.New(rand.NewSource(11)))
	for i := 0; i < 50; i++ {
		headers := c.Headers(tpl)
		require.Len(t, headers, tpl.NCols())
		for _, h := range headers {
			assert.NotEmpty(t, h)
		}
	}
}

func TestSynonymDrawsVary(t *testing.T) {
	tpl, err := Get(CashOut, "AKAM_NEW")
	require.NoError(t, err)

	c := NewChooser(rand.New(rand.NewSource(3)))
	seen := map[string]bool{}
	for i := 0; i < 40; i++ {
		seen[c.Headers(tpl)[9]] = true // canonical "Amount"
	}
	assert.Greater(t, len(seen), 1, "amount header should draw multiple synonyms")
	for h := range seen {
		assert.Contains(t, amountSynonyms, h)
	}
}

func TestSubtotalKeywordVocabulary(t *testing.T) {
	c := NewChooser(rand.New(rand.NewSource(5)))
	for i := 0; i < 100; i++ {
		assert.Contains(t, SubtotalKeywords, c.SubtotalKeyword())
	}
}

func TestSuperHeadersCoverAllColumns(t *testing.T) {
	tpl, err := Get(CashOut, "AKAM_NEW")
	require.NoError(t, err)

	groups := SuperHeaders(tpl)
	require.NotEmpty(t, groups)
	assert.Equal(t, 0, groups[0].StartCol)
	assert.Equal(t, tpl.NCols()-1, groups[len(groups)-1].EndCol)
	for i := 1; i < len(groups); i++ {
		assert.Equal(t, groups[i-1].EndCol+1, groups[i].StartCol)
	}
}

func TestSuperHeadersSkipNarrowTemplates(t *testing.T) {
	tpl := &TableTemplate{Columns: []ColumnSpec{
		{"A", SemDate, 0.5, AlignLeft},
		{"B", SemAmount, 0.5, AlignRight},
	}}
	assert.Nil(t, SuperHeaders(tpl))
}

func TestLayoutAbbrev(t *testing.T) {
	assert.Equal(t, "HORI", HorizontalLedger.Abbrev())
	assert.Equal(t, "SPLI", SplitLedger.Abbrev())
	assert.Equal(t, "VERT", VerticalKV.Abbrev())
	assert.Equal(t, "MATR", Matrix.Abbrev())
	assert.Equal(t, "RAGG", Ragged.Abbrev())
}

func TestRowLabelEligibility(t *testing.T) {
	assert.True(t, HorizontalLedger.EligibleForRowLabels())
	assert.True(t, SplitLedger.EligibleForRowLabels())
	assert.False(t, VerticalKV.EligibleForRowLabels())
	assert.False(t, Matrix.EligibleForRowLabels())
	assert.False(t, Ragged.EligibleForRowLabels())
}
