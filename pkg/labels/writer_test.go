package labels

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finrender/cirasynth/pkg/geometry"
	"github.com/finrender/cirasynth/pkg/render"
)

func countLines(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return 0
	}
	require.NoError(t, err)
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		n++
	}
	require.NoError(t, scanner.Err())
	return n
}

func sampleDocLabels(t *testing.T) DocLabels {
	t.Helper()
	page := geometry.PortraitPage()
	table := makeTable([]render.RenderedRow{
		makeRow(0, 700, 716, []string{"Date", "Amount"}),
		makeRow(1, 686, 700, []string{"03/01/25", "1,250.00"}),
	})
	out, _ := Project([]render.RenderedTable{table}, nil, page, "run1")
	return out
}

func TestWriterAppendAccumulates(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	doc := sampleDocLabels(t)
	counts, err := w.Append(doc)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Tables)
	assert.Equal(t, len(doc.Rows), counts.Rows)
	assert.Equal(t, len(doc.Cells), counts.Cells)

	first := countLines(t, filepath.Join(w.Dir(), Model1File))
	assert.Equal(t, 1, first)

	_, err = w.Append(doc)
	require.NoError(t, err)
	assert.Equal(t, 2*first, countLines(t, filepath.Join(w.Dir(), Model1File)))
	assert.Equal(t, 2*len(doc.Rows), countLines(t, filepath.Join(w.Dir(), Model2File)))
	assert.Equal(t, 2*len(doc.Cells), countLines(t, filepath.Join(w.Dir(), CellsFile)))
	assert.Equal(t, 2*len(doc.GTCells), countLines(t, filepath.Join(w.Dir(), GTCellsFile)))
}

func TestWriterRecordsAreValidJSON(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	_, err = w.Append(sampleDocLabels(t))
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(w.Dir(), Model1File))
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		assert.Contains(t, rec, "bbox")
		assert.Contains(t, rec, "doc_id")
		bbox, ok := rec["bbox"].([]any)
		require.True(t, ok)
		assert.Len(t, bbox, 4)
	}
	require.NoError(t, scanner.Err())
}

func TestWriterAppendDocument(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	meta := DocumentLabel{
		DocID:             "doc1",
		VendorSystem:      "AKAM_NEW",
		PropertyType:      "CONDO",
		FiscalPeriodStart: "2025-03-01",
		FiscalPeriodEnd:   "2025-03-31",
		GLMask:            "NNNN",
		DegradationLevel:  2,
		PDFPath:           "pdfs/doc1_L2_HORI_P.pdf",
		RunID:             "run1",
	}
	require.NoError(t, w.AppendDocument(meta))
	require.NoError(t, w.AppendDocument(meta))
	assert.Equal(t, 2, countLines(t, filepath.Join(w.Dir(), DocumentsFile)))
}

func TestWriterClearRemovesLabelFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	_, err = w.Append(sampleDocLabels(t))
	require.NoError(t, err)
	require.NoError(t, w.AppendDocument(DocumentLabel{DocID: "doc1"}))

	require.NoError(t, w.Clear())

	matches, err := filepath.Glob(filepath.Join(w.Dir(), "*.jsonl"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
