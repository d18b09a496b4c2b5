package labels

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Label file names under <out>/labels/.
const (
	Model1File    = "model1_regions.jsonl"
	Model2File    = "model2_rows.jsonl"
	Model3File    = "model3_tokens.jsonl"
	CellsFile     = "cells.jsonl"
	DocumentsFile = "documents.jsonl"
	GTCellsFile   = "synthetic_gt_cells.jsonl"
	ManifestFile  = "tables_manifest.jsonl"
)

// WriteCounts reports how many records of each kind one append wrote.
type WriteCounts struct {
	Tables    int
	NonTables int
	Rows      int
	Tokens    int
	Cells     int
	GTCells   int
	Manifests int
}

// Writer appends JSONL label records under a fixed output directory.
// Files are opened per append and accumulate across documents; Clear
// resets them for a fresh run.
type Writer struct {
	dir string
}

// NewWriter creates the labels directory under outDir.
func NewWriter(outDir string) (*Writer, error) {
	dir := filepath.Join(outDir, "labels")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create labels dir %s: %w", dir, err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the labels directory path.
func (w *Writer) Dir() string { return w.dir }

// Append writes one document's label records to the JSONL files.
func (w *Writer) Append(doc DocLabels) (WriteCounts, error) {
	var counts WriteCounts

	for _, region := range doc.Regions {
		if region.IsTableRegion {
			counts.Tables++
		} else {
			counts.NonTables++
		}
	}
	counts.Rows = len(doc.Rows)
	counts.Tokens = len(doc.Tokens)
	counts.Cells = len(doc.Cells)
	counts.GTCells = len(doc.GTCells)
	counts.Manifests = len(doc.Manifests)

	if err := appendRecords(filepath.Join(w.dir, Model1File), doc.Regions); err != nil {
		return counts, err
	}
	if err := appendRecords(filepath.Join(w.dir, Model2File), doc.Rows); err != nil {
		return counts, err
	}
	if err := appendRecords(filepath.Join(w.dir, Model3File), doc.Tokens); err != nil {
		return counts, err
	}
	if err := appendRecords(filepath.Join(w.dir, CellsFile), doc.Cells); err != nil {
		return counts, err
	}
	if err := appendRecords(filepath.Join(w.dir, GTCellsFile), doc.GTCells); err != nil {
		return counts, err
	}
	if err := appendRecords(filepath.Join(w.dir, ManifestFile), doc.Manifests); err != nil {
		return counts, err
	}
	return counts, nil
}

// AppendDocument writes one documents.jsonl metadata record.
func (w *Writer) AppendDocument(meta DocumentLabel) error {
	return appendRecords(filepath.Join(w.dir, DocumentsFile), []DocumentLabel{meta})
}

// Clear removes every .jsonl file in the labels directory so a fresh
// run does not accumulate onto stale labels.
func (w *Writer) Clear() error {
	matches, err := filepath.Glob(filepath.Join(w.dir, "*.jsonl"))
	if err != nil {
		return fmt.Errorf("failed to list label files: %w", err)
	}
	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}

// appendRecords opens path in append mode and writes each record as one
// JSON line. A zero-length slice touches nothing.
func appendRecords[T any](path string, records []T) error {
	if len(records) == 0 {
		return nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open label file %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to write label record to %s: %w", path, err)
		}
	}
	return nil
}
