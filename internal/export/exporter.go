// Package export serializes the merged dataset into its output artifacts.
// Pure serialization: no merge or normalization logic lives here.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"carcrawl/internal/models"
)

// Writer persists a merged dataset to one artifact.
type Writer interface {
	Write(dataset models.MergedDataset) error
}

// JSONWriter writes the canonical merged-dataset JSON object. CanonicalListing
// field declaration order fixes the key order inside each listing object.
type JSONWriter struct {
	Path string
}

// Write serializes the dataset, pretty-printed, creating parent
// directories as needed.
func (w *JSONWriter) Write(dataset models.MergedDataset) error {
	data, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}

	return writeFile(w.Path, append(data, '\n'))
}

// NDJSONWriter writes one listing object per line, for consumers that
// stream records.
type NDJSONWriter struct {
	Path string
}

// Write serializes each listing onto its own line.
func (w *NDJSONWriter) Write(dataset models.MergedDataset) error {
	var buf []byte

	for _, rec := range dataset.Listings {
		line, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal listing: %w", err)
		}

		buf = append(buf, line...)
		buf = append(buf, '\n')
	}

	return writeFile(w.Path, buf)
}

// csvHeader mirrors the canonical listing field order. Extra is flattened
// to a JSON blob in the last column.
var csvHeader = []string{
	"title", "price", "mileage_km", "year", "model",
	"province_city", "link", "source", "extra",
}

// CSVWriter writes the dataset as a flat table for spreadsheet or
// training-script consumption.
type CSVWriter struct {
	Path string
}

// Write renders one row per listing. Null fields become empty cells.
func (w *CSVWriter) Write(dataset models.MergedDataset) error {
	if err := os.MkdirAll(parentDir(w.Path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(w.Path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range dataset.Listings {
		row := []string{
			strOrEmpty(rec.Title),
			intOrEmpty(rec.Price),
			intOrEmpty(rec.MileageKM),
			intOrEmpty(rec.Year),
			strOrEmpty(rec.Model),
			strOrEmpty(rec.ProvinceCity),
			strOrEmpty(rec.Link),
			rec.Source,
			extraJSON(rec.Extra),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteSourceResult writes a per-spider result file, creating parent
// directories as needed. Indentation is optional for result files that
// only machines read.
func WriteSourceResult(path string, result models.SpiderResult, pretty bool) error {
	var (
		data []byte
		err  error
	)

	if pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	return writeFile(path, append(data, '\n'))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(parentDir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func parentDir(path string) string {
	dir := filepath.Dir(path)
	if dir == "" {
		return "."
	}

	return dir
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func intOrEmpty(n *int) string {
	if n == nil {
		return ""
	}

	return strconv.Itoa(*n)
}

func extraJSON(extra map[string]any) string {
	if len(extra) == 0 {
		return ""
	}

	data, err := json.Marshal(extra)
	if err != nil {
		return ""
	}

	return string(data)
}
