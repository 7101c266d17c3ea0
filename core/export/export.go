// Package export writes quote sheets to files.
// Formats: CSV, JSON and PDF, dispatched on the file extension.
package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vo-quote/core/cart"
	"vo-quote/internal/errors"
)

// Sheet is a point-in-time snapshot of a quote for export.
type Sheet struct {
	Title       string      `json:"title"`
	GeneratedAt time.Time   `json:"generated_at"`
	Items       []cart.Item `json:"items"`
	Total       cart.Total  `json:"total"`
}

// NewSheet snapshots a cart into an exportable sheet.
func NewSheet(c *cart.Cart) *Sheet {
	return &Sheet{
		Title:       "Voice-Over Quote Sheet",
		GeneratedAt: time.Now().UTC(),
		Items:       c.Items(),
		Total:       c.Total(),
	}
}

// Write saves the sheet to path, picking the format from the
// extension (.csv, .json, .pdf).
func (s *Sheet) Write(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return s.WriteCSV(path)
	case ".json":
		return s.WriteJSON(path)
	case ".pdf":
		return s.WritePDF(path)
	default:
		return errors.Newf(errors.TypeExport, "unsupported export format: %s", filepath.Ext(path))
	}
}

// WriteCSV saves the sheet as CSV.
func (s *Sheet) WriteCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.TypeExport, "creating CSV file", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"Description", "Rate", "Low", "High"}); err != nil {
		return errors.Wrap(errors.TypeExport, "writing CSV header", err)
	}
	for _, item := range s.Items {
		row := []string{item.Description, item.Rate, item.Low.String(), item.High.String()}
		if err := w.Write(row); err != nil {
			return errors.Wrap(errors.TypeExport, "writing CSV row", err)
		}
	}
	total := []string{"Total", s.Total.Text(), s.Total.Low.String(), s.Total.High.String()}
	if err := w.Write(total); err != nil {
		return errors.Wrap(errors.TypeExport, "writing CSV total", err)
	}
	return nil
}

// WriteJSON saves the sheet as indented JSON.
func (s *Sheet) WriteJSON(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(errors.TypeExport, "encoding sheet", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.TypeExport, "writing JSON file", err)
	}
	return nil
}
