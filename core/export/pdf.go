// Package export - PDF quote sheet
package export

import (
	"github.com/jung-kurt/gofpdf"

	"vo-quote/internal/errors"
)

// WritePDF saves the sheet as a portrait A4 PDF.
func (s *Sheet) WritePDF(path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(190, 10, tr(s.Title))
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.Cell(190, 6, "Generated "+s.GeneratedAt.Format("2006-01-02 15:04 MST"))
	pdf.Ln(12)
	pdf.SetTextColor(0, 0, 0)

	// Header row
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(140, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 8, "Rate", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range s.Items {
		pdf.CellFormat(140, 8, tr(item.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, tr(item.Rate), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(140, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, tr(s.Total.Text()), "1", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(110, 110, 110)
	pdf.MultiCell(190, 4, tr("Ranges reflect published non-union guideline rates. Final fees are negotiated per project."), "", "L", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return errors.Wrap(errors.TypeExport, "writing PDF file", err)
	}
	return nil
}
