package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"sint-message-service/internal/letter"
)

// PDFService renders a formatted letter as a printable parchment page
type PDFService struct{}

// NewPDFService creates a new PDF service
func NewPDFService() *PDFService {
	return &PDFService{}
}

// GenerateLetterPDF renders the letter as a single A4 page
func (s *PDFService) GenerateLetterPDF(formatted *letter.FormattedLetter) ([]byte, error) {
	if formatted == nil || (formatted.Salutation == "" && len(formatted.Paragraphs) == 0) {
		return nil, fmt.Errorf("invalid letter data")
	}

	// Create PDF document (A4, portrait)
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 30, 25)
	pdf.SetAutoPageBreak(true, 30)

	// Latin-1 translator for Dutch accented characters (é, ë)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	// Parchment background
	pdf.SetFillColor(247, 240, 225) // Cream
	pdf.Rect(0, 0, 210, 297, "F")

	// Date, top right
	pdf.SetFont("Times", "I", 11)
	pdf.SetTextColor(92, 64, 51) // Warm brown
	pdf.CellFormat(0, 8, tr(letter.DutchDate(time.Now())), "", 1, "R", false, 0, "")
	pdf.Ln(10)

	// Salutation
	if formatted.Salutation != "" {
		pdf.SetFont("Times", "B", 16)
		pdf.SetTextColor(139, 0, 0) // Dark red
		pdf.CellFormat(0, 10, tr(formatted.Salutation), "", 1, "L", false, 0, "")
		pdf.Ln(6)
	}

	// Body paragraphs
	pdf.SetFont("Times", "", 12)
	pdf.SetTextColor(60, 42, 33)
	for _, paragraph := range formatted.Paragraphs {
		pdf.MultiCell(0, 7, tr(paragraph), "", "L", false)
		pdf.Ln(5)
	}

	// Closing block
	pdf.Ln(6)
	pdf.SetFont("Times", "I", 12)
	pdf.CellFormat(0, 7, tr(letter.ClosingLine+","), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr(letter.SignatureLine+","), "", 1, "L", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Times", "BI", 20)
	pdf.SetTextColor(139, 0, 0) // Dark red signature
	pdf.CellFormat(0, 12, tr(letter.SignatureName), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return buf.Bytes(), nil
}
