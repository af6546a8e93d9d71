package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/simonbystrom/planner/internal/report"
)

// PDFDocument lays a report out on A4 pages using the core Arial font.
type PDFDocument struct {
	// ImageWidth is the width of the embedded timeline image in millimetres.
	ImageWidth float64
}

func NewPDFDocument() PDFDocument {
	return PDFDocument{ImageWidth: 180}
}

func (p PDFDocument) RenderDocument(doc report.Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	// Core fonts are cp1252; translate so names with accents survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	line := func(s string) {
		pdf.CellFormat(190, 10, tr(s), "", 1, "", false, 0, "")
	}
	para := func(s string) {
		pdf.MultiCell(0, 10, tr(s), "", "", false)
	}

	for i, s := range doc.Sections {
		switch s.Kind {
		case report.SectionTitle:
			pdf.CellFormat(190, 10, tr(s.Heading), "", 1, "C", false, 0, "")
			for _, l := range s.Lines {
				pdf.CellFormat(190, 8, tr(l), "", 1, "C", false, 0, "")
			}
			pdf.Ln(10)

		case report.SectionScope:
			for _, blk := range s.Blocks {
				line(blk.Heading)
				if blk.Text != "" {
					para(blk.Text)
				}
				for _, item := range blk.Bullets {
					para("* " + item)
				}
				pdf.Ln(5)
			}

		case report.SectionTasks:
			pdf.SetFont("Arial", "", 12)
			line(s.Heading)
			for _, l := range s.Lines {
				para(l)
			}

		case report.SectionTimeline:
			pdf.Ln(5)
			pdf.SetFont("Arial", "B", 16)
			line(s.Heading)
			pdf.Ln(5)
			if len(s.Image) == 0 {
				continue
			}
			name := fmt.Sprintf("timeline-%d", i)
			opts := fpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(s.Image))
			pdf.ImageOptions(name, 10, pdf.GetY(), p.ImageWidth, 0, true, opts, 0, "")
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("layout report: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}
