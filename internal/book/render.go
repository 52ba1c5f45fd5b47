package book

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

func newPDF(generatedAt time.Time) *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: PageWidth, Ht: PageHeight},
	})
	// The layout stage owns pagination; automatic breaks would fight it.
	pdf.SetAutoPageBreak(false, 0)
	if !generatedAt.IsZero() {
		// Pin the metadata clock so identical input produces identical bytes.
		pdf.SetCreationDate(generatedAt.UTC())
		pdf.SetModificationDate(generatedAt.UTC())
	}
	return pdf
}

// pdfMeasurer measures strings with the renderer's own font metrics, so
// layout wraps text exactly where the PDF will.
type pdfMeasurer struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
}

func (m *pdfMeasurer) TextWidth(f Font, s string) float64 {
	m.pdf.SetFont(f.Family, f.Style, f.Size)
	return m.pdf.GetStringWidth(m.translate(s))
}

// NewMeasurer returns a Measurer backed by the built-in PDF font metrics.
func NewMeasurer() Measurer {
	pdf := newPDF(time.Time{})
	return &pdfMeasurer{pdf: pdf, translate: pdf.UnicodeTranslatorFromDescriptor("")}
}

// Render serializes a laid-out document to PDF bytes. generatedAt stamps the
// document metadata; pass a fixed instant for reproducible output.
func Render(doc *Document, generatedAt time.Time) ([]byte, error) {
	pdf := newPDF(generatedAt)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, el := range page.Elements {
			switch e := el.(type) {
			case Text:
				pdf.SetFont(e.Font.Family, e.Font.Style, e.Font.Size)
				pdf.SetTextColor(e.Color.R, e.Color.G, e.Color.B)
				value := tr(e.Value)
				x := e.X
				if e.Centered {
					x -= pdf.GetStringWidth(value) / 2
				}
				pdf.Text(x, e.Y, value)
			case Line:
				pdf.SetDrawColor(e.Color.R, e.Color.G, e.Color.B)
				pdf.SetLineWidth(e.Width)
				pdf.Line(e.X1, e.Y1, e.X2, e.Y2)
			case Rect:
				pdf.SetFillColor(e.Color.R, e.Color.G, e.Color.B)
				pdf.Rect(e.X, e.Y, e.W, e.H, "F")
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering book: %w", err)
	}
	return buf.Bytes(), nil
}

// Generate lays out and renders the book for one month, returning the PDF
// bytes and the suggested download file name.
func Generate(userName, monthKey string, entries []Entry, generatedAt time.Time) ([]byte, string, error) {
	doc := Layout(NewMeasurer(), userName, monthKey, entries)
	data, err := Render(doc, generatedAt)
	if err != nil {
		return nil, "", err
	}
	return data, FileName(userName, monthKey), nil
}
