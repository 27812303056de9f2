package export

import (
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"triage/internal/store"
)

// PDF renders the sections as a single-column A4 document.
type PDF struct{}

// Render implements Renderer.
func (PDF) Render(title string, sections []store.Section) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, title)
	pdf.Ln(12)
	for _, sec := range sections {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(40, 8, sec.Tier.String())
		pdf.Ln(9)
		pdf.SetFont("Arial", "", 10)
		for _, label := range sec.Labels {
			pdf.MultiCell(0, 6, label, "0", "L", false)
		}
		pdf.Ln(3)
	}
	var buf strings.Builder
	if err := pdf.Output(io.Writer(&buf)); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}
