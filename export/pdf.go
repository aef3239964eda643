package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/atenea/rumbo/core"
)

// maxDescriptionRunes truncates long course descriptions in the PDF.
const maxDescriptionRunes = 400

// BuildPathPDF renders the recommended path as a Letter-sized PDF: the
// title, the one-line profile summary, and the numbered course list with
// level, duration, portal, category, URL, and a truncated description.
func BuildPathPDF(title, profileSummary string, candidates []core.Candidate) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle(title, true)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()

	// cp1252 covers the Spanish accents in the catalog text.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 7, tr(title), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.MultiCell(0, 6, tr("Perfil resumido:"), "", "L", false)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, tr(profileSummary), "", "L", false)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.MultiCell(0, 6, tr("Ruta recomendada:"), "", "L", false)

	for i, c := range candidates {
		course := c.Course

		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s", i+1, orPlaceholder(course.Title))), "", "L", false)

		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("   Nivel: %s  ·  Duración: %s", course.Level, course.Duration)), "", "L", false)
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("   Portal: %s  ·  Categoría: %s", course.Portal, course.Sheet)), "", "L", false)

		if url := strings.TrimSpace(course.URL); url != "" {
			pdf.MultiCell(0, 5, tr("   URL: "+url), "", "L", false)
		}
		if desc := strings.TrimSpace(course.Description); desc != "" {
			pdf.MultiCell(0, 5, tr("   Desc: "+truncate(desc, maxDescriptionRunes)), "", "L", false)
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orPlaceholder(title string) string {
	if title == "" {
		return "(sin nombre)"
	}
	return title
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
