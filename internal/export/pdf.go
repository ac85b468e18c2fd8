package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/quizforge/quizforge/internal/domain"
)

// WritePDF renders the aggregate into a printable document: one block per
// question with its options (correct answer emphasized), the answer, and
// the explanation.
func WritePDF(path string, questions []*domain.Question) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Generated Questions"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	for i, q := range questions {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("Q%d: %s", i+1, q.Text)), "", "L", false)
		pdf.Ln(1)

		for j, opt := range q.Options {
			if opt == q.Answer {
				pdf.SetFont("Helvetica", "B", 11)
				pdf.SetTextColor(0, 128, 0)
			} else {
				pdf.SetFont("Helvetica", "", 11)
				pdf.SetTextColor(0, 0, 0)
			}
			pdf.MultiCell(0, 5.5, tr(fmt.Sprintf("   %c. %s", 'A'+j, opt)), "", "L", false)
		}

		if q.Kind != domain.KindMultipleChoice {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetTextColor(0, 128, 0)
			pdf.MultiCell(0, 5.5, tr("Correct Answer: "+q.Answer), "", "L", false)
		}

		if q.Explanation != "" {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(100, 100, 100)
			pdf.MultiCell(0, 5, tr("Explanation: "+q.Explanation), "", "L", false)
		}

		pdf.Ln(5)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF export %s: %w", path, err)
	}
	return nil
}
