package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"healthtracker/internal/domain"
)

const pdfFont = "Arial"

// WritePDF renders an A4 report with a summary table followed by the daily
// breakdown table.
func WritePDF(w io.Writer, r domain.Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Calorie report for user %d", r.UserID), false)
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 16)
	pdf.Cell(0, 10, "Calorie Report")
	pdf.Ln(10)

	pdf.SetFont(pdfFont, "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("User %d, %s to %s",
		r.UserID, domain.FormatDay(r.StartDate), domain.FormatDay(r.EndDate)))
	pdf.Ln(12)

	pdf.SetFont(pdfFont, "B", 13)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(9)

	drawHeader(pdf, []string{"Field", "Value"}, []float64{70, 50})
	pdf.SetFont(pdfFont, "", 10)
	for _, f := range r.Fields() {
		pdf.CellFormat(70, 6, f.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, f.Value, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont(pdfFont, "B", 13)
	pdf.Cell(0, 8, "Daily breakdown")
	pdf.Ln(9)

	if len(r.DailyBreakdown) == 0 {
		pdf.SetFont(pdfFont, "I", 10)
		pdf.Cell(0, 6, "No food entries in this period.")
		pdf.Ln(6)
	} else {
		drawHeader(pdf, []string{"Date", "Calories"}, []float64{40, 40})
		pdf.SetFont(pdfFont, "", 10)
		for _, d := range r.DailyBreakdown {
			pdf.CellFormat(40, 6, domain.FormatDay(d.Date), "1", 0, "C", false, 0, "")
			pdf.CellFormat(40, 6, strconv.FormatInt(d.Calories, 10), "1", 1, "R", false, 0, "")
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to generate PDF: %w", err)
	}
	return nil
}

func drawHeader(pdf *gofpdf.Fpdf, titles []string, widths []float64) {
	pdf.SetFont(pdfFont, "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, title := range titles {
		ln := 0
		if i == len(titles)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 6, title, "1", ln, "C", true, 0, "")
	}
}
