package attendance

import (
	"bytes"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/attendance"
	"github.com/jung-kurt/gofpdf"
)

var columnWidths = []float64{30, 30, 45, 45, 30}

func renderMonthlyPDF(report attendance.MonthlyAttendanceResponse, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Attendance %s %s", report.Employee.EmployeeCode, report.Month), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Monthly Attendance Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", report.Employee.Username, report.Employee.EmployeeCode))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", report.Month))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Working days: %d   Present days: %d   Total hours: %.2f",
		report.Summary.WorkingDays, report.Summary.PresentDays, report.Summary.TotalHours))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	for i, title := range []string{"Date", "Status", "Check in", "Check out", "Hours"} {
		pdf.CellFormat(columnWidths[i], 8, title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range report.Records {
		checkOut, hours := "-", "-"
		if r.CheckOut != nil {
			checkOut = r.CheckOut.Format("15:04:05")
		}
		if r.TotalHours != nil {
			hours = fmt.Sprintf("%.2f", *r.TotalHours)
		}
		row := []string{r.Date, string(r.Status), r.CheckIn.Format("15:04:05"), checkOut, hours}
		for i, cell := range row {
			pdf.CellFormat(columnWidths[i], 7, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 6, "Generated at "+generatedAt.Format(time.RFC3339))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render attendance pdf: %w", err)
	}
	return buf.Bytes(), nil
}
