package attendance

import (
	"context"
	"time"
)

// AttendanceService defines the attendance ledger
type AttendanceService interface {
	// Toggle checks the employee in, or out, for today
	Toggle(ctx context.Context, employeeID string) (ToggleResponse, error)

	// StatusForDay returns the attendance view of one employee on day
	StatusForDay(ctx context.Context, employeeID string, day time.Time) (DayRecord, error)

	// StatusForRange returns the records of day keyed by employee id
	StatusForRange(ctx context.Context, employeeIDs []string, day time.Time) (map[string]Attendance, error)

	// Monthly lists an employee's records in a month with a summary
	Monthly(ctx context.Context, req MonthlyAttendanceRequest) (MonthlyAttendanceResponse, error)

	// ExportMonthlyPDF renders the monthly report as a PDF document
	ExportMonthlyPDF(ctx context.Context, req MonthlyAttendanceRequest) ([]byte, error)
}
