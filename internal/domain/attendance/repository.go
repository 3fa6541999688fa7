package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. A second record for the same employee and
	// day fails with ErrDuplicateAttendance.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns nil when the employee has no record for day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*Attendance, error)

	// CloseDay sets the check-out of an open record. A record that is already
	// closed is left untouched and ErrDayClosed is returned.
	CloseDay(ctx context.Context, id string, checkOut time.Time, totalHours float64) (Attendance, error)

	// ListByDate returns the records of day for the given employees.
	ListByDate(ctx context.Context, day time.Time, employeeIDs []string) ([]Attendance, error)

	// ListByEmployeeBetween returns an employee's records in [from, to] ordered by date.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
}
