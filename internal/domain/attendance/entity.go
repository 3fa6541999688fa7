package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusYetToCheckIn Status = "yet-to-checkin"
	StatusCheckIn      Status = "check-in"
	StatusCheckOut     Status = "check-out"
)

// Attendance is the record of one employee on one calendar day. At most one
// exists per (EmployeeID, Date).
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    time.Time
	CheckOut   *time.Time
	TotalHours *float64
	Status     Status
	IsPresent  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsClosed reports whether the day has been checked out.
func (a Attendance) IsClosed() bool {
	return a.CheckOut != nil
}

// NewCheckIn opens the record for day at instant now.
func NewCheckIn(employeeID string, day, now time.Time) Attendance {
	return Attendance{
		EmployeeID: employeeID,
		Date:       day,
		CheckIn:    now,
		Status:     StatusCheckIn,
		IsPresent:  true,
	}
}

var sixty = decimal.NewFromInt(60)

// ComputeTotalHours returns the whole minutes between checkIn and checkOut
// expressed in hours, rounded to two decimals. Never negative.
func ComputeTotalHours(checkIn, checkOut time.Time) float64 {
	minutes := int64(checkOut.Sub(checkIn) / time.Minute)
	if minutes < 0 {
		minutes = 0
	}
	hours, _ := decimal.NewFromInt(minutes).Div(sixty).Round(2).Float64()
	return hours
}

// DayRecord is the attendance view of a single day.
type DayRecord struct {
	Status     Status     `json:"status"`
	CheckIn    *time.Time `json:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	TotalHours *float64   `json:"total_hours,omitempty"`
}

// RecordFor converts a possibly missing record into its day view.
func RecordFor(a *Attendance) DayRecord {
	if a == nil {
		return DayRecord{Status: StatusYetToCheckIn}
	}
	checkIn := a.CheckIn
	return DayRecord{
		Status:     a.Status,
		CheckIn:    &checkIn,
		CheckOut:   a.CheckOut,
		TotalHours: a.TotalHours,
	}
}
