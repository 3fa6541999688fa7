package attendance

import (
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ToggleAction string

const (
	ActionCheckedIn     ToggleAction = "checked-in"
	ActionCheckedOut    ToggleAction = "checked-out"
	ActionAlreadyClosed ToggleAction = "already-closed"
)

type ToggleResponse struct {
	Action     ToggleAction `json:"action"`
	Status     Status       `json:"status"`
	Date       string       `json:"date"`
	CheckIn    *time.Time   `json:"check_in,omitempty"`
	CheckOut   *time.Time   `json:"check_out,omitempty"`
	TotalHours *float64     `json:"total_hours,omitempty"`
}

func NewToggleResponse(action ToggleAction, a Attendance) ToggleResponse {
	checkIn := a.CheckIn
	return ToggleResponse{
		Action:     action,
		Status:     a.Status,
		Date:       a.Date.Format(clock.DateLayout),
		CheckIn:    &checkIn,
		CheckOut:   a.CheckOut,
		TotalHours: a.TotalHours,
	}
}

type MonthlyAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"` // YYYY-MM, empty means the current month
}

func (r *MonthlyAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.Month != "" {
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs.Add("month", "month must be in YYYY-MM format")
		}
	}

	return errs.Err()
}

type AttendanceResponse struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	Date       string     `json:"date"`
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	TotalHours *float64   `json:"total_hours,omitempty"`
	Status     Status     `json:"status"`
	IsPresent  bool       `json:"is_present"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format(clock.DateLayout),
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		TotalHours: a.TotalHours,
		Status:     a.Status,
		IsPresent:  a.IsPresent,
	}
}

type EmployeeSummary struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	Username     string `json:"username"`
}

type MonthlySummary struct {
	WorkingDays int     `json:"working_days"`
	PresentDays int     `json:"present_days"`
	TotalHours  float64 `json:"total_hours"`
}

type MonthlyAttendanceResponse struct {
	Employee EmployeeSummary      `json:"employee"`
	Month    string               `json:"month"`
	Records  []AttendanceResponse `json:"records"`
	Summary  MonthlySummary       `json:"summary"`
}
