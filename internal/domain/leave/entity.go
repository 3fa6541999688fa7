package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
)

// LeaveType is the category of a leave request.
type LeaveType string

const (
	TypeSick   LeaveType = "sick leave"
	TypeCasual LeaveType = "casual leave"
	TypePaid   LeaveType = "paid leave"
)

// AllLeaveTypes returns every accepted leave type
func AllLeaveTypes() []LeaveType {
	return []LeaveType{TypeSick, TypeCasual, TypePaid}
}

// ParseLeaveType trims and lowercases s before matching it against the
// accepted types.
func ParseLeaveType(s string) (LeaveType, error) {
	t := LeaveType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllLeaveTypes() {
		if t == known {
			return t, nil
		}
	}
	return "", ErrInvalidLeaveType
}

// Status is the position of a leave in the approval workflow.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsDecision reports whether s is a valid outcome of a manager decision.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// Leave is a request for time off covering the calendar days [FromDate, ToDate].
type Leave struct {
	ID          string
	EmployeeID  string
	LeaveType   LeaveType
	Description *string
	FromDate    time.Time
	ToDate      time.Time
	TotalDays   int
	Status      Status
	ReportingTo string
	DecidedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TotalDays counts the calendar days of a leave, both ends included.
func TotalDays(from, to time.Time) int {
	return clock.DaysInclusive(from, to)
}

// Overlaps reports whether the leave shares at least one day with [from, to].
func (l Leave) Overlaps(from, to time.Time) bool {
	return clock.Overlaps(l.FromDate, l.ToDate, from, to)
}

// Covers reports whether day falls inside the leave.
func (l Leave) Covers(day time.Time) bool {
	return clock.Covers(l.FromDate, l.ToDate, day)
}

// Blocks reports whether the leave takes part in overlap detection.
// Rejected leaves free their days again.
func (l Leave) Blocks() bool {
	return l.Status != StatusRejected
}

// IsExpired reports whether the leave ended before today.
func (l Leave) IsExpired(today time.Time) bool {
	return l.ToDate.Before(today)
}

// SearchFilter narrows the admin listing. Zero values mean no filter.
type SearchFilter struct {
	Status     *Status
	ManagerID  *string
	EmployeeID *string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

const (
	SortByFromDate = "from_date"
	SortByToDate   = "to_date"
	SortAsc        = "asc"
	SortDesc       = "desc"
)

// Summary aggregates leave figures for the admin dashboard.
type Summary struct {
	ByStatus         map[Status]int
	ByType           map[LeaveType]TypeTotal
	OnLeaveToday     int
	PendingApprovals int
}

type TypeTotal struct {
	Count     int
	TotalDays int
}
