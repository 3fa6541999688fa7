package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/validator"
)

// ========================================
// LEAVE REQUEST DTOs
// ========================================

type ApplyLeaveRequest struct {
	EmployeeID  string  `json:"-"`
	LeaveType   string  `json:"leave_type" validate:"required"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	FromDate    string  `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate      string  `json:"to_date" validate:"required,datetime=2006-01-02"`
}

func (r *ApplyLeaveRequest) Validate() error {
	errs := validator.Struct(r)

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.LeaveType != "" {
		if t, err := ParseLeaveType(r.LeaveType); err != nil {
			errs.Add("leave_type", err.Error())
		} else {
			r.LeaveType = string(t)
		}
	}
	if len(errs) == 0 {
		errs = append(errs, calendar.ValidateRange(r.FromDate, r.ToDate)...)
	}

	return errs.Err()
}

// Dates returns the parsed range. Only meaningful after Validate succeeded.
func (r ApplyLeaveRequest) Dates() (time.Time, time.Time) {
	from, _ := clock.ParseDay(r.FromDate)
	to, _ := clock.ParseDay(r.ToDate)
	return from, to
}

type DecideLeaveRequest struct {
	LeaveID   string `json:"-"`
	ManagerID string `json:"-"`
	Status    string `json:"status" validate:"required"`
}

func (r *DecideLeaveRequest) Validate() error {
	errs := validator.Struct(r)

	if validator.IsEmpty(r.LeaveID) {
		errs.Add("leave_id", "leave_id is required")
	}
	if r.Status != "" {
		r.Status = strings.ToLower(strings.TrimSpace(r.Status))
		if !Status(r.Status).IsDecision() {
			errs.Add("status", ErrInvalidDecision.Error())
		}
	}

	return errs.Err()
}

type HistoryRequest struct {
	EmployeeID string
	Month      *string // YYYY-MM
}

func (r *HistoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.Month != nil {
		if _, ok := validator.IsValidMonth(*r.Month); !ok {
			errs.Add("month", "month must be in YYYY-MM format")
		}
	}

	return errs.Err()
}

type SearchLeaveRequest struct {
	Status     *string `json:"status,omitempty"`
	ManagerID  *string `json:"manager_id,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	From       *string `json:"from,omitempty"` // YYYY-MM-DD
	To         *string `json:"to,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // from_date, to_date
	SortOrder string `json:"sort_order"` // asc, desc
}

func (r *SearchLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Page < 0 {
		errs.Add("page", "page must be a positive number")
	}
	if r.Page == 0 {
		r.Page = 1
	}
	if r.Limit < 0 || r.Limit > 100 {
		errs.Add("limit", "limit must be between 1 and 100")
	}
	if r.Limit == 0 {
		r.Limit = 10
	}

	if r.Status != nil {
		s := Status(strings.ToLower(*r.Status))
		if s != StatusPending && !s.IsDecision() {
			errs.Add("status", "status must be one of: pending, approved, rejected")
		}
	}
	if r.From != nil {
		if _, ok := validator.IsValidDate(*r.From); !ok {
			errs.Add("from", "from must be a date in YYYY-MM-DD format")
		}
	}
	if r.To != nil {
		if _, ok := validator.IsValidDate(*r.To); !ok {
			errs.Add("to", "to must be a date in YYYY-MM-DD format")
		}
	}

	if r.SortBy != "" {
		if !validator.IsInSlice(r.SortBy, []string{SortByFromDate, SortByToDate}) {
			errs.Add("sort_by", "sort_by must be one of: from_date, to_date")
		}
	} else {
		r.SortBy = SortByFromDate
	}
	if r.SortOrder != "" {
		r.SortOrder = strings.ToLower(r.SortOrder)
		if !validator.IsInSlice(r.SortOrder, []string{SortAsc, SortDesc}) {
			errs.Add("sort_order", "sort_order must be one of: asc, desc")
		}
	} else {
		r.SortOrder = SortDesc
	}

	return errs.Err()
}

// Filter converts a validated request into a repository filter.
func (r SearchLeaveRequest) Filter() SearchFilter {
	f := SearchFilter{
		ManagerID:  r.ManagerID,
		EmployeeID: r.EmployeeID,
		Page:       r.Page,
		Limit:      r.Limit,
		SortBy:     r.SortBy,
		SortOrder:  r.SortOrder,
	}
	if r.Status != nil {
		s := Status(strings.ToLower(*r.Status))
		f.Status = &s
	}
	if r.From != nil {
		if d, err := clock.ParseDay(*r.From); err == nil {
			f.From = &d
		}
	}
	if r.To != nil {
		if d, err := clock.ParseDay(*r.To); err == nil {
			f.To = &d
		}
	}
	return f
}

type LeaveResponse struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employee_id"`
	LeaveType   LeaveType  `json:"leave_type"`
	Description *string    `json:"description,omitempty"`
	FromDate    string     `json:"from_date"`
	ToDate      string     `json:"to_date"`
	TotalDays   int        `json:"total_days"`
	Status      Status     `json:"status"`
	ReportingTo string     `json:"reporting_to"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewLeaveResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:          l.ID,
		EmployeeID:  l.EmployeeID,
		LeaveType:   l.LeaveType,
		Description: l.Description,
		FromDate:    l.FromDate.Format(clock.DateLayout),
		ToDate:      l.ToDate.Format(clock.DateLayout),
		TotalDays:   l.TotalDays,
		Status:      l.Status,
		ReportingTo: l.ReportingTo,
		DecidedAt:   l.DecidedAt,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func NewLeaveResponses(leaves []Leave) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, NewLeaveResponse(l))
	}
	return out
}

type DecideLeaveResponse struct {
	Leave    LeaveResponse `json:"leave"`
	Warnings []string      `json:"warnings,omitempty"`
}

type ListLeaveResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Leaves     []LeaveResponse `json:"leaves"`
}

type TypeTotalResponse struct {
	LeaveType LeaveType `json:"leave_type"`
	Count     int       `json:"count"`
	TotalDays int       `json:"total_days"`
}

type SummaryResponse struct {
	ByStatus         map[Status]int      `json:"by_status"`
	ByType           []TypeTotalResponse `json:"by_type"`
	OnLeaveToday     int                 `json:"on_leave_today"`
	PendingApprovals int                 `json:"pending_approvals"`
}

func NewSummaryResponse(s Summary) SummaryResponse {
	resp := SummaryResponse{
		ByStatus:         map[Status]int{StatusPending: 0, StatusApproved: 0, StatusRejected: 0},
		ByType:           make([]TypeTotalResponse, 0, len(AllLeaveTypes())),
		OnLeaveToday:     s.OnLeaveToday,
		PendingApprovals: s.PendingApprovals,
	}
	for status, n := range s.ByStatus {
		resp.ByStatus[status] = n
	}
	for _, t := range AllLeaveTypes() {
		total := s.ByType[t]
		resp.ByType = append(resp.ByType, TypeTotalResponse{LeaveType: t, Count: total.Count, TotalDays: total.TotalDays})
	}
	return resp
}
