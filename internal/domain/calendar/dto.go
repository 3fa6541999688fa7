package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/validator"
)

// ========================================
// HOLIDAY DTOs
// ========================================

type CreateHolidayRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	FromDate       string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate         string `json:"to_date" validate:"required,datetime=2006-01-02"`
	Classification string `json:"classification" validate:"required"`
}

func (r *CreateHolidayRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	errs := validator.Struct(r)

	if r.Classification != "" {
		if c, err := ParseClassification(r.Classification); err != nil {
			errs.Add("classification", err.Error())
		} else {
			r.Classification = string(c)
		}
	}

	if len(errs) == 0 {
		errs = append(errs, ValidateRange(r.FromDate, r.ToDate)...)
	}

	return errs.Err()
}

type UpdateHolidayRequest struct {
	ID             string  `json:"-"`
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	FromDate       *string `json:"from_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ToDate         *string `json:"to_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Classification *string `json:"classification,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	errs := validator.Struct(r)

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Classification != nil {
		if c, err := ParseClassification(*r.Classification); err != nil {
			errs.Add("classification", err.Error())
		} else {
			normalized := string(c)
			r.Classification = &normalized
		}
	}

	return errs.Err()
}

// ValidateRange parses both dates and checks to is not before from.
func ValidateRange(from, to string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	fromDate, err := clock.ParseDay(from)
	if err != nil {
		errs.Add("from_date", "from_date must be a date in YYYY-MM-DD format")
	}
	toDate, err := clock.ParseDay(to)
	if err != nil {
		errs.Add("to_date", "to_date must be a date in YYYY-MM-DD format")
	}
	if len(errs) == 0 && toDate.Before(fromDate) {
		errs.Add("to_date", "to_date must be same or after from_date")
	}

	return errs
}

type ListHolidaysRequest struct {
	Year *int
}

// MaxWorkingDaySpan bounds the days a single working-days query may cover.
const MaxWorkingDaySpan = 366

type WorkingDaysRequest struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to" validate:"required,datetime=2006-01-02"`
}

func (r *WorkingDaysRequest) Validate() error {
	errs := validator.Struct(r)
	if len(errs) == 0 {
		for _, e := range ValidateRange(r.From, r.To) {
			errs.Add(strings.TrimSuffix(e.Field, "_date"), e.Message)
		}
	}
	if len(errs) == 0 {
		from, _ := clock.ParseDay(r.From)
		to, _ := clock.ParseDay(r.To)
		if clock.DaysInclusive(from, to) > MaxWorkingDaySpan {
			errs.Add("to", fmt.Sprintf("range must not exceed %d days", MaxWorkingDaySpan))
		}
	}
	return errs.Err()
}

type HolidayResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	FromDate       string         `json:"from_date"`
	ToDate         string         `json:"to_date"`
	Classification Classification `json:"classification"`
	TotalDays      int            `json:"total_days"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func NewHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:             h.ID,
		Name:           h.Name,
		FromDate:       h.FromDate.Format(clock.DateLayout),
		ToDate:         h.ToDate.Format(clock.DateLayout),
		Classification: h.Classification,
		TotalDays:      h.TotalDays,
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
}

type WorkingDaysResponse struct {
	From        string `json:"from"`
	To          string `json:"to"`
	WorkingDays int    `json:"working_days"`
}
