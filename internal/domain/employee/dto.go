package employee

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/dailystatus"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Username    string      `json:"username" validate:"required,min=2,max=100"`
	Email       string      `json:"email" validate:"required,email"`
	Password    string      `json:"password" validate:"required,min=8,max=72"`
	DOB         string      `json:"dob" validate:"required,datetime=2006-01-02"`
	Gender      string      `json:"gender" validate:"required,oneof=Male Female Others"`
	Designation string      `json:"designation" validate:"required,max=100"`
	Salary      float64     `json:"salary" validate:"gte=0"`
	Role        string      `json:"role" validate:"required,oneof=employee manager hr admin"`
	Status      string      `json:"status" validate:"omitempty,oneof=active deactive"`
	ReportingTo *string     `json:"reporting_to,omitempty"`
	ProfilePic  *ProfilePic `json:"profile_pic,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Username = strings.TrimSpace(r.Username)
	errs := validator.Struct(r)

	if user.Role(r.Role).RequiresManager() && (r.ReportingTo == nil || validator.IsEmpty(*r.ReportingTo)) {
		errs.Add("reporting_to", "reporting_to is required")
	}
	if r.Status == "" {
		r.Status = string(StatusActive)
	}

	return errs.Err()
}

// UpdateEmployeeRequest is a partial update. Fields records every JSON key
// present in the body so the allow-list can reject keys that are not part of
// the struct.
type UpdateEmployeeRequest struct {
	ID          string      `json:"-"`
	Fields      []string    `json:"-"`
	Username    *string     `json:"username,omitempty" validate:"omitempty,min=2,max=100"`
	Email       *string     `json:"email,omitempty" validate:"omitempty,email"`
	DOB         *string     `json:"dob,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string     `json:"gender,omitempty" validate:"omitempty,oneof=Male Female Others"`
	Designation *string     `json:"designation,omitempty" validate:"omitempty,max=100"`
	Salary      *float64    `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Role        *string     `json:"role,omitempty" validate:"omitempty,oneof=employee manager hr admin"`
	Status      *string     `json:"status,omitempty" validate:"omitempty,oneof=active deactive"`
	ReportingTo *string     `json:"reporting_to,omitempty"`
	CreatedBy   *string     `json:"created_by,omitempty"`
	ProfilePic  *ProfilePic `json:"profile_pic,omitempty"`
}

func (r *UpdateEmployeeRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateEmployeeRequest

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	p.Fields = make([]string, 0, len(keys))
	for k := range keys {
		p.Fields = append(p.Fields, k)
	}
	sort.Strings(p.Fields)

	*r = UpdateEmployeeRequest(p)
	return nil
}

func (r *UpdateEmployeeRequest) Validate() error {
	if r.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &normalized
	}
	errs := validator.Struct(r)

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if len(r.Fields) == 0 {
		errs.Add("body", "at least one field is required")
	}

	return errs.Err()
}

// Patch converts a validated request into a repository patch.
func (r UpdateEmployeeRequest) Patch() Patch {
	p := Patch{
		Username:    r.Username,
		Email:       r.Email,
		Designation: r.Designation,
		Salary:      r.Salary,
		ReportingTo: r.ReportingTo,
		CreatedBy:   r.CreatedBy,
		ProfilePic:  r.ProfilePic,
	}
	if r.DOB != nil {
		if dob, err := clock.ParseDay(*r.DOB); err == nil {
			p.DOB = &dob
		}
	}
	if r.Gender != nil {
		g := Gender(*r.Gender)
		p.Gender = &g
	}
	if r.Role != nil {
		role := user.Role(*r.Role)
		p.Role = &role
	}
	if r.Status != nil {
		s := Status(*r.Status)
		p.Status = &s
	}
	return p
}

type ListEmployeesRequest struct {
	Page int
	Size int
}

func (r *ListEmployeesRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Size < 1 {
		r.Size = 10
	}
	if r.Size > 100 {
		r.Size = 100
	}
}

type EmployeeResponse struct {
	ID           string                `json:"id"`
	EmployeeCode string                `json:"employee_code"`
	Username     string                `json:"username"`
	Email        string                `json:"email"`
	DOB          string                `json:"dob"`
	Age          int                   `json:"age"`
	Gender       Gender                `json:"gender"`
	Designation  string                `json:"designation"`
	Salary       *float64              `json:"salary,omitempty"`
	Role         user.Role             `json:"role"`
	Status       Status                `json:"status"`
	ProfilePic   *ProfilePic           `json:"profile_pic,omitempty"`
	CreatedBy    *string               `json:"created_by,omitempty"`
	ReportingTo  *string               `json:"reporting_to,omitempty"`
	DailyStatus  *dailystatus.Response `json:"daily_status,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// NewEmployeeResponse builds the view of e for a caller in scope, dropping
// the fields that scope may not read.
func NewEmployeeResponse(e Employee, scope Scope, today time.Time) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		Username:     e.Username,
		Email:        e.Email,
		Age:          Age(e.DOB, today),
		Gender:       e.Gender,
		Designation:  e.Designation,
		Role:         e.Role,
		Status:       e.Status,
		ProfilePic:   e.ProfilePic,
		CreatedBy:    e.CreatedBy,
		ReportingTo:  e.ReportingTo,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if !e.DOB.IsZero() {
		resp.DOB = e.DOB.Format(clock.DateLayout)
	}
	if CanView(scope, FieldSalary) {
		salary := e.Salary
		resp.Salary = &salary
	}
	return resp
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}

// HierarchyNode is one employee in the organization tree.
type HierarchyNode struct {
	ID           string          `json:"id"`
	EmployeeCode string          `json:"employee_code"`
	Username     string          `json:"username"`
	Designation  string          `json:"designation"`
	Role         user.Role       `json:"role"`
	Reports      []HierarchyNode `json:"reports,omitempty"`
}

func NewHierarchyNode(e Employee) HierarchyNode {
	return HierarchyNode{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		Username:     e.Username,
		Designation:  e.Designation,
		Role:         e.Role,
	}
}
