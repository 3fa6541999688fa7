package employee

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
)

type Employee struct {
	ID           string
	EmployeeCode string
	Username     string
	Email        string
	PasswordHash string
	DOB          time.Time
	Gender       Gender
	Designation  string
	Salary       float64
	Role         user.Role
	Status       Status
	ProfilePic   *ProfilePic
	CreatedBy    *string
	ReportingTo  *string
	SessionID    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ProfilePic struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id,omitempty"`
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Others Gender = "Others"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusDeactive Status = "deactive"
)

// Patch carries the fields of an update; nil means unchanged.
type Patch struct {
	Username    *string
	Email       *string
	DOB         *time.Time
	Gender      *Gender
	Designation *string
	Salary      *float64
	Role        *user.Role
	Status      *Status
	ReportingTo *string
	CreatedBy   *string
	ProfilePic  *ProfilePic
}

// CodePrefix returns the employee code prefix for a role.
func CodePrefix(role user.Role) string {
	switch role {
	case user.RoleManager:
		return "M"
	case user.RoleHR:
		return "H"
	default:
		return "E"
	}
}

// FormatCode builds the human-readable employee code from the role and its
// per-role sequence number, e.g. M007.
func FormatCode(role user.Role, seq int64) string {
	return fmt.Sprintf("%s%03d", CodePrefix(role), seq)
}

// Age returns the completed years between dob and today.
func Age(dob, today time.Time) int {
	if dob.IsZero() {
		return 0
	}
	years := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		years--
	}
	return years
}
