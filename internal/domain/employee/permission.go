package employee

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
)

// Field names an editable or viewable employee attribute, by its JSON key.
type Field string

const (
	FieldUsername    Field = "username"
	FieldEmail       Field = "email"
	FieldDOB         Field = "dob"
	FieldGender      Field = "gender"
	FieldDesignation Field = "designation"
	FieldSalary      Field = "salary"
	FieldRole        Field = "role"
	FieldStatus      Field = "status"
	FieldReportingTo Field = "reporting_to"
	FieldCreatedBy   Field = "created_by"
	FieldProfilePic  Field = "profile_pic"
)

// Scope is the relationship between a caller and the employee record they touch.
type Scope string

const (
	ScopePrivileged Scope = "privileged" // admin or hr
	ScopeSelf       Scope = "self"       // caller is the record owner
	ScopeOther      Scope = "other"
)

// EditableFields is the update allow-list per scope. ScopeOther may edit nothing.
var EditableFields = map[Scope][]Field{
	ScopePrivileged: {
		FieldUsername, FieldEmail, FieldDOB, FieldGender, FieldDesignation,
		FieldSalary, FieldRole, FieldStatus, FieldReportingTo, FieldCreatedBy,
	},
	ScopeSelf: {
		FieldUsername, FieldProfilePic, FieldGender, FieldDOB,
	},
}

// RedactedFields lists what each scope may not read.
var RedactedFields = map[Scope][]Field{
	ScopeOther: {FieldSalary},
}

// ScopeFor classifies caller against the employee with targetID.
func ScopeFor(caller auth.Identity, targetID string) Scope {
	switch {
	case caller.Role.IsPrivileged():
		return ScopePrivileged
	case caller.ID == targetID:
		return ScopeSelf
	default:
		return ScopeOther
	}
}

// CheckEditable verifies that every field is editable in scope.
func CheckEditable(scope Scope, fields []string) error {
	allowed, ok := EditableFields[scope]
	if !ok || len(allowed) == 0 {
		return user.ErrAccessDenied
	}

	var rejected []string
	for _, f := range fields {
		if !containsField(allowed, Field(f)) {
			rejected = append(rejected, f)
		}
	}
	if len(rejected) > 0 {
		sort.Strings(rejected)
		return fmt.Errorf("%w: %s", ErrInvalidUpdateFields, strings.Join(rejected, ", "))
	}
	return nil
}

// CanView reports whether scope may read field.
func CanView(scope Scope, field Field) bool {
	return !containsField(RedactedFields[scope], field)
}

func containsField(fields []Field, f Field) bool {
	for _, candidate := range fields {
		if candidate == f {
			return true
		}
	}
	return false
}
