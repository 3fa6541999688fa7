package user

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, no reporting manager
	RoleHR       Role = "hr"       // Manages employees, holidays and reports
	RoleManager  Role = "manager"  // Decides leave for direct reports
	RoleEmployee Role = "employee" // Regular employee
)

// AllRoles returns every assignable role
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleHR, RoleManager, RoleEmployee}
}

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// IsPrivileged checks if role has organization-wide access (admin or hr)
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleHR
}

// RequiresManager reports whether an employee with this role must have a reporting manager.
func (r Role) RequiresManager() bool {
	return r != RoleAdmin
}
