package employee

import (
	"context"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/auth"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee creates a new employee (admin/hr only)
	CreateEmployee(ctx context.Context, caller auth.Identity, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee returns one employee with today's status; salary is hidden from other employees
	GetEmployee(ctx context.Context, caller auth.Identity, id string) (EmployeeResponse, error)

	// ListEmployees pages through active employees with today's status
	ListEmployees(ctx context.Context, caller auth.Identity, req ListEmployeesRequest) (ListEmployeeResponse, error)

	// TeamMembers lists the employees sharing the caller's reporting manager
	TeamMembers(ctx context.Context, caller auth.Identity) ([]EmployeeResponse, error)

	// UpdateEmployee applies a partial update within the caller's allow-list
	UpdateEmployee(ctx context.Context, caller auth.Identity, req UpdateEmployeeRequest) (EmployeeResponse, error)

	DeleteEmployee(ctx context.Context, caller auth.Identity, id string) error

	// Hierarchy builds the CEO, managers, reports tree
	Hierarchy(ctx context.Context) (HierarchyNode, error)

	// EnsureBootstrapAdmin creates the first admin when the directory is empty
	EnsureBootstrapAdmin(ctx context.Context, email, password string) (bool, error)
}
