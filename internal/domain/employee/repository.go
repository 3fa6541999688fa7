package employee

import (
	"context"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
)

type EmployeeRepository interface {
	// Create fails with ErrEmailExists when the email is taken.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	Update(ctx context.Context, id string, patch Patch) (Employee, error)
	Delete(ctx context.Context, id string) error

	ListActive(ctx context.Context, page, size int) ([]Employee, int64, error)
	ListByReportingTo(ctx context.Context, managerID string) ([]Employee, error)
	ListByReportingToAny(ctx context.Context, managerIDs []string) ([]Employee, error)
	FindByDesignation(ctx context.Context, designation string) (*Employee, error)
	Count(ctx context.Context) (int64, error)

	// NextSequence atomically increments and returns the per-role code counter.
	NextSequence(ctx context.Context, role user.Role) (int64, error)

	SetSession(ctx context.Context, id string, sessionID *string) error
	IsSessionActive(ctx context.Context, id, sessionID string) (bool, error)
}
