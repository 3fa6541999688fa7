package leave

import (
	"context"
	"time"
)

// LeaveRepository defines data access methods for leave records.
type LeaveRepository interface {
	// Create inserts a leave. Backends that enforce overlap natively report a
	// violation as ErrLeaveOverlap.
	Create(ctx context.Context, leave Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)

	// FindConflict returns a non-rejected leave of the employee overlapping
	// [from, to], or nil.
	FindConflict(ctx context.Context, employeeID string, from, to time.Time) (*Leave, error)

	// UpdateStatus moves a pending leave to status. When the leave is no longer
	// pending it returns ErrLeaveAlreadyDecided.
	UpdateStatus(ctx context.Context, id string, status Status, decidedAt time.Time) (Leave, error)

	// ListCovering returns the non-rejected leaves covering day for the given employees.
	ListCovering(ctx context.Context, day time.Time, employeeIDs []string) ([]Leave, error)

	// ListForManager returns leaves reporting to managerID that are pending or
	// end on or after today.
	ListForManager(ctx context.Context, managerID string, today time.Time) ([]Leave, error)

	// ListByEmployee returns an employee's leaves, optionally limited to those
	// overlapping [from, to], newest first.
	ListByEmployee(ctx context.Context, employeeID string, from, to *time.Time) ([]Leave, error)

	Search(ctx context.Context, filter SearchFilter) ([]Leave, int64, error)
	Summary(ctx context.Context, today time.Time) (Summary, error)
}
