package leave

import (
	"context"
	"time"
)

type LeaveService interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)
	Decide(ctx context.Context, req DecideLeaveRequest) (DecideLeaveResponse, error)
	ConflictsFor(ctx context.Context, employeeID string, from, to time.Time) (bool, error)

	TeamLeaves(ctx context.Context, managerID string) ([]LeaveResponse, error)
	History(ctx context.Context, req HistoryRequest) ([]LeaveResponse, error)
	AdminSearch(ctx context.Context, req SearchLeaveRequest) (ListLeaveResponse, error)
	Summary(ctx context.Context) (SummaryResponse, error)
}
