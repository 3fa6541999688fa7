package dailystatus

import (
	"context"
	"time"
)

// DailyStatusService resolves what employees are doing on a given day
type DailyStatusService interface {
	ForEmployee(ctx context.Context, employeeID string, day time.Time) (DailyStatus, error)

	// ForEmployees resolves a batch with a fixed number of storage round trips
	ForEmployees(ctx context.Context, employeeIDs []string, day time.Time) (map[string]DailyStatus, error)
}
