package analytics

import "context"

// AnalyticsService defines read-only reporting over the employee directory
type AnalyticsService interface {
	// ByDesignation echoes a zero row when a filter matches nothing
	ByDesignation(ctx context.Context, req FilterRequest) ([]DesignationCountResponse, error)
	ByManager(ctx context.Context, req FilterRequest) ([]ManagerReportCountResponse, error)
	SalaryStats(ctx context.Context, req FilterRequest) ([]SalaryStatsResponse, error)
	SalaryExtremes(ctx context.Context, req FilterRequest) ([]SalaryExtremesResponse, error)

	// Overview runs every report concurrently
	Overview(ctx context.Context) (OverviewResponse, error)
}
