package analytics

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/analytics"
	"golang.org/x/sync/errgroup"
)

type AnalyticsServiceImpl struct {
	analytics.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepository analytics.AnalyticsRepository) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{AnalyticsRepository: analyticsRepository}
}

// ByDesignation implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) ByDesignation(ctx context.Context, req analytics.FilterRequest) ([]analytics.DesignationCountResponse, error) {
	counts, err := s.AnalyticsRepository.CountByDesignation(ctx, req.Designation)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by designation: %w", err)
	}

	if len(counts) == 0 && req.Designation != nil {
		return []analytics.DesignationCountResponse{{Designation: *req.Designation, Employees: 0}}, nil
	}

	out := make([]analytics.DesignationCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, analytics.DesignationCountResponse{Designation: c.Designation, Employees: c.Employees})
	}
	return out, nil
}

// ByManager implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) ByManager(ctx context.Context, req analytics.FilterRequest) ([]analytics.ManagerReportCountResponse, error) {
	counts, err := s.AnalyticsRepository.CountByManager(ctx, req.Designation)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports by manager: %w", err)
	}

	out := make([]analytics.ManagerReportCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, analytics.ManagerReportCountResponse{
			ManagerID:     c.ManagerID,
			EmployeeCode:  c.EmployeeCode,
			ManagerName:   c.Username,
			Designation:   c.Designation,
			EmployeeCount: c.Reports,
		})
	}
	return out, nil
}

// SalaryStats implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) SalaryStats(ctx context.Context, req analytics.FilterRequest) ([]analytics.SalaryStatsResponse, error) {
	stats, err := s.AnalyticsRepository.SalaryStatsByDesignation(ctx, req.Designation)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate salary stats: %w", err)
	}

	out := make([]analytics.SalaryStatsResponse, 0, len(stats))
	for _, st := range stats {
		out = append(out, analytics.NewSalaryStatsResponse(st))
	}
	return out, nil
}

// SalaryExtremes implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) SalaryExtremes(ctx context.Context, req analytics.FilterRequest) ([]analytics.SalaryExtremesResponse, error) {
	extremes, err := s.AnalyticsRepository.SalaryExtremesByDesignation(ctx, req.Designation)
	if err != nil {
		return nil, fmt.Errorf("failed to find salary extremes: %w", err)
	}

	out := make([]analytics.SalaryExtremesResponse, 0, len(extremes))
	for _, e := range extremes {
		out = append(out, analytics.SalaryExtremesResponse{
			Designation:   e.Designation,
			HighestPaid:   analytics.PaidEmployeeResponse(e.Highest),
			LowestPaid:    analytics.PaidEmployeeResponse(e.Lowest),
			EmployeeCount: e.Employees,
		})
	}
	return out, nil
}

// Overview implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) Overview(ctx context.Context) (analytics.OverviewResponse, error) {
	var (
		resp analytics.OverviewResponse
		all  analytics.FilterRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		resp.ByDesignation, err = s.ByDesignation(gCtx, all)
		return err
	})

	g.Go(func() error {
		var err error
		resp.ByManager, err = s.ByManager(gCtx, all)
		return err
	})

	g.Go(func() error {
		var err error
		resp.SalaryStats, err = s.SalaryStats(gCtx, all)
		return err
	})

	g.Go(func() error {
		var err error
		resp.SalaryExtremes, err = s.SalaryExtremes(gCtx, all)
		return err
	})

	if err := g.Wait(); err != nil {
		return analytics.OverviewResponse{}, err
	}
	return resp, nil
}
