package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
	notificationService notification.Service
	clock               clock.Clock
}

func NewLeaveService(
	leaveRepository leave.LeaveRepository,
	employeeRepository employee.EmployeeRepository,
	notificationService notification.Service,
	clk clock.Clock,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:     leaveRepository,
		EmployeeRepository:  employeeRepository,
		notificationService: notificationService,
		clock:               clk,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.LeaveResponse{}, err
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.ReportingTo == nil || *emp.ReportingTo == "" {
		return leave.LeaveResponse{}, leave.ErrNoReportingManager
	}

	from, to := req.Dates()
	conflict, err := s.ConflictsFor(ctx, emp.ID, from, to)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if conflict {
		return leave.LeaveResponse{}, leave.ErrLeaveOverlap
	}

	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		EmployeeID:  emp.ID,
		LeaveType:   leave.LeaveType(req.LeaveType),
		Description: req.Description,
		FromDate:    from,
		ToDate:      to,
		TotalDays:   leave.TotalDays(from, to),
		Status:      leave.StatusPending,
		ReportingTo: *emp.ReportingTo,
	})
	if err != nil {
		if errors.Is(err, leave.ErrLeaveOverlap) {
			return leave.LeaveResponse{}, err
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave: %w", err)
	}

	_, err = s.notificationService.Notify(ctx, notification.CreateNotificationRequest{
		From:    emp.ID,
		To:      created.ReportingTo,
		Type:    notification.TypeLeave,
		Title:   "New leave request",
		Message: fmt.Sprintf("%s applied for %s from %s to %s", emp.Username, created.LeaveType, formatDay(from), formatDay(to)),
	})
	if err != nil {
		slog.Warn("Failed to notify manager of leave request", "leave_id", created.ID, "manager_id", created.ReportingTo, "error", err)
	}

	return leave.NewLeaveResponse(created), nil
}

// Decide implements leave.LeaveService.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.DecideLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.DecideLeaveResponse{}, err
	}

	current, err := s.LeaveRepository.GetByID(ctx, req.LeaveID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveNotFound) {
			return leave.DecideLeaveResponse{}, err
		}
		return leave.DecideLeaveResponse{}, fmt.Errorf("failed to get leave: %w", err)
	}

	if current.ReportingTo != req.ManagerID {
		return leave.DecideLeaveResponse{}, leave.ErrNotReportingManager
	}
	if current.Status != leave.StatusPending {
		return leave.DecideLeaveResponse{}, leave.ErrLeaveAlreadyDecided
	}
	if current.IsExpired(s.clock.Today()) {
		return leave.DecideLeaveResponse{}, leave.ErrLeaveExpired
	}

	decided, err := s.LeaveRepository.UpdateStatus(ctx, current.ID, leave.Status(req.Status), s.clock.Now())
	if err != nil {
		if errors.Is(err, leave.ErrLeaveAlreadyDecided) {
			return leave.DecideLeaveResponse{}, err
		}
		return leave.DecideLeaveResponse{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	resp := leave.DecideLeaveResponse{Leave: leave.NewLeaveResponse(decided)}

	_, err = s.notificationService.Notify(ctx, notification.CreateNotificationRequest{
		From:    req.ManagerID,
		To:      decided.EmployeeID,
		Type:    notification.TypeManagerAction,
		Title:   fmt.Sprintf("Leave %s", decided.Status),
		Message: fmt.Sprintf("Your %s from %s to %s was %s", decided.LeaveType, formatDay(decided.FromDate), formatDay(decided.ToDate), decided.Status),
	})
	if err != nil {
		slog.Warn("Failed to notify employee of leave decision", "leave_id", decided.ID, "employee_id", decided.EmployeeID, "error", err)
		resp.Warnings = append(resp.Warnings, "leave was decided but the employee could not be notified")
	}

	return resp, nil
}

// ConflictsFor implements leave.LeaveService.
func (s *LeaveServiceImpl) ConflictsFor(ctx context.Context, employeeID string, from, to time.Time) (bool, error) {
	existing, err := s.LeaveRepository.FindConflict(ctx, employeeID, from, to)
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping leaves: %w", err)
	}
	return existing != nil, nil
}

// TeamLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) TeamLeaves(ctx context.Context, managerID string) ([]leave.LeaveResponse, error) {
	leaves, err := s.LeaveRepository.ListForManager(ctx, managerID, s.clock.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to list team leaves: %w", err)
	}
	return leave.NewLeaveResponses(leaves), nil
}

// History implements leave.LeaveService.
func (s *LeaveServiceImpl) History(ctx context.Context, req leave.HistoryRequest) ([]leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var from, to *time.Time
	if req.Month != nil {
		first, last, _ := clock.ParseMonth(*req.Month)
		from, to = &first, &last
	}

	leaves, err := s.LeaveRepository.ListByEmployee(ctx, req.EmployeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave history: %w", err)
	}
	return leave.NewLeaveResponses(leaves), nil
}

// AdminSearch implements leave.LeaveService.
func (s *LeaveServiceImpl) AdminSearch(ctx context.Context, req leave.SearchLeaveRequest) (leave.ListLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	leaves, total, err := s.LeaveRepository.Search(ctx, req.Filter())
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to search leaves: %w", err)
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(req.Limit) - 1) / int64(req.Limit))
	}

	return leave.ListLeaveResponse{
		TotalCount: total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
		Leaves:     leave.NewLeaveResponses(leaves),
	}, nil
}

// Summary implements leave.LeaveService.
func (s *LeaveServiceImpl) Summary(ctx context.Context) (leave.SummaryResponse, error) {
	summary, err := s.LeaveRepository.Summary(ctx, s.clock.Today())
	if err != nil {
		return leave.SummaryResponse{}, fmt.Errorf("failed to summarize leaves: %w", err)
	}
	return leave.NewSummaryResponse(summary), nil
}

func formatDay(t time.Time) string {
	return t.Format(clock.DateLayout)
}
