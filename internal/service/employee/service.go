package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/dailystatus"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
	"golang.org/x/crypto/bcrypt"
)

// CEODesignation roots the organization tree.
const CEODesignation = "CEO"

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	dailyStatusService dailystatus.DailyStatusService
	clock              clock.Clock
}

func NewEmployeeService(
	employeeRepository employee.EmployeeRepository,
	dailyStatusService dailystatus.DailyStatusService,
	clk clock.Clock,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
		dailyStatusService: dailyStatusService,
		clock:              clk,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, caller auth.Identity, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if !caller.Role.IsPrivileged() {
		return employee.EmployeeResponse{}, user.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.ReportingTo != nil && *req.ReportingTo != "" {
		if err := s.ensureManagerExists(ctx, *req.ReportingTo); err != nil {
			return employee.EmployeeResponse{}, err
		}
	} else {
		req.ReportingTo = nil
	}

	dob, _ := clock.ParseDay(req.DOB)
	role := user.Role(req.Role)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	seq, err := s.EmployeeRepository.NextSequence(ctx, role)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to allocate employee code: %w", err)
	}

	createdBy := caller.ID
	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		EmployeeCode: employee.FormatCode(role, seq),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		DOB:          dob,
		Gender:       employee.Gender(req.Gender),
		Designation:  req.Designation,
		Salary:       req.Salary,
		Role:         role,
		Status:       employee.Status(req.Status),
		ProfilePic:   req.ProfilePic,
		CreatedBy:    &createdBy,
		ReportingTo:  req.ReportingTo,
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmailExists) {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Employee created", "employee_id", created.ID, "employee_code", created.EmployeeCode, "created_by", caller.ID)

	return employee.NewEmployeeResponse(created, employee.ScopePrivileged, s.clock.Today()), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, caller auth.Identity, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	today := s.clock.Today()
	status, err := s.dailyStatusService.ForEmployee(ctx, emp.ID, today)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to resolve daily status: %w", err)
	}

	resp := employee.NewEmployeeResponse(emp, employee.ScopeFor(caller, emp.ID), today)
	ds := dailystatus.NewResponse(emp.ID, today, status)
	resp.DailyStatus = &ds
	return resp, nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, caller auth.Identity, req employee.ListEmployeesRequest) (employee.ListEmployeeResponse, error) {
	req.Normalize()

	employees, total, err := s.EmployeeRepository.ListActive(ctx, req.Page, req.Size)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses, err := s.withDailyStatus(ctx, caller, employees)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       req.Page,
		Limit:      req.Size,
		TotalPages: int(math.Ceil(float64(total) / float64(req.Size))),
		Employees:  responses,
	}, nil
}

// TeamMembers implements employee.EmployeeService.
func (s *EmployeeServiceImpl) TeamMembers(ctx context.Context, caller auth.Identity) ([]employee.EmployeeResponse, error) {
	if caller.ReportingTo == nil || *caller.ReportingTo == "" {
		return []employee.EmployeeResponse{}, nil
	}

	members, err := s.EmployeeRepository.ListByReportingTo(ctx, *caller.ReportingTo)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	return s.withDailyStatus(ctx, caller, members)
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, caller auth.Identity, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	scope := employee.ScopeFor(caller, req.ID)
	if err := employee.CheckEditable(scope, req.Fields); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.ReportingTo != nil && *req.ReportingTo != "" {
		if *req.ReportingTo == req.ID {
			return employee.EmployeeResponse{}, employee.ErrManagerNotFound
		}
		if err := s.ensureManagerExists(ctx, *req.ReportingTo); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	updated, err := s.EmployeeRepository.Update(ctx, req.ID, req.Patch())
	if err != nil {
		switch {
		case errors.Is(err, employee.ErrEmailExists):
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		case errors.Is(err, employee.ErrEmployeeNotFound):
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.NewEmployeeResponse(updated, scope, s.clock.Today()), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, caller auth.Identity, id string) error {
	if !caller.Role.IsPrivileged() {
		return user.ErrAccessDenied
	}
	if caller.ID == id {
		return employee.ErrCannotDeleteSelf
	}

	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	slog.Info("Employee deleted", "employee_id", id, "deleted_by", caller.ID)
	return nil
}

// Hierarchy implements employee.EmployeeService. The tree is three levels
// deep: the CEO, the employees reporting to the CEO, and their reports.
func (s *EmployeeServiceImpl) Hierarchy(ctx context.Context) (employee.HierarchyNode, error) {
	ceo, err := s.EmployeeRepository.FindByDesignation(ctx, CEODesignation)
	if err != nil {
		return employee.HierarchyNode{}, fmt.Errorf("failed to find CEO: %w", err)
	}
	if ceo == nil {
		return employee.HierarchyNode{}, employee.ErrHierarchyNotFound
	}

	managers, err := s.EmployeeRepository.ListByReportingTo(ctx, ceo.ID)
	if err != nil {
		return employee.HierarchyNode{}, fmt.Errorf("failed to list managers: %w", err)
	}

	managerIDs := make([]string, 0, len(managers))
	for _, m := range managers {
		managerIDs = append(managerIDs, m.ID)
	}

	var reports []employee.Employee
	if len(managerIDs) > 0 {
		reports, err = s.EmployeeRepository.ListByReportingToAny(ctx, managerIDs)
		if err != nil {
			return employee.HierarchyNode{}, fmt.Errorf("failed to list reports: %w", err)
		}
	}

	byManager := make(map[string][]employee.HierarchyNode, len(managers))
	for _, r := range reports {
		byManager[*r.ReportingTo] = append(byManager[*r.ReportingTo], employee.NewHierarchyNode(r))
	}

	root := employee.NewHierarchyNode(*ceo)
	for _, m := range managers {
		node := employee.NewHierarchyNode(m)
		node.Reports = byManager[m.ID]
		root.Reports = append(root.Reports, node)
	}
	return root, nil
}

// EnsureBootstrapAdmin implements employee.EmployeeService.
func (s *EmployeeServiceImpl) EnsureBootstrapAdmin(ctx context.Context, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, nil
	}

	count, err := s.EmployeeRepository.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	seq, err := s.EmployeeRepository.NextSequence(ctx, user.RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("failed to allocate employee code: %w", err)
	}

	admin, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		EmployeeCode: employee.FormatCode(user.RoleAdmin, seq),
		Username:     "admin",
		Email:        email,
		PasswordHash: string(hash),
		Gender:       employee.Others,
		Designation:  "Administrator",
		Role:         user.RoleAdmin,
		Status:       employee.StatusActive,
	})
	if err != nil {
		return false, fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	slog.Info("Bootstrap admin created", "employee_id", admin.ID, "email", admin.Email)
	return true, nil
}

func (s *EmployeeServiceImpl) ensureManagerExists(ctx context.Context, managerID string) error {
	if _, err := s.EmployeeRepository.GetByID(ctx, managerID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrManagerNotFound
		}
		return fmt.Errorf("failed to get reporting manager: %w", err)
	}
	return nil
}

// withDailyStatus maps employees to responses with today's status, resolved
// in one batch.
func (s *EmployeeServiceImpl) withDailyStatus(ctx context.Context, caller auth.Identity, employees []employee.Employee) ([]employee.EmployeeResponse, error) {
	today := s.clock.Today()

	ids := make([]string, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}
	statuses, err := s.dailyStatusService.ForEmployees(ctx, ids, today)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve daily status: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp := employee.NewEmployeeResponse(e, employee.ScopeFor(caller, e.ID), today)
		ds := dailystatus.NewResponse(e.ID, today, statuses[e.ID])
		resp.DailyStatus = &ds
		responses = append(responses, resp)
	}
	return responses, nil
}
