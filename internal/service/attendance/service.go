package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	calendarService calendar.CalendarService
	clock           clock.Clock
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	calendarService calendar.CalendarService,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		calendarService:      calendarService,
		clock:                clk,
	}
}

// Toggle implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Toggle(ctx context.Context, employeeID string) (attendance.ToggleResponse, error) {
	now := s.clock.Now()
	today := clock.Day(now)

	holiday, err := s.calendarService.IsHoliday(ctx, today)
	if err != nil {
		return attendance.ToggleResponse{}, err
	}
	if holiday != nil {
		return attendance.ToggleResponse{}, attendance.ErrHolidayToday
	}

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.ToggleResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if existing == nil {
		created, err := s.AttendanceRepository.Create(ctx, attendance.NewCheckIn(employeeID, today, now))
		if err != nil {
			if errors.Is(err, attendance.ErrDuplicateAttendance) {
				return attendance.ToggleResponse{}, err
			}
			return attendance.ToggleResponse{}, fmt.Errorf("failed to check in: %w", err)
		}
		return attendance.NewToggleResponse(attendance.ActionCheckedIn, created), nil
	}

	if existing.IsClosed() {
		return attendance.NewToggleResponse(attendance.ActionAlreadyClosed, *existing), attendance.ErrDayClosed
	}

	hours := attendance.ComputeTotalHours(existing.CheckIn, now)
	closed, err := s.AttendanceRepository.CloseDay(ctx, existing.ID, now, hours)
	if err != nil {
		if errors.Is(err, attendance.ErrDayClosed) {
			return attendance.NewToggleResponse(attendance.ActionAlreadyClosed, closed), err
		}
		return attendance.ToggleResponse{}, fmt.Errorf("failed to check out: %w", err)
	}

	return attendance.NewToggleResponse(attendance.ActionCheckedOut, closed), nil
}

// StatusForDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) StatusForDay(ctx context.Context, employeeID string, day time.Time) (attendance.DayRecord, error) {
	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, clock.Day(day))
	if err != nil {
		return attendance.DayRecord{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return attendance.RecordFor(record), nil
}

// StatusForRange implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) StatusForRange(ctx context.Context, employeeIDs []string, day time.Time) (map[string]attendance.Attendance, error) {
	byEmployee := make(map[string]attendance.Attendance, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return byEmployee, nil
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, clock.Day(day), employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	for _, r := range records {
		byEmployee[r.EmployeeID] = r
	}
	return byEmployee, nil
}

// Monthly implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Monthly(ctx context.Context, req attendance.MonthlyAttendanceRequest) (attendance.MonthlyAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.MonthlyAttendanceResponse{}, err
		}
		return attendance.MonthlyAttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	first, last := clock.MonthOf(s.clock.Today())
	if req.Month != "" {
		first, last, _ = clock.ParseMonth(req.Month)
	}

	records, err := s.AttendanceRepository.ListByEmployeeBetween(ctx, emp.ID, first, last)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, fmt.Errorf("failed to list monthly attendance: %w", err)
	}

	workingDays, err := s.calendarService.WorkingDays(ctx, first, last)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}

	resp := attendance.MonthlyAttendanceResponse{
		Employee: attendance.EmployeeSummary{ID: emp.ID, EmployeeCode: emp.EmployeeCode, Username: emp.Username},
		Month:    first.Format(clock.MonthLayout),
		Records:  make([]attendance.AttendanceResponse, 0, len(records)),
		Summary:  attendance.MonthlySummary{WorkingDays: workingDays},
	}

	total := decimal.Zero
	for _, r := range records {
		resp.Records = append(resp.Records, attendance.NewAttendanceResponse(r))
		if r.IsPresent {
			resp.Summary.PresentDays++
		}
		if r.TotalHours != nil {
			total = total.Add(decimal.NewFromFloat(*r.TotalHours))
		}
	}
	resp.Summary.TotalHours, _ = total.Round(2).Float64()

	return resp, nil
}

// ExportMonthlyPDF implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ExportMonthlyPDF(ctx context.Context, req attendance.MonthlyAttendanceRequest) ([]byte, error) {
	report, err := s.Monthly(ctx, req)
	if err != nil {
		return nil, err
	}
	return renderMonthlyPDF(report, s.clock.Now())
}
