package dailystatus

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/dailystatus"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

type DailyStatusServiceImpl struct {
	leave.LeaveRepository
	calendarService   calendar.CalendarService
	attendanceService attendance.AttendanceService
}

func NewDailyStatusService(
	leaveRepository leave.LeaveRepository,
	calendarService calendar.CalendarService,
	attendanceService attendance.AttendanceService,
) dailystatus.DailyStatusService {
	return &DailyStatusServiceImpl{
		LeaveRepository:   leaveRepository,
		calendarService:   calendarService,
		attendanceService: attendanceService,
	}
}

// ForEmployee implements dailystatus.DailyStatusService.
func (s *DailyStatusServiceImpl) ForEmployee(ctx context.Context, employeeID string, day time.Time) (dailystatus.DailyStatus, error) {
	statuses, err := s.ForEmployees(ctx, []string{employeeID}, day)
	if err != nil {
		return dailystatus.DailyStatus{}, err
	}
	return statuses[employeeID], nil
}

// ForEmployees implements dailystatus.DailyStatusService. It issues one
// holiday lookup, one leave query and one attendance query concurrently and
// merges the results in memory.
func (s *DailyStatusServiceImpl) ForEmployees(ctx context.Context, employeeIDs []string, day time.Time) (map[string]dailystatus.DailyStatus, error) {
	day = clock.Day(day)
	if len(employeeIDs) == 0 {
		return map[string]dailystatus.DailyStatus{}, nil
	}

	var (
		holiday *calendar.Holiday
		leaves  []leave.Leave
		records []attendance.Attendance
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		h, err := s.calendarService.IsHoliday(gCtx, day)
		if err != nil {
			return err
		}
		holiday = h
		return nil
	})

	g.Go(func() error {
		l, err := s.LeaveRepository.ListCovering(gCtx, day, employeeIDs)
		if err != nil {
			return fmt.Errorf("failed to list leaves covering %s: %w", day.Format(clock.DateLayout), err)
		}
		leaves = l
		return nil
	})

	g.Go(func() error {
		byEmployee, err := s.attendanceService.StatusForRange(gCtx, employeeIDs, day)
		if err != nil {
			return err
		}
		records = make([]attendance.Attendance, 0, len(byEmployee))
		for _, r := range byEmployee {
			records = append(records, r)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dailystatus.Merge(employeeIDs, holiday, leaves, records), nil
}
