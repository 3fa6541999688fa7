package dailystatus

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/dailystatus"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hrms-core-go/internal/repository/memory"
	attendanceservice "github.com/cmlabs-hris/hrms-core-go/internal/service/attendance"
	calendarservice "github.com/cmlabs-hris/hrms-core-go/internal/service/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var june10 = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

type countingLeaveRepository struct {
	*memory.LeaveRepository
	coveringCalls int
}

func (r *countingLeaveRepository) ListCovering(ctx context.Context, day time.Time, employeeIDs []string) ([]leave.Leave, error) {
	r.coveringCalls++
	return r.LeaveRepository.ListCovering(ctx, day, employeeIDs)
}

type fixture struct {
	svc        dailystatus.DailyStatusService
	clock      *clock.Fixed
	calendar   calendar.CalendarService
	attendance attendance.AttendanceService
	leaves     *countingLeaveRepository
}

func newFixture() fixture {
	clk := &clock.Fixed{T: june10.Add(9 * time.Hour)}
	cal := calendarservice.NewCalendarService(memory.NewHolidayRepository())
	att := attendanceservice.NewAttendanceService(memory.NewAttendanceRepository(), memory.NewEmployeeRepository(), cal, clk)
	leaves := &countingLeaveRepository{LeaveRepository: memory.NewLeaveRepository()}

	return fixture{
		svc:        NewDailyStatusService(leaves, cal, att),
		clock:      clk,
		calendar:   cal,
		attendance: att,
		leaves:     leaves,
	}
}

func (f fixture) approvedLeave(t *testing.T, employeeID string) {
	t.Helper()
	_, err := f.leaves.Create(context.Background(), leave.Leave{
		EmployeeID: employeeID, LeaveType: leave.TypePaid, FromDate: june10, ToDate: june10.AddDate(0, 0, 2), Status: leave.StatusApproved,
	})
	require.NoError(t, err)
}

func TestForEmployee_DefaultsToYetToCheckIn(t *testing.T) {
	f := newFixture()

	ds, err := f.svc.ForEmployee(context.Background(), "e1", june10)
	require.NoError(t, err)
	assert.Equal(t, dailystatus.StatusYetToCheckIn, ds.Status)
}

func TestForEmployee_HolidayDeclaredOverApprovedLeave(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.approvedLeave(t, "e1")

	ds, err := f.svc.ForEmployee(ctx, "e1", june10)
	require.NoError(t, err)
	assert.Equal(t, dailystatus.StatusOnLeave, ds.Status)

	_, err = f.calendar.CreateHoliday(ctx, calendar.CreateHolidayRequest{
		Name: "Declared", FromDate: "2024-06-10", ToDate: "2024-06-10", Classification: "holiday",
	})
	require.NoError(t, err)

	ds, err = f.svc.ForEmployee(ctx, "e1", june10)
	require.NoError(t, err)
	assert.Equal(t, dailystatus.StatusHoliday, ds.Status)
}

func TestForEmployees_BatchMergesByEmployee(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.approvedLeave(t, "e2")
	_, err := f.attendance.Toggle(ctx, "e1")
	require.NoError(t, err)
	_, err = f.attendance.Toggle(ctx, "e3")
	require.NoError(t, err)
	f.clock.T = f.clock.T.Add(8 * time.Hour)
	_, err = f.attendance.Toggle(ctx, "e3")
	require.NoError(t, err)

	got, err := f.svc.ForEmployees(ctx, []string{"e1", "e2", "e3", "e4"}, june10)
	require.NoError(t, err)

	assert.Equal(t, dailystatus.StatusCheckIn, got["e1"].Status)
	assert.Equal(t, dailystatus.StatusOnLeave, got["e2"].Status)
	assert.Equal(t, dailystatus.StatusCheckOut, got["e3"].Status)
	assert.Equal(t, 8.0, *got["e3"].Attendance.TotalHours)
	assert.Equal(t, dailystatus.StatusYetToCheckIn, got["e4"].Status)
	assert.Equal(t, 1, f.leaves.coveringCalls, "one leave query per batch")
}
