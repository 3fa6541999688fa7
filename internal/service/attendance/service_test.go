package attendance

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hrms-core-go/internal/repository/memory"
	calendarservice "github.com/cmlabs-hris/hrms-core-go/internal/service/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc       attendance.AttendanceService
	clock     *clock.Fixed
	calendar  calendar.CalendarService
	employees *memory.EmployeeRepository
	records   *memory.AttendanceRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	clk := &clock.Fixed{T: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)}
	holidays := memory.NewHolidayRepository()
	employees := memory.NewEmployeeRepository()
	records := memory.NewAttendanceRepository()
	cal := calendarservice.NewCalendarService(holidays)

	return fixture{
		svc:       NewAttendanceService(records, employees, cal, clk),
		clock:     clk,
		calendar:  cal,
		employees: employees,
		records:   records,
	}
}

func TestToggle_CheckInThenCheckOut(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	in, err := f.svc.Toggle(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, attendance.ActionCheckedIn, in.Action)
	assert.Equal(t, attendance.StatusCheckIn, in.Status)
	assert.Equal(t, "2024-06-10", in.Date)

	f.clock.T = time.Date(2024, 6, 10, 17, 30, 0, 0, time.UTC)
	out, err := f.svc.Toggle(ctx, "e1")
	require.NoError(t, err)

	assert.Equal(t, attendance.ActionCheckedOut, out.Action)
	assert.Equal(t, attendance.StatusCheckOut, out.Status)
	require.NotNil(t, out.TotalHours)
	assert.Equal(t, 8.5, *out.TotalHours)
}

func TestToggle_ThirdToggleReturnsClosedState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Toggle(ctx, "e1")
	require.NoError(t, err)
	f.clock.T = f.clock.T.Add(8 * time.Hour)
	_, err = f.svc.Toggle(ctx, "e1")
	require.NoError(t, err)

	f.clock.T = f.clock.T.Add(time.Hour)
	third, err := f.svc.Toggle(ctx, "e1")

	assert.ErrorIs(t, err, attendance.ErrDayClosed)
	assert.Equal(t, attendance.ActionAlreadyClosed, third.Action)
	assert.Equal(t, 8.0, *third.TotalHours)
}

func TestToggle_RejectedOnHoliday(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.calendar.CreateHoliday(ctx, calendar.CreateHolidayRequest{
		Name: "Break", FromDate: "2024-06-09", ToDate: "2024-06-11", Classification: "holiday",
	})
	require.NoError(t, err)

	_, err = f.svc.Toggle(ctx, "e1")
	assert.ErrorIs(t, err, attendance.ErrHolidayToday)

	rec, err := f.records.GetByEmployeeAndDate(ctx, "e1", clock.Day(f.clock.T))
	require.NoError(t, err)
	assert.Nil(t, rec, "no record is created on a holiday")
}

func TestToggle_NextDayStartsFresh(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Toggle(ctx, "e1")
	require.NoError(t, err)

	f.clock.T = f.clock.T.AddDate(0, 0, 1)
	next, err := f.svc.Toggle(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, attendance.ActionCheckedIn, next.Action)
	assert.Equal(t, "2024-06-11", next.Date)
}

func TestStatusForDay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	rec, err := f.svc.StatusForDay(ctx, "e1", f.clock.T)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusYetToCheckIn, rec.Status)

	_, err = f.svc.Toggle(ctx, "e1")
	require.NoError(t, err)

	rec, err = f.svc.StatusForDay(ctx, "e1", f.clock.T)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCheckIn, rec.Status)
	assert.Equal(t, f.clock.T, *rec.CheckIn)
}

func TestStatusForRange(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.Toggle(ctx, "e1")
	require.NoError(t, err)

	got, err := f.svc.StatusForRange(ctx, []string{"e1", "e2"}, f.clock.T)
	require.NoError(t, err)

	assert.Len(t, got, 1)
	assert.Equal(t, attendance.StatusCheckIn, got["e1"].Status)
}

func TestMonthly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	emp, err := f.employees.Create(ctx, employee.Employee{Email: "e@example.com", Username: "Eve", EmployeeCode: "E001", Status: employee.StatusActive})
	require.NoError(t, err)

	for _, day := range []int{3, 4} {
		f.clock.T = time.Date(2024, 6, day, 9, 0, 0, 0, time.UTC)
		_, err := f.svc.Toggle(ctx, emp.ID)
		require.NoError(t, err)
		f.clock.T = time.Date(2024, 6, day, 16, 20, 0, 0, time.UTC)
		_, err = f.svc.Toggle(ctx, emp.ID)
		require.NoError(t, err)
	}

	got, err := f.svc.Monthly(ctx, attendance.MonthlyAttendanceRequest{EmployeeID: emp.ID, Month: "2024-06"})
	require.NoError(t, err)

	assert.Equal(t, "2024-06", got.Month)
	require.Len(t, got.Records, 2)
	assert.Equal(t, "2024-06-03", got.Records[0].Date)
	assert.Equal(t, 20, got.Summary.WorkingDays)
	assert.Equal(t, 2, got.Summary.PresentDays)
	assert.Equal(t, 14.66, got.Summary.TotalHours)

	_, err = f.svc.Monthly(ctx, attendance.MonthlyAttendanceRequest{EmployeeID: "missing", Month: "2024-06"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestExportMonthlyPDF(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	emp, err := f.employees.Create(ctx, employee.Employee{Email: "e@example.com", Username: "Eve", EmployeeCode: "E001"})
	require.NoError(t, err)
	_, err = f.svc.Toggle(ctx, emp.ID)
	require.NoError(t, err)

	doc, err := f.svc.ExportMonthlyPDF(ctx, attendance.MonthlyAttendanceRequest{EmployeeID: emp.ID})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
}
