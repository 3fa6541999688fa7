package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalHours(t *testing.T) {
	base := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		checkOut time.Time
		want     float64
	}{
		{"full day", time.Date(2024, 6, 10, 17, 30, 0, 0, time.UTC), 8.5},
		{"partial minute truncated", base.Add(59*time.Second), 0},
		{"one minute", base.Add(time.Minute), 0.02},
		{"twenty minutes", base.Add(20 * time.Minute), 0.33},
		{"seven hours forty", base.Add(7*time.Hour + 40*time.Minute), 7.67},
		{"clock skew never negative", base.Add(-5 * time.Minute), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ComputeTotalHours(base, c.checkOut))
		})
	}
}

func TestNewCheckIn(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	a := NewCheckIn("emp-1", day, now)

	assert.Equal(t, StatusCheckIn, a.Status)
	assert.True(t, a.IsPresent)
	assert.False(t, a.IsClosed())
	assert.Nil(t, a.TotalHours)
}

func TestRecordFor(t *testing.T) {
	assert.Equal(t, DayRecord{Status: StatusYetToCheckIn}, RecordFor(nil))

	in := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	out := in.Add(8 * time.Hour)
	hours := 8.0
	rec := RecordFor(&Attendance{Status: StatusCheckOut, CheckIn: in, CheckOut: &out, TotalHours: &hours})

	assert.Equal(t, StatusCheckOut, rec.Status)
	assert.Equal(t, in, *rec.CheckIn)
	assert.Equal(t, out, *rec.CheckOut)
	assert.Equal(t, 8.0, *rec.TotalHours)
}

func TestMonthlyAttendanceRequest_Validate(t *testing.T) {
	req := MonthlyAttendanceRequest{EmployeeID: "emp-1", Month: "2024-06"}
	assert.NoError(t, req.Validate())

	req = MonthlyAttendanceRequest{EmployeeID: "emp-1"}
	assert.NoError(t, req.Validate())

	req = MonthlyAttendanceRequest{Month: "June"}
	err := req.Validate()
	assert.ErrorContains(t, err, "employee_id is required")
	assert.ErrorContains(t, err, "month must be in YYYY-MM format")
}
