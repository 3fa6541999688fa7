package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseClassification(t *testing.T) {
	c, err := ParseClassification("  Restricted Holiday ")
	require.NoError(t, err)
	assert.Equal(t, ClassificationRestricted, c)

	c, err = ParseClassification("HOLIDAY")
	require.NoError(t, err)
	assert.Equal(t, ClassificationHoliday, c)

	_, err = ParseClassification("festival")
	assert.ErrorIs(t, err, ErrInvalidClassification)
}

func TestHoliday_CoversIsInclusive(t *testing.T) {
	h := Holiday{FromDate: day(time.December, 24), ToDate: day(time.December, 26)}

	assert.False(t, h.Covers(day(time.December, 23)))
	assert.True(t, h.Covers(day(time.December, 24)))
	assert.True(t, h.Covers(day(time.December, 26)))
	assert.False(t, h.Covers(day(time.December, 27)))
}

func TestTotalDays(t *testing.T) {
	assert.Equal(t, 1, TotalDays(day(time.January, 1), day(time.January, 1)))
	assert.Equal(t, 3, TotalDays(day(time.December, 24), day(time.December, 26)))
	// leap year February
	assert.Equal(t, 30, TotalDays(day(time.February, 1), day(time.March, 1)))
}

func TestWorkingDays(t *testing.T) {
	// June 2024 starts on a Saturday and has 20 weekdays
	n, err := WorkingDays(day(time.June, 1), day(time.June, 30), nil)
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	holidays := []Holiday{
		{FromDate: day(time.June, 10), ToDate: day(time.June, 11)}, // Mon-Tue
		{FromDate: day(time.June, 15), ToDate: day(time.June, 16)}, // weekend only
	}
	n, err = WorkingDays(day(time.June, 1), day(time.June, 30), holidays)
	require.NoError(t, err)
	assert.Equal(t, 18, n)

	n, err = WorkingDays(day(time.June, 8), day(time.June, 8), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = WorkingDays(day(time.June, 10), day(time.June, 9), nil)
	assert.ErrorIs(t, err, ErrInvalidWorkingDayRange)
}

func TestCreateHolidayRequest_Validate(t *testing.T) {
	req := CreateHolidayRequest{Name: " Diwali ", FromDate: "2024-11-01", ToDate: "2024-11-02", Classification: "Holiday"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "holiday", req.Classification)
	assert.Equal(t, "Diwali", req.Name)

	req = CreateHolidayRequest{Name: "Backwards", FromDate: "2024-11-02", ToDate: "2024-11-01", Classification: "holiday"}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to_date must be same or after from_date")

	req = CreateHolidayRequest{Name: "Odd", FromDate: "2024-11-01", ToDate: "2024-11-01", Classification: "festival"}
	err = req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classification")

	req = CreateHolidayRequest{}
	err = req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestUpdateHolidayRequest_Validate(t *testing.T) {
	c := "RESTRICTED HOLIDAY"
	req := UpdateHolidayRequest{ID: "h1", Classification: &c}
	require.NoError(t, req.Validate())
	assert.Equal(t, "restricted holiday", *req.Classification)

	bad := "2024/01/01"
	req = UpdateHolidayRequest{ID: "h1", FromDate: &bad}
	assert.Error(t, req.Validate())

	blank := "   "
	req = UpdateHolidayRequest{ID: "h1", Name: &blank}
	assert.Error(t, req.Validate())

	padded := "  Founders Day "
	req = UpdateHolidayRequest{ID: "h1", Name: &padded}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Founders Day", *req.Name)
}

func TestWorkingDaysRequest_Validate(t *testing.T) {
	req := WorkingDaysRequest{From: "2024-01-01", To: "2024-12-31"}
	require.NoError(t, req.Validate())

	req = WorkingDaysRequest{From: "2024-01-01", To: "2025-01-01"}
	assert.Error(t, req.Validate())

	req = WorkingDaysRequest{From: "1700-01-01", To: "2100-12-31"}
	assert.Error(t, req.Validate())

	req = WorkingDaysRequest{From: "2024-06-10", To: "2024-06-01"}
	assert.Error(t, req.Validate())
}
