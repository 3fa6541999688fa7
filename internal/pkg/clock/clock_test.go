package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay_UsesLocalCalendarDate(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// 2024-06-10 23:30 UTC is already 2024-06-11 in UTC+7
	instant := time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC).In(jakarta)

	assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), Day(instant))
}

func TestSystemClock_TodayIsMidnightUTC(t *testing.T) {
	c := New(nil)
	today := c.Today()

	assert.Equal(t, time.UTC, today.Location())
	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
}

func TestParseMonth(t *testing.T) {
	first, last, err := ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), last)

	_, _, err = ParseMonth("2024-13")
	assert.Error(t, err)
}

func TestMonthOf(t *testing.T) {
	first, last := MonthOf(time.Date(2024, 4, 17, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 1, first.Day())
	assert.Equal(t, 30, last.Day())
}

func TestDaysInclusive(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, 1, DaysInclusive(d(10), d(10)))
	assert.Equal(t, 3, DaysInclusive(d(10), d(12)))
	assert.Equal(t, 21, DaysInclusive(d(10), d(30)))

	// spans longer than time.Duration can hold
	from := time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2100, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 146461, DaysInclusive(from, to))
}

func TestOverlaps(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC) }

	cases := []struct {
		name                   string
		aFrom, aTo, bFrom, bTo time.Time
		want                   bool
	}{
		{"shared last day", d(10), d(12), d(12), d(14), true},
		{"contained", d(10), d(20), d(12), d(14), true},
		{"adjacent", d(10), d(12), d(13), d(14), false},
		{"before", d(1), d(2), d(5), d(6), false},
		{"identical single day", d(5), d(5), d(5), d(5), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Overlaps(c.aFrom, c.aTo, c.bFrom, c.bTo))
			assert.Equal(t, c.want, Overlaps(c.bFrom, c.bTo, c.aFrom, c.aTo))
		})
	}
}

func TestCovers(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC) }

	assert.True(t, Covers(d(10), d(12), d(10)))
	assert.True(t, Covers(d(10), d(12), d(12)))
	assert.False(t, Covers(d(10), d(12), d(13)))
}
