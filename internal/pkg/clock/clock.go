package clock

import "time"

// Clock supplies the current instant and the calendar day it falls on in the
// organization's operating timezone.
type Clock interface {
	Now() time.Time
	Today() time.Time
}

type systemClock struct {
	loc *time.Location
}

// New returns a Clock backed by time.Now. A nil location means UTC.
func New(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &systemClock{loc: loc}
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *systemClock) Today() time.Time {
	return Day(c.Now())
}

// Fixed is a Clock frozen at T. Tests move it by assigning T.
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time {
	return f.T
}

func (f *Fixed) Today() time.Time {
	return Day(f.T)
}

// Day returns the calendar day of t as midnight UTC carrying t's local
// year, month and day. Calendar days are compared and stored in this form.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a calendar day.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseMonth parses a YYYY-MM string and returns the first and last calendar
// day of that month.
func ParseMonth(s string) (time.Time, time.Time, error) {
	first, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return first, first.AddDate(0, 1, -1), nil
}

// MonthOf returns the first and last calendar day of the month containing day.
func MonthOf(day time.Time) (time.Time, time.Time) {
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// DaysInclusive counts the calendar days in [from, to]. Both ends must be
// calendar days as returned by Day.
func DaysInclusive(from, to time.Time) int {
	return int((to.Unix()-from.Unix())/secondsPerDay) + 1
}

const secondsPerDay = 24 * 60 * 60

// Overlaps reports whether the inclusive ranges [aFrom, aTo] and [bFrom, bTo]
// share at least one day.
func Overlaps(aFrom, aTo, bFrom, bTo time.Time) bool {
	return !aFrom.After(bTo) && !bFrom.After(aTo)
}

// Covers reports whether day lies inside the inclusive range [from, to].
func Covers(from, to, day time.Time) bool {
	return !day.Before(from) && !day.After(to)
}
