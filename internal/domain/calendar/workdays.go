package calendar

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

var workWeek = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}

// WorkingDays counts Monday to Friday days in [from, to] that no holiday covers.
func WorkingDays(from, to time.Time, holidays []Holiday) (int, error) {
	if to.Before(from) {
		return 0, ErrInvalidWorkingDayRange
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   from,
		Until:     to,
		Byweekday: workWeek,
	})
	if err != nil {
		return 0, fmt.Errorf("build working day rule: %w", err)
	}

	count := 0
	for _, day := range rule.All() {
		if !coveredByAny(holidays, day) {
			count++
		}
	}
	return count, nil
}

func coveredByAny(holidays []Holiday, day time.Time) bool {
	for _, h := range holidays {
		if h.Covers(day) {
			return true
		}
	}
	return false
}
