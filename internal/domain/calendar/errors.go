package calendar

import "errors"

var (
	ErrHolidayNotFound        = errors.New("holiday not found")
	ErrHolidayOverlap         = errors.New("another holiday already exists in this date range")
	ErrInvalidClassification  = errors.New("invalid classification, only allowed: holiday, restricted holiday")
	ErrInvalidWorkingDayRange = errors.New("invalid working day range")
)
