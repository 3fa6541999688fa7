package attendance

import "errors"

// Attendance domain errors
var (
	ErrHolidayToday        = errors.New("attendance cannot be recorded on a holiday")
	ErrDayClosed           = errors.New("already checked out for today")
	ErrDuplicateAttendance = errors.New("attendance already recorded for this day")
	ErrAttendanceNotFound  = errors.New("attendance record not found")
)
