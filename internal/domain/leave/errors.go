package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveNotFound       = errors.New("leave not found")
	ErrLeaveOverlap        = errors.New("leave overlaps an existing leave")
	ErrNotReportingManager = errors.New("only the reporting manager can decide this leave")
	ErrLeaveAlreadyDecided = errors.New("leave has already been decided")
	ErrLeaveExpired        = errors.New("leave has already ended and can no longer be decided")
	ErrInvalidLeaveType    = errors.New("leave type must be one of sick leave, casual leave, paid leave")
	ErrInvalidDecision     = errors.New("status must be approved or rejected")
	ErrNoReportingManager  = errors.New("employee has no reporting manager")
)
