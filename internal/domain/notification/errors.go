package notification

import "errors"

// Notification domain errors
var (
	ErrInvalidNotificationType = errors.New("invalid notification type")
	ErrNothingToMarkRead       = errors.New("no unread notifications")
)
