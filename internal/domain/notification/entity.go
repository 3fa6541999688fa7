package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeLeave         NotificationType = "leave"
	TypeAttendance    NotificationType = "attendance"
	TypeManagerAction NotificationType = "manager-action"
	TypeSystem        NotificationType = "system"
)

// AllNotificationTypes returns all available notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		TypeLeave,
		TypeAttendance,
		TypeManagerAction,
		TypeSystem,
	}
}

// IsValid checks whether t is a known notification type
func (t NotificationType) IsValid() bool {
	for _, known := range AllNotificationTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Notification represents a notification entity
type Notification struct {
	ID        string
	From      string
	To        string
	Type      NotificationType
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// TotalPages returns the number of pages of size limit needed for total items.
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
