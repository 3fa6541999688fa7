package notification

import (
	"context"
)

// Service defines the notification service interface
type Service interface {
	// Notify appends a notification; delivery is synchronous
	Notify(ctx context.Context, req CreateNotificationRequest) (NotificationResponse, error)

	List(ctx context.Context, req ListNotificationsRequest) (NotificationListResponse, error)

	// MarkAllRead returns ErrNothingToMarkRead when nothing was unread
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
}
