package notification

import (
	"context"
)

// Repository defines the notification repository interface
type Repository interface {
	Create(ctx context.Context, notification Notification) (Notification, error)

	// ListByRecipient returns one page newest first together with the
	// recipient's total and unread counts.
	ListByRecipient(ctx context.Context, recipientID string, page, limit int) ([]Notification, int64, int64, error)

	// MarkAllRead flips every unread notification of recipientID and returns
	// how many changed.
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
}
