package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// Create creates a new notification
func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	n.ID = newID()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now()
	}

	query := `
		INSERT INTO notifications (id, from_id, to_id, type, title, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := q.Exec(ctx, query, n.ID, n.From, n.To, string(n.Type), n.Title, n.Message, n.IsRead, n.CreatedAt)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

// ListByRecipient returns one page of a recipient's notifications with counts
func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID string, page, limit int) ([]notification.Notification, int64, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total, unread int64
	countQuery := `SELECT COUNT(*), COUNT(*) FILTER (WHERE NOT is_read) FROM notifications WHERE to_id = $1`
	if err := q.QueryRow(ctx, countQuery, recipientID).Scan(&total, &unread); err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query := `
		SELECT id, from_id, to_id, type, title, message, is_read, created_at
		FROM notifications
		WHERE to_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := q.Query(ctx, query, recipientID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []notification.Notification{}
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.From, &n.To, &n.Type, &n.Title, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, 0, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	return notifications, total, unread, nil
}

// MarkAllRead marks every unread notification of a recipient as read
func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE to_id = $1 AND is_read = FALSE`, recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return tag.RowsAffected(), nil
}
