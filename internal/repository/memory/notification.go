package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/notification"
)

type NotificationRepository struct {
	mu            sync.RWMutex
	notifications []notification.Notification
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n.ID = newID()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now()
	}
	r.notifications = append(r.notifications, n)
	return n, nil
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID string, pageNum, limit int) ([]notification.Notification, int64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var unread int64
	mine := []notification.Notification{}
	for _, n := range r.notifications {
		if n.To != recipientID {
			continue
		}
		mine = append(mine, n)
		if !n.IsRead {
			unread++
		}
	}
	sortByTime(mine, func(n notification.Notification) time.Time { return n.CreatedAt }, true)

	return page(mine, pageNum, limit), int64(len(mine)), unread, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var updated int64
	for i := range r.notifications {
		if r.notifications[i].To == recipientID && !r.notifications[i].IsRead {
			r.notifications[i].IsRead = true
			updated++
		}
	}
	return updated, nil
}
