package notification

import (
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/validator"
)

// ============= Request DTOs =============

// CreateNotificationRequest represents a request to create a notification
type CreateNotificationRequest struct {
	From    string           `json:"from" validate:"required"`
	To      string           `json:"to" validate:"required"`
	Type    NotificationType `json:"type" validate:"required"`
	Title   string           `json:"title" validate:"required,max=255"`
	Message string           `json:"message" validate:"required"`
}

func (r *CreateNotificationRequest) Validate() error {
	errs := validator.Struct(r)
	if r.Type != "" && !r.Type.IsValid() {
		errs.Add("type", ErrInvalidNotificationType.Error())
	}
	return errs.Err()
}

// ListNotificationsRequest represents a request to list notifications
type ListNotificationsRequest struct {
	RecipientID string
	Page        int
	Limit       int
}

// Normalize applies the default page and limit.
func (r *ListNotificationsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
}

// ============= Response DTOs =============

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID        string           `json:"id"`
	From      string           `json:"from"`
	To        string           `json:"to"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewNotificationResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		From:      n.From,
		To:        n.To,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications      []NotificationResponse `json:"notifications"`
	UnreadCount        int64                  `json:"unread_count"`
	TotalNotifications int64                  `json:"total_notifications"`
	TotalPages         int                    `json:"total_pages"`
	Page               int                    `json:"page"`
	Limit              int                    `json:"limit"`
}

// MarkAllReadResponse reports how many notifications were flipped
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
