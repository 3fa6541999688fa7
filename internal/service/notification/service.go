package notification

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
)

type service struct {
	repo  notification.Repository
	clock clock.Clock
}

// NewNotificationService creates a notification service that writes synchronously
func NewNotificationService(repo notification.Repository, clk clock.Clock) notification.Service {
	return &service{
		repo:  repo,
		clock: clk,
	}
}

// Notify validates and appends a notification
func (s *service) Notify(ctx context.Context, req notification.CreateNotificationRequest) (notification.NotificationResponse, error) {
	if err := req.Validate(); err != nil {
		return notification.NotificationResponse{}, err
	}

	n, err := s.repo.Create(ctx, notification.Notification{
		From:      req.From,
		To:        req.To,
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		return notification.NotificationResponse{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return notification.NewNotificationResponse(n), nil
}

// List retrieves paginated notifications for a recipient, newest first
func (s *service) List(ctx context.Context, req notification.ListNotificationsRequest) (notification.NotificationListResponse, error) {
	req.Normalize()

	notifications, total, unread, err := s.repo.ListByRecipient(ctx, req.RecipientID, req.Page, req.Limit)
	if err != nil {
		return notification.NotificationListResponse{}, fmt.Errorf("failed to list notifications: %w", err)
	}

	responses := make([]notification.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = notification.NewNotificationResponse(n)
	}

	return notification.NotificationListResponse{
		Notifications:      responses,
		UnreadCount:        unread,
		TotalNotifications: total,
		TotalPages:         notification.TotalPages(total, req.Limit),
		Page:               req.Page,
		Limit:              req.Limit,
	}, nil
}

// MarkAllRead marks every unread notification of a recipient as read
func (s *service) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	updated, err := s.repo.MarkAllRead(ctx, recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	if updated == 0 {
		return 0, notification.ErrNothingToMarkRead
	}
	return updated, nil
}
