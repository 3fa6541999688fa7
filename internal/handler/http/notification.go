package http

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrms-core-go/internal/handler/http/response"
)

// NotificationHandler defines the notification handler interface
type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkAllAsRead(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notifService notification.Service
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifService notification.Service) NotificationHandler {
	return &notificationHandlerImpl{
		notifService: notifService,
	}
}

// List returns paginated notifications for the authenticated user
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}

	result, err := h.notifService.List(r.Context(), notification.ListNotificationsRequest{
		RecipientID: identity.ID,
		Page:        queryInt(r, "page", 1),
		Limit:       queryInt(r, "limit", 10),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MarkAllAsRead flips every unread notification of the authenticated user
func (h *notificationHandlerImpl) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}

	updated, err := h.notifService.MarkAllRead(r.Context(), identity.ID)
	if errors.Is(err, notification.ErrNothingToMarkRead) {
		response.SuccessWithMessage(w, "No unread notifications, nothing to do", notification.MarkAllReadResponse{})
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All notifications marked as read", notification.MarkAllReadResponse{Updated: updated})
}
