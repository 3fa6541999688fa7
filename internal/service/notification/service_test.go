package notification

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hrms-core-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() (notification.Service, *clock.Fixed) {
	clk := &clock.Fixed{T: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)}
	return NewNotificationService(memory.NewNotificationRepository(), clk), clk
}

func TestNotify_RejectsUnknownType(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Notify(context.Background(), notification.CreateNotificationRequest{
		From: "e1", To: "m1", Type: "push", Title: "t", Message: "m",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "type")
}

func TestList_NewestFirstWithCounts(t *testing.T) {
	ctx := context.Background()
	svc, clk := newService()

	for i := 0; i < 12; i++ {
		clk.T = clk.T.Add(time.Minute)
		_, err := svc.Notify(ctx, notification.CreateNotificationRequest{
			From: "e1", To: "m1", Type: notification.TypeLeave, Title: fmt.Sprintf("n%d", i), Message: "m",
		})
		require.NoError(t, err)
	}

	got, err := svc.List(ctx, notification.ListNotificationsRequest{RecipientID: "m1"})
	require.NoError(t, err)

	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 10, got.Limit)
	assert.Equal(t, int64(12), got.TotalNotifications)
	assert.Equal(t, int64(12), got.UnreadCount)
	assert.Equal(t, 2, got.TotalPages)
	require.Len(t, got.Notifications, 10)
	assert.Equal(t, "n11", got.Notifications[0].Title)

	second, err := svc.List(ctx, notification.ListNotificationsRequest{RecipientID: "m1", Page: 2})
	require.NoError(t, err)
	assert.Len(t, second.Notifications, 2)
}

func TestMarkAllRead_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	_, err := svc.Notify(ctx, notification.CreateNotificationRequest{
		From: "m1", To: "e1", Type: notification.TypeManagerAction, Title: "Leave approved", Message: "enjoy",
	})
	require.NoError(t, err)

	n, err := svc.MarkAllRead(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = svc.MarkAllRead(ctx, "e1")
	assert.ErrorIs(t, err, notification.ErrNothingToMarkRead)

	list, err := svc.List(ctx, notification.ListNotificationsRequest{RecipientID: "e1"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), list.UnreadCount)
	assert.True(t, list.Notifications[0].IsRead)
}
