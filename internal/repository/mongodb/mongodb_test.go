package mongodb

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

var june10 = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

// setupTestDB connects to TEST_MONGO_URI and returns a fresh database that is
// dropped when the test ends.
func setupTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set, skipping MongoDB integration test")
	}

	name := fmt.Sprintf("hrms_test_%d", time.Now().UnixNano())
	db, err := database.NewMongoDB(uri, name)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, EnsureIndexes(ctx, db.Database))

	t.Cleanup(func() {
		_ = db.Database.Drop(context.Background())
		_ = db.Close(context.Background())
	})
	return db.Database
}

func TestEmployeeRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewEmployeeRepository(db)

	created, err := repo.Create(ctx, employee.Employee{Email: "Neo@Example.com", Username: "neo", Role: user.RoleEmployee, Status: employee.StatusActive})
	require.NoError(t, err)

	_, err = repo.Create(ctx, employee.Employee{Email: "neo@example.com", Username: "copy", Role: user.RoleEmployee})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	byEmail, err := repo.GetByEmail(ctx, "NEO@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	first, err := repo.NextSequence(ctx, user.RoleManager)
	require.NoError(t, err)
	second, err := repo.NextSequence(ctx, user.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)

	sid := "session-1"
	require.NoError(t, repo.SetSession(ctx, created.ID, &sid))
	active, err := repo.IsSessionActive(ctx, created.ID, sid)
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, repo.SetSession(ctx, created.ID, nil))
	active, err = repo.IsSessionActive(ctx, created.ID, sid)
	require.NoError(t, err)
	assert.False(t, active)

	designation := "Lead"
	updated, err := repo.Update(ctx, created.ID, employee.Patch{Designation: &designation})
	require.NoError(t, err)
	assert.Equal(t, "Lead", updated.Designation)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), employee.ErrEmployeeNotFound)
}

func TestAttendanceRepository_UniqueDayAndConditionalClose(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewAttendanceRepository(db)

	in := june10.Add(9 * time.Hour)
	open, err := repo.Create(ctx, attendance.NewCheckIn("e1", june10, in))
	require.NoError(t, err)

	_, err = repo.Create(ctx, attendance.NewCheckIn("e1", june10, in))
	assert.ErrorIs(t, err, attendance.ErrDuplicateAttendance)

	out := in.Add(8 * time.Hour)
	closed, err := repo.CloseDay(ctx, open.ID, out, 8)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCheckOut, closed.Status)

	again, err := repo.CloseDay(ctx, open.ID, out.Add(time.Hour), 9)
	assert.ErrorIs(t, err, attendance.ErrDayClosed)
	require.NotNil(t, again.TotalHours)
	assert.Equal(t, 8.0, *again.TotalHours)
}

func TestLeaveRepository_ConflictAndConditionalDecision(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewLeaveRepository(db)

	l, err := repo.Create(ctx, leave.Leave{
		EmployeeID: "e1", LeaveType: leave.TypeSick, FromDate: june10, ToDate: june10.AddDate(0, 0, 2),
		TotalDays: 3, Status: leave.StatusPending, ReportingTo: "m1",
	})
	require.NoError(t, err)

	conflict, err := repo.FindConflict(ctx, "e1", june10.AddDate(0, 0, 2), june10.AddDate(0, 0, 4))
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, l.ID, conflict.ID)

	_, err = repo.UpdateStatus(ctx, l.ID, leave.StatusRejected, june10)
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, l.ID, leave.StatusApproved, june10)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyDecided)

	conflict, err = repo.FindConflict(ctx, "e1", june10, june10)
	require.NoError(t, err)
	assert.Nil(t, conflict)

	summary, err := repo.Summary(ctx, june10)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ByStatus[leave.StatusRejected])
	assert.Equal(t, 3, summary.ByType[leave.TypeSick].TotalDays)
}

func TestHolidayRepository_Overlap(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewHolidayRepository(db)

	h, err := repo.Create(ctx, calendar.Holiday{Name: "Festival", FromDate: june10, ToDate: june10.AddDate(0, 0, 1), TotalDays: 2, Classification: calendar.ClassificationHoliday})
	require.NoError(t, err)

	covering, err := repo.FindCovering(ctx, june10.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.NotNil(t, covering)

	other, err := repo.FindOverlapping(ctx, june10, june10, h.ID)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestNotificationRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewNotificationRepository(db)

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, notification.Notification{From: "m1", To: "e1", Type: notification.TypeLeave, Title: "t", Message: "m"})
		require.NoError(t, err)
	}

	items, total, unread, err := repo.ListByRecipient(ctx, "e1", 1, 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(3), unread)

	n, err := repo.MarkAllRead(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
