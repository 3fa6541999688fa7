package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/notification"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type notificationDocument struct {
	ID        string    `bson:"_id"`
	From      string    `bson:"from"`
	To        string    `bson:"to"`
	Type      string    `bson:"type"`
	Title     string    `bson:"title"`
	Message   string    `bson:"message"`
	IsRead    bool      `bson:"is_read"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d notificationDocument) toDomain() notification.Notification {
	return notification.Notification{
		ID:        d.ID,
		From:      d.From,
		To:        d.To,
		Type:      notification.NotificationType(d.Type),
		Title:     d.Title,
		Message:   d.Message,
		IsRead:    d.IsRead,
		CreatedAt: d.CreatedAt,
	}
}

type notificationRepositoryImpl struct {
	notifications *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) notification.Repository {
	return &notificationRepositoryImpl{notifications: db.Collection(NotificationsCollection)}
}

// Create implements notification.Repository.
func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	n.ID = newID()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now()
	}

	doc := notificationDocument{
		ID:        n.ID,
		From:      n.From,
		To:        n.To,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if _, err := r.notifications.InsertOne(ctx, doc); err != nil {
		return notification.Notification{}, fmt.Errorf("insert notification: %w", err)
	}
	return n, nil
}

// ListByRecipient implements notification.Repository.
func (r *notificationRepositoryImpl) ListByRecipient(ctx context.Context, recipientID string, page, limit int) ([]notification.Notification, int64, int64, error) {
	filter := bson.M{"to": recipientID}

	total, err := r.notifications.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("count notifications: %w", err)
	}
	unread, err := r.notifications.CountDocuments(ctx, bson.M{"to": recipientID, "is_read": false})
	if err != nil {
		return nil, 0, 0, fmt.Errorf("count unread notifications: %w", err)
	}

	cursor, err := r.notifications.Find(ctx, filter, pageOptions(newestFirst, page, limit))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("find notifications: %w", err)
	}
	var docs []notificationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, 0, fmt.Errorf("decode notifications: %w", err)
	}

	out := make([]notification.Notification, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, total, unread, nil
}

// MarkAllRead implements notification.Repository.
func (r *notificationRepositoryImpl) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	res, err := r.notifications.UpdateMany(ctx,
		bson.M{"to": recipientID, "is_read": false},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return 0, fmt.Errorf("mark notifications read: %w", err)
	}
	return res.ModifiedCount, nil
}
