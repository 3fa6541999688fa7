// Package mongodb implements the repositories on MongoDB. Documents use
// string ids so references between collections stay plain strings.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	EmployeesCollection     = "employees"
	CountersCollection      = "counters"
	AttendancesCollection   = "attendances"
	LeavesCollection        = "leaves"
	HolidaysCollection      = "holidays"
	NotificationsCollection = "notifications"
)

// EnsureIndexes creates the indexes the repositories rely on. The unique
// indexes back the duplicate checks of attendance and employee email.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		AttendancesCollection: {
			{
				Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_employee_date"),
			},
		},
		EmployeesCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email"),
			},
			{
				Keys:    bson.D{{Key: "reporting_to", Value: 1}},
				Options: options.Index().SetName("idx_reporting_to"),
			},
		},
		LeavesCollection: {
			{
				Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "from_date", Value: 1}, {Key: "to_date", Value: 1}},
				Options: options.Index().SetName("idx_employee_range"),
			},
			{
				Keys:    bson.D{{Key: "reporting_to", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("idx_reporting_status"),
			},
		},
		HolidaysCollection: {
			{
				Keys:    bson.D{{Key: "from_date", Value: 1}, {Key: "to_date", Value: 1}},
				Options: options.Index().SetName("idx_range"),
			},
		},
		NotificationsCollection: {
			{
				Keys:    bson.D{{Key: "to", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_recipient_created"),
			},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
	}
	return nil
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func now() time.Time {
	return time.Now().UTC()
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// pageOptions sorts and limits a find to one page. A non-positive limit returns everything.
func pageOptions(sort bson.D, page, limit int) *options.FindOptions {
	opts := options.Find().SetSort(sort)
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * limit)).SetLimit(int64(limit))
	}
	return opts
}

// overlapFilter matches documents whose [from_date, to_date] shares a day with [from, to].
func overlapFilter(from, to time.Time) bson.M {
	return bson.M{
		"from_date": bson.M{"$lte": to},
		"to_date":   bson.M{"$gte": from},
	}
}
