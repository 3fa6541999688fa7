package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/attendance"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type attendanceDocument struct {
	ID         string     `bson:"_id"`
	EmployeeID string     `bson:"employee_id"`
	Date       time.Time  `bson:"date"`
	CheckIn    time.Time  `bson:"check_in"`
	CheckOut   *time.Time `bson:"check_out"`
	TotalHours *float64   `bson:"total_hours"`
	Status     string     `bson:"status"`
	IsPresent  bool       `bson:"is_present"`
	CreatedAt  time.Time  `bson:"created_at"`
	UpdatedAt  time.Time  `bson:"updated_at"`
}

func (d attendanceDocument) toDomain() attendance.Attendance {
	return attendance.Attendance{
		ID:         d.ID,
		EmployeeID: d.EmployeeID,
		Date:       d.Date,
		CheckIn:    d.CheckIn,
		CheckOut:   d.CheckOut,
		TotalHours: d.TotalHours,
		Status:     attendance.Status(d.Status),
		IsPresent:  d.IsPresent,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type attendanceRepositoryImpl struct {
	attendances *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{attendances: db.Collection(AttendancesCollection)}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	a.ID = newID()
	a.CreatedAt = now()
	a.UpdatedAt = a.CreatedAt

	doc := attendanceDocument{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		TotalHours: a.TotalHours,
		Status:     string(a.Status),
		IsPresent:  a.IsPresent,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
	if _, err := r.attendances.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return attendance.Attendance{}, attendance.ErrDuplicateAttendance
		}
		return attendance.Attendance{}, fmt.Errorf("insert attendance: %w", err)
	}
	return a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*attendance.Attendance, error) {
	var doc attendanceDocument
	err := r.attendances.FindOne(ctx, bson.M{"employee_id": employeeID, "date": day}).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	a := doc.toDomain()
	return &a, nil
}

// CloseDay implements attendance.AttendanceRepository. The update only
// matches an open record, so two concurrent check-outs cannot both win.
func (r *attendanceRepositoryImpl) CloseDay(ctx context.Context, id string, checkOut time.Time, totalHours float64) (attendance.Attendance, error) {
	update := bson.M{"$set": bson.M{
		"check_out":   checkOut,
		"total_hours": totalHours,
		"status":      string(attendance.StatusCheckOut),
		"updated_at":  now(),
	}}

	var doc attendanceDocument
	err := r.attendances.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "check_out": nil},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == nil {
		return doc.toDomain(), nil
	}
	if !isNoDocuments(err) {
		return attendance.Attendance{}, fmt.Errorf("close attendance day: %w", err)
	}

	if err := r.attendances.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("find attendance: %w", err)
	}
	return doc.toDomain(), attendance.ErrDayClosed
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, day time.Time, employeeIDs []string) ([]attendance.Attendance, error) {
	if len(employeeIDs) == 0 {
		return []attendance.Attendance{}, nil
	}
	return r.find(ctx, bson.M{"date": day, "employee_id": bson.M{"$in": employeeIDs}})
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	return r.find(ctx, bson.M{
		"employee_id": employeeID,
		"date":        bson.M{"$gte": from, "$lte": to},
	})
}

func (r *attendanceRepositoryImpl) find(ctx context.Context, filter bson.M) ([]attendance.Attendance, error) {
	cursor, err := r.attendances.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find attendances: %w", err)
	}

	var docs []attendanceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode attendances: %w", err)
	}

	out := make([]attendance.Attendance, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
