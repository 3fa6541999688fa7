package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/calendar"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type holidayDocument struct {
	ID             string    `bson:"_id"`
	Name           string    `bson:"holiday_name"`
	FromDate       time.Time `bson:"from_date"`
	ToDate         time.Time `bson:"to_date"`
	Classification string    `bson:"classification"`
	TotalDays      int       `bson:"total_days"`
	CreatedAt      time.Time `bson:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

func (d holidayDocument) toDomain() calendar.Holiday {
	return calendar.Holiday{
		ID:             d.ID,
		Name:           d.Name,
		FromDate:       d.FromDate,
		ToDate:         d.ToDate,
		Classification: calendar.Classification(d.Classification),
		TotalDays:      d.TotalDays,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

type holidayRepositoryImpl struct {
	holidays *mongo.Collection
}

func NewHolidayRepository(db *mongo.Database) calendar.HolidayRepository {
	return &holidayRepositoryImpl{holidays: db.Collection(HolidaysCollection)}
}

var holidayOrder = bson.D{{Key: "from_date", Value: 1}}

// Create implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, holiday calendar.Holiday) (calendar.Holiday, error) {
	holiday.ID = newID()
	holiday.CreatedAt = now()
	holiday.UpdatedAt = holiday.CreatedAt

	doc := holidayDocument{
		ID:             holiday.ID,
		Name:           holiday.Name,
		FromDate:       holiday.FromDate,
		ToDate:         holiday.ToDate,
		Classification: string(holiday.Classification),
		TotalDays:      holiday.TotalDays,
		CreatedAt:      holiday.CreatedAt,
		UpdatedAt:      holiday.UpdatedAt,
	}
	if _, err := r.holidays.InsertOne(ctx, doc); err != nil {
		return calendar.Holiday{}, fmt.Errorf("insert holiday: %w", err)
	}
	return holiday, nil
}

// Update implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) Update(ctx context.Context, holiday calendar.Holiday) (calendar.Holiday, error) {
	update := bson.M{"$set": bson.M{
		"holiday_name":   holiday.Name,
		"from_date":      holiday.FromDate,
		"to_date":        holiday.ToDate,
		"classification": string(holiday.Classification),
		"total_days":     holiday.TotalDays,
		"updated_at":     now(),
	}}

	var doc holidayDocument
	err := r.holidays.FindOneAndUpdate(ctx, bson.M{"_id": holiday.ID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			return calendar.Holiday{}, calendar.ErrHolidayNotFound
		}
		return calendar.Holiday{}, fmt.Errorf("update holiday: %w", err)
	}
	return doc.toDomain(), nil
}

// Delete implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) (calendar.Holiday, error) {
	var doc holidayDocument
	if err := r.holidays.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return calendar.Holiday{}, calendar.ErrHolidayNotFound
		}
		return calendar.Holiday{}, fmt.Errorf("delete holiday: %w", err)
	}
	return doc.toDomain(), nil
}

// GetByID implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (calendar.Holiday, error) {
	h, err := r.findOne(ctx, bson.M{"_id": id})
	if err != nil {
		return calendar.Holiday{}, err
	}
	if h == nil {
		return calendar.Holiday{}, calendar.ErrHolidayNotFound
	}
	return *h, nil
}

// FindCovering implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) FindCovering(ctx context.Context, day time.Time) (*calendar.Holiday, error) {
	return r.findOne(ctx, overlapFilter(day, day))
}

// FindOverlapping implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) FindOverlapping(ctx context.Context, from, to time.Time, excludeID string) (*calendar.Holiday, error) {
	filter := overlapFilter(from, to)
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	return r.findOne(ctx, filter)
}

// ListWithin implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) ListWithin(ctx context.Context, from, to *time.Time) ([]calendar.Holiday, error) {
	filter := bson.M{}
	if from != nil {
		filter["from_date"] = bson.M{"$gte": *from}
	}
	if to != nil {
		filter["to_date"] = bson.M{"$lte": *to}
	}
	return r.find(ctx, filter)
}

// ListOverlapping implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) ListOverlapping(ctx context.Context, from, to time.Time) ([]calendar.Holiday, error) {
	return r.find(ctx, overlapFilter(from, to))
}

func (r *holidayRepositoryImpl) findOne(ctx context.Context, filter bson.M) (*calendar.Holiday, error) {
	var doc holidayDocument
	err := r.holidays.FindOne(ctx, filter, options.FindOne().SetSort(holidayOrder)).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find holiday: %w", err)
	}
	h := doc.toDomain()
	return &h, nil
}

func (r *holidayRepositoryImpl) find(ctx context.Context, filter bson.M) ([]calendar.Holiday, error) {
	cursor, err := r.holidays.Find(ctx, filter, options.Find().SetSort(holidayOrder))
	if err != nil {
		return nil, fmt.Errorf("find holidays: %w", err)
	}

	var docs []holidayDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode holidays: %w", err)
	}

	out := make([]calendar.Holiday, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
