package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/leave"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type leaveDocument struct {
	ID          string     `bson:"_id"`
	EmployeeID  string     `bson:"employee_id"`
	LeaveType   string     `bson:"leave_type"`
	Description *string    `bson:"description"`
	FromDate    time.Time  `bson:"from_date"`
	ToDate      time.Time  `bson:"to_date"`
	TotalDays   int        `bson:"total_days"`
	Status      string     `bson:"status"`
	ReportingTo string     `bson:"reporting_to"`
	DecidedAt   *time.Time `bson:"decided_at"`
	CreatedAt   time.Time  `bson:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at"`
}

func (d leaveDocument) toDomain() leave.Leave {
	return leave.Leave{
		ID:          d.ID,
		EmployeeID:  d.EmployeeID,
		LeaveType:   leave.LeaveType(d.LeaveType),
		Description: d.Description,
		FromDate:    d.FromDate,
		ToDate:      d.ToDate,
		TotalDays:   d.TotalDays,
		Status:      leave.Status(d.Status),
		ReportingTo: d.ReportingTo,
		DecidedAt:   d.DecidedAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type leaveRepositoryImpl struct {
	leaves *mongo.Collection
}

func NewLeaveRepository(db *mongo.Database) leave.LeaveRepository {
	return &leaveRepositoryImpl{leaves: db.Collection(LeavesCollection)}
}

var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

// blocking matches leaves that still hold their days.
var blocking = bson.M{"$ne": string(leave.StatusRejected)}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	l.ID = newID()
	l.CreatedAt = now()
	l.UpdatedAt = l.CreatedAt

	doc := leaveDocument{
		ID:          l.ID,
		EmployeeID:  l.EmployeeID,
		LeaveType:   string(l.LeaveType),
		Description: l.Description,
		FromDate:    l.FromDate,
		ToDate:      l.ToDate,
		TotalDays:   l.TotalDays,
		Status:      string(l.Status),
		ReportingTo: l.ReportingTo,
		DecidedAt:   l.DecidedAt,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
	if _, err := r.leaves.InsertOne(ctx, doc); err != nil {
		return leave.Leave{}, fmt.Errorf("insert leave: %w", err)
	}
	return l, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	var doc leaveDocument
	if err := r.leaves.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("find leave: %w", err)
	}
	return doc.toDomain(), nil
}

// FindConflict implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) FindConflict(ctx context.Context, employeeID string, from, to time.Time) (*leave.Leave, error) {
	filter := overlapFilter(from, to)
	filter["employee_id"] = employeeID
	filter["status"] = blocking

	var doc leaveDocument
	if err := r.leaves.FindOne(ctx, filter, options.FindOne().SetSort(newestFirst)).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find conflicting leave: %w", err)
	}
	l := doc.toDomain()
	return &l, nil
}

// UpdateStatus implements leave.LeaveRepository. Matching on the pending
// status makes the transition conditional.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, decidedAt time.Time) (leave.Leave, error) {
	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"decided_at": decidedAt,
		"updated_at": now(),
	}}

	var doc leaveDocument
	err := r.leaves.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": string(leave.StatusPending)},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == nil {
		return doc.toDomain(), nil
	}
	if !isNoDocuments(err) {
		return leave.Leave{}, fmt.Errorf("update leave status: %w", err)
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return leave.Leave{}, err
	}
	return leave.Leave{}, leave.ErrLeaveAlreadyDecided
}

// ListCovering implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListCovering(ctx context.Context, day time.Time, employeeIDs []string) ([]leave.Leave, error) {
	if len(employeeIDs) == 0 {
		return []leave.Leave{}, nil
	}
	filter := overlapFilter(day, day)
	filter["employee_id"] = bson.M{"$in": employeeIDs}
	filter["status"] = blocking
	return r.find(ctx, filter, options.Find().SetSort(newestFirst))
}

// ListForManager implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListForManager(ctx context.Context, managerID string, today time.Time) ([]leave.Leave, error) {
	filter := bson.M{
		"reporting_to": managerID,
		"$or": bson.A{
			bson.M{"status": string(leave.StatusPending)},
			bson.M{"to_date": bson.M{"$gte": today}},
		},
	}
	return r.find(ctx, filter, options.Find().SetSort(newestFirst))
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to *time.Time) ([]leave.Leave, error) {
	filter := bson.M{}
	if from != nil && to != nil {
		filter = overlapFilter(*from, *to)
	}
	filter["employee_id"] = employeeID
	return r.find(ctx, filter, options.Find().SetSort(newestFirst))
}

// Search implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Search(ctx context.Context, f leave.SearchFilter) ([]leave.Leave, int64, error) {
	filter := bson.M{}
	if f.Status != nil {
		filter["status"] = string(*f.Status)
	}
	if f.ManagerID != nil {
		filter["reporting_to"] = *f.ManagerID
	}
	if f.EmployeeID != nil {
		filter["employee_id"] = *f.EmployeeID
	}
	if f.From != nil {
		filter["to_date"] = bson.M{"$gte": *f.From}
	}
	if f.To != nil {
		filter["from_date"] = bson.M{"$lte": *f.To}
	}

	total, err := r.leaves.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count leaves: %w", err)
	}

	field := "from_date"
	if f.SortBy == leave.SortByToDate {
		field = "to_date"
	}
	direction := -1
	if f.SortOrder == leave.SortAsc {
		direction = 1
	}
	sort := bson.D{{Key: field, Value: direction}, {Key: "_id", Value: direction}}

	leaves, err := r.find(ctx, filter, pageOptions(sort, f.Page, f.Limit))
	if err != nil {
		return nil, 0, err
	}
	return leaves, total, nil
}

type leaveGroup struct {
	ID struct {
		Status    string `bson:"status"`
		LeaveType string `bson:"leave_type"`
	} `bson:"_id"`
	Count     int `bson:"count"`
	TotalDays int `bson:"total_days"`
}

// Summary implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Summary(ctx context.Context, today time.Time) (leave.Summary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "status", Value: "$status"}, {Key: "leave_type", Value: "$leave_type"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_days", Value: bson.D{{Key: "$sum", Value: "$total_days"}}},
		}}},
	}

	cursor, err := r.leaves.Aggregate(ctx, pipeline)
	if err != nil {
		return leave.Summary{}, fmt.Errorf("aggregate leave summary: %w", err)
	}
	var groups []leaveGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return leave.Summary{}, fmt.Errorf("decode leave summary: %w", err)
	}

	s := leave.Summary{
		ByStatus: make(map[leave.Status]int),
		ByType:   make(map[leave.LeaveType]leave.TypeTotal),
	}
	for _, g := range groups {
		s.ByStatus[leave.Status(g.ID.Status)] += g.Count
		t := s.ByType[leave.LeaveType(g.ID.LeaveType)]
		t.Count += g.Count
		t.TotalDays += g.TotalDays
		s.ByType[leave.LeaveType(g.ID.LeaveType)] = t
	}

	onLeave := overlapFilter(today, today)
	onLeave["status"] = string(leave.StatusApproved)
	employees, err := r.leaves.Distinct(ctx, "employee_id", onLeave)
	if err != nil {
		return leave.Summary{}, fmt.Errorf("count employees on leave: %w", err)
	}

	s.OnLeaveToday = len(employees)
	s.PendingApprovals = s.ByStatus[leave.StatusPending]
	return s, nil
}

func (r *leaveRepositoryImpl) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]leave.Leave, error) {
	cursor, err := r.leaves.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find leaves: %w", err)
	}

	var docs []leaveDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode leaves: %w", err)
	}

	out := make([]leave.Leave, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
