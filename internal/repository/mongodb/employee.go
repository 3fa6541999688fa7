package mongodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type employeeDocument struct {
	ID           string               `bson:"_id"`
	EmployeeCode string               `bson:"employee_code"`
	Username     string               `bson:"username"`
	Email        string               `bson:"email"`
	PasswordHash string               `bson:"password"`
	DOB          time.Time            `bson:"dob"`
	Gender       string               `bson:"gender"`
	Designation  string               `bson:"designation"`
	Salary       float64              `bson:"salary"`
	Role         string               `bson:"role"`
	Status       string               `bson:"status"`
	ProfilePic   *employee.ProfilePic `bson:"profile_pic"`
	CreatedBy    *string              `bson:"created_by"`
	ReportingTo  *string              `bson:"reporting_to"`
	SessionID    *string              `bson:"session_id"`
	CreatedAt    time.Time            `bson:"created_at"`
	UpdatedAt    time.Time            `bson:"updated_at"`
}

func newEmployeeDocument(e employee.Employee) employeeDocument {
	return employeeDocument{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		Username:     e.Username,
		Email:        strings.ToLower(e.Email),
		PasswordHash: e.PasswordHash,
		DOB:          e.DOB,
		Gender:       string(e.Gender),
		Designation:  e.Designation,
		Salary:       e.Salary,
		Role:         string(e.Role),
		Status:       string(e.Status),
		ProfilePic:   e.ProfilePic,
		CreatedBy:    e.CreatedBy,
		ReportingTo:  e.ReportingTo,
		SessionID:    e.SessionID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (d employeeDocument) toDomain() employee.Employee {
	return employee.Employee{
		ID:           d.ID,
		EmployeeCode: d.EmployeeCode,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		DOB:          d.DOB,
		Gender:       employee.Gender(d.Gender),
		Designation:  d.Designation,
		Salary:       d.Salary,
		Role:         user.Role(d.Role),
		Status:       employee.Status(d.Status),
		ProfilePic:   d.ProfilePic,
		CreatedBy:    d.CreatedBy,
		ReportingTo:  d.ReportingTo,
		SessionID:    d.SessionID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type counterDocument struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

type employeeRepositoryImpl struct {
	employees *mongo.Collection
	counters  *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) employee.EmployeeRepository {
	return &employeeRepositoryImpl{
		employees: db.Collection(EmployeesCollection),
		counters:  db.Collection(CountersCollection),
	}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	if newEmployee.ID == "" {
		newEmployee.ID = newID()
	}
	newEmployee.CreatedAt = now()
	newEmployee.UpdatedAt = newEmployee.CreatedAt

	doc := newEmployeeDocument(newEmployee)
	if _, err := r.employees.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	return doc.toDomain(), nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, patch employee.Patch) (employee.Employee, error) {
	set := bson.M{"updated_at": now()}
	if patch.Username != nil {
		set["username"] = *patch.Username
	}
	if patch.Email != nil {
		set["email"] = strings.ToLower(*patch.Email)
	}
	if patch.DOB != nil {
		set["dob"] = *patch.DOB
	}
	if patch.Gender != nil {
		set["gender"] = string(*patch.Gender)
	}
	if patch.Designation != nil {
		set["designation"] = *patch.Designation
	}
	if patch.Salary != nil {
		set["salary"] = *patch.Salary
	}
	if patch.Role != nil {
		set["role"] = string(*patch.Role)
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.ReportingTo != nil {
		set["reporting_to"] = *patch.ReportingTo
	}
	if patch.CreatedBy != nil {
		set["created_by"] = *patch.CreatedBy
	}
	if patch.ProfilePic != nil {
		set["profile_pic"] = patch.ProfilePic
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc employeeDocument
	err := r.employees.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		switch {
		case isNoDocuments(err):
			return employee.Employee{}, employee.ErrEmployeeNotFound
		case mongo.IsDuplicateKeyError(err):
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("update employee: %w", err)
	}
	return doc.toDomain(), nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	res, err := r.employees.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActive(ctx context.Context, page, size int) ([]employee.Employee, int64, error) {
	filter := bson.M{"status": string(employee.StatusActive)}

	total, err := r.employees.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count active employees: %w", err)
	}

	employees, err := r.find(ctx, filter, pageOptions(creationOrder, page, size))
	if err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// ListByReportingTo implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByReportingTo(ctx context.Context, managerID string) ([]employee.Employee, error) {
	return r.find(ctx, bson.M{"reporting_to": managerID}, options.Find().SetSort(creationOrder))
}

// ListByReportingToAny implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByReportingToAny(ctx context.Context, managerIDs []string) ([]employee.Employee, error) {
	if len(managerIDs) == 0 {
		return []employee.Employee{}, nil
	}
	return r.find(ctx, bson.M{"reporting_to": bson.M{"$in": managerIDs}}, options.Find().SetSort(creationOrder))
}

// FindByDesignation implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) FindByDesignation(ctx context.Context, designation string) (*employee.Employee, error) {
	var doc employeeDocument
	err := r.employees.FindOne(ctx, bson.M{"designation": designation}, options.FindOne().SetSort(creationOrder)).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find employee by designation: %w", err)
	}
	e := doc.toDomain()
	return &e, nil
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	return r.employees.CountDocuments(ctx, bson.M{})
}

// NextSequence implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) NextSequence(ctx context.Context, role user.Role) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter counterDocument
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "employee_code_" + string(role)},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("increment employee code counter: %w", err)
	}
	return counter.Seq, nil
}

// SetSession implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetSession(ctx context.Context, id string, sessionID *string) error {
	res, err := r.employees.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"session_id": sessionID, "updated_at": now()}},
	)
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	if res.MatchedCount == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// IsSessionActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) IsSessionActive(ctx context.Context, id, sessionID string) (bool, error) {
	n, err := r.employees.CountDocuments(ctx, bson.M{
		"_id":        id,
		"session_id": sessionID,
		"status":     string(employee.StatusActive),
	})
	if err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}
	return n > 0, nil
}

var creationOrder = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}

func (r *employeeRepositoryImpl) findOne(ctx context.Context, filter bson.M) (employee.Employee, error) {
	var doc employeeDocument
	if err := r.employees.FindOne(ctx, filter).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("find employee: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *employeeRepositoryImpl) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]employee.Employee, error) {
	cursor, err := r.employees.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}

	var docs []employeeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}

	out := make([]employee.Employee, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
