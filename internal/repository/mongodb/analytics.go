package mongodb

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type analyticsRepositoryImpl struct {
	employees *mongo.Collection
}

func NewAnalyticsRepository(db *mongo.Database) analytics.AnalyticsRepository {
	return &analyticsRepositoryImpl{employees: db.Collection(EmployeesCollection)}
}

func match(designation *string, role *user.Role) bson.D {
	m := bson.D{}
	if designation != nil {
		m = append(m, bson.E{Key: "designation", Value: *designation})
	}
	if role != nil {
		m = append(m, bson.E{Key: "role", Value: string(*role)})
	}
	return bson.D{{Key: "$match", Value: m}}
}

// CountByDesignation implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) CountByDesignation(ctx context.Context, designation *string) ([]analytics.DesignationCount, error) {
	pipeline := mongo.Pipeline{
		match(designation, nil),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$designation"},
			{Key: "employees", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "employees", Value: -1}, {Key: "_id", Value: 1}}}},
	}

	var rows []struct {
		Designation string `bson:"_id"`
		Employees   int64  `bson:"employees"`
	}
	if err := r.aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}

	out := make([]analytics.DesignationCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, analytics.DesignationCount{Designation: row.Designation, Employees: row.Employees})
	}
	return out, nil
}

// CountByManager implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) CountByManager(ctx context.Context, designation *string) ([]analytics.ManagerReportCount, error) {
	role := user.RoleManager
	pipeline := mongo.Pipeline{
		match(designation, &role),
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: EmployeesCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "reporting_to"},
			{Key: "as", Value: "reports"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "employee_code", Value: 1},
			{Key: "username", Value: 1},
			{Key: "designation", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "reports", Value: bson.D{{Key: "$size", Value: "$reports"}}},
		}}},
		{{Key: "$sort", Value: creationOrder}},
	}

	var rows []struct {
		ID           string `bson:"_id"`
		EmployeeCode string `bson:"employee_code"`
		Username     string `bson:"username"`
		Designation  string `bson:"designation"`
		Reports      int64  `bson:"reports"`
	}
	if err := r.aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}

	out := make([]analytics.ManagerReportCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, analytics.ManagerReportCount{
			ManagerID:    row.ID,
			EmployeeCode: row.EmployeeCode,
			Username:     row.Username,
			Designation:  row.Designation,
			Reports:      row.Reports,
		})
	}
	return out, nil
}

// SalaryStatsByDesignation implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) SalaryStatsByDesignation(ctx context.Context, designation *string) ([]analytics.SalaryStats, error) {
	role := user.RoleEmployee
	pipeline := mongo.Pipeline{
		match(designation, &role),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$designation"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$salary"}}},
			{Key: "average", Value: bson.D{{Key: "$avg", Value: "$salary"}}},
			{Key: "min", Value: bson.D{{Key: "$min", Value: "$salary"}}},
			{Key: "max", Value: bson.D{{Key: "$max", Value: "$salary"}}},
			{Key: "employees", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
	}

	var rows []struct {
		Designation string  `bson:"_id"`
		Total       float64 `bson:"total"`
		Average     float64 `bson:"average"`
		Min         float64 `bson:"min"`
		Max         float64 `bson:"max"`
		Employees   int64   `bson:"employees"`
	}
	if err := r.aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}

	out := make([]analytics.SalaryStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, analytics.SalaryStats(row))
	}
	return out, nil
}

// SalaryExtremesByDesignation implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) SalaryExtremesByDesignation(ctx context.Context, designation *string) ([]analytics.SalaryExtremes, error) {
	role := user.RoleEmployee
	paid := bson.D{
		{Key: "username", Value: "$username"},
		{Key: "email", Value: "$email"},
		{Key: "salary", Value: "$salary"},
	}
	pipeline := mongo.Pipeline{
		match(designation, &role),
		{{Key: "$sort", Value: bson.D{{Key: "salary", Value: -1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$designation"},
			{Key: "highest", Value: bson.D{{Key: "$first", Value: paid}}},
			{Key: "lowest", Value: bson.D{{Key: "$last", Value: paid}}},
			{Key: "employees", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	type paidRow struct {
		Username string  `bson:"username"`
		Email    string  `bson:"email"`
		Salary   float64 `bson:"salary"`
	}
	var rows []struct {
		Designation string  `bson:"_id"`
		Highest     paidRow `bson:"highest"`
		Lowest      paidRow `bson:"lowest"`
		Employees   int64   `bson:"employees"`
	}
	if err := r.aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}

	out := make([]analytics.SalaryExtremes, 0, len(rows))
	for _, row := range rows {
		out = append(out, analytics.SalaryExtremes{
			Designation: row.Designation,
			Highest:     analytics.PaidEmployee(row.Highest),
			Lowest:      analytics.PaidEmployee(row.Lowest),
			Employees:   row.Employees,
		})
	}
	return out, nil
}

func (r *analyticsRepositoryImpl) aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error {
	cursor, err := r.employees.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("aggregate employees: %w", err)
	}
	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("decode aggregation: %w", err)
	}
	return nil
}
