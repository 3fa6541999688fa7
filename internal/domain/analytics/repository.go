package analytics

import "context"

// DesignationCount is the number of employees holding a designation
type DesignationCount struct {
	Designation string
	Employees   int64
}

// ManagerReportCount is a manager with the number of direct reports
type ManagerReportCount struct {
	ManagerID    string
	EmployeeCode string
	Username     string
	Designation  string
	Reports      int64
}

// SalaryStats aggregates the salaries of one designation
type SalaryStats struct {
	Designation string
	Total       float64
	Average     float64
	Min         float64
	Max         float64
	Employees   int64
}

// PaidEmployee identifies an employee at one end of a salary range
type PaidEmployee struct {
	Username string
	Email    string
	Salary   float64
}

// SalaryExtremes holds the highest and lowest paid employee of a designation
type SalaryExtremes struct {
	Designation string
	Highest     PaidEmployee
	Lowest      PaidEmployee
	Employees   int64
}

// AnalyticsRepository defines the aggregation queries over the employee directory.
// A non-nil designation restricts every query to that designation.
type AnalyticsRepository interface {
	// CountByDesignation groups all employees, largest group first
	CountByDesignation(ctx context.Context, designation *string) ([]DesignationCount, error)

	// CountByManager lists managers with their direct report counts
	CountByManager(ctx context.Context, designation *string) ([]ManagerReportCount, error)

	// SalaryStatsByDesignation covers role employee only, highest total first
	SalaryStatsByDesignation(ctx context.Context, designation *string) ([]SalaryStats, error)

	// SalaryExtremesByDesignation covers role employee only
	SalaryExtremesByDesignation(ctx context.Context, designation *string) ([]SalaryExtremes, error)
}
