package analytics

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ========== FILTER ==========

// FilterRequest narrows analytics to one designation
type FilterRequest struct {
	Designation *string
}

// NewFilterRequest treats a blank filter as absent
func NewFilterRequest(raw string) FilterRequest {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FilterRequest{}
	}
	return FilterRequest{Designation: &raw}
}

// ========== BY DESIGNATION ==========

type DesignationCountResponse struct {
	Designation string `json:"designation"`
	Employees   int64  `json:"employees"`
}

// ========== BY MANAGER ==========

type ManagerReportCountResponse struct {
	ManagerID     string `json:"manager_id"`
	EmployeeCode  string `json:"employee_code"`
	ManagerName   string `json:"manager_name"`
	Designation   string `json:"designation"`
	EmployeeCount int64  `json:"employee_count"`
}

// ========== SALARY ==========

type SalaryStatsResponse struct {
	Designation   string  `json:"designation"`
	TotalSalary   float64 `json:"total_salary"`
	AverageSalary float64 `json:"average_salary"`
	MinSalary     float64 `json:"min_salary"`
	MaxSalary     float64 `json:"max_salary"`
	EmployeeCount int64   `json:"employee_count"`
}

func NewSalaryStatsResponse(s SalaryStats) SalaryStatsResponse {
	avg, _ := decimal.NewFromFloat(s.Average).Round(2).Float64()
	return SalaryStatsResponse{
		Designation:   s.Designation,
		TotalSalary:   s.Total,
		AverageSalary: avg,
		MinSalary:     s.Min,
		MaxSalary:     s.Max,
		EmployeeCount: s.Employees,
	}
}

type PaidEmployeeResponse struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Salary   float64 `json:"salary"`
}

type SalaryExtremesResponse struct {
	Designation   string               `json:"designation"`
	HighestPaid   PaidEmployeeResponse `json:"highest_paid"`
	LowestPaid    PaidEmployeeResponse `json:"lowest_paid"`
	EmployeeCount int64                `json:"employee_count"`
}

// ========== COMBINED ==========

// OverviewResponse is the combined response for the analytics overview endpoint
type OverviewResponse struct {
	ByDesignation  []DesignationCountResponse   `json:"by_designation"`
	ByManager      []ManagerReportCountResponse `json:"by_manager"`
	SalaryStats    []SalaryStatsResponse        `json:"salary_stats"`
	SalaryExtremes []SalaryExtremesResponse     `json:"salary_extremes"`
}
