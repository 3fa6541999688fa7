package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
)

// AnalyticsRepository aggregates over the employees held by an EmployeeRepository.
type AnalyticsRepository struct {
	employees *EmployeeRepository
}

func NewAnalyticsRepository(employees *EmployeeRepository) *AnalyticsRepository {
	return &AnalyticsRepository{employees: employees}
}

func (r *AnalyticsRepository) CountByDesignation(ctx context.Context, designation *string) ([]analytics.DesignationCount, error) {
	counts := make(map[string]int64)
	for _, e := range r.matching(designation, nil) {
		counts[e.Designation]++
	}

	out := make([]analytics.DesignationCount, 0, len(counts))
	for d, n := range counts {
		out = append(out, analytics.DesignationCount{Designation: d, Employees: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Employees != out[j].Employees {
			return out[i].Employees > out[j].Employees
		}
		return out[i].Designation < out[j].Designation
	})
	return out, nil
}

func (r *AnalyticsRepository) CountByManager(ctx context.Context, designation *string) ([]analytics.ManagerReportCount, error) {
	role := user.RoleManager
	all := r.employees.All()

	reports := make(map[string]int64)
	for _, e := range all {
		if e.ReportingTo != nil {
			reports[*e.ReportingTo]++
		}
	}

	out := []analytics.ManagerReportCount{}
	for _, m := range r.matching(designation, &role) {
		out = append(out, analytics.ManagerReportCount{
			ManagerID:    m.ID,
			EmployeeCode: m.EmployeeCode,
			Username:     m.Username,
			Designation:  m.Designation,
			Reports:      reports[m.ID],
		})
	}
	return out, nil
}

func (r *AnalyticsRepository) SalaryStatsByDesignation(ctx context.Context, designation *string) ([]analytics.SalaryStats, error) {
	role := user.RoleEmployee
	groups := groupByDesignation(r.matching(designation, &role))

	out := make([]analytics.SalaryStats, 0, len(groups))
	for d, members := range groups {
		s := analytics.SalaryStats{Designation: d, Min: members[0].Salary, Max: members[0].Salary}
		for _, e := range members {
			s.Total += e.Salary
			s.Employees++
			if e.Salary < s.Min {
				s.Min = e.Salary
			}
			if e.Salary > s.Max {
				s.Max = e.Salary
			}
		}
		s.Average = s.Total / float64(s.Employees)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out, nil
}

func (r *AnalyticsRepository) SalaryExtremesByDesignation(ctx context.Context, designation *string) ([]analytics.SalaryExtremes, error) {
	role := user.RoleEmployee
	groups := groupByDesignation(r.matching(designation, &role))

	out := make([]analytics.SalaryExtremes, 0, len(groups))
	for d, members := range groups {
		sort.SliceStable(members, func(i, j int) bool { return members[i].Salary > members[j].Salary })
		hi, lo := members[0], members[len(members)-1]
		out = append(out, analytics.SalaryExtremes{
			Designation: d,
			Highest:     analytics.PaidEmployee{Username: hi.Username, Email: hi.Email, Salary: hi.Salary},
			Lowest:      analytics.PaidEmployee{Username: lo.Username, Email: lo.Email, Salary: lo.Salary},
			Employees:   int64(len(members)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Designation < out[j].Designation })
	return out, nil
}

func (r *AnalyticsRepository) matching(designation *string, role *user.Role) []employee.Employee {
	out := []employee.Employee{}
	for _, e := range r.employees.All() {
		if designation != nil && e.Designation != *designation {
			continue
		}
		if role != nil && e.Role != *role {
			continue
		}
		out = append(out, e)
	}
	return out
}

func groupByDesignation(employees []employee.Employee) map[string][]employee.Employee {
	groups := make(map[string][]employee.Employee)
	for _, e := range employees {
		groups[e.Designation] = append(groups[e.Designation], e)
	}
	return groups
}
