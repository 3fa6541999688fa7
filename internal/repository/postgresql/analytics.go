package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type analyticsRepositoryImpl struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) analytics.AnalyticsRepository {
	return &analyticsRepositoryImpl{db: db}
}

// CountByDesignation implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) CountByDesignation(ctx context.Context, designation *string) ([]analytics.DesignationCount, error) {
	query := `
		SELECT designation, COUNT(*)
		FROM employees
		WHERE ($1::text IS NULL OR designation = $1)
		GROUP BY designation
		ORDER BY COUNT(*) DESC, designation ASC
	`
	out := []analytics.DesignationCount{}
	err := r.query(ctx, query, []interface{}{designation}, func(rows pgx.Rows) error {
		var c analytics.DesignationCount
		if err := rows.Scan(&c.Designation, &c.Employees); err != nil {
			return err
		}
		out = append(out, c)
		return nil
	})
	return out, err
}

// CountByManager implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) CountByManager(ctx context.Context, designation *string) ([]analytics.ManagerReportCount, error) {
	query := `
		SELECT m.id, m.employee_code, m.username, m.designation, COUNT(e.id)
		FROM employees m
		LEFT JOIN employees e ON e.reporting_to = m.id
		WHERE m.role = $1 AND ($2::text IS NULL OR m.designation = $2)
		GROUP BY m.id, m.employee_code, m.username, m.designation, m.created_at
		ORDER BY m.created_at ASC, m.id ASC
	`
	out := []analytics.ManagerReportCount{}
	err := r.query(ctx, query, []interface{}{string(user.RoleManager), designation}, func(rows pgx.Rows) error {
		var c analytics.ManagerReportCount
		if err := rows.Scan(&c.ManagerID, &c.EmployeeCode, &c.Username, &c.Designation, &c.Reports); err != nil {
			return err
		}
		out = append(out, c)
		return nil
	})
	return out, err
}

// SalaryStatsByDesignation implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) SalaryStatsByDesignation(ctx context.Context, designation *string) ([]analytics.SalaryStats, error) {
	query := `
		SELECT designation, SUM(salary), AVG(salary), MIN(salary), MAX(salary), COUNT(*)
		FROM employees
		WHERE role = $1 AND ($2::text IS NULL OR designation = $2)
		GROUP BY designation
		ORDER BY SUM(salary) DESC
	`
	out := []analytics.SalaryStats{}
	err := r.query(ctx, query, []interface{}{string(user.RoleEmployee), designation}, func(rows pgx.Rows) error {
		var s analytics.SalaryStats
		if err := rows.Scan(&s.Designation, &s.Total, &s.Average, &s.Min, &s.Max, &s.Employees); err != nil {
			return err
		}
		out = append(out, s)
		return nil
	})
	return out, err
}

// SalaryExtremesByDesignation implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) SalaryExtremesByDesignation(ctx context.Context, designation *string) ([]analytics.SalaryExtremes, error) {
	query := `
		WITH ranked AS (
			SELECT designation, username, email, salary,
				ROW_NUMBER() OVER (PARTITION BY designation ORDER BY salary DESC, created_at ASC) AS hi,
				ROW_NUMBER() OVER (PARTITION BY designation ORDER BY salary ASC, created_at DESC) AS lo,
				COUNT(*) OVER (PARTITION BY designation) AS members
			FROM employees
			WHERE role = $1 AND ($2::text IS NULL OR designation = $2)
		)
		SELECT h.designation, h.username, h.email, h.salary, l.username, l.email, l.salary, h.members
		FROM ranked h
		JOIN ranked l ON l.designation = h.designation AND l.lo = 1
		WHERE h.hi = 1
		ORDER BY h.designation ASC
	`
	out := []analytics.SalaryExtremes{}
	err := r.query(ctx, query, []interface{}{string(user.RoleEmployee), designation}, func(rows pgx.Rows) error {
		var s analytics.SalaryExtremes
		err := rows.Scan(
			&s.Designation,
			&s.Highest.Username, &s.Highest.Email, &s.Highest.Salary,
			&s.Lowest.Username, &s.Lowest.Email, &s.Lowest.Salary,
			&s.Employees,
		)
		if err != nil {
			return err
		}
		out = append(out, s)
		return nil
	})
	return out, err
}

func (r *analyticsRepositoryImpl) query(ctx context.Context, query string, args []interface{}, scan func(pgx.Rows) error) error {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to run analytics query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("failed to scan analytics row: %w", err)
		}
	}
	return rows.Err()
}
