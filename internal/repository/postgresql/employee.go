package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, employee_code, username, email, password_hash, dob, gender, designation,
	salary, role, status, profile_pic, created_by, reporting_to, session_id, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		e   employee.Employee
		dob *time.Time
	)
	err := row.Scan(
		&e.ID,
		&e.EmployeeCode,
		&e.Username,
		&e.Email,
		&e.PasswordHash,
		&dob,
		&e.Gender,
		&e.Designation,
		&e.Salary,
		&e.Role,
		&e.Status,
		&e.ProfilePic,
		&e.CreatedBy,
		&e.ReportingTo,
		&e.SessionID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if dob != nil {
		e.DOB = *dob
	}
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if newEmployee.ID == "" {
		newEmployee.ID = newID()
	}
	var dob *time.Time
	if !newEmployee.DOB.IsZero() {
		d := dateOnly(newEmployee.DOB)
		dob = &d
	}

	query := `
		INSERT INTO employees (id, employee_code, username, email, password_hash, dob, gender, designation,
			salary, role, status, profile_pic, created_by, reporting_to, session_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.EmployeeCode,
		newEmployee.Username,
		strings.ToLower(newEmployee.Email),
		newEmployee.PasswordHash,
		dob,
		string(newEmployee.Gender),
		newEmployee.Designation,
		newEmployee.Salary,
		string(newEmployee.Role),
		string(newEmployee.Status),
		newEmployee.ProfilePic,
		newEmployee.CreatedBy,
		newEmployee.ReportingTo,
		newEmployee.SessionID,
	))
	if err != nil {
		if pgErrorCode(err) == codeUniqueViolation {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE LOWER(email) = LOWER($1)`, email)
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, patch employee.Patch) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	updates := []string{}
	args := []interface{}{}
	argIdx := 1
	set := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if patch.Username != nil {
		set("username", *patch.Username)
	}
	if patch.Email != nil {
		set("email", strings.ToLower(*patch.Email))
	}
	if patch.DOB != nil {
		set("dob", dateOnly(*patch.DOB))
	}
	if patch.Gender != nil {
		set("gender", string(*patch.Gender))
	}
	if patch.Designation != nil {
		set("designation", *patch.Designation)
	}
	if patch.Salary != nil {
		set("salary", *patch.Salary)
	}
	if patch.Role != nil {
		set("role", string(*patch.Role))
	}
	if patch.Status != nil {
		set("status", string(*patch.Status))
	}
	if patch.ReportingTo != nil {
		set("reporting_to", *patch.ReportingTo)
	}
	if patch.CreatedBy != nil {
		set("created_by", *patch.CreatedBy)
	}
	if patch.ProfilePic != nil {
		set("profile_pic", patch.ProfilePic)
	}
	updates = append(updates, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE employees SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(updates, ", "), argIdx, employeeColumns)
	args = append(args, id)

	updated, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		switch {
		case isNoRows(err):
			return employee.Employee{}, employee.ErrEmployeeNotFound
		case pgErrorCode(err) == codeUniqueViolation:
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActive(ctx context.Context, page, size int) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status = $1`, string(employee.StatusActive)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE status = $1
		ORDER BY created_at ASC, id ASC LIMIT $2 OFFSET $3`
	employees, err := r.list(ctx, query, string(employee.StatusActive), size, (page-1)*size)
	if err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// ListByReportingTo implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByReportingTo(ctx context.Context, managerID string) ([]employee.Employee, error) {
	return r.ListByReportingToAny(ctx, []string{managerID})
}

// ListByReportingToAny implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByReportingToAny(ctx context.Context, managerIDs []string) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE reporting_to = ANY($1)
		ORDER BY created_at ASC, id ASC`
	return r.list(ctx, query, managerIDs)
}

// FindByDesignation implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) FindByDesignation(ctx context.Context, designation string) (*employee.Employee, error) {
	e, err := r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE designation = $1
		ORDER BY created_at ASC LIMIT 1`, designation)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, nil
}

// NextSequence implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) NextSequence(ctx context.Context, role user.Role) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO counters (name, seq) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
		RETURNING seq
	`
	var seq int64
	if err := q.QueryRow(ctx, query, "employee_code_"+string(role)).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to increment employee code counter: %w", err)
	}
	return seq, nil
}

// SetSession implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetSession(ctx context.Context, id string, sessionID *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET session_id = $1, updated_at = NOW() WHERE id = $2`, sessionID, id)
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// IsSessionActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) IsSessionActive(ctx context.Context, id, sessionID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var active bool
	query := `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1 AND session_id = $2 AND status = $3)`
	if err := q.QueryRow(ctx, query, id, sessionID, string(employee.StatusActive)).Scan(&active); err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return active, nil
}

func (r *employeeRepositoryImpl) getOne(ctx context.Context, query string, args ...interface{}) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
