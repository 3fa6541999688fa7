package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveColumns = `id, employee_id, leave_type, description, from_date, to_date, total_days, status,
	reporting_to, decided_at, created_at, updated_at`

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID,
		&l.EmployeeID,
		&l.LeaveType,
		&l.Description,
		&l.FromDate,
		&l.ToDate,
		&l.TotalDays,
		&l.Status,
		&l.ReportingTo,
		&l.DecidedAt,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

// Create implements leave.LeaveRepository. The exclusion constraint on
// leaves rejects an overlapping non-rejected leave of the same employee.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (id, employee_id, leave_type, description, from_date, to_date, total_days, status, reporting_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + leaveColumns

	created, err := scanLeave(q.QueryRow(ctx, query,
		newID(), l.EmployeeID, string(l.LeaveType), l.Description, l.FromDate, l.ToDate, l.TotalDays, string(l.Status), l.ReportingTo,
	))
	if err != nil {
		if pgErrorCode(err) == codeExclusionViolation {
			return leave.Leave{}, leave.ErrLeaveOverlap
		}
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeave(q.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leaves WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave: %w", err)
	}
	return l, nil
}

// FindConflict implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) FindConflict(ctx context.Context, employeeID string, from, to time.Time) (*leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + ` FROM leaves
		WHERE employee_id = $1 AND status <> $2 AND from_date <= $4 AND to_date >= $3
		ORDER BY created_at DESC
		LIMIT 1
	`
	l, err := scanLeave(q.QueryRow(ctx, query, employeeID, string(leave.StatusRejected), from, to))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find conflicting leave: %w", err)
	}
	return &l, nil
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, decidedAt time.Time) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $1, decided_at = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
		RETURNING ` + leaveColumns

	updated, err := scanLeave(q.QueryRow(ctx, query, string(status), decidedAt, id, string(leave.StatusPending)))
	if err == nil {
		return updated, nil
	}
	if !isNoRows(err) {
		return leave.Leave{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return leave.Leave{}, err
	}
	return leave.Leave{}, leave.ErrLeaveAlreadyDecided
}

// ListCovering implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListCovering(ctx context.Context, day time.Time, employeeIDs []string) ([]leave.Leave, error) {
	return r.list(ctx,
		`employee_id = ANY($1) AND status <> $2 AND from_date <= $3 AND to_date >= $3 ORDER BY created_at DESC`,
		employeeIDs, string(leave.StatusRejected), day,
	)
}

// ListForManager implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListForManager(ctx context.Context, managerID string, today time.Time) ([]leave.Leave, error) {
	return r.list(ctx,
		`reporting_to = $1 AND (status = $2 OR to_date >= $3) ORDER BY created_at DESC`,
		managerID, string(leave.StatusPending), today,
	)
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to *time.Time) ([]leave.Leave, error) {
	if from != nil && to != nil {
		return r.list(ctx,
			`employee_id = $1 AND from_date <= $3 AND to_date >= $2 ORDER BY created_at DESC`,
			employeeID, *from, *to,
		)
	}
	return r.list(ctx, `employee_id = $1 ORDER BY created_at DESC`, employeeID)
}

// Search implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Search(ctx context.Context, f leave.SearchFilter) ([]leave.Leave, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	add := func(condition string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if f.Status != nil {
		add("status = $%d", string(*f.Status))
	}
	if f.ManagerID != nil {
		add("reporting_to = $%d", *f.ManagerID)
	}
	if f.EmployeeID != nil {
		add("employee_id = $%d", *f.EmployeeID)
	}
	if f.From != nil {
		add("to_date >= $%d", *f.From)
	}
	if f.To != nil {
		add("from_date <= $%d", *f.To)
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leaves WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leaves: %w", err)
	}

	sortColumn := "from_date"
	if f.SortBy == leave.SortByToDate {
		sortColumn = "to_date"
	}
	sortOrder := "DESC"
	if f.SortOrder == leave.SortAsc {
		sortOrder = "ASC"
	}

	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	query := fmt.Sprintf(`%s ORDER BY %s %s, id %s LIMIT $%d OFFSET $%d`,
		where, sortColumn, sortOrder, sortOrder, len(args)-1, len(args))

	leaves, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return leaves, total, nil
}

// Summary implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Summary(ctx context.Context, today time.Time) (leave.Summary, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT status, leave_type, COUNT(*), COALESCE(SUM(total_days), 0)
		FROM leaves
		GROUP BY status, leave_type
	`)
	if err != nil {
		return leave.Summary{}, fmt.Errorf("failed to summarize leaves: %w", err)
	}
	defer rows.Close()

	s := leave.Summary{
		ByStatus: make(map[leave.Status]int),
		ByType:   make(map[leave.LeaveType]leave.TypeTotal),
	}
	for rows.Next() {
		var (
			status    leave.Status
			leaveType leave.LeaveType
			count     int
			days      int
		)
		if err := rows.Scan(&status, &leaveType, &count, &days); err != nil {
			return leave.Summary{}, fmt.Errorf("failed to scan leave summary: %w", err)
		}
		s.ByStatus[status] += count
		t := s.ByType[leaveType]
		t.Count += count
		t.TotalDays += days
		s.ByType[leaveType] = t
	}
	if err := rows.Err(); err != nil {
		return leave.Summary{}, err
	}

	err = q.QueryRow(ctx, `
		SELECT COUNT(DISTINCT employee_id) FROM leaves
		WHERE status = $1 AND from_date <= $2 AND to_date >= $2
	`, string(leave.StatusApproved), today).Scan(&s.OnLeaveToday)
	if err != nil {
		return leave.Summary{}, fmt.Errorf("failed to count employees on leave: %w", err)
	}

	s.PendingApprovals = s.ByStatus[leave.StatusPending]
	return s, nil
}

func (r *leaveRepositoryImpl) list(ctx context.Context, whereAndOrder string, args ...interface{}) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+leaveColumns+` FROM leaves WHERE `+whereAndOrder, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	leaves := []leave.Leave{}
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}
