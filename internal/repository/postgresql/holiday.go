package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const holidayColumns = `id, holiday_name, from_date, to_date, classification, total_days, created_at, updated_at`

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) calendar.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func scanHoliday(row pgx.Row) (calendar.Holiday, error) {
	var h calendar.Holiday
	err := row.Scan(&h.ID, &h.Name, &h.FromDate, &h.ToDate, &h.Classification, &h.TotalDays, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}

// Create implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, holiday calendar.Holiday) (calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, holiday_name, from_date, to_date, classification, total_days)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + holidayColumns

	created, err := scanHoliday(q.QueryRow(ctx, query,
		newID(), holiday.Name, holiday.FromDate, holiday.ToDate, string(holiday.Classification), holiday.TotalDays,
	))
	if err != nil {
		if pgErrorCode(err) == codeExclusionViolation {
			return calendar.Holiday{}, calendar.ErrHolidayOverlap
		}
		return calendar.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return created, nil
}

// Update implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) Update(ctx context.Context, holiday calendar.Holiday) (calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holidays
		SET holiday_name = $1, from_date = $2, to_date = $3, classification = $4, total_days = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + holidayColumns

	updated, err := scanHoliday(q.QueryRow(ctx, query,
		holiday.Name, holiday.FromDate, holiday.ToDate, string(holiday.Classification), holiday.TotalDays, holiday.ID,
	))
	if err != nil {
		switch {
		case isNoRows(err):
			return calendar.Holiday{}, calendar.ErrHolidayNotFound
		case pgErrorCode(err) == codeExclusionViolation:
			return calendar.Holiday{}, calendar.ErrHolidayOverlap
		}
		return calendar.Holiday{}, fmt.Errorf("failed to update holiday: %w", err)
	}
	return updated, nil
}

// Delete implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) (calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	deleted, err := scanHoliday(q.QueryRow(ctx, `DELETE FROM holidays WHERE id = $1 RETURNING `+holidayColumns, id))
	if err != nil {
		if isNoRows(err) {
			return calendar.Holiday{}, calendar.ErrHolidayNotFound
		}
		return calendar.Holiday{}, fmt.Errorf("failed to delete holiday: %w", err)
	}
	return deleted, nil
}

// GetByID implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (calendar.Holiday, error) {
	h, err := r.findOne(ctx, `id = $1`, id)
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
	return r.findOne(ctx, `from_date <= $1 AND to_date >= $1`, day)
}

// FindOverlapping implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) FindOverlapping(ctx context.Context, from, to time.Time, excludeID string) (*calendar.Holiday, error) {
	return r.findOne(ctx, `from_date <= $2 AND to_date >= $1 AND id <> $3`, from, to, excludeID)
}

// ListWithin implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) ListWithin(ctx context.Context, from, to *time.Time) ([]calendar.Holiday, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	if from != nil {
		args = append(args, *from)
		conditions = append(conditions, fmt.Sprintf("from_date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conditions = append(conditions, fmt.Sprintf("to_date <= $%d", len(args)))
	}
	return r.list(ctx, strings.Join(conditions, " AND "), args...)
}

// ListOverlapping implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) ListOverlapping(ctx context.Context, from, to time.Time) ([]calendar.Holiday, error) {
	return r.list(ctx, `from_date <= $2 AND to_date >= $1`, from, to)
}

func (r *holidayRepositoryImpl) findOne(ctx context.Context, where string, args ...interface{}) (*calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE ` + where + ` ORDER BY from_date LIMIT 1`
	h, err := scanHoliday(q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get holiday: %w", err)
	}
	return &h, nil
}

func (r *holidayRepositoryImpl) list(ctx context.Context, where string, args ...interface{}) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+holidayColumns+` FROM holidays WHERE `+where+` ORDER BY from_date`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	holidays := []calendar.Holiday{}
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
