package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/attendance"
)

type attendanceKey struct {
	employeeID string
	day        time.Time
}

type AttendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.Attendance
	byDay   map[attendanceKey]string
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		records: make(map[string]attendance.Attendance),
		byDay:   make(map[attendanceKey]string),
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := attendanceKey{a.EmployeeID, a.Date}
	if _, taken := r.byDay[key]; taken {
		return attendance.Attendance{}, attendance.ErrDuplicateAttendance
	}

	a.ID = newID()
	a.CreatedAt = now()
	a.UpdatedAt = a.CreatedAt
	r.records[a.ID] = a
	r.byDay[key] = a.ID
	return a, nil
}

func (r *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byDay[attendanceKey{employeeID, day}]
	if !ok {
		return nil, nil
	}
	a := r.records[id]
	return &a, nil
}

func (r *AttendanceRepository) CloseDay(ctx context.Context, id string, checkOut time.Time, totalHours float64) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	if a.IsClosed() {
		return a, attendance.ErrDayClosed
	}

	a.CheckOut = &checkOut
	a.TotalHours = &totalHours
	a.Status = attendance.StatusCheckOut
	a.UpdatedAt = now()
	r.records[id] = a
	return a, nil
}

func (r *AttendanceRepository) ListByDate(ctx context.Context, day time.Time, employeeIDs []string) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []attendance.Attendance{}
	for _, employeeID := range employeeIDs {
		if id, ok := r.byDay[attendanceKey{employeeID, day}]; ok {
			out = append(out, r.records[id])
		}
	}
	return out, nil
}

func (r *AttendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []attendance.Attendance{}
	for _, a := range r.records {
		if a.EmployeeID == employeeID && !a.Date.Before(from) && !a.Date.After(to) {
			out = append(out, a)
		}
	}
	sortByTime(out, func(a attendance.Attendance) time.Time { return a.Date }, false)
	return out, nil
}
