package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
)

type LeaveRepository struct {
	mu     sync.RWMutex
	leaves map[string]leave.Leave
}

func NewLeaveRepository() *LeaveRepository {
	return &LeaveRepository{leaves: make(map[string]leave.Leave)}
}

func (r *LeaveRepository) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l.ID = newID()
	l.CreatedAt = now()
	l.UpdatedAt = l.CreatedAt
	r.leaves[l.ID] = l
	return l, nil
}

func (r *LeaveRepository) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return l, nil
}

func (r *LeaveRepository) FindConflict(ctx context.Context, employeeID string, from, to time.Time) (*leave.Leave, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.all() {
		if l.EmployeeID == employeeID && l.Blocks() && l.Overlaps(from, to) {
			return &l, nil
		}
	}
	return nil, nil
}

func (r *LeaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, decidedAt time.Time) (leave.Leave, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	if l.Status != leave.StatusPending {
		return leave.Leave{}, leave.ErrLeaveAlreadyDecided
	}

	l.Status = status
	l.DecidedAt = &decidedAt
	l.UpdatedAt = now()
	r.leaves[id] = l
	return l, nil
}

func (r *LeaveRepository) ListCovering(ctx context.Context, day time.Time, employeeIDs []string) ([]leave.Leave, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := idSet(employeeIDs)
	out := []leave.Leave{}
	for _, l := range r.all() {
		if _, ok := wanted[l.EmployeeID]; ok && l.Blocks() && l.Covers(day) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *LeaveRepository) ListForManager(ctx context.Context, managerID string, today time.Time) ([]leave.Leave, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []leave.Leave{}
	for _, l := range r.all() {
		if l.ReportingTo != managerID {
			continue
		}
		if l.Status == leave.StatusPending || !l.ToDate.Before(today) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *LeaveRepository) ListByEmployee(ctx context.Context, employeeID string, from, to *time.Time) ([]leave.Leave, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []leave.Leave{}
	for _, l := range r.all() {
		if l.EmployeeID != employeeID {
			continue
		}
		if from != nil && to != nil && !l.Overlaps(*from, *to) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *LeaveRepository) Search(ctx context.Context, f leave.SearchFilter) ([]leave.Leave, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []leave.Leave{}
	for _, l := range r.all() {
		if f.Status != nil && l.Status != *f.Status {
			continue
		}
		if f.ManagerID != nil && l.ReportingTo != *f.ManagerID {
			continue
		}
		if f.EmployeeID != nil && l.EmployeeID != *f.EmployeeID {
			continue
		}
		if f.From != nil && l.ToDate.Before(*f.From) {
			continue
		}
		if f.To != nil && l.FromDate.After(*f.To) {
			continue
		}
		matched = append(matched, l)
	}

	key := func(l leave.Leave) time.Time { return l.FromDate }
	if f.SortBy == leave.SortByToDate {
		key = func(l leave.Leave) time.Time { return l.ToDate }
	}
	sortByTime(matched, key, f.SortOrder != leave.SortAsc)

	return page(matched, f.Page, f.Limit), int64(len(matched)), nil
}

func (r *LeaveRepository) Summary(ctx context.Context, today time.Time) (leave.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := leave.Summary{
		ByStatus: make(map[leave.Status]int),
		ByType:   make(map[leave.LeaveType]leave.TypeTotal),
	}
	onLeave := make(map[string]struct{})
	for _, l := range r.leaves {
		s.ByStatus[l.Status]++
		t := s.ByType[l.LeaveType]
		t.Count++
		t.TotalDays += l.TotalDays
		s.ByType[l.LeaveType] = t

		if l.Status == leave.StatusApproved && clock.Covers(l.FromDate, l.ToDate, today) {
			onLeave[l.EmployeeID] = struct{}{}
		}
	}
	s.OnLeaveToday = len(onLeave)
	s.PendingApprovals = s.ByStatus[leave.StatusPending]
	return s, nil
}

// all returns every leave, newest first.
func (r *LeaveRepository) all() []leave.Leave {
	out := make([]leave.Leave, 0, len(r.leaves))
	for _, l := range r.leaves {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
