package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
	counters  map[user.Role]int64
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		employees: make(map[string]employee.Employee),
		counters:  make(map[user.Role]int64),
	}
}

func (r *EmployeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(e.Email, "") {
		return employee.Employee{}, employee.ErrEmailExists
	}
	if e.ID == "" {
		e.ID = newID()
	}
	e.CreatedAt = now()
	e.UpdatedAt = e.CreatedAt
	r.employees[e.ID] = e
	return e, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if strings.EqualFold(e.Email, email) {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) Update(ctx context.Context, id string, p employee.Patch) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if p.Email != nil && r.emailTaken(*p.Email, id) {
		return employee.Employee{}, employee.ErrEmailExists
	}

	if p.Username != nil {
		e.Username = *p.Username
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.DOB != nil {
		e.DOB = *p.DOB
	}
	if p.Gender != nil {
		e.Gender = *p.Gender
	}
	if p.Designation != nil {
		e.Designation = *p.Designation
	}
	if p.Salary != nil {
		e.Salary = *p.Salary
	}
	if p.Role != nil {
		e.Role = *p.Role
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.ReportingTo != nil {
		e.ReportingTo = p.ReportingTo
	}
	if p.CreatedBy != nil {
		e.CreatedBy = p.CreatedBy
	}
	if p.ProfilePic != nil {
		e.ProfilePic = p.ProfilePic
	}
	e.UpdatedAt = now()
	r.employees[id] = e
	return e, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *EmployeeRepository) ListActive(ctx context.Context, pageNum, size int) ([]employee.Employee, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := r.filter(func(e employee.Employee) bool { return e.Status == employee.StatusActive })
	return page(active, pageNum, size), int64(len(active)), nil
}

func (r *EmployeeRepository) ListByReportingTo(ctx context.Context, managerID string) ([]employee.Employee, error) {
	return r.ListByReportingToAny(ctx, []string{managerID})
}

func (r *EmployeeRepository) ListByReportingToAny(ctx context.Context, managerIDs []string) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := idSet(managerIDs)
	return r.filter(func(e employee.Employee) bool {
		if e.ReportingTo == nil {
			return false
		}
		_, ok := wanted[*e.ReportingTo]
		return ok
	}), nil
}

func (r *EmployeeRepository) FindByDesignation(ctx context.Context, designation string) (*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := r.filter(func(e employee.Employee) bool { return e.Designation == designation })
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.employees)), nil
}

func (r *EmployeeRepository) NextSequence(ctx context.Context, role user.Role) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counters[role]++
	return r.counters[role], nil
}

func (r *EmployeeRepository) SetSession(ctx context.Context, id string, sessionID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.SessionID = sessionID
	r.employees[id] = e
	return nil
}

func (r *EmployeeRepository) IsSessionActive(ctx context.Context, id, sessionID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return false, nil
	}
	return e.SessionID != nil && *e.SessionID == sessionID && e.Status == employee.StatusActive, nil
}

// All returns a snapshot of every employee ordered by creation.
func (r *EmployeeRepository) All() []employee.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(employee.Employee) bool { return true })
}

func (r *EmployeeRepository) emailTaken(email, exceptID string) bool {
	for id, e := range r.employees {
		if id != exceptID && strings.EqualFold(e.Email, email) {
			return true
		}
	}
	return false
}

// filter returns matching employees ordered by creation time, then id.
func (r *EmployeeRepository) filter(keep func(employee.Employee) bool) []employee.Employee {
	out := []employee.Employee{}
	for _, e := range r.employees {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
