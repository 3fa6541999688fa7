package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
)

type HolidayRepository struct {
	mu       sync.RWMutex
	holidays map[string]calendar.Holiday
}

func NewHolidayRepository() *HolidayRepository {
	return &HolidayRepository{holidays: make(map[string]calendar.Holiday)}
}

func (r *HolidayRepository) Create(ctx context.Context, h calendar.Holiday) (calendar.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h.ID = newID()
	h.CreatedAt = now()
	h.UpdatedAt = h.CreatedAt
	r.holidays[h.ID] = h
	return h, nil
}

func (r *HolidayRepository) Update(ctx context.Context, h calendar.Holiday) (calendar.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.holidays[h.ID]
	if !ok {
		return calendar.Holiday{}, calendar.ErrHolidayNotFound
	}
	h.CreatedAt = existing.CreatedAt
	h.UpdatedAt = now()
	r.holidays[h.ID] = h
	return h, nil
}

func (r *HolidayRepository) Delete(ctx context.Context, id string) (calendar.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.holidays[id]
	if !ok {
		return calendar.Holiday{}, calendar.ErrHolidayNotFound
	}
	delete(r.holidays, id)
	return h, nil
}

func (r *HolidayRepository) GetByID(ctx context.Context, id string) (calendar.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.holidays[id]
	if !ok {
		return calendar.Holiday{}, calendar.ErrHolidayNotFound
	}
	return h, nil
}

func (r *HolidayRepository) FindCovering(ctx context.Context, day time.Time) (*calendar.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.sorted() {
		if h.Covers(day) {
			return &h, nil
		}
	}
	return nil, nil
}

func (r *HolidayRepository) FindOverlapping(ctx context.Context, from, to time.Time, excludeID string) (*calendar.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.sorted() {
		if h.ID != excludeID && clock.Overlaps(h.FromDate, h.ToDate, from, to) {
			return &h, nil
		}
	}
	return nil, nil
}

func (r *HolidayRepository) ListWithin(ctx context.Context, from, to *time.Time) ([]calendar.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []calendar.Holiday{}
	for _, h := range r.sorted() {
		if from != nil && h.FromDate.Before(*from) {
			continue
		}
		if to != nil && h.ToDate.After(*to) {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (r *HolidayRepository) ListOverlapping(ctx context.Context, from, to time.Time) ([]calendar.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []calendar.Holiday{}
	for _, h := range r.sorted() {
		if clock.Overlaps(h.FromDate, h.ToDate, from, to) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *HolidayRepository) sorted() []calendar.Holiday {
	out := make([]calendar.Holiday, 0, len(r.holidays))
	for _, h := range r.holidays {
		out = append(out, h)
	}
	sortByTime(out, func(h calendar.Holiday) time.Time { return h.FromDate }, false)
	return out
}
