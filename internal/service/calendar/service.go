package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/validator"
)

type CalendarServiceImpl struct {
	calendar.HolidayRepository
}

func NewCalendarService(holidayRepository calendar.HolidayRepository) calendar.CalendarService {
	return &CalendarServiceImpl{
		HolidayRepository: holidayRepository,
	}
}

// IsHoliday implements calendar.CalendarService.
func (s *CalendarServiceImpl) IsHoliday(ctx context.Context, day time.Time) (*calendar.Holiday, error) {
	h, err := s.HolidayRepository.FindCovering(ctx, clock.Day(day))
	if err != nil {
		return nil, fmt.Errorf("failed to look up holiday: %w", err)
	}
	return h, nil
}

// WouldConflict implements calendar.CalendarService.
func (s *CalendarServiceImpl) WouldConflict(ctx context.Context, from, to time.Time, excludeID string) (bool, error) {
	h, err := s.HolidayRepository.FindOverlapping(ctx, from, to, excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping holidays: %w", err)
	}
	return h != nil, nil
}

// WorkingDays implements calendar.CalendarService.
func (s *CalendarServiceImpl) WorkingDays(ctx context.Context, from, to time.Time) (int, error) {
	if to.Before(from) {
		return 0, calendar.ErrInvalidWorkingDayRange
	}
	holidays, err := s.HolidayRepository.ListOverlapping(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to list holidays: %w", err)
	}
	return calendar.WorkingDays(from, to, holidays)
}

// CreateHoliday implements calendar.CalendarService.
func (s *CalendarServiceImpl) CreateHoliday(ctx context.Context, req calendar.CreateHolidayRequest) (calendar.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.HolidayResponse{}, err
	}

	from, _ := clock.ParseDay(req.FromDate)
	to, _ := clock.ParseDay(req.ToDate)

	conflict, err := s.WouldConflict(ctx, from, to, "")
	if err != nil {
		return calendar.HolidayResponse{}, err
	}
	if conflict {
		return calendar.HolidayResponse{}, calendar.ErrHolidayOverlap
	}

	created, err := s.HolidayRepository.Create(ctx, calendar.Holiday{
		Name:           req.Name,
		FromDate:       from,
		ToDate:         to,
		Classification: calendar.Classification(req.Classification),
		TotalDays:      calendar.TotalDays(from, to),
	})
	if err != nil {
		if errors.Is(err, calendar.ErrHolidayOverlap) {
			return calendar.HolidayResponse{}, err
		}
		return calendar.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return calendar.NewHolidayResponse(created), nil
}

// UpdateHoliday implements calendar.CalendarService.
func (s *CalendarServiceImpl) UpdateHoliday(ctx context.Context, req calendar.UpdateHolidayRequest) (calendar.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.HolidayResponse{}, err
	}

	existing, err := s.HolidayRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, calendar.ErrHolidayNotFound) {
			return calendar.HolidayResponse{}, err
		}
		return calendar.HolidayResponse{}, fmt.Errorf("failed to get holiday: %w", err)
	}

	fromStr := existing.FromDate.Format(clock.DateLayout)
	toStr := existing.ToDate.Format(clock.DateLayout)
	if req.FromDate != nil {
		fromStr = *req.FromDate
	}
	if req.ToDate != nil {
		toStr = *req.ToDate
	}
	if errs := calendar.ValidateRange(fromStr, toStr); len(errs) > 0 {
		return calendar.HolidayResponse{}, errs
	}
	from, _ := clock.ParseDay(fromStr)
	to, _ := clock.ParseDay(toStr)

	conflict, err := s.WouldConflict(ctx, from, to, existing.ID)
	if err != nil {
		return calendar.HolidayResponse{}, err
	}
	if conflict {
		return calendar.HolidayResponse{}, calendar.ErrHolidayOverlap
	}

	updated := existing
	updated.FromDate = from
	updated.ToDate = to
	updated.TotalDays = calendar.TotalDays(from, to)
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Classification != nil {
		updated.Classification = calendar.Classification(*req.Classification)
	}

	saved, err := s.HolidayRepository.Update(ctx, updated)
	if err != nil {
		if errors.Is(err, calendar.ErrHolidayOverlap) || errors.Is(err, calendar.ErrHolidayNotFound) {
			return calendar.HolidayResponse{}, err
		}
		return calendar.HolidayResponse{}, fmt.Errorf("failed to update holiday: %w", err)
	}

	return calendar.NewHolidayResponse(saved), nil
}

// DeleteHoliday implements calendar.CalendarService.
func (s *CalendarServiceImpl) DeleteHoliday(ctx context.Context, id string) (calendar.HolidayResponse, error) {
	if validator.IsEmpty(id) {
		return calendar.HolidayResponse{}, validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}

	deleted, err := s.HolidayRepository.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, calendar.ErrHolidayNotFound) {
			return calendar.HolidayResponse{}, err
		}
		return calendar.HolidayResponse{}, fmt.Errorf("failed to delete holiday: %w", err)
	}
	return calendar.NewHolidayResponse(deleted), nil
}

// ListHolidays implements calendar.CalendarService.
func (s *CalendarServiceImpl) ListHolidays(ctx context.Context, req calendar.ListHolidaysRequest) ([]calendar.HolidayResponse, error) {
	var from, to *time.Time
	if req.Year != nil {
		start := time.Date(*req.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(*req.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
		from, to = &start, &end
	}

	holidays, err := s.HolidayRepository.ListWithin(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]calendar.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, calendar.NewHolidayResponse(h))
	}
	return responses, nil
}
