package calendar

import (
	"context"
	"time"
)

// CalendarService resolves holidays and manages the holiday calendar.
type CalendarService interface {
	IsHoliday(ctx context.Context, day time.Time) (*Holiday, error)
	WouldConflict(ctx context.Context, from, to time.Time, excludeID string) (bool, error)
	WorkingDays(ctx context.Context, from, to time.Time) (int, error)

	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	UpdateHoliday(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) (HolidayResponse, error)
	ListHolidays(ctx context.Context, req ListHolidaysRequest) ([]HolidayResponse, error)
}
