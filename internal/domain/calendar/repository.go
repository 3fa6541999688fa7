package calendar

import (
	"context"
	"time"
)

// HolidayRepository defines data access for declared holiday periods.
type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	Update(ctx context.Context, holiday Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)

	// FindCovering returns the holiday containing day, or nil.
	FindCovering(ctx context.Context, day time.Time) (*Holiday, error)

	// FindOverlapping returns any holiday other than excludeID that overlaps [from, to], or nil.
	FindOverlapping(ctx context.Context, from, to time.Time, excludeID string) (*Holiday, error)

	// ListWithin returns holidays lying fully inside [from, to], ordered by from date.
	// Nil bounds are open.
	ListWithin(ctx context.Context, from, to *time.Time) ([]Holiday, error)

	// ListOverlapping returns holidays sharing at least one day with [from, to].
	ListOverlapping(ctx context.Context, from, to time.Time) ([]Holiday, error)
}
