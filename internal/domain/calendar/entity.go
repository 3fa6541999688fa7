package calendar

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
)

type Classification string

const (
	ClassificationHoliday    Classification = "holiday"
	ClassificationRestricted Classification = "restricted holiday"
)

// AllClassifications returns every accepted classification
func AllClassifications() []Classification {
	return []Classification{ClassificationHoliday, ClassificationRestricted}
}

// ParseClassification lower-cases s and checks it against the known classifications.
func ParseClassification(s string) (Classification, error) {
	c := Classification(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllClassifications() {
		if c == known {
			return c, nil
		}
	}
	return "", ErrInvalidClassification
}

// Holiday is an org-wide non-working period. FromDate and ToDate are calendar
// days and the range is inclusive.
type Holiday struct {
	ID             string
	Name           string
	FromDate       time.Time
	ToDate         time.Time
	Classification Classification
	TotalDays      int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Covers reports whether day falls inside the holiday.
func (h Holiday) Covers(day time.Time) bool {
	return clock.Covers(h.FromDate, h.ToDate, day)
}

// TotalDays is the inclusive day span of a holiday period.
func TotalDays(from, to time.Time) int {
	return clock.DaysInclusive(from, to)
}
