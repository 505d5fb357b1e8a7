package application

import (
	"time"

	"aocsync/internal/domain"
)

// Re-export calendar types for use by adapters
type (
	Year       = domain.Year
	Day        = domain.Day
	DayRange   = domain.DayRange
	YearStatus = domain.YearStatus
	DayStatus  = domain.DayStatus
)

const (
	FirstDay = domain.FirstDay
	LastDay  = domain.LastDay
)

// AllDays returns the full calendar range
func AllDays() DayRange {
	return domain.AllDays()
}

// CurrentYear returns the most recent year whose puzzles have opened
func CurrentYear(now time.Time) Year {
	return domain.CurrentYear(now)
}
