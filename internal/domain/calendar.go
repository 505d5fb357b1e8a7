package domain

import (
	"fmt"
	"time"
)

// Year identifies an event year (e.g., 2022)
type Year int

// Day identifies a puzzle day within a year
type Day int

const (
	// FirstDay is the first puzzle day of every year
	FirstDay Day = 1
	// LastDay is the last puzzle day of every year
	LastDay Day = 25

	// EventMonth is the month in which a year's puzzles open
	EventMonth = time.December
)

// Valid reports whether the year can name a workspace year
func (y Year) Valid() bool {
	return y > 0
}

// Valid reports whether the day lies on the puzzle calendar
func (d Day) Valid() bool {
	return d >= FirstDay && d <= LastDay
}

// DayRange is an inclusive range of days as requested by a caller.
// It may reach beyond the puzzle calendar; Clamp trims it.
type DayRange struct {
	First Day
	Last  Day
}

// AllDays returns the full calendar range
func AllDays() DayRange {
	return DayRange{First: FirstDay, Last: LastDay}
}

// SingleDay returns a range holding only d
func SingleDay(d Day) DayRange {
	return DayRange{First: d, Last: d}
}

// Clamp restricts the range to [FirstDay, LastDay]
func (r DayRange) Clamp() DayRange {
	return DayRange{
		First: max(r.First, FirstDay),
		Last:  min(r.Last, LastDay),
	}
}

// Empty reports whether the range holds no day at all
func (r DayRange) Empty() bool {
	return r.First > r.Last
}

// Contains reports whether d lies in the range
func (r DayRange) Contains(d Day) bool {
	return d >= r.First && d <= r.Last
}

func (r DayRange) String() string {
	if r.First == r.Last {
		return fmt.Sprintf("day %d", r.First)
	}
	return fmt.Sprintf("days %d-%d", r.First, r.Last)
}

// CurrentYear returns the most recent year whose puzzles have opened.
// During December that is the calendar year, otherwise the one before.
func CurrentYear(now time.Time) Year {
	if now.Month() == EventMonth {
		return Year(now.Year())
	}
	return Year(now.Year() - 1)
}
