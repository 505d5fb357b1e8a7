package commands

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"aocsync/internal/domain"
	"aocsync/internal/ports"
)

// DayScanner yields days one at a time in ascending order, in the manner of
// bufio.Scanner. It is forward-only: once Next returns false it stays false.
type DayScanner interface {
	Next() bool
	Day() domain.Day
	Err() error
}

// dayCursor walks [next, last] once, yielding the days whose input
// presence equals wantInput and logging the ones it passes over
type dayCursor struct {
	store     ports.WorkspaceStore
	log       *zap.Logger
	year      domain.Year
	next      domain.Day
	last      domain.Day
	wantInput bool
	skipLevel zapcore.Level
	skipMsg   string

	day domain.Day
	err error
}

func (c *dayCursor) Next() bool {
	for c.err == nil && c.next <= c.last {
		day := c.next
		c.next++

		exists, err := c.store.InputExists(c.year, day)
		if err != nil {
			c.err = fmt.Errorf("cannot check input for %d day %d: %w", c.year, day, err)
			return false
		}
		if exists != c.wantInput {
			c.log.Log(c.skipLevel, c.skipMsg, zap.Int("year", int(c.year)), zap.Int("day", int(day)))
			continue
		}

		c.day = day
		return true
	}
	return false
}

// Day returns the day produced by the last successful call to Next
func (c *dayCursor) Day() domain.Day {
	return c.day
}

// Err returns the first I/O error met while scanning
func (c *dayCursor) Err() error {
	return c.err
}

// GapScanner yields the days of a range whose input has not been downloaded yet
type GapScanner struct {
	dayCursor
}

// NewGapScanner creates a scanner over days, clamped to the puzzle calendar
func NewGapScanner(store ports.WorkspaceStore, log *zap.Logger, year domain.Year, days domain.DayRange) *GapScanner {
	r := days.Clamp()
	return &GapScanner{dayCursor{
		store:     store,
		log:       log,
		year:      year,
		next:      r.First,
		last:      r.Last,
		wantInput: false,
		skipLevel: zapcore.InfoLevel,
		skipMsg:   "skipping already-present input",
	}}
}

// PresenceScanner yields every calendar day of a year whose input is on disk.
// Holes are logged as warnings: they are days the user never downloaded.
type PresenceScanner struct {
	dayCursor
}

// NewPresenceScanner creates a scanner over the whole calendar of year
func NewPresenceScanner(store ports.WorkspaceStore, log *zap.Logger, year domain.Year) *PresenceScanner {
	return &PresenceScanner{dayCursor{
		store:     store,
		log:       log,
		year:      year,
		next:      domain.FirstDay,
		last:      domain.LastDay,
		wantInput: true,
		skipLevel: zapcore.WarnLevel,
		skipMsg:   "skipping missing input",
	}}
}

// CollectDays drains a scanner
func CollectDays(s DayScanner) ([]domain.Day, error) {
	var days []domain.Day
	for s.Next() {
		days = append(days, s.Day())
	}
	return days, s.Err()
}
