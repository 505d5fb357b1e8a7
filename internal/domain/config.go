package domain

import (
	"maps"
	"slices"
	"time"
)

// Config is the persisted workspace settings
type Config struct {
	// Session is the session cookie used to download inputs. Empty when unset.
	Session string

	// Years records which days were present after each download.
	// It is informational only: scans of the filesystem decide what to fetch and generate.
	// Write it through SetDays, which keeps every day list ascending, deduplicated
	// and non-empty; Normalized restores that form for values assigned directly.
	Years map[Year][]Day
}

// NewConfig returns an empty config
func NewConfig() *Config {
	return &Config{Years: make(map[Year][]Day)}
}

// HasSession reports whether a credential is configured
func (c *Config) HasSession() bool {
	return c.Session != ""
}

// SetDays records the day-set of a year. An empty set forgets the year.
func (c *Config) SetDays(y Year, days []Day) {
	if c.Years == nil {
		c.Years = make(map[Year][]Day)
	}
	if len(days) == 0 {
		delete(c.Years, y)
		return
	}
	sorted := slices.Clone(days)
	slices.Sort(sorted)
	c.Years[y] = slices.Compact(sorted)
}

// Normalized returns a copy of the config whose day lists are ascending,
// deduplicated and non-empty, the form a saved config loads back as
func (c *Config) Normalized() *Config {
	out := NewConfig()
	out.Session = c.Session
	for y, days := range c.Years {
		out.SetDays(y, days)
	}
	return out
}

// Days returns the recorded day-set of a year
func (c *Config) Days(y Year) []Day {
	return c.Years[y]
}

// KnownYears returns the recorded years in ascending order
func (c *Config) KnownYears() []Year {
	return slices.Sorted(maps.Keys(c.Years))
}

// FetchRecord is one ledger entry describing a downloaded input
type FetchRecord struct {
	RunID       string
	Year        Year
	Day         Day
	Bytes       int
	SHA256      string
	Overwritten bool
	FetchedAt   time.Time
}

// DayStatus summarizes what the workspace holds for one day
type DayStatus struct {
	Day      Day
	Input    bool
	Scaffold bool
}

// YearStatus summarizes one year of the workspace
type YearStatus struct {
	Year Year
	Days []DayStatus // FirstDay..LastDay
}

// Complete counts the days having both an input and a scaffold
func (s YearStatus) Complete() int {
	n := 0
	for _, d := range s.Days {
		if d.Input && d.Scaffold {
			n++
		}
	}
	return n
}
