package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"aocsync/internal/application"
	"aocsync/internal/domain"
)

// RegenerateYearResult contains the result of regenerating a year aggregator
type RegenerateYearResult struct {
	Year    domain.Year
	Days    []domain.Day
	Message string
}

// RegenerateYearCommand rewrites the dispatch file of one year from the
// day packages currently on disk
type RegenerateYearCommand struct {
	ws   Workspace
	Year domain.Year
}

// NewRegenerateYearCommand creates a new RegenerateYearCommand
func NewRegenerateYearCommand(ws Workspace, year domain.Year) *RegenerateYearCommand {
	return &RegenerateYearCommand{ws: ws, Year: year}
}

// Validate checks if the year is valid
func (c *RegenerateYearCommand) Validate() error {
	return application.ValidateYear(c.Year)
}

// Execute runs the regenerate year command
func (c *RegenerateYearCommand) Execute(ctx context.Context) (*RegenerateYearResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	module, err := c.ws.Store.ModulePath()
	if err != nil {
		return nil, err
	}

	days, err := c.dayset()
	if err != nil {
		return nil, err
	}

	content, err := c.ws.Renderer.RenderYearAggregator(domain.NewYearAggregator(module, c.Year, days))
	if err != nil {
		return nil, fmt.Errorf("cannot render aggregator for %d: %w", c.Year, err)
	}
	if err := c.ws.Store.WriteYearAggregator(c.Year, content); err != nil {
		return nil, fmt.Errorf("cannot write aggregator for %d: %w", c.Year, err)
	}

	c.ws.Log.Info("generated year aggregator",
		zap.Int("year", int(c.Year)),
		zap.Ints("days", dayInts(days)))

	return &RegenerateYearResult{
		Year:    c.Year,
		Days:    days,
		Message: fmt.Sprintf("Generated %s with %d days", domain.YearAggregatorFile(c.Year), len(days)),
	}, nil
}

// dayset scans the day packages of the year. The scaffold directory is the
// single source of truth for aggregation.
func (c *RegenerateYearCommand) dayset() ([]domain.Day, error) {
	scanned, err := c.ws.Store.ScanDays(c.Year)
	if err != nil {
		return nil, fmt.Errorf("cannot scan days of %d: %w", c.Year, err)
	}

	days := make([]domain.Day, 0, len(scanned))
	for _, day := range scanned {
		if !day.Valid() {
			c.ws.Log.Warn("ignoring day package outside the calendar",
				zap.Int("year", int(c.Year)),
				zap.Int("day", int(day)))
			continue
		}

		hasInput, err := c.ws.Store.InputExists(c.Year, day)
		if err != nil {
			return nil, fmt.Errorf("cannot check input for %d day %d: %w", c.Year, day, err)
		}
		if !hasInput {
			c.ws.Log.Warn("day package has no input; the workspace will not build until it is downloaded",
				zap.Int("year", int(c.Year)),
				zap.Int("day", int(day)))
		}

		days = append(days, day)
	}
	return days, nil
}

// RegenerateRootResult contains the result of regenerating the top-level aggregator
type RegenerateRootResult struct {
	Years   []domain.Year
	Message string
}

// RegenerateRootCommand rewrites the top-level dispatch file from the year
// packages currently on disk
type RegenerateRootCommand struct {
	ws Workspace
}

// NewRegenerateRootCommand creates a new RegenerateRootCommand
func NewRegenerateRootCommand(ws Workspace) *RegenerateRootCommand {
	return &RegenerateRootCommand{ws: ws}
}

// Execute runs the regenerate root command
func (c *RegenerateRootCommand) Execute(ctx context.Context) (*RegenerateRootResult, error) {
	module, err := c.ws.Store.ModulePath()
	if err != nil {
		return nil, err
	}

	scanned, err := c.ws.Store.ScanYears()
	if err != nil {
		return nil, fmt.Errorf("cannot scan years: %w", err)
	}

	// Only years with a generated aggregator are importable packages.
	years := make([]domain.Year, 0, len(scanned))
	for _, year := range scanned {
		ok, err := c.ws.Store.YearAggregatorExists(year)
		if err != nil {
			return nil, fmt.Errorf("cannot check aggregator for %d: %w", year, err)
		}
		if !ok {
			c.ws.Log.Debug("ignoring year without aggregator", zap.Int("year", int(year)))
			continue
		}
		years = append(years, year)
	}

	content, err := c.ws.Renderer.RenderRootAggregator(domain.NewRootAggregator(module, years))
	if err != nil {
		return nil, fmt.Errorf("cannot render top-level aggregator: %w", err)
	}
	if err := c.ws.Store.WriteRootAggregator(content); err != nil {
		return nil, fmt.Errorf("cannot write top-level aggregator: %w", err)
	}

	yearInts := make([]int, len(years))
	for i, y := range years {
		yearInts[i] = int(y)
	}
	c.ws.Log.Info("generated top-level aggregator", zap.Ints("years", yearInts))

	return &RegenerateRootResult{
		Years:   years,
		Message: fmt.Sprintf("Generated %s with %d years", domain.RootAggregatorFile, len(years)),
	}, nil
}

func dayInts(days []domain.Day) []int {
	out := make([]int, len(days))
	for i, d := range days {
		out[i] = int(d)
	}
	return out
}

// RegenerateResult contains the result of regenerating the dispatch files
type RegenerateResult struct {
	Years   []RegenerateYearResult
	Root    *RegenerateRootResult
	Message string
}

// RegenerateCommand rewrites the year dispatch files and then the top-level
// one. Inputs and scaffolds are left alone.
type RegenerateCommand struct {
	ws   Workspace
	Year domain.Year // zero regenerates every year found on disk
}

// NewRegenerateCommand creates a new RegenerateCommand
func NewRegenerateCommand(ws Workspace, year domain.Year) *RegenerateCommand {
	return &RegenerateCommand{ws: ws, Year: year}
}

// Validate checks if the year filter is valid
func (c *RegenerateCommand) Validate() error {
	if c.Year == 0 {
		return nil
	}
	return application.ValidateYear(c.Year)
}

// Execute runs the regenerate command
func (c *RegenerateCommand) Execute(ctx context.Context) (*RegenerateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	years := []domain.Year{c.Year}
	if c.Year == 0 {
		scanned, err := c.ws.Store.ScanYears()
		if err != nil {
			return nil, fmt.Errorf("cannot scan years: %w", err)
		}
		years = scanned
	}

	result := &RegenerateResult{}
	for _, year := range years {
		yearRes, err := NewRegenerateYearCommand(c.ws, year).Execute(ctx)
		if err != nil {
			return nil, err
		}
		result.Years = append(result.Years, *yearRes)
	}

	rootRes, err := NewRegenerateRootCommand(c.ws).Execute(ctx)
	if err != nil {
		return nil, err
	}
	result.Root = rootRes
	result.Message = fmt.Sprintf("Regenerated %d year aggregators and %s", len(result.Years), domain.RootAggregatorFile)
	return result, nil
}
