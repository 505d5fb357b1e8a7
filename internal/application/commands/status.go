package commands

import (
	"context"
	"fmt"

	"aocsync/internal/application"
	"aocsync/internal/domain"
	"aocsync/internal/ports"
)

// StatusCommand reports, per year, which days have an input and a scaffold
type StatusCommand struct {
	store ports.WorkspaceStore
	Year  domain.Year // zero reports every year found on disk
}

// NewStatusCommand creates a new StatusCommand
func NewStatusCommand(store ports.WorkspaceStore, year domain.Year) *StatusCommand {
	return &StatusCommand{
		store: store,
		Year:  year,
	}
}

// Validate checks if the year filter is valid
func (c *StatusCommand) Validate() error {
	if c.Year == 0 {
		return nil
	}
	return application.ValidateYear(c.Year)
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context) ([]domain.YearStatus, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	years := []domain.Year{c.Year}
	if c.Year == 0 {
		scanned, err := c.store.ScanYears()
		if err != nil {
			return nil, fmt.Errorf("cannot scan years: %w", err)
		}
		years = scanned
	}

	statuses := make([]domain.YearStatus, 0, len(years))
	for _, year := range years {
		status, err := c.yearStatus(year)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func (c *StatusCommand) yearStatus(year domain.Year) (domain.YearStatus, error) {
	status := domain.YearStatus{Year: year}
	for day := domain.FirstDay; day <= domain.LastDay; day++ {
		input, err := c.store.InputExists(year, day)
		if err != nil {
			return status, fmt.Errorf("cannot check input for %d day %d: %w", year, day, err)
		}
		scaffold, err := c.store.ScaffoldExists(year, day)
		if err != nil {
			return status, fmt.Errorf("cannot check scaffold for %d day %d: %w", year, day, err)
		}
		status.Days = append(status.Days, domain.DayStatus{Day: day, Input: input, Scaffold: scaffold})
	}
	return status, nil
}
