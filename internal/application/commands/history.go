package commands

import (
	"context"

	"aocsync/internal/application"
	"aocsync/internal/domain"
	"aocsync/internal/ports"
)

// HistoryCommand lists past downloads recorded in the ledger
type HistoryCommand struct {
	ledger ports.DownloadLedger
	Year   domain.Year // zero lists every year
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(ledger ports.DownloadLedger, year domain.Year) *HistoryCommand {
	return &HistoryCommand{
		ledger: ledger,
		Year:   year,
	}
}

// Validate checks if the year filter is valid
func (c *HistoryCommand) Validate() error {
	if c.Year == 0 {
		return nil
	}
	return application.ValidateYear(c.Year)
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context) ([]domain.FetchRecord, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.ledger.List(c.Year)
}
