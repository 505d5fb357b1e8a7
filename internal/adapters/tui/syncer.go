package tui

import (
	"context"

	"aocsync/internal/application"
	"aocsync/internal/application/commands"
	"aocsync/internal/domain"
	"aocsync/internal/ports"
)

// WorkspaceSyncer runs the workspace commands on behalf of the calendar
type WorkspaceSyncer struct {
	ws      commands.Workspace
	configs ports.ConfigStore
	fetcher ports.InputFetcher
	ledger  ports.DownloadLedger
}

// NewWorkspaceSyncer creates a syncer. ledger may be nil.
func NewWorkspaceSyncer(ws commands.Workspace, configs ports.ConfigStore, fetcher ports.InputFetcher, ledger ports.DownloadLedger) *WorkspaceSyncer {
	return &WorkspaceSyncer{
		ws:      ws,
		configs: configs,
		fetcher: fetcher,
		ledger:  ledger,
	}
}

// Download fetches the missing inputs of days and syncs the code
func (s *WorkspaceSyncer) Download(ctx context.Context, year domain.Year, days domain.DayRange) (string, error) {
	var opts []commands.DownloadOption
	if s.ledger != nil {
		opts = append(opts, commands.WithLedger(s.ledger))
	}

	var message string
	err := application.WithConfig(s.configs, s.ws.Log, func(cfg *domain.Config) error {
		result, err := commands.NewDownloadCommand(s.ws, s.fetcher, cfg, year, days, opts...).Execute(ctx)
		if err != nil {
			return err
		}
		message = result.Message
		return nil
	})
	return message, err
}

// Regenerate rewrites every aggregator
func (s *WorkspaceSyncer) Regenerate(ctx context.Context) (string, error) {
	result, err := commands.NewRegenerateCommand(s.ws, 0).Execute(ctx)
	if err != nil {
		return "", err
	}
	return result.Message, nil
}
