package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aocsync/internal/application"
	"aocsync/internal/domain"
	"aocsync/internal/ports"
)

// DownloadResult contains the result of a download
type DownloadResult struct {
	Year    domain.Year
	RunID   string
	Fetched []domain.Day
	Created []domain.Day
	Days    []domain.Day  // day-set of the regenerated year aggregator
	Years   []domain.Year // year-set of the regenerated top-level aggregator
	Message string
}

// DownloadCommand fetches the missing inputs of a year and brings the
// scaffolds and aggregators in line with what is on disk.
//
// The steps run strictly in order: fetch every missing day (ascending),
// scaffold every present day, regenerate the year aggregator, regenerate the
// top-level aggregator. A failed fetch stops the download; inputs already
// written stay, so a rerun resumes at the first missing day.
type DownloadCommand struct {
	ws      Workspace
	fetcher ports.InputFetcher
	cfg     *domain.Config
	ledger  ports.DownloadLedger
	now     func() time.Time

	Year domain.Year // zero selects the current year
	Days domain.DayRange
}

// DownloadOption configures a DownloadCommand
type DownloadOption func(*DownloadCommand)

// WithLedger records every fetched input in l
func WithLedger(l ports.DownloadLedger) DownloadOption {
	return func(c *DownloadCommand) {
		c.ledger = l
	}
}

// WithClock sets the clock used to resolve the current year
func WithClock(now func() time.Time) DownloadOption {
	return func(c *DownloadCommand) {
		c.now = now
	}
}

// NewDownloadCommand creates a new DownloadCommand
func NewDownloadCommand(ws Workspace, fetcher ports.InputFetcher, cfg *domain.Config, year domain.Year, days domain.DayRange, opts ...DownloadOption) *DownloadCommand {
	c := &DownloadCommand{
		ws:      ws,
		fetcher: fetcher,
		cfg:     cfg,
		now:     time.Now,
		Year:    year,
		Days:    days,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate checks if the download request is valid
func (c *DownloadCommand) Validate() error {
	if c.Year != 0 {
		if err := application.ValidateYear(c.Year); err != nil {
			return err
		}
	}
	if c.cfg == nil || !c.cfg.HasSession() {
		return application.ErrNoCredential
	}
	return nil
}

// Execute runs the download command
func (c *DownloadCommand) Execute(ctx context.Context) (*DownloadResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	year := c.Year
	if year == 0 {
		year = domain.CurrentYear(c.now())
	}

	if err := c.ws.Store.EnsureInputDir(year); err != nil {
		return nil, fmt.Errorf("cannot create input directory for %d: %w", year, err)
	}

	result := &DownloadResult{Year: year, RunID: uuid.NewString()}

	if err := c.fetchMissing(ctx, result); err != nil {
		// Scaffold what did arrive so the user can start on it; the
		// aggregators stay as they were.
		if _, scaffoldErr := c.scaffoldPresent(ctx, year); scaffoldErr != nil {
			c.ws.Log.Warn("cannot scaffold downloaded days after failed download",
				zap.Int("year", int(year)),
				zap.Error(scaffoldErr))
		}
		return nil, err
	}

	created, err := c.scaffoldPresent(ctx, year)
	if err != nil {
		return nil, err
	}
	result.Created = created

	yearRes, err := NewRegenerateYearCommand(c.ws, year).Execute(ctx)
	if err != nil {
		return nil, err
	}
	result.Days = yearRes.Days

	rootRes, err := NewRegenerateRootCommand(c.ws).Execute(ctx)
	if err != nil {
		return nil, err
	}
	result.Years = rootRes.Years

	c.cfg.SetDays(year, yearRes.Days)

	result.Message = fmt.Sprintf("Downloaded %d inputs for %d, created %d source files, %d days wired",
		len(result.Fetched), year, len(result.Created), len(result.Days))
	return result, nil
}

func (c *DownloadCommand) fetchMissing(ctx context.Context, result *DownloadResult) error {
	year := result.Year
	gaps := NewGapScanner(c.ws.Store, c.ws.Log, year, c.Days)

	for gaps.Next() {
		day := gaps.Day()
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := c.fetcher.FetchInput(ctx, c.cfg.Session, year, day)
		if err != nil {
			return &application.FetchError{Year: year, Day: day, Err: err}
		}

		overwritten, err := c.ws.Store.SaveInput(year, day, content)
		if err != nil {
			return fmt.Errorf("cannot save input for %d day %d: %w", year, day, err)
		}
		if overwritten {
			c.ws.Log.Warn("overwrote existing input", zap.Int("year", int(year)), zap.Int("day", int(day)))
		} else {
			c.ws.Log.Info("saved input", zap.Int("year", int(year)), zap.Int("day", int(day)))
		}

		result.Fetched = append(result.Fetched, day)
		c.record(result.RunID, year, day, content, overwritten)
	}
	return gaps.Err()
}

func (c *DownloadCommand) scaffoldPresent(ctx context.Context, year domain.Year) ([]domain.Day, error) {
	var created []domain.Day
	present := NewPresenceScanner(c.ws.Store, c.ws.Log, year)

	for present.Next() {
		res, err := NewEnsureScaffoldCommand(c.ws, year, present.Day()).Execute(ctx)
		if err != nil {
			return created, err
		}
		if res.Outcome == ScaffoldCreated {
			created = append(created, res.Day)
		}
	}
	return created, present.Err()
}

// record writes a ledger entry. The ledger is informational, so a failure
// is logged and the download carries on.
func (c *DownloadCommand) record(runID string, year domain.Year, day domain.Day, content string, overwritten bool) {
	if c.ledger == nil {
		return
	}

	sum := sha256.Sum256([]byte(content))
	err := c.ledger.Record(domain.FetchRecord{
		RunID:       runID,
		Year:        year,
		Day:         day,
		Bytes:       len(content),
		SHA256:      hex.EncodeToString(sum[:]),
		Overwritten: overwritten,
		FetchedAt:   c.now().UTC(),
	})
	if err != nil {
		c.ws.Log.Warn("cannot record download in ledger",
			zap.Int("year", int(year)),
			zap.Int("day", int(day)),
			zap.Error(err))
	}
}
