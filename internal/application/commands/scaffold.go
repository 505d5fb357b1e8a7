package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"aocsync/internal/application"
	"aocsync/internal/domain"
	"aocsync/internal/ports"
)

// Workspace bundles the collaborators shared by the workspace commands
type Workspace struct {
	Store    ports.WorkspaceStore
	Renderer ports.SourceRenderer
	Log      *zap.Logger
}

// ScaffoldOutcome tells whether a scaffold was written
type ScaffoldOutcome int

const (
	ScaffoldCreated ScaffoldOutcome = iota
	ScaffoldSkipped
)

func (o ScaffoldOutcome) String() string {
	switch o {
	case ScaffoldCreated:
		return "created"
	case ScaffoldSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// EnsureScaffoldResult contains the result of ensuring a scaffold
type EnsureScaffoldResult struct {
	Year    domain.Year
	Day     domain.Day
	Outcome ScaffoldOutcome
	Message string
}

// EnsureScaffoldCommand writes the stub solution of a day unless one exists.
// An existing scaffold belongs to the user and is never touched.
type EnsureScaffoldCommand struct {
	ws   Workspace
	Year domain.Year
	Day  domain.Day
}

// NewEnsureScaffoldCommand creates a new EnsureScaffoldCommand
func NewEnsureScaffoldCommand(ws Workspace, year domain.Year, day domain.Day) *EnsureScaffoldCommand {
	return &EnsureScaffoldCommand{
		ws:   ws,
		Year: year,
		Day:  day,
	}
}

// Validate checks if the scaffold target is valid
func (c *EnsureScaffoldCommand) Validate() error {
	if err := application.ValidateYear(c.Year); err != nil {
		return err
	}
	return application.ValidateDay(c.Day)
}

// Execute runs the ensure scaffold command
func (c *EnsureScaffoldCommand) Execute(ctx context.Context) (*EnsureScaffoldResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	exists, err := c.ws.Store.ScaffoldExists(c.Year, c.Day)
	if err != nil {
		return nil, fmt.Errorf("cannot check scaffold for %d day %d: %w", c.Year, c.Day, err)
	}
	if exists {
		return c.skipped("skipping already existing source file"), nil
	}

	content, err := c.ws.Renderer.RenderScaffold(domain.NewScaffold(c.Year, c.Day))
	if err != nil {
		return nil, fmt.Errorf("cannot render scaffold for %d day %d: %w", c.Year, c.Day, err)
	}

	// The file may appear between the check and the write; the create-only
	// write then leaves it alone.
	created, err := c.ws.Store.CreateScaffold(c.Year, c.Day, content)
	if err != nil {
		return nil, fmt.Errorf("cannot write scaffold for %d day %d: %w", c.Year, c.Day, err)
	}
	if !created {
		return c.skipped("source file appeared while scaffolding, leaving it"), nil
	}

	c.ws.Log.Info("created source file",
		zap.Int("year", int(c.Year)),
		zap.Int("day", int(c.Day)),
		zap.String("path", domain.ScaffoldFile(c.Year, c.Day)))

	return &EnsureScaffoldResult{
		Year:    c.Year,
		Day:     c.Day,
		Outcome: ScaffoldCreated,
		Message: fmt.Sprintf("Created %s", domain.ScaffoldFile(c.Year, c.Day)),
	}, nil
}

func (c *EnsureScaffoldCommand) skipped(reason string) *EnsureScaffoldResult {
	c.ws.Log.Info(reason, zap.Int("year", int(c.Year)), zap.Int("day", int(c.Day)))
	return &EnsureScaffoldResult{
		Year:    c.Year,
		Day:     c.Day,
		Outcome: ScaffoldSkipped,
		Message: fmt.Sprintf("Kept existing %s", domain.ScaffoldFile(c.Year, c.Day)),
	}
}
