package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"aocsync/internal/application"
	"aocsync/internal/domain"
	"aocsync/internal/ports"
)

// NewWorkspaceResult contains the result of creating a workspace
type NewWorkspaceResult struct {
	Root    string
	Module  string
	Message string
}

// NewWorkspaceCommand lays out an empty workspace: a go.mod, a config file
// and a top-level aggregator that knows no year yet
type NewWorkspaceCommand struct {
	ws      Workspace
	configs ports.ConfigStore
	Module  string
}

// NewNewWorkspaceCommand creates a new NewWorkspaceCommand
func NewNewWorkspaceCommand(ws Workspace, configs ports.ConfigStore, module string) *NewWorkspaceCommand {
	return &NewWorkspaceCommand{
		ws:      ws,
		configs: configs,
		Module:  module,
	}
}

// Validate checks if the module path is set
func (c *NewWorkspaceCommand) Validate() error {
	return application.ValidateRequired("module", c.Module)
}

// Execute runs the new workspace command
func (c *NewWorkspaceCommand) Execute(ctx context.Context) (*NewWorkspaceResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.ws.Store.Init(c.Module); err != nil {
		return nil, fmt.Errorf("cannot create workspace: %w", err)
	}
	if err := c.configs.Create(domain.NewConfig()); err != nil {
		return nil, fmt.Errorf("cannot create workspace config: %w", err)
	}
	if _, err := NewRegenerateRootCommand(c.ws).Execute(ctx); err != nil {
		return nil, err
	}

	c.ws.Log.Info("created workspace",
		zap.String("root", c.ws.Store.Root()),
		zap.String("module", c.Module))

	return &NewWorkspaceResult{
		Root:    c.ws.Store.Root(),
		Module:  c.Module,
		Message: fmt.Sprintf("Created workspace %s (module %s)", c.ws.Store.Root(), c.Module),
	}, nil
}
