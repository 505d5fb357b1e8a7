package commands

import (
	"context"
	"strings"

	"aocsync/internal/application"
	"aocsync/internal/domain"
)

// SetCredentialCommand stores the session credential used for downloads
type SetCredentialCommand struct {
	cfg     *domain.Config
	Session string
}

// NewSetCredentialCommand creates a new SetCredentialCommand
func NewSetCredentialCommand(cfg *domain.Config, session string) *SetCredentialCommand {
	return &SetCredentialCommand{
		cfg:     cfg,
		Session: session,
	}
}

// Validate checks if the credential is non-empty
func (c *SetCredentialCommand) Validate() error {
	return application.ValidateRequired("session", c.Session)
}

// Execute runs the set credential command
func (c *SetCredentialCommand) Execute(ctx context.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.cfg.Session = strings.TrimSpace(c.Session)
	return nil
}

// ShowCredentialCommand returns the stored session credential
type ShowCredentialCommand struct {
	cfg *domain.Config
}

// NewShowCredentialCommand creates a new ShowCredentialCommand
func NewShowCredentialCommand(cfg *domain.Config) *ShowCredentialCommand {
	return &ShowCredentialCommand{cfg: cfg}
}

// Execute runs the show credential command
func (c *ShowCredentialCommand) Execute(ctx context.Context) (string, error) {
	if !c.cfg.HasSession() {
		return "", application.ErrNoCredential
	}
	return c.cfg.Session, nil
}
