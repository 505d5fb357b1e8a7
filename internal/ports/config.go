package ports

import "aocsync/internal/domain"

// ConfigStore persists the workspace settings
type ConfigStore interface {
	Load() (*domain.Config, error)
	Save(cfg *domain.Config) error
	// Create writes cfg only if no config file exists yet
	Create(cfg *domain.Config) error
}
