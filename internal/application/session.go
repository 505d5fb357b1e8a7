package application

import (
	"fmt"

	"go.uber.org/zap"

	"aocsync/internal/domain"
	"aocsync/internal/ports"
)

// WithConfig loads the workspace config, runs fn with it and saves it exactly
// once on every exit path. When fn fails, a failing save is logged and
// dropped so it cannot hide the original error.
func WithConfig(store ports.ConfigStore, log *zap.Logger, fn func(cfg *domain.Config) error) (err error) {
	cfg, err := store.Load()
	if err != nil {
		return fmt.Errorf("cannot load workspace config: %w", err)
	}

	defer func() {
		saveErr := store.Save(cfg)
		if saveErr == nil {
			return
		}
		if err != nil {
			log.Warn("discarding config save failure after earlier error",
				zap.Error(saveErr),
				zap.NamedError("cause", err))
			return
		}
		err = fmt.Errorf("cannot save workspace config: %w", saveErr)
	}()

	return fn(cfg)
}
