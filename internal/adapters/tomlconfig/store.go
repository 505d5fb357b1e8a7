package tomlconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"aocsync/internal/domain"
)

// file is the on-disk shape of the workspace config.
// TOML keys are strings, so years are converted at the boundary.
type file struct {
	Session string           `toml:"session,omitempty"`
	Years   map[string][]int `toml:"years,omitempty"`
}

// Store implements ports.ConfigStore with a TOML file at the workspace root
type Store struct {
	path string
}

// NewStore creates a store for the config file of the workspace at root
func NewStore(root string) *Store {
	return &Store{path: filepath.Join(root, domain.ConfigFileName)}
}

// Path returns the config file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the config. A missing file yields an empty config.
func (s *Store) Load() (*domain.Config, error) {
	var f file
	_, err := toml.DecodeFile(s.path, &f)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	cfg := domain.NewConfig()
	cfg.Session = f.Session
	for key, values := range f.Years {
		year, err := strconv.Atoi(key)
		if err != nil || !domain.Year(year).Valid() {
			return nil, fmt.Errorf("invalid year %q in %s", key, s.path)
		}
		days := make([]domain.Day, len(values))
		for i, v := range values {
			days[i] = domain.Day(v)
		}
		cfg.SetDays(domain.Year(year), days)
	}
	return cfg, nil
}

// Save overwrites the config file
func (s *Store) Save(cfg *domain.Config) error {
	data, err := encode(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// Create writes the config file only if none exists
func (s *Store) Create(cfg *domain.Config) error {
	data, err := encode(cfg)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return f.Close()
}

func encode(cfg *domain.Config) ([]byte, error) {
	cfg = cfg.Normalized()
	f := file{Session: cfg.Session}
	if len(cfg.Years) > 0 {
		f.Years = make(map[string][]int, len(cfg.Years))
		for year, days := range cfg.Years {
			values := make([]int, len(days))
			for i, d := range days {
				values[i] = int(d)
			}
			f.Years[strconv.Itoa(int(year))] = values
		}
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}
