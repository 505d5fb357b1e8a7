package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/mod/modfile"

	"aocsync/internal/domain"
)

// workspaceGoVersion is the go directive written into new workspaces.
// Generated code needs go:embed.
const workspaceGoVersion = "1.22"

// ErrWorkspaceNotFound is returned by FindRoot when no config file is found
var ErrWorkspaceNotFound = errors.New("no workspace found (missing " + domain.ConfigFileName + ")")

// Repository implements ports.WorkspaceStore using the filesystem
type Repository struct {
	root string
}

// NewRepository creates a new filesystem repository rooted at root
func NewRepository(root string) *Repository {
	return &Repository{root: expandHome(root)}
}

// FindRoot walks up from start to the nearest directory holding a config file
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(expandHome(start))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	for {
		ok, err := fileExists(filepath.Join(dir, domain.ConfigFileName))
		if err != nil {
			return "", err
		}
		if ok {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrWorkspaceNotFound
		}
		dir = parent
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}

// Root returns the workspace root directory
func (r *Repository) Root() string {
	return r.root
}

func (r *Repository) path(rel string) string {
	return filepath.Join(r.root, rel)
}

// InputExists reports whether the input of a day is on disk
func (r *Repository) InputExists(year domain.Year, day domain.Day) (bool, error) {
	return fileExists(r.path(domain.InputFile(year, day)))
}

// ReadInput returns the stored input of a day
func (r *Repository) ReadInput(year domain.Year, day domain.Day) (string, error) {
	data, err := os.ReadFile(r.path(domain.InputFile(year, day)))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// EnsureInputDir creates the input directory of a year
func (r *Repository) EnsureInputDir(year domain.Year) error {
	if err := os.MkdirAll(r.path(domain.InputDir(year)), 0755); err != nil {
		return fmt.Errorf("failed to create input directory: %w", err)
	}
	return nil
}

// SaveInput writes the input of a day, replacing any previous file
func (r *Repository) SaveInput(year domain.Year, day domain.Day, content string) (bool, error) {
	path := r.path(domain.InputFile(year, day))

	existed, err := fileExists(path)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("failed to write input: %w", err)
	}
	return existed, nil
}

// ScaffoldExists reports whether the solution file of a day is on disk
func (r *Repository) ScaffoldExists(year domain.Year, day domain.Day) (bool, error) {
	return fileExists(r.path(domain.ScaffoldFile(year, day)))
}

// CreateScaffold writes the solution file of a day unless it already exists
func (r *Repository) CreateScaffold(year domain.Year, day domain.Day, content []byte) (bool, error) {
	if err := os.MkdirAll(r.path(domain.DayDir(year, day)), 0755); err != nil {
		return false, fmt.Errorf("failed to create day directory: %w", err)
	}

	f, err := os.OpenFile(r.path(domain.ScaffoldFile(year, day)), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create source file: %w", err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		return false, fmt.Errorf("failed to write source file: %w", err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to write source file: %w", err)
	}
	return true, nil
}

// YearAggregatorExists reports whether the dispatch file of a year is on disk
func (r *Repository) YearAggregatorExists(year domain.Year) (bool, error) {
	return fileExists(r.path(domain.YearAggregatorFile(year)))
}

// WriteYearAggregator overwrites the dispatch file of a year
func (r *Repository) WriteYearAggregator(year domain.Year, content []byte) error {
	if err := os.MkdirAll(r.path(domain.YearDir(year)), 0755); err != nil {
		return fmt.Errorf("failed to create year directory: %w", err)
	}
	if err := os.WriteFile(r.path(domain.YearAggregatorFile(year)), content, 0644); err != nil {
		return fmt.Errorf("failed to write year aggregator: %w", err)
	}
	return nil
}

// WriteRootAggregator overwrites the top-level dispatch file
func (r *Repository) WriteRootAggregator(content []byte) error {
	if err := os.WriteFile(r.path(domain.RootAggregatorFile), content, 0644); err != nil {
		return fmt.Errorf("failed to write top-level aggregator: %w", err)
	}
	return nil
}

// ScanDays returns the days of a year that have a day package with its
// source file, in ascending order. Days outside the calendar are returned too.
func (r *Repository) ScanDays(year domain.Year) ([]domain.Day, error) {
	yearDir := domain.YearDir(year)
	entries, err := os.ReadDir(r.path(yearDir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read year directory: %w", err)
	}

	var days []domain.Day
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		day, ok, err := domain.ParseDayDir(entry.Name())
		if err != nil {
			return nil, relocate(err, yearDir)
		}
		if !ok {
			continue
		}

		// The file name must match the directory, so a bare day directory is skipped.
		hasSource, err := fileExists(filepath.Join(r.path(yearDir), entry.Name(), entry.Name()+".go"))
		if err != nil {
			return nil, err
		}
		if hasSource {
			days = append(days, day)
		}
	}

	slices.Sort(days)
	return slices.Compact(days), nil
}

// ScanYears returns the years that have a year package directory, in ascending order
func (r *Repository) ScanYears() ([]domain.Year, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace: %w", err)
	}

	var years []domain.Year
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		year, ok, err := domain.ParseYearDir(entry.Name())
		if err != nil {
			return nil, relocate(err, "")
		}
		if ok {
			years = append(years, year)
		}
	}

	slices.Sort(years)
	return slices.Compact(years), nil
}

// ModulePath returns the module path declared by the workspace go.mod
func (r *Repository) ModulePath() (string, error) {
	data, err := os.ReadFile(r.path(domain.ModFileName))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", domain.ModFileName, err)
	}

	module := modfile.ModulePath(data)
	if module == "" {
		return "", fmt.Errorf("%s declares no module", r.path(domain.ModFileName))
	}
	return module, nil
}

// Init creates the workspace directory with a go.mod. The directory must not exist.
func (r *Repository) Init(module string) error {
	if err := os.MkdirAll(filepath.Dir(r.root), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}
	if err := os.Mkdir(r.root, 0755); err != nil {
		return fmt.Errorf("failed to create workspace directory: %w", err)
	}

	f := new(modfile.File)
	if err := f.AddModuleStmt(module); err != nil {
		return fmt.Errorf("failed to build %s: %w", domain.ModFileName, err)
	}
	if err := f.AddGoStmt(workspaceGoVersion); err != nil {
		return fmt.Errorf("failed to build %s: %w", domain.ModFileName, err)
	}
	data, err := f.Format()
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", domain.ModFileName, err)
	}

	if err := os.WriteFile(r.path(domain.ModFileName), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", domain.ModFileName, err)
	}
	return nil
}

// relocate prefixes the path of a name error with the directory it was found in
func relocate(err error, dir string) error {
	var nameErr *domain.NameError
	if errors.As(err, &nameErr) && dir != "" {
		return &domain.NameError{Path: filepath.Join(dir, nameErr.Path), Err: nameErr.Err}
	}
	return err
}

// fileExists reports whether path is a regular file. Absence is not an error.
func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}
