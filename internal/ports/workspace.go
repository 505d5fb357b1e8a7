package ports

import "aocsync/internal/domain"

// WorkspaceStore defines the interface for workspace storage operations.
// A missing file is reported as false, never as an error.
type WorkspaceStore interface {
	// Root returns the workspace root directory
	Root() string

	// Input operations
	InputExists(year domain.Year, day domain.Day) (bool, error)
	ReadInput(year domain.Year, day domain.Day) (string, error)
	EnsureInputDir(year domain.Year) error
	// SaveInput writes the input and reports whether a previous file was replaced
	SaveInput(year domain.Year, day domain.Day, content string) (overwritten bool, err error)

	// Scaffold operations
	ScaffoldExists(year domain.Year, day domain.Day) (bool, error)
	// CreateScaffold writes content only if no file exists yet.
	// It reports false when the file was already there.
	CreateScaffold(year domain.Year, day domain.Day, content []byte) (created bool, err error)

	// Aggregator operations (always overwrite)
	YearAggregatorExists(year domain.Year) (bool, error)
	WriteYearAggregator(year domain.Year, content []byte) error
	WriteRootAggregator(content []byte) error

	// Scans, re-read from disk on every call, ascending
	ScanDays(year domain.Year) ([]domain.Day, error)
	ScanYears() ([]domain.Year, error)

	// ModulePath returns the module path declared by the workspace go.mod
	ModulePath() (string, error)
	// Init creates a new workspace directory with a go.mod for module
	Init(module string) error
}
