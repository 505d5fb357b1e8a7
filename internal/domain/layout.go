package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
)

// Workspace file names, relative to the workspace root
const (
	ConfigFileName     = ".aoc.toml"
	ModFileName        = "go.mod"
	RootAggregatorFile = "main.go"
	InputDirName       = "input"

	// DefaultModulePath is the module path given to new workspaces
	DefaultModulePath = "aoc"
	// DefaultWorkspaceDir is the directory name used by `new` without arguments
	DefaultWorkspaceDir = "aoc"
)

var (
	yearDirRegex = regexp.MustCompile(`^y([1-9][0-9]*)$`)
	dayDirRegex  = regexp.MustCompile(`^day([1-9][0-9]*)$`)
)

// ErrMalformedName is matched by NameError
var ErrMalformedName = errors.New("malformed workspace name")

// NameError reports a directory that looks like a year or day package
// but whose number cannot be parsed
type NameError struct {
	Path string
	Err  error
}

func (e *NameError) Error() string {
	return fmt.Sprintf("malformed workspace name %q: %v", e.Path, e.Err)
}

func (e *NameError) Unwrap() error {
	return e.Err
}

func (e *NameError) Is(target error) bool {
	return target == ErrMalformedName
}

// YearPackage returns the Go package name for a year (e.g., "y2022")
func YearPackage(y Year) string {
	return fmt.Sprintf("y%d", y)
}

// DayPackage returns the Go package name for a day (e.g., "day7")
func DayPackage(d Day) string {
	return fmt.Sprintf("day%d", d)
}

// YearDir is the year source directory
func YearDir(y Year) string {
	return YearPackage(y)
}

// InputDir is the directory holding a year's puzzle inputs.
// It sits inside the year package so the aggregator can embed the files.
func InputDir(y Year) string {
	return filepath.Join(YearDir(y), InputDirName)
}

// InputFile is the puzzle input for one day
func InputFile(y Year, d Day) string {
	return filepath.Join(InputDir(y), inputFileName(d))
}

// InputEmbedPath is the input path as written in a go:embed directive of the year package
func InputEmbedPath(d Day) string {
	return InputDirName + "/" + inputFileName(d)
}

func inputFileName(d Day) string {
	return fmt.Sprintf("day%d.txt", d)
}

// DayDir is the package directory of one day's solution
func DayDir(y Year, d Day) string {
	return filepath.Join(YearDir(y), DayPackage(d))
}

// ScaffoldFile is the create-once solution source for one day
func ScaffoldFile(y Year, d Day) string {
	return filepath.Join(DayDir(y, d), ScaffoldFileName(d))
}

// ScaffoldFileName is the base name of a day's scaffold file
func ScaffoldFileName(d Day) string {
	return DayPackage(d) + ".go"
}

// YearAggregatorFile is the generated dispatch file of one year
func YearAggregatorFile(y Year) string {
	return filepath.Join(YearDir(y), YearPackage(y)+".go")
}

// ParseYearDir reports whether name is a year package directory and which
// year it names. A name of the right shape with an unparsable number is an error.
func ParseYearDir(name string) (Year, bool, error) {
	matches := yearDirRegex.FindStringSubmatch(name)
	if matches == nil {
		return 0, false, nil
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, true, &NameError{Path: name, Err: err}
	}
	return Year(n), true, nil
}

// ParseDayDir reports whether name is a day package directory and which
// day it names. Days outside the calendar are returned as-is for the caller to judge.
func ParseDayDir(name string) (Day, bool, error) {
	matches := dayDirRegex.FindStringSubmatch(name)
	if matches == nil {
		return 0, false, nil
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, true, &NameError{Path: name, Err: err}
	}
	return Day(n), true, nil
}
