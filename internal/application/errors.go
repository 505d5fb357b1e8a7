package application

import (
	"errors"
	"fmt"

	"aocsync/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNoCredential  = errors.New("no session credential configured: run set-credential first")
	ErrInvalidYear   = errors.New("invalid year")
	ErrInvalidDay    = errors.New("invalid day")
	ErrMalformedName = domain.ErrMalformedName
)

// NameError reports an unparsable year or day directory name
type NameError = domain.NameError

// ValidationError represents a validation failure with details.
// Err, when set, is the sentinel the failure matches with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FetchError reports a failed input download. It aborts the whole download.
type FetchError struct {
	Year domain.Year
	Day  domain.Day
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("cannot fetch input for %d day %d: %v", e.Year, e.Day, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
