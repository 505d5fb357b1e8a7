package application

import (
	"fmt"
	"strings"

	"aocsync/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts field names to words for error messages
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"session":  "session credential",
		"year":     "year",
		"day":      "day",
		"firstDay": "first day",
		"lastDay":  "last day",
		"module":   "module path",
		"path":     "path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateYear checks that a year can name a workspace year
func ValidateYear(y domain.Year) error {
	if !y.Valid() {
		return &ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("%v: %d", ErrInvalidYear, y),
			Err:     ErrInvalidYear,
		}
	}
	return nil
}

// ValidateDay checks that a single requested day lies on the calendar
func ValidateDay(d domain.Day) error {
	if !d.Valid() {
		return &ValidationError{
			Field:   "day",
			Message: fmt.Sprintf("%v: %d (expected %d-%d)", ErrInvalidDay, d, domain.FirstDay, domain.LastDay),
			Err:     ErrInvalidDay,
		}
	}
	return nil
}

// ValidateDayRange checks that a range selects at least one calendar day once clamped
func ValidateDayRange(r domain.DayRange) error {
	if r.Clamp().Empty() {
		return &ValidationError{
			Field:   "firstDay",
			Message: fmt.Sprintf("%s selects no day between %d and %d", r, domain.FirstDay, domain.LastDay),
			Err:     ErrInvalidDay,
		}
	}
	return nil
}
