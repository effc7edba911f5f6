package tablediff

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Standard error values for consistent classification with errors.Is.
var (
	// errDuplicateColumnName is returned when a file contains duplicate column names
	errDuplicateColumnName = errors.New("duplicate column name")

	// ErrEmptyData indicates that the data source contains no records
	ErrEmptyData = errors.New("tablediff: empty data source")

	// ErrUnsupportedFormat indicates an unsupported file format
	ErrUnsupportedFormat = errors.New("tablediff: unsupported file format")

	// ErrInvalidInput indicates an invalid key or compare column selection
	ErrInvalidInput = errors.New("tablediff: invalid input")

	// ErrLayoutMismatch indicates the two tables do not share the same column set
	ErrLayoutMismatch = errors.New("tablediff: table layouts do not match")
)

// LayoutError describes the symmetric difference between two table layouts.
// It wraps ErrLayoutMismatch so callers can classify it with errors.Is.
type LayoutError struct {
	// OnlyInBefore lists columns present only in the before table, sorted.
	OnlyInBefore []string
	// OnlyInAfter lists columns present only in the after table, sorted.
	OnlyInAfter []string
}

// Error implements the error interface.
func (e *LayoutError) Error() string {
	var parts []string
	if len(e.OnlyInBefore) > 0 {
		parts = append(parts, "only in before: "+strings.Join(e.OnlyInBefore, ", "))
	}
	if len(e.OnlyInAfter) > 0 {
		parts = append(parts, "only in after: "+strings.Join(e.OnlyInAfter, ", "))
	}
	return fmt.Sprintf("%s (%s)", ErrLayoutMismatch.Error(), strings.Join(parts, "; "))
}

// Unwrap returns ErrLayoutMismatch for errors.Is support.
func (e *LayoutError) Unwrap() error {
	return ErrLayoutMismatch
}

// newLayoutError builds a LayoutError from the two column-set differences.
// The slices are sorted so the message is stable.
func newLayoutError(onlyInBefore, onlyInAfter []string) *LayoutError {
	sort.Strings(onlyInBefore)
	sort.Strings(onlyInAfter)
	return &LayoutError{
		OnlyInBefore: onlyInBefore,
		OnlyInAfter:  onlyInAfter,
	}
}

// invalidInputError wraps ErrInvalidInput with a selection-specific detail.
func invalidInputError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
