package tables

import (
	"errors"
	"fmt"
)

// Error taxonomy. Callers classify with errors.Is.
var (
	// ErrResourceUnavailable means the workbook could not be read at load time
	ErrResourceUnavailable = errors.New("resource unavailable")
	// ErrServiceUnavailable means a query arrived without a loaded registry
	ErrServiceUnavailable = errors.New("excel processor not initialized")
	// ErrNotFound covers unknown tables and unknown row labels
	ErrNotFound = errors.New("not found")
	// ErrTableNotFound is returned for a table name absent from the registry
	ErrTableNotFound = fmt.Errorf("table %w", ErrNotFound)
	// ErrRowNotFound is returned when no row of a known table has the label
	ErrRowNotFound = fmt.Errorf("row %w", ErrNotFound)
	// ErrInternal wraps any other fault raised while segmenting or resolving
	ErrInternal = errors.New("internal fault")
)

// LookupError names the table, and for row lookups the row, that was missing
type LookupError struct {
	Table string
	Row   string
	Err   error
}

func (e *LookupError) Error() string {
	if errors.Is(e.Err, ErrRowNotFound) {
		return fmt.Sprintf("Row '%s' not found in table '%s'", e.Row, e.Table)
	}
	return fmt.Sprintf("Table '%s' not found", e.Table)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

func tableNotFound(table string) error {
	return &LookupError{Table: table, Err: ErrTableNotFound}
}

func rowNotFound(table, row string) error {
	return &LookupError{Table: table, Row: row, Err: ErrRowNotFound}
}

// LoadError reports a workbook that could not be turned into a registry.
// It matches both ErrResourceUnavailable and the underlying cause.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("error loading excel file %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrResourceUnavailable, e.Err}
}

// internalError wraps a recovered panic or unexpected condition
func internalError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...))
}
