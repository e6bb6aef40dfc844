package sheets

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound indicates the workbook path does not exist
	ErrFileNotFound = errors.New("workbook file not found")
	// ErrUnsupportedFormat indicates no decoder handles the file extension
	ErrUnsupportedFormat = errors.New("unsupported workbook format")
	// ErrCorruptWorkbook indicates the decoder could not read the file
	ErrCorruptWorkbook = errors.New("workbook could not be decoded")
)

// DecodeError records which file and sheet a decoder failed on
type DecodeError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("decode %q sheet %q: %v", e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("decode %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(path, sheet string, err error) *DecodeError {
	return &DecodeError{Path: path, Sheet: sheet, Err: err}
}
