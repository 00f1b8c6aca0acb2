package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFileType is returned when no parser handles a file extension.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrEmptyDocument labels a document that yielded no transactions.
	ErrEmptyDocument = errors.New("no transactions found in document")
	// ErrAlreadyProcessed is returned by stores when a statement was imported before.
	ErrAlreadyProcessed = errors.New("statement already processed")
)

// DateFormatError is returned when a row anchor's text is not a strict day.month.year date.
type DateFormatError struct {
	Page int
	Text string
	Err  error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("page %d: invalid booking date %q: %v", e.Page, e.Text, e.Err)
}

// Unwrap returns the underlying time parse error.
func (e *DateFormatError) Unwrap() error {
	return e.Err
}
