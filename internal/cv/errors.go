package cv

import (
	"errors"
	"fmt"
)

// Input errors. All of them are the caller's fault and map to a 400.
var (
	ErrNotPDF     = errors.New("file is not a PDF")
	ErrUnreadable = errors.New("could not read PDF")
	ErrNoText     = errors.New("no extractable text in PDF")
)

// ParseError wraps an input error with the operation and file it happened in.
type ParseError struct {
	Op       string
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsInputError reports whether err was caused by the uploaded document itself.
func IsInputError(err error) bool {
	return errors.Is(err, ErrNotPDF) || errors.Is(err, ErrUnreadable) || errors.Is(err, ErrNoText)
}
