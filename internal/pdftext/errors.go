package pdftext

import "fmt"

// ErrorCode identifies a text-acquisition failure mode.
type ErrorCode string

const (
	ErrPDFOpen        ErrorCode = "PDF_OPEN_FAILED"
	ErrPDFRead        ErrorCode = "PDF_READ_FAILED"
	ErrOCRUnavailable ErrorCode = "OCR_UNAVAILABLE"
)

// ExtractError is a structured error for text extraction failures. The
// processing engine treats any of these as "no text obtained" rather
// than aborting the file.
type ExtractError struct {
	Code  ErrorCode
	Path  string
	Cause error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Path, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Path)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}
