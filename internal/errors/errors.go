package errors

import "fmt"

// AppError is a structured application error with a stable code.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error codes used across the pipeline.
const (
	CodeIOError         = "IO_ERROR"
	CodeSheetProcessing = "SHEET_PROCESSING"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeNoData          = "NO_DATA"
)

// New creates a new AppError.
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an error with additional context, preserving an existing code.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	code := CodeSheetProcessing
	if appErr, ok := err.(*AppError); ok {
		code = appErr.Code
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// GetCode returns the error code, or "UNKNOWN" for foreign errors.
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// IOError marks a workbook open/save failure. These abort the run.
func IOError(message string, cause error) *AppError {
	return &AppError{Code: CodeIOError, Message: message, Cause: cause}
}

// SheetProcessing marks a per-sheet failure recovered at the sheet boundary.
func SheetProcessing(sheet string, cause error) *AppError {
	return &AppError{
		Code:    CodeSheetProcessing,
		Message: fmt.Sprintf("processing sheet %q failed", sheet),
		Cause:   cause,
	}
}

// InvalidInput marks input the pipeline explicitly refuses to process.
func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

// NoData marks an input source with nothing usable in it.
func NoData(message string) *AppError {
	return New(CodeNoData, message)
}
