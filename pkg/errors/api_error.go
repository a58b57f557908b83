package errors

import "fmt"

type APIError struct {
	Code    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

var (
	ErrMissingParam = func(msg string) *APIError {
		return &APIError{Code: "missing_param", Message: msg}
	}
	ErrInvalidURL = func(err error) *APIError {
		return &APIError{Code: "invalid_url", Message: "Invalid url param", Err: err}
	}
	ErrNoFile = func(err error) *APIError {
		return &APIError{Code: "no_file", Message: "No file", Err: err}
	}
	ErrNotPDF = func(err error) *APIError {
		return &APIError{Code: "not_pdf", Message: "File must be a PDF", Err: err}
	}
	ErrFileTooLarge = func(err error) *APIError {
		return &APIError{Code: "file_too_large", Message: "File exceeds the configured size limit", Err: err}
	}
	ErrConverterMissing = func(err error) *APIError {
		return &APIError{Code: "converter_missing", Message: "Office converter (soffice) not found", Err: err}
	}
	ErrNotFound = func(err error) *APIError {
		return &APIError{Code: "not_found", Message: "Record not found", Err: err}
	}
	ErrStorage = func(err error) *APIError {
		return &APIError{Code: "storage_error", Message: "Storage operation failed", Err: err}
	}
	ErrDatabase = func(err error) *APIError {
		return &APIError{Code: "db_error", Message: "Database operation failed", Err: err}
	}
	ErrInternal = func(err error) *APIError {
		return &APIError{Code: "internal_error", Message: "Server error", Err: err}
	}
)
