// Package error defines domain-specific errors for the Village Finance application.
package error

import "errors"

// Record domain errors.
var (
	// ErrRecordNotFound is returned when an income or expense record does not exist.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidRecordKind is returned when the record kind is neither income nor expense.
	ErrInvalidRecordKind = errors.New("invalid record kind")

	// ErrInvalidRecordAmount is returned when the amount is missing or negative.
	ErrInvalidRecordAmount = errors.New("invalid record amount")

	// ErrInvalidRecordDate is returned when the record date cannot be normalized.
	ErrInvalidRecordDate = errors.New("invalid record date")

	// ErrRecordDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrRecordDescriptionTooLong = errors.New("description too long")

	// ErrRecordCategoryTooLong is returned when the category exceeds the maximum length.
	ErrRecordCategoryTooLong = errors.New("category too long")

	// ErrInvalidRecordID is returned when a record ID is not a valid UUID.
	ErrInvalidRecordID = errors.New("invalid record id")
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRecordKind    RecordErrorCode = "REC-010001"
	ErrCodeInvalidRecordAmount  RecordErrorCode = "REC-010002"
	ErrCodeInvalidRecordDate    RecordErrorCode = "REC-010003"
	ErrCodeDescriptionTooLong   RecordErrorCode = "REC-010004"
	ErrCodeCategoryTooLong      RecordErrorCode = "REC-010005"
	ErrCodeRecordNotFound       RecordErrorCode = "REC-010006"
	ErrCodeInvalidRecordID      RecordErrorCode = "REC-010007"
	ErrCodeInvalidRecordRequest RecordErrorCode = "REC-010008"

	// Internal errors (99XXXX)
	ErrCodeRecordInternalError RecordErrorCode = "REC-990001"
)

// RecordError represents a record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
