// Package error defines domain-specific errors for the Village Finance application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidGranularity is returned when granularity is not one of the supported values.
	ErrInvalidGranularity = errors.New("granularity must be: daily, weekly, or monthly")

	// ErrMissingGranularity is returned when granularity is not provided.
	ErrMissingGranularity = errors.New("granularity is required")

	// ErrDashboardUnavailable is returned when dashboard data could not be loaded.
	ErrDashboardUnavailable = errors.New("dashboard data unavailable")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGranularity   DashboardErrorCode = "DSH-010004"
	ErrCodeMissingGranularity   DashboardErrorCode = "DSH-010005"
	ErrCodeInvalidBreakdownKind DashboardErrorCode = "DSH-010007"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
