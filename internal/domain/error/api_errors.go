// Package error defines domain-specific errors for the Village Finance application.
package error

import "errors"

// ErrRateLimited is returned when a client exceeds the allowed request rate.
var ErrRateLimited = errors.New("too many requests")

// APIErrorCode defines error codes that are not tied to a single domain.
type APIErrorCode string

const (
	ErrCodeRateLimited APIErrorCode = "API-020001"
	ErrCodeInternal    APIErrorCode = "API-990001"
)
