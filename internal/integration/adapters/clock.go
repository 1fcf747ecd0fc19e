// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/village-finance/backend/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface using the wall clock.
type systemClock struct{}

// NewSystemClock creates a new clock backed by time.Now.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current time.
func (systemClock) Now() time.Time {
	return time.Now()
}
