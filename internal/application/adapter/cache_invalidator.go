// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// CacheInvalidator discards cached dashboard results after the ledger changes.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}
