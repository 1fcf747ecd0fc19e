// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/village-finance/backend/internal/domain/entity"
)

// RecordFilter defines filter options for listing records.
type RecordFilter struct {
	Kind     entity.RecordKind
	Category string
	Search   string // Case-insensitive description match
}

// RecordPagination defines pagination options.
type RecordPagination struct {
	Page  int
	Limit int
}

// RecordRepository defines the interface for income and expense persistence operations.
type RecordRepository interface {
	// Create stores a new record in the ledger matching its kind.
	Create(ctx context.Context, record *entity.FinanceRecord) error

	// FindByID retrieves a record of the given kind by its ID.
	FindByID(ctx context.Context, kind entity.RecordKind, id uuid.UUID) (*entity.FinanceRecord, error)

	// FindByFilter retrieves records based on filter criteria with pagination, newest first.
	FindByFilter(ctx context.Context, filter RecordFilter, pagination RecordPagination) (*entity.RecordListResult, error)

	// ListAll returns every non-deleted record of the given kind.
	ListAll(ctx context.Context, kind entity.RecordKind) ([]*entity.FinanceRecord, error)

	// Update persists changes to an existing record.
	Update(ctx context.Context, record *entity.FinanceRecord) error

	// Delete soft-deletes a record.
	Delete(ctx context.Context, kind entity.RecordKind, id uuid.UUID) error
}
