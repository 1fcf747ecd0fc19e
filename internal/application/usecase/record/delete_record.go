// Package record contains income and expense ledger use cases.
package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/village-finance/backend/internal/application/adapter"
	"github.com/village-finance/backend/internal/domain/entity"
	domainerror "github.com/village-finance/backend/internal/domain/error"
)

// DeleteRecordInput represents the input for record deletion.
type DeleteRecordInput struct {
	Kind entity.RecordKind
	ID   uuid.UUID
}

// DeleteRecordUseCase handles record deletion logic.
type DeleteRecordUseCase struct {
	recordRepo  adapter.RecordRepository
	invalidator adapter.CacheInvalidator
}

// NewDeleteRecordUseCase creates a new DeleteRecordUseCase instance.
func NewDeleteRecordUseCase(
	recordRepo adapter.RecordRepository,
	invalidator adapter.CacheInvalidator,
) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{
		recordRepo:  recordRepo,
		invalidator: invalidator,
	}
}

// Execute soft-deletes a record.
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) error {
	if err := validateKind(input.Kind); err != nil {
		return err
	}

	if err := uc.recordRepo.Delete(ctx, input.Kind, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return notFoundError()
		}
		return fmt.Errorf("failed to delete record: %w", err)
	}

	invalidate(ctx, uc.invalidator)

	return nil
}
