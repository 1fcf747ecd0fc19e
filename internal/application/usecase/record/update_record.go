// Package record contains income and expense ledger use cases.
package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-finance/backend/internal/application/adapter"
	"github.com/village-finance/backend/internal/domain/entity"
	domainerror "github.com/village-finance/backend/internal/domain/error"
)

// UpdateRecordInput represents the input for a partial record update.
// Nil fields are left unchanged.
type UpdateRecordInput struct {
	Kind        entity.RecordKind
	ID          uuid.UUID
	Amount      *decimal.Decimal
	OccurredOn  *string
	Category    *string
	Description *string
}

// UpdateRecordUseCase handles record update logic.
type UpdateRecordUseCase struct {
	recordRepo  adapter.RecordRepository
	invalidator adapter.CacheInvalidator
}

// NewUpdateRecordUseCase creates a new UpdateRecordUseCase instance.
func NewUpdateRecordUseCase(
	recordRepo adapter.RecordRepository,
	invalidator adapter.CacheInvalidator,
) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		recordRepo:  recordRepo,
		invalidator: invalidator,
	}
}

// Execute applies the provided changes to an existing record.
func (uc *UpdateRecordUseCase) Execute(ctx context.Context, input UpdateRecordInput) (*RecordOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	record, err := uc.recordRepo.FindByID(ctx, input.Kind, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find record: %w", err)
	}

	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		record.Amount = decimal.NewNullDecimal(*input.Amount)
	}

	if input.OccurredOn != nil {
		occurredOn, err := normalizeOccurredOn(*input.OccurredOn)
		if err != nil {
			return nil, err
		}
		record.OccurredOn = occurredOn
	}

	if input.Category != nil {
		record.Category = trim(*input.Category)
	}
	if input.Description != nil {
		record.Description = trim(*input.Description)
	}
	if err := validateText(record.Description, record.Category); err != nil {
		return nil, err
	}

	record.UpdatedAt = time.Now().UTC()

	if err := uc.recordRepo.Update(ctx, record); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	invalidate(ctx, uc.invalidator)

	return toRecordOutput(record), nil
}
