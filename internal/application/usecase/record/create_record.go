// Package record contains income and expense ledger use cases.
package record

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/village-finance/backend/internal/application/adapter"
	"github.com/village-finance/backend/internal/domain/entity"
)

// CreateRecordInput represents the input for record creation.
type CreateRecordInput struct {
	Kind        entity.RecordKind
	Amount      decimal.Decimal
	OccurredOn  string
	Category    string
	Description string
}

// CreateRecordUseCase handles record creation logic.
type CreateRecordUseCase struct {
	recordRepo  adapter.RecordRepository
	invalidator adapter.CacheInvalidator
}

// NewCreateRecordUseCase creates a new CreateRecordUseCase instance.
func NewCreateRecordUseCase(
	recordRepo adapter.RecordRepository,
	invalidator adapter.CacheInvalidator,
) *CreateRecordUseCase {
	return &CreateRecordUseCase{
		recordRepo:  recordRepo,
		invalidator: invalidator,
	}
}

// Execute validates and stores a new income or expense record.
func (uc *CreateRecordUseCase) Execute(ctx context.Context, input CreateRecordInput) (*RecordOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	occurredOn, err := normalizeOccurredOn(input.OccurredOn)
	if err != nil {
		return nil, err
	}

	category := trim(input.Category)
	description := trim(input.Description)
	if err := validateText(description, category); err != nil {
		return nil, err
	}

	record := entity.NewFinanceRecord(input.Kind, input.Amount, occurredOn, category, description)

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	invalidate(ctx, uc.invalidator)

	return toRecordOutput(record), nil
}
