// Package record contains income and expense ledger use cases.
package record

import (
	"context"
	"fmt"

	"github.com/village-finance/backend/internal/application/adapter"
	"github.com/village-finance/backend/internal/domain/entity"
)

const (
	// DefaultPageLimit is used when no limit is requested.
	DefaultPageLimit = 20
	// MaxPageLimit caps the page size.
	MaxPageLimit = 100
)

// ListRecordsInput represents the input for listing records.
type ListRecordsInput struct {
	Kind     entity.RecordKind
	Category string
	Search   string
	Page     int
	Limit    int
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ListRecordsOutput represents the output of listing records.
type ListRecordsOutput struct {
	Records    []*RecordOutput
	Pagination PaginationOutput
}

// ListRecordsUseCase handles listing one ledger.
type ListRecordsUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(recordRepo adapter.RecordRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		recordRepo: recordRepo,
	}
}

// Execute returns a page of records, newest first.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) (*ListRecordsOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	result, err := uc.recordRepo.FindByFilter(ctx,
		adapter.RecordFilter{
			Kind:     input.Kind,
			Category: trim(input.Category),
			Search:   trim(input.Search),
		},
		adapter.RecordPagination{Page: page, Limit: limit},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	records := make([]*RecordOutput, len(result.Records))
	for i, r := range result.Records {
		records[i] = toRecordOutput(r)
	}

	return &ListRecordsOutput{
		Records: records,
		Pagination: PaginationOutput{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}, nil
}
