// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/village-finance/backend/internal/application/usecase/record"
)

// CreateRecordRequest represents the request body for income or expense creation.
// Amount accepts a JSON number or a numeric string.
type CreateRecordRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Date        string           `json:"date" binding:"required"`
	Category    string           `json:"category,omitempty"`
	Description string           `json:"description,omitempty"`
}

// UpdateRecordRequest represents the request body for a partial record update.
type UpdateRecordRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *string          `json:"date,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// RecordResponse represents a single record in API responses.
type RecordResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Amount      *string   `json:"amount"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RecordListResponse represents the response for listing records.
type RecordListResponse struct {
	Records    []RecordResponse   `json:"records"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToRecordResponse converts a RecordOutput to RecordResponse DTO.
func ToRecordResponse(r *record.RecordOutput) RecordResponse {
	response := RecordResponse{
		ID:          r.ID.String(),
		Kind:        string(r.Kind),
		Date:        r.OccurredOn,
		Category:    r.Category,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}

	if r.HasAmount {
		amount := r.Amount.String()
		response.Amount = &amount
	}

	return response
}

// ToRecordListResponse converts a ListRecordsOutput to RecordListResponse DTO.
func ToRecordListResponse(output *record.ListRecordsOutput) RecordListResponse {
	records := make([]RecordResponse, len(output.Records))
	for i, r := range output.Records {
		records[i] = ToRecordResponse(r)
	}

	return RecordListResponse{
		Records: records,
		Pagination: PaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
	}
}
