// Package record contains income and expense ledger use cases.
package record

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-finance/backend/internal/application/adapter"
	"github.com/village-finance/backend/internal/domain/entity"
	domainerror "github.com/village-finance/backend/internal/domain/error"
	"github.com/village-finance/backend/internal/domain/valueobject"
)

const (
	// MaxDescriptionLength is the maximum allowed length for record descriptions.
	MaxDescriptionLength = 255
	// MaxCategoryLength is the maximum allowed length for record categories.
	MaxCategoryLength = 100
)

// RecordOutput represents a single record in use case outputs.
type RecordOutput struct {
	ID          uuid.UUID
	Kind        entity.RecordKind
	Amount      decimal.Decimal
	HasAmount   bool
	OccurredOn  string
	Category    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toRecordOutput(r *entity.FinanceRecord) *RecordOutput {
	return &RecordOutput{
		ID:          r.ID,
		Kind:        r.Kind,
		Amount:      r.AmountOrZero(),
		HasAmount:   r.Amount.Valid,
		OccurredOn:  r.OccurredOn,
		Category:    r.Category,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func validateKind(kind entity.RecordKind) error {
	if !kind.IsValid() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordKind,
			"record kind must be 'income' or 'expense'",
			domainerror.ErrInvalidRecordKind,
		)
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordAmount,
			"amount must not be negative",
			domainerror.ErrInvalidRecordAmount,
		)
	}
	return nil
}

// normalizeOccurredOn validates a date entered through the UI and returns its canonical YYYY-MM-DD form.
func normalizeOccurredOn(raw string) (string, error) {
	date, err := valueobject.ParseCalendarDate(raw)
	if err != nil {
		return "", domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordDate,
			"date must be YYYY-MM-DD, DD-MM-YYYY or DD/MM/YYYY",
			fmt.Errorf("%w: %w", domainerror.ErrInvalidRecordDate, err),
		)
	}
	return date.String(), nil
}

func validateText(description, category string) error {
	if len(description) > MaxDescriptionLength {
		return domainerror.NewRecordError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrRecordDescriptionTooLong,
		)
	}
	if len(category) > MaxCategoryLength {
		return domainerror.NewRecordError(
			domainerror.ErrCodeCategoryTooLong,
			fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
			domainerror.ErrRecordCategoryTooLong,
		)
	}
	return nil
}

func notFoundError() error {
	return domainerror.NewRecordError(
		domainerror.ErrCodeRecordNotFound,
		"record not found",
		domainerror.ErrRecordNotFound,
	)
}

// invalidate drops cached dashboard results. The mutation already succeeded, so failures are only logged.
func invalidate(ctx context.Context, invalidator adapter.CacheInvalidator) {
	if invalidator == nil {
		return
	}
	if err := invalidator.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate dashboard cache", "error", err)
	}
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
