// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordKind distinguishes the two ledgers kept by a village treasury.
type RecordKind string

const (
	RecordKindIncome  RecordKind = "income"
	RecordKindExpense RecordKind = "expense"
)

// IsValid reports whether k is one of the known record kinds.
func (k RecordKind) IsValid() bool {
	return k == RecordKindIncome || k == RecordKindExpense
}

// FinanceRecord represents one income or expense entry of the village ledger.
type FinanceRecord struct {
	ID          uuid.UUID
	Kind        RecordKind
	Amount      decimal.NullDecimal // NULL for legacy rows imported without an amount
	OccurredOn  string              // Canonical YYYY-MM-DD for new rows; legacy rows may hold loose encodings
	Category    string              // Income source or expense type; empty when unknown
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewFinanceRecord creates a new FinanceRecord entity.
func NewFinanceRecord(
	kind RecordKind,
	amount decimal.Decimal,
	occurredOn string,
	category string,
	description string,
) *FinanceRecord {
	now := time.Now().UTC()

	return &FinanceRecord{
		ID:          uuid.New(),
		Kind:        kind,
		Amount:      decimal.NewNullDecimal(amount),
		OccurredOn:  occurredOn,
		Category:    category,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AmountOrZero returns the record amount, treating a missing amount as zero.
func (r *FinanceRecord) AmountOrZero() decimal.Decimal {
	if !r.Amount.Valid {
		return decimal.Zero
	}
	return r.Amount.Decimal
}

// RecordListResult represents a page of records.
type RecordListResult struct {
	Records    []*FinanceRecord
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
