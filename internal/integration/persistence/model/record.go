// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/village-finance/backend/internal/domain/entity"
)

// RecordModel holds the columns shared by the incomes and expenses tables.
type RecordModel struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Amount      decimal.NullDecimal `gorm:"type:decimal(15,2)"`
	OccurredOn  string              `gorm:"type:varchar(32);not null;index"`
	Category    string              `gorm:"type:varchar(100);index"`
	Description string              `gorm:"type:varchar(255)"`
	CreatedAt   time.Time           `gorm:"not null"`
	UpdatedAt   time.Time           `gorm:"not null"`
	DeletedAt   gorm.DeletedAt      `gorm:"index"` // Soft-delete support
}

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	RecordModel
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	RecordModel
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// RecordTableName returns the table holding records of the given kind.
func RecordTableName(kind entity.RecordKind) string {
	if kind == entity.RecordKindIncome {
		return IncomeModel{}.TableName()
	}
	return ExpenseModel{}.TableName()
}

// ToEntity converts a RecordModel to a domain FinanceRecord entity.
func (m *RecordModel) ToEntity(kind entity.RecordKind) *entity.FinanceRecord {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.FinanceRecord{
		ID:          m.ID,
		Kind:        kind,
		Amount:      m.Amount,
		OccurredOn:  m.OccurredOn,
		Category:    m.Category,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// RecordFromEntity creates a RecordModel from a domain FinanceRecord entity.
func RecordFromEntity(record *entity.FinanceRecord) *RecordModel {
	var deletedAt gorm.DeletedAt
	if record.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *record.DeletedAt, Valid: true}
	}

	return &RecordModel{
		ID:          record.ID,
		Amount:      record.Amount,
		OccurredOn:  record.OccurredOn,
		Category:    record.Category,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
