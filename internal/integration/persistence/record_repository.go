// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/village-finance/backend/internal/application/adapter"
	"github.com/village-finance/backend/internal/domain/entity"
	domainerror "github.com/village-finance/backend/internal/domain/error"
	"github.com/village-finance/backend/internal/integration/persistence/model"
)

// recordRepository implements the adapter.RecordRepository interface.
// Incomes and expenses share a schema and live in separate tables.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository instance.
func NewRecordRepository(db *gorm.DB) adapter.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

func (r *recordRepository) table(ctx context.Context, kind entity.RecordKind) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.RecordModel{}).Table(model.RecordTableName(kind))
}

// Create creates a new record in the table matching its kind.
func (r *recordRepository) Create(ctx context.Context, record *entity.FinanceRecord) error {
	recordModel := model.RecordFromEntity(record)
	result := r.db.WithContext(ctx).Table(model.RecordTableName(record.Kind)).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a record by its ID.
func (r *recordRepository) FindByID(ctx context.Context, kind entity.RecordKind, id uuid.UUID) (*entity.FinanceRecord, error) {
	var recordModel model.RecordModel
	result := r.table(ctx, kind).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(kind), nil
}

// FindByFilter retrieves records based on filter criteria with pagination.
func (r *recordRepository) FindByFilter(ctx context.Context, filter adapter.RecordFilter, pagination adapter.RecordPagination) (*entity.RecordListResult, error) {
	query := r.table(ctx, filter.Kind)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(description) LIKE ?", searchPattern)
	}

	// Get total count
	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	// Calculate pagination
	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var recordModels []model.RecordModel
	result := query.
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.FinanceRecord, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity(filter.Kind)
	}

	return &entity.RecordListResult{
		Records:    records,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// ListAll retrieves every non-deleted record of the given kind in insertion order.
func (r *recordRepository) ListAll(ctx context.Context, kind entity.RecordKind) ([]*entity.FinanceRecord, error) {
	var recordModels []model.RecordModel
	result := r.table(ctx, kind).
		Order("created_at ASC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.FinanceRecord, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity(kind)
	}
	return records, nil
}

// Update updates an existing record in the database.
func (r *recordRepository) Update(ctx context.Context, record *entity.FinanceRecord) error {
	recordModel := model.RecordFromEntity(record)
	result := r.table(ctx, record.Kind).
		Where("id = ?", recordModel.ID).
		Updates(map[string]any{
			"amount":      recordModel.Amount,
			"occurred_on": recordModel.OccurredOn,
			"category":    recordModel.Category,
			"description": recordModel.Description,
			"updated_at":  recordModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}

// Delete soft-deletes a record from the database.
func (r *recordRepository) Delete(ctx context.Context, kind entity.RecordKind, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Table(model.RecordTableName(kind)).Delete(&model.RecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}
