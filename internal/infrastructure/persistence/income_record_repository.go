package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/finsight/backend/internal/domain/finance"
	"github.com/finsight/backend/internal/domain/shared"
	"github.com/finsight/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormIncomeRecordRepository implements IncomeRecordRepository using GORM
type GormIncomeRecordRepository struct {
	db *gorm.DB
}

// NewGormIncomeRecordRepository creates a new GormIncomeRecordRepository
func NewGormIncomeRecordRepository(db *gorm.DB) *GormIncomeRecordRepository {
	return &GormIncomeRecordRepository{db: db}
}

var _ finance.IncomeRepository = (*GormIncomeRecordRepository)(nil)

// FindByID finds an income record by its ID
func (r *GormIncomeRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.IncomeRecord, error) {
	var model models.IncomeRecordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForOwner finds an income record by ID belonging to the given owner
func (r *GormIncomeRecordRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*finance.IncomeRecord, error) {
	var model models.IncomeRecordModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForOwner finds the owner's income records matching the filter, with the total count
func (r *GormIncomeRecordRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]finance.IncomeRecord, int64, error) {
	var total int64
	countQuery := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.IncomeRecordModel{}).Where("owner_id = ?", ownerID),
		filter,
	)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.IncomeRecordModel{}).Where("owner_id = ?", ownerID),
		filter,
	)

	var recordModels []models.IncomeRecordModel
	if err := query.Find(&recordModels).Error; err != nil {
		return nil, 0, err
	}

	records := make([]finance.IncomeRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = *model.ToDomain()
	}
	return records, total, nil
}

// AllForOwner returns every income record belonging to the given owner
func (r *GormIncomeRecordRepository) AllForOwner(ctx context.Context, ownerID uuid.UUID) ([]finance.IncomeRecord, error) {
	var recordModels []models.IncomeRecordModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&recordModels).Error; err != nil {
		return nil, err
	}

	records := make([]finance.IncomeRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = *model.ToDomain()
	}
	return records, nil
}

// Save creates or updates an income record
func (r *GormIncomeRecordRepository) Save(ctx context.Context, record *finance.IncomeRecord) error {
	model := models.IncomeRecordModelFromDomain(record)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an income record belonging to the given owner
func (r *GormIncomeRecordRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.IncomeRecordModel{}, "owner_id = ? AND id = ?", ownerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filtering, pagination and ordering to the query
func (r *GormIncomeRecordRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies search and field filters only
func (r *GormIncomeRecordRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("source ILIKE ? OR notes ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "frequency":
			query = query.Where("frequency = ?", value)
		}
	}

	return query
}
